package main

import "github.com/charmbracelet/lipgloss"

var (
	styleMatch   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleNoMatch = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderStatus(status string) string {
	switch status {
	case "added":
		return styleSuccess.Render("[" + status + "]")
	case "error":
		return styleError.Render("[" + status + "]")
	default:
		return styleDim.Render("[" + status + "]")
	}
}
