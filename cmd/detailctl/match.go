package main

import (
	"fmt"

	"github.com/spf13/cobra"

	detailmatch "github.com/kailas-cloud/detailmatch/pkg/sdk"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find the catalog detail that best fits a junction",
	Args:  cobra.NoArgs,
	RunE:  runMatch,
}

var (
	matchHost     string
	matchAdjacent string
	matchExposure string
)

func init() {
	matchCmd.Flags().StringVar(&matchHost, "host", "", "Host element, e.g. \"External Wall\"")
	matchCmd.Flags().StringVar(&matchAdjacent, "adjacent", "", "Adjacent element, e.g. \"Slab\"")
	matchCmd.Flags().StringVar(&matchExposure, "exposure", "", "Exposure or function, e.g. \"Waterproofing\"")
	rootCmd.AddCommand(matchCmd)
}

type matchOutput struct {
	SuggestedDetail string  `json:"suggested_detail"`
	Confidence      float64 `json:"confidence"`
	Reason          string  `json:"reason"`
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	m, err := client.Match(ctx, detailmatch.Query{
		Host:     matchHost,
		Adjacent: matchAdjacent,
		Exposure: matchExposure,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, matchOutput{
			SuggestedDetail: m.Detail,
			Confidence:      m.Confidence,
			Reason:          m.Reason,
		})
	}

	if m.Matched {
		fmt.Fprintf(out, "%s  %.2f\n", styleMatch.Render(m.Detail), m.Confidence)
	} else {
		fmt.Fprintln(out, styleNoMatch.Render(m.Detail))
	}
	if m.Reason != "" {
		fmt.Fprintln(out, styleDim.Render(m.Reason))
	}
	return nil
}
