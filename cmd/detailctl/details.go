package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/detailmatch/internal/domain/detail"
	detailmatch "github.com/kailas-cloud/detailmatch/pkg/sdk"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog details in catalog order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var addCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Add a detail label",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a detail label",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var importCmd = &cobra.Command{
	Use:   "import <seed.yaml>",
	Short: "Add every label from a seed file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(listCmd, addCmd, removeCmd, importCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	labels, err := client.Details().List(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, labels)
	}
	if len(labels) == 0 {
		fmt.Fprintln(out, "Catalog is empty.")
		return nil
	}
	for _, l := range labels {
		fmt.Fprintln(out, l)
	}
	return nil
}

type statusOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	added, err := client.Details().Add(ctx, args[0])
	if err != nil {
		return err
	}

	res := statusOutput{Status: "success", Message: "Added " + args[0]}
	if !added {
		res = statusOutput{Status: "exists", Message: "Detail already exists"}
	}
	return printStatus(cmd, res)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Details().Remove(ctx, args[0]); err != nil {
		if errors.Is(err, detailmatch.ErrNotFound) {
			return fmt.Errorf("detail %q not found", args[0])
		}
		return err
	}
	return printStatus(cmd, statusOutput{Status: "success", Message: "Deleted"})
}

func printStatus(cmd *cobra.Command, res statusOutput) error {
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	style := styleSuccess
	if res.Status != "success" {
		style = styleDim
	}
	fmt.Fprintln(cmd.OutOrStdout(), style.Render(res.Message))
	return nil
}

type importItem struct {
	DetailName string `json:"detail_name"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	labels, err := detail.LoadSeedFile(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	results := client.Details().Import(ctx, labels)

	items := make([]importItem, len(results))
	failed := 0
	for i, r := range results {
		items[i] = importItem{DetailName: r.Label, Status: string(r.Status)}
		if r.Err != nil {
			items[i].Error = r.Err.Error()
			failed++
		}
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		if err := writeJSON(out, items); err != nil {
			return err
		}
	} else {
		for _, it := range items {
			line := renderStatus(it.Status) + " " + it.DetailName
			if it.Error != "" {
				line += "  " + styleDim.Render(it.Error)
			}
			fmt.Fprintln(out, line)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d labels failed", failed, len(items))
	}
	return nil
}
