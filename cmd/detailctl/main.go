package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/detailmatch/internal/domain/detail"
	"github.com/kailas-cloud/detailmatch/internal/version"
	detailmatch "github.com/kailas-cloud/detailmatch/pkg/sdk"
)

var rootCmd = &cobra.Command{
	Use:   "detailctl",
	Short: "Match building junctions against a construction detail catalog",
	Long: "detailctl matches host/adjacent/exposure descriptions against a catalog of standard " +
		"construction details. Without --valkey or --redis the catalog is in-memory and " +
		"changes last for a single command.",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "detailctl "+version.String())
	},
}

var (
	flagValkey     string
	flagRedis      string
	flagPassword   string
	flagKeyPrefix  string
	flagVocabulary string
	flagSeed       string
	flagJSON       bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagValkey, "valkey", "", "Valkey address (host:port)")
	pf.StringVar(&flagRedis, "redis", "", "Redis address (host:port)")
	pf.StringVar(&flagPassword, "password", "", "Store password")
	pf.StringVar(&flagKeyPrefix, "key-prefix", "", "Catalog key prefix (default detailmatch:)")
	pf.StringVar(&flagVocabulary, "vocabulary", "", "Vocabulary YAML file")
	pf.StringVar(&flagSeed, "seed", "", "Seed YAML file used when the catalog is empty")
	pf.BoolVar(&flagJSON, "json", false, "Print JSON")
	rootCmd.MarkFlagsMutuallyExclusive("valkey", "redis")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newClient builds an SDK client from the global flags.
func newClient(ctx context.Context) (*detailmatch.Client, error) {
	var opts []detailmatch.Option
	switch {
	case flagValkey != "":
		opts = append(opts, detailmatch.WithValkey(flagValkey, flagPassword))
	case flagRedis != "":
		opts = append(opts, detailmatch.WithRedis(flagRedis, flagPassword))
	}
	if flagKeyPrefix != "" {
		opts = append(opts, detailmatch.WithKeyPrefix(flagKeyPrefix))
	}
	if flagVocabulary != "" {
		opts = append(opts, detailmatch.WithVocabularyFile(flagVocabulary))
	}
	if flagSeed != "" {
		labels, err := detail.LoadSeedFile(flagSeed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, detailmatch.WithSeed(labels...))
	}

	client, err := detailmatch.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return client, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
