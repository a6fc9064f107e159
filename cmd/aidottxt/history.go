// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aidottxt/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	Long: `List runs recorded in the generation ledger, newest first. Each run shows
the output directory, the formats generated, and how many files were
created, unchanged, or failed.`,
	RunE: runHistory,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to YAML or JSON next to the database",
	RunE:  runHistoryExport,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().Bool("json", false, "print runs as JSON")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func openLedger() (*ledger.Store, error) {
	path := ledgerPath()
	if path == "" {
		return nil, errors.New("no ledger location available; pass --ledger")
	}
	store, err := ledger.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	return store, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling runs: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printRuns(cmd.OutOrStdout(), runs)
	return nil
}

func printRuns(w io.Writer, runs []ledger.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tOUT\tFORMATS\tFILES")
	for _, r := range runs {
		out := r.OutDir
		if r.DryRun {
			out += " (dry run)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			out,
			strings.Join(r.Formats, ","),
			summarize(r.Documents))
	}
	tw.Flush()
}

// summarize counts documents per status, e.g. "2 created, 1 unchanged".
func summarize(docs []ledger.DocumentRecord) string {
	var order []string
	counts := map[string]int{}
	for _, d := range docs {
		if counts[d.Status] == 0 {
			order = append(order, d.Status)
		}
		counts[d.Status]++
	}
	if len(order) == 0 {
		return "none"
	}
	parts := make([]string, len(order))
	for i, s := range order {
		parts[i] = fmt.Sprintf("%d %s", counts[s], s)
	}
	return strings.Join(parts, ", ")
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml":
		path, err = store.ExportYAML(cmd.Context())
	case "json":
		path, err = store.ExportJSON(cmd.Context())
	default:
		return fmt.Errorf("unsupported export format %q (use yaml or json)", format)
	}
	if err != nil {
		return fmt.Errorf("exporting ledger: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}
