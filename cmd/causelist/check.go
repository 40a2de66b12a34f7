// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/causelist/internal/store"
)

var checkCmd = &cobra.Command{
	Use:   "check <query>",
	Short: "Search saved cause lists for a case number or party",
	Long: `Check searches the raw text of every saved JSON file for the query,
ignoring case. When anything matches, the list of matching files is saved as
found_{query}.json in the results directory.

The query becomes part of a file name as typed, so avoid path separators.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	check, err := sess.controller.CheckCase(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(check.Result.Matches) == 0 {
		fmt.Fprintf(w, "No matches for %s\n", check.Result.Query)
		return nil
	}
	for _, m := range check.Result.Matches {
		fmt.Fprintf(w, "match   %s\n", m)
	}
	fmt.Fprintf(w, "Found %d matches. Saved in %s\n", len(check.Result.Matches), check.Location)
	return nil
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all saved cause lists as one YAML or JSON document",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if out == "" {
		_, err = store.Export(cmd.Context(), sess.store, cmd.OutOrStdout(), format)
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	n, err := exportTo(cmd.Context(), sess.store, f, format)
	if err != nil {
		return fmt.Errorf("exporting to %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cause lists to %s\n", n, out)
	return nil
}

// exportTo writes the export to wc and closes it. A failed close is
// reported even when the export itself succeeded.
func exportTo(ctx context.Context, st store.ArtifactStore, wc io.WriteCloser, format string) (int, error) {
	n, err := store.Export(ctx, st, wc, format)
	if cerr := wc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing: %w", cerr)
	}
	return n, err
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "write to this file instead of stdout")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
}
