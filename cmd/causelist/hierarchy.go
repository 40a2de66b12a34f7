// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/causelist/pkg/types"
)

// --- hierarchy listing commands ---

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the states in the court hierarchy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, types.LevelState, "")
	},
}

var districtsCmd = &cobra.Command{
	Use:   "districts <state-code>",
	Short: "List the districts of a state",
	Long: `Districts lists the districts under a state code. An unknown code
lists nothing; it is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, types.LevelDistrict, args[0])
	},
}

var complexesCmd = &cobra.Command{
	Use:   "complexes <district-code>",
	Short: "List the court complexes of a district",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, types.LevelComplex, args[0])
	},
}

var courtsCmd = &cobra.Command{
	Use:   "courts <complex-code>",
	Short: "List the courts of a court complex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, types.LevelCourt, args[0])
	},
}

func runList(cmd *cobra.Command, level types.Level, parent string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var nodes []types.HierarchyNode
	switch level {
	case types.LevelState:
		nodes = sess.provider.States()
	case types.LevelDistrict:
		nodes = sess.provider.Districts(parent)
	case types.LevelComplex:
		nodes = sess.provider.Complexes(parent)
	case types.LevelCourt:
		nodes = sess.provider.Courts(parent)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatNodes(cmd.OutOrStdout(), level, nodes, jsonOutput)
}

func formatNodes(w io.Writer, level types.Level, nodes []types.HierarchyNode, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	}

	for _, n := range nodes {
		fmt.Fprintf(w, "%-12s  %s\n", n.Code, n.Name)
	}
	fmt.Fprintf(w, "Loaded %s: %d\n", plural(level), len(nodes))
	return nil
}

func plural(level types.Level) string {
	if level == types.LevelComplex {
		return "complexes"
	}
	return string(level) + "s"
}

func init() {
	for _, c := range []*cobra.Command{statesCmd, districtsCmd, complexesCmd, courtsCmd} {
		c.Flags().Bool("json", false, "output as JSON")
		rootCmd.AddCommand(c)
	}
}
