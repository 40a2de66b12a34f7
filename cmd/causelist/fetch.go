// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/causelist/internal/workflow"
	"github.com/pdiddy/causelist/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Save the cause list of one court",
	Long: `Fetch walks the hierarchy to the given court, generates its cause list
for the date and mode, and saves it as {court}_{mode}_{date}.json in the
results directory. An existing file with that name is replaced.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := types.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	s, err := selectPath(sess.controller, stateFromFlags(cmd, sess), pathFlags(cmd, types.Levels...)...)
	if err != nil {
		return err
	}

	saved, err := sess.controller.FetchCauseList(cmd.Context(), s, mode)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s (%d cases)\n", saved.Location, len(saved.Artifact.Cases))
	return nil
}

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Save civil cause lists for every court in a complex",
	Long: `Download walks the hierarchy to the given court complex and saves a civil
cause list for each of its courts as {court}_{date}.json. The mode is always
civil and is not part of the file name.`,
	Args: cobra.NoArgs,
	RunE: runDownload,
}

func runDownload(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	s, err := selectPath(sess.controller, stateFromFlags(cmd, sess),
		pathFlags(cmd, types.LevelState, types.LevelDistrict, types.LevelComplex)...)
	if err != nil {
		return err
	}

	saved, err := sess.controller.DownloadAll(cmd.Context(), s)
	if err != nil {
		return err
	}
	for _, sv := range saved {
		fmt.Fprintf(cmd.OutOrStdout(), "saved   %s\n", sv.Location)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d cause list files.\n", len(saved))
	return nil
}

// pathFlags reads the selection flag for each level.
func pathFlags(cmd *cobra.Command, levels ...types.Level) []string {
	codes := make([]string, len(levels))
	for i, level := range levels {
		codes[i], _ = cmd.Flags().GetString(string(level))
	}
	return codes
}

func stateFromFlags(cmd *cobra.Command, sess *session) workflow.State {
	s := sess.controller.NewState()
	if date, _ := cmd.Flags().GetString("date"); date != "" {
		s = s.WithDate(date)
	}
	return s
}

func init() {
	for _, c := range []*cobra.Command{fetchCmd, downloadCmd} {
		c.Flags().String("state", "", "state code (e.g. 01)")
		c.Flags().String("district", "", "district code (e.g. 0101)")
		c.Flags().String("complex", "", "court complex code (e.g. C0101)")
		c.Flags().String("date", "", "cause list date, dd-mm-yyyy (default today)")
		rootCmd.AddCommand(c)
	}
	fetchCmd.Flags().String("court", "", "court code (e.g. C0101_CRT_1)")
	fetchCmd.Flags().String("mode", string(types.ModeCivil), "cause list mode: civil or criminal")
}
