// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the causelist CLI.
// See DESIGN.md for how commands map onto the workflow.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/causelist/internal/catalog"
	"github.com/pdiddy/causelist/internal/store"
	"github.com/pdiddy/causelist/internal/workflow"
	"github.com/pdiddy/causelist/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the causelist CLI.
var rootCmd = &cobra.Command{
	Use:   "causelist",
	Short: "Browse the court hierarchy and export simulated cause lists",
	Long: `causelist walks the court hierarchy (state, district, court complex,
court), generates simulated cause lists as JSON files, and searches the saved
files for a case number or party name.

Nothing is fetched over the network: the catalog is fixed sample data and
case lists are generated locally. Use the shell subcommand for an
interactive session, or the scripted subcommands for one-shot operations.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./causelist.yaml or ~/.config/causelist/config.yaml)")
	pf.String("results-dir", "", "directory for saved cause lists (default: results/ next to the executable)")
	pf.String("store", string(types.BackendFile), "artifact store backend: file or sqlite")
	pf.String("hierarchy-file", "", "YAML file replacing the built-in court hierarchy")
	pf.String("case-prefix", "", "prefix for generated case numbers (e.g. CNR)")
	pf.Int64("seed", 0, "random seed for case counts (0 = time based)")
	pf.BoolP("verbose", "v", false, "log diagnostics to stderr")

	_ = viper.BindPFlag("results_dir", pf.Lookup("results-dir"))
	_ = viper.BindPFlag("store.backend", pf.Lookup("store"))
	_ = viper.BindPFlag("catalog.hierarchy_file", pf.Lookup("hierarchy-file"))
	_ = viper.BindPFlag("catalog.case_prefix", pf.Lookup("case-prefix"))
	_ = viper.BindPFlag("catalog.seed", pf.Lookup("seed"))
	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	viper.SetDefault("catalog.base_url", types.DefaultBaseURL)

	rootCmd.Version = version
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("causelist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "causelist"))
		}
	}

	viper.SetEnvPrefix("CAUSELIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the session configuration from flags, environment,
// and config file, in viper's usual precedence.
func loadConfig() types.Config {
	resultsDir := viper.GetString("results_dir")
	if resultsDir == "" {
		resultsDir = defaultResultsDir()
	}
	return types.Config{
		Catalog: types.CatalogConfig{
			BaseURL:       viper.GetString("catalog.base_url"),
			HierarchyFile: viper.GetString("catalog.hierarchy_file"),
			CasePrefix:    viper.GetString("catalog.case_prefix"),
			Seed:          viper.GetInt64("catalog.seed"),
		},
		Store: types.StoreConfig{
			Backend:    types.StoreBackend(viper.GetString("store.backend")),
			ResultsDir: resultsDir,
		},
	}
}

// defaultResultsDir places results/ beside the running executable, falling
// back to the working directory.
func defaultResultsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "results"
	}
	return filepath.Join(filepath.Dir(exe), "results")
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// session bundles what every workflow command needs.
type session struct {
	provider   *catalog.Simulated
	store      store.ArtifactStore
	controller *workflow.Controller
}

func (s *session) Close() error { return s.store.Close() }

func openSession() (*session, error) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr)

	provider, err := catalog.NewFromConfig(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.Store)
	if err != nil {
		return nil, err
	}

	logger.Debug("session opened",
		"backend", cfg.Store.Backend,
		"results_dir", cfg.Store.ResultsDir,
		"base_url", provider.BaseURL(),
	)

	return &session{
		provider:   provider,
		store:      st,
		controller: workflow.NewController(provider, st, workflow.WithLogger(logger)),
	}, nil
}

// selectPath loads and selects one level per code, top down. An empty code
// stops the walk with a SelectionError for that level.
func selectPath(c *workflow.Controller, s workflow.State, codes ...string) (workflow.State, error) {
	for i, code := range codes {
		level := types.Levels[i]
		var err error
		if s, err = c.Load(s, level); err != nil {
			return s, err
		}
		if code == "" {
			return s, &workflow.SelectionError{Level: level}
		}
		if s, err = c.Select(s, level, code); err != nil {
			return s, err
		}
	}
	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
