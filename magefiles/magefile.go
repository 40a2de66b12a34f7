//go:build mage

// Package main contains Mage build targets for causelist developer tooling.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/causelist/internal/store"
	"github.com/pdiddy/causelist/pkg/types"
)

const (
	binDir     = "bin"
	binName    = "causelist"
	cmdPkg     = "./cmd/causelist"
	resultsDir = "results"
)

// Init creates the results directory beside the built binary.
func Init() error {
	dir := filepath.Join(binDir, resultsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	fmt.Println("  ", dir)
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	mg.Deps(Init)
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Stats summarises the cause lists saved under bin/results, for example
// after running Demo.
func Stats() error {
	mg.Deps(Init)
	dir := filepath.Join(binDir, resultsDir)
	st, err := store.NewFileStore(dir)
	if err != nil {
		return err
	}
	defer st.Close()

	sum, err := store.Summarize(context.Background(), st)
	if err != nil {
		return err
	}

	fmt.Printf("Results directory:        %s\n", dir)
	fmt.Printf("Cause lists:              %d\n", sum.CauseLists)
	fmt.Printf("  civil:                  %d\n", sum.ByMode[types.ModeCivil])
	fmt.Printf("  criminal:               %d\n", sum.ByMode[types.ModeCriminal])
	fmt.Printf("Cases:                    %d\n", sum.Cases)
	fmt.Printf("Saved case checks:        %d\n", sum.SearchResults)
	return nil
}
