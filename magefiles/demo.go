//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Demo builds the CLI and runs a fetch, a complex download, and a case check
// against bin/results.
func Demo() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)

	steps := [][]string{
		{"fetch", "--state", "01", "--district", "0101", "--complex", "C0101", "--court", "C0101_CRT_1", "--mode", "criminal"},
		{"download", "--state", "24", "--district", "2401", "--complex", "C2401"},
		{"check", "petitioner", "3"},
	}
	for _, args := range steps {
		fmt.Println("[demo] causelist", args[0])
		if err := sh.RunV(bin, args...); err != nil {
			return err
		}
	}
	return nil
}
