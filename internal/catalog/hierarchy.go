// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/causelist/pkg/types"
)

// Hierarchy is the four-level court tree. Each child collection is keyed
// by the parent's code.
type Hierarchy struct {
	States    []types.HierarchyNode            `json:"states" yaml:"states"`
	Districts map[string][]types.HierarchyNode `json:"districts" yaml:"districts"`
	Complexes map[string][]types.HierarchyNode `json:"complexes" yaml:"complexes"`
	Courts    map[string][]types.HierarchyNode `json:"courts" yaml:"courts"`
}

// DefaultHierarchy returns the built-in sample data: three states, each with
// one district and one complex, and two courts per complex.
func DefaultHierarchy() Hierarchy {
	return Hierarchy{
		States: []types.HierarchyNode{
			{Code: "01", Name: "Andhra Pradesh"},
			{Code: "24", Name: "Telangana"},
			{Code: "14", Name: "Maharashtra"},
		},
		Districts: map[string][]types.HierarchyNode{
			"01": {{Code: "0101", Name: "Visakhapatnam"}},
			"24": {{Code: "2401", Name: "Hyderabad"}},
			"14": {{Code: "1401", Name: "Mumbai"}},
		},
		Complexes: map[string][]types.HierarchyNode{
			"0101": {{Code: "C0101", Name: "Visakhapatnam Complex"}},
			"2401": {{Code: "C2401", Name: "Hyderabad Complex"}},
			"1401": {{Code: "C1401", Name: "Mumbai Complex"}},
		},
		Courts: map[string][]types.HierarchyNode{
			"C0101": {
				{Code: "C0101_CRT_1", Name: "Vizag Court 1"},
				{Code: "C0101_CRT_2", Name: "Vizag Court 2"},
			},
			"C2401": {
				{Code: "C2401_CRT_1", Name: "Hyderabad Court 1"},
				{Code: "C2401_CRT_2", Name: "Hyderabad Court 2"},
			},
			"C1401": {
				{Code: "C1401_CRT_1", Name: "Mumbai Court 1"},
				{Code: "C1401_CRT_2", Name: "Mumbai Court 2"},
			},
		},
	}
}

// LoadHierarchy reads a hierarchy from a YAML file and validates it.
func LoadHierarchy(path string) (Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Hierarchy{}, fmt.Errorf("reading hierarchy: %w", err)
	}
	var h Hierarchy
	if err := yaml.Unmarshal(data, &h); err != nil {
		return Hierarchy{}, fmt.Errorf("parsing hierarchy %s: %w", path, err)
	}
	if err := h.Validate(); err != nil {
		return Hierarchy{}, fmt.Errorf("invalid hierarchy %s: %w", path, err)
	}
	return h, nil
}

// Validate checks that every child collection hangs off an existing parent
// and that codes are unique within each level.
func (h Hierarchy) Validate() error {
	if len(h.States) == 0 {
		return fmt.Errorf("no states defined")
	}
	states, err := uniqueCodes(types.LevelState, map[string][]types.HierarchyNode{"": h.States})
	if err != nil {
		return err
	}
	districts, err := checkLevel(types.LevelDistrict, h.Districts, states)
	if err != nil {
		return err
	}
	complexes, err := checkLevel(types.LevelComplex, h.Complexes, districts)
	if err != nil {
		return err
	}
	_, err = checkLevel(types.LevelCourt, h.Courts, complexes)
	return err
}

func checkLevel(level types.Level, children map[string][]types.HierarchyNode, parents map[string]bool) (map[string]bool, error) {
	for parent := range children {
		if !parents[parent] {
			return nil, fmt.Errorf("%s entries reference unknown parent %q", level, parent)
		}
	}
	return uniqueCodes(level, children)
}

func uniqueCodes(level types.Level, groups map[string][]types.HierarchyNode) (map[string]bool, error) {
	seen := make(map[string]bool)
	for _, nodes := range groups {
		for _, n := range nodes {
			if n.Code == "" {
				return nil, fmt.Errorf("%s %q has an empty code", level, n.Name)
			}
			if seen[n.Code] {
				return nil, fmt.Errorf("duplicate %s code %q", level, n.Code)
			}
			seen[n.Code] = true
		}
	}
	return seen, nil
}
