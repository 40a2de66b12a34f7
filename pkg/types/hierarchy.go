// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the causelist tool:
// the court hierarchy, generated cause-list artifacts, search results,
// and configuration.
package types

// Level names one tier of the court hierarchy.
type Level string

const (
	LevelState    Level = "state"
	LevelDistrict Level = "district"
	LevelComplex  Level = "complex"
	LevelCourt    Level = "court"
)

// Levels lists the hierarchy tiers from top to bottom.
var Levels = []Level{LevelState, LevelDistrict, LevelComplex, LevelCourt}

// HierarchyNode is one selectable entry at any level of the hierarchy.
type HierarchyNode struct {
	// Code is unique among the node's siblings (e.g. "01", "C0101_CRT_1").
	Code string `json:"code" yaml:"code"`

	// Name is the display name (e.g. "Andhra Pradesh").
	Name string `json:"name" yaml:"name"`
}

// Label renders the node the way selection lists show it: "Name (Code)".
func (n HierarchyNode) Label() string {
	return n.Name + " (" + n.Code + ")"
}

// FindNode returns the node with the given code, if present.
func FindNode(nodes []HierarchyNode, code string) (HierarchyNode, bool) {
	for _, n := range nodes {
		if n.Code == code {
			return n, true
		}
	}
	return HierarchyNode{}, false
}
