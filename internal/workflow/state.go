// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"fmt"
	"strings"

	"github.com/pdiddy/causelist/pkg/types"
)

// Stage is how far down the hierarchy options have been loaded.
type Stage int

const (
	NoSelection Stage = iota
	StateLoaded
	DistrictLoaded
	ComplexLoaded
	CourtLoaded
)

func (s Stage) String() string {
	switch s {
	case NoSelection:
		return "no-selection"
	case StateLoaded:
		return "state-loaded"
	case DistrictLoaded:
		return "district-loaded"
	case ComplexLoaded:
		return "complex-loaded"
	case CourtLoaded:
		return "court-loaded"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

const levelCount = 4

// State is the selection a user has built up. It is a value: every
// Controller transition returns a new State and leaves its input untouched.
// Loading or selecting at one level clears every level below it.
type State struct {
	// Date is the cause-list date in dd-mm-yyyy form.
	Date string

	options  [levelCount][]types.HierarchyNode
	selected [levelCount]string
	stage    Stage
}

// Stage reports the deepest level whose options are loaded.
func (s State) Stage() Stage { return s.stage }

// Options returns the loaded options for level, or nil if not loaded.
func (s State) Options(level types.Level) []types.HierarchyNode {
	i, ok := levelIndex(level)
	if !ok {
		return nil
	}
	return s.options[i]
}

// Selected returns the selected code at level, or "".
func (s State) Selected(level types.Level) string {
	i, ok := levelIndex(level)
	if !ok {
		return ""
	}
	return s.selected[i]
}

// WithDate returns a copy of s with the cause-list date replaced.
// Surrounding whitespace is dropped; the format is checked when a cause
// list is generated.
func (s State) WithDate(date string) State {
	s.Date = strings.TrimSpace(date)
	return s
}

// String summarises the selection as "state=01 district=0101 ...".
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stage=%s date=%s", s.stage, s.Date)
	for i, level := range types.Levels {
		if s.selected[i] != "" {
			fmt.Fprintf(&b, " %s=%s", level, s.selected[i])
		}
	}
	return b.String()
}

// truncate returns a copy of s with options and selections cleared from
// level index from downward.
func (s State) truncate(from int) State {
	for i := from; i < levelCount; i++ {
		s.options[i] = nil
		s.selected[i] = ""
	}
	if s.stage > Stage(from) {
		s.stage = Stage(from)
	}
	return s
}

func levelIndex(level types.Level) (int, bool) {
	for i, l := range types.Levels {
		if l == level {
			return i, true
		}
	}
	return 0, false
}
