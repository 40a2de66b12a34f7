// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"errors"
	"fmt"

	"github.com/pdiddy/causelist/pkg/types"
)

var (
	// ErrSelectionRequired is returned when an operation needs a selection
	// at a level that is still empty.
	ErrSelectionRequired = errors.New("selection required")

	// ErrUnknownSelection is returned when a code is selected that is not
	// among the options loaded for that level.
	ErrUnknownSelection = errors.New("unknown selection")

	// ErrEmptyQuery is returned by CheckCase for a blank query.
	ErrEmptyQuery = errors.New("empty query")
)

// SelectionError names the level whose selection is missing.
// It matches ErrSelectionRequired under errors.Is.
type SelectionError struct {
	Level types.Level
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("please select a %s", e.Level)
}

func (e *SelectionError) Unwrap() error { return ErrSelectionRequired }
