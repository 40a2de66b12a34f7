// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned by ParseMode for anything other than civil or criminal.
var ErrInvalidMode = errors.New("invalid cause list mode")

// Mode selects which docket a cause list covers.
type Mode string

const (
	ModeCivil    Mode = "civil"
	ModeCriminal Mode = "criminal"
)

// ParseMode converts a user-supplied string into a Mode. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCivil:
		return ModeCivil, nil
	case ModeCriminal:
		return ModeCriminal, nil
	}
	return "", fmt.Errorf("%w: %q (use civil or criminal)", ErrInvalidMode, s)
}

// CaseRecord is one listed case within a cause list.
type CaseRecord struct {
	// SerialNo is the 1-based position in the list.
	SerialNo int `json:"serial_no" yaml:"serial_no"`

	// CaseNo is the synthetic case number.
	CaseNo string `json:"case_no" yaml:"case_no"`

	Petitioner string `json:"petitioner" yaml:"petitioner"`
	Respondent string `json:"respondent" yaml:"respondent"`
}

// CauseListArtifact is a court's cause list for one date and mode. It is
// serialized as-is into a saved artifact file.
type CauseListArtifact struct {
	CourtCode string `json:"court_code" yaml:"court_code"`
	CourtName string `json:"court_name" yaml:"court_name"`

	// Date is ISO 8601 (yyyy-mm-dd).
	Date string `json:"date" yaml:"date"`

	Mode  Mode         `json:"mode" yaml:"mode"`
	Cases []CaseRecord `json:"cases" yaml:"cases"`
}
