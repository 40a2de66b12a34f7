// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchResult lists the saved files whose text contains Query.
// It is persisted only when Matches is non-empty.
type SearchResult struct {
	// Query is the lower-cased, trimmed search text.
	Query string `json:"query" yaml:"query"`

	// Matches holds file names in directory order.
	Matches []string `json:"matches" yaml:"matches"`
}
