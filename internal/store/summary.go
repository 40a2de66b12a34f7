// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"

	"github.com/pdiddy/causelist/pkg/types"
)

// Summary counts what a store holds.
type Summary struct {
	CauseLists    int
	SearchResults int
	Cases         int
	ByMode        map[types.Mode]int
}

// Summarize reads every stored document and tallies cause lists, their
// cases, and saved search results.
func Summarize(ctx context.Context, st ArtifactStore) (Summary, error) {
	names, err := st.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing for summary: %w", err)
	}

	sum := Summary{ByMode: map[types.Mode]int{}}
	for _, name := range names {
		if IsSearchResult(name) {
			sum.SearchResults++
			continue
		}
		a, err := st.Get(ctx, name)
		if err != nil {
			return Summary{}, err
		}
		sum.CauseLists++
		sum.Cases += len(a.Cases)
		sum.ByMode[a.Mode]++
	}
	return sum, nil
}
