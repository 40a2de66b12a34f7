// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists cause-list artifacts and search results.
// FileStore keeps one pretty-printed JSON file per document in a results
// directory; SQLiteStore keeps the same documents in an embedded database.
// Both search the raw serialized text, so callers see identical semantics.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/causelist/pkg/types"
)

const (
	jsonExt = ".json"

	// SearchResultPrefix starts the name of every saved search result.
	SearchResultPrefix = "found_"
)

// ErrNotFound is returned by Get when no document has the requested name.
var ErrNotFound = errors.New("document not found")

// ArtifactStore saves and searches serialized documents by name.
type ArtifactStore interface {
	// Put writes an artifact under name, replacing any existing document,
	// and returns where it was written.
	Put(ctx context.Context, name string, a types.CauseListArtifact) (string, error)

	// Get reads back the artifact stored under name.
	Get(ctx context.Context, name string) (types.CauseListArtifact, error)

	// List returns the names of all stored documents in sorted order.
	List(ctx context.Context) ([]string, error)

	// Search returns, in name order, every document whose lower-cased text
	// contains the lower-cased query.
	Search(ctx context.Context, query string) ([]string, error)

	// PutSearchResult writes r under SearchResultName(r.Query).
	PutSearchResult(ctx context.Context, r types.SearchResult) (string, error)

	Close() error
}

// Open returns the store selected by cfg.Backend.
func Open(cfg types.StoreConfig) (ArtifactStore, error) {
	switch cfg.Backend {
	case types.BackendFile, "":
		s, err := NewFileStore(cfg.ResultsDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case types.BackendSQLite:
		s, err := NewSQLiteStore(cfg.ResultsDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q: use file or sqlite", cfg.Backend)
	}
}

// ArtifactName names a single fetched cause list: {court}_{mode}_{date}.json.
func ArtifactName(courtCode string, mode types.Mode, date string) string {
	return fmt.Sprintf("%s_%s_%s%s", courtCode, mode, date, jsonExt)
}

// BulkArtifactName names a cause list saved by a complex-wide download:
// {court}_{date}.json. The mode is not part of the name.
func BulkArtifactName(courtCode, date string) string {
	return fmt.Sprintf("%s_%s%s", courtCode, date, jsonExt)
}

// SearchResultName names a saved search result. The query is used verbatim,
// so separators or reserved characters in it reach the filesystem as-is.
func SearchResultName(query string) string {
	return SearchResultPrefix + query + jsonExt
}

// IsSearchResult reports whether name refers to a saved search result.
func IsSearchResult(name string) bool {
	return strings.HasPrefix(name, SearchResultPrefix)
}

// encode renders v as 2-space indented JSON without HTML escaping, so the
// stored text is what substring search sees.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(name string, data []byte) (types.CauseListArtifact, error) {
	var a types.CauseListArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return types.CauseListArtifact{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	return a, nil
}

func containsFold(text []byte, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(string(text)), lowerQuery)
}
