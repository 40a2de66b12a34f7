// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/causelist/pkg/types"
)

// ExportEntry is one saved artifact together with the name it is stored under.
type ExportEntry struct {
	File                    string `json:"file" yaml:"file"`
	types.CauseListArtifact `yaml:",inline"`
}

// Export writes every stored artifact to w as a single YAML or JSON
// document. Saved search results are skipped. It returns the number of
// artifacts written.
func Export(ctx context.Context, st ArtifactStore, w io.Writer, format string) (int, error) {
	entries, err := exportEntries(ctx, st)
	if err != nil {
		return 0, err
	}

	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return 0, fmt.Errorf("marshaling YAML: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return 0, err
		}
	case "json":
		data, err := encode(entries)
		if err != nil {
			return 0, err
		}
		if _, err := w.Write(data); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return len(entries), nil
}

func exportEntries(ctx context.Context, st ArtifactStore) ([]ExportEntry, error) {
	names, err := st.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing for export: %w", err)
	}

	entries := make([]ExportEntry, 0, len(names))
	for _, name := range names {
		if IsSearchResult(name) {
			continue
		}
		a, err := st.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ExportEntry{File: name, CauseListArtifact: a})
	}
	return entries, nil
}
