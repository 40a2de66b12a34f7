// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/causelist/pkg/types"
)

// FileStore keeps each document as a JSON file in one directory. Writes go
// straight to the destination file; there is no temp-file rename.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("results directory not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the results directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) Put(ctx context.Context, name string, a types.CauseListArtifact) (string, error) {
	return s.write(ctx, name, a)
}

func (s *FileStore) PutSearchResult(ctx context.Context, r types.SearchResult) (string, error) {
	return s.write(ctx, SearchResultName(r.Query), r)
}

func (s *FileStore) write(ctx context.Context, name string, v any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := encode(v)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

func (s *FileStore) Get(ctx context.Context, name string) (types.CauseListArtifact, error) {
	if err := ctx.Err(); err != nil {
		return types.CauseListArtifact{}, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.CauseListArtifact{}, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return types.CauseListArtifact{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return decode(name, data)
}

// List returns the .json files in the results directory. Subdirectories
// and other files are ignored.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading results directory %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), jsonExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, ctx.Err()
}

// Search scans every listed file. The listing and the reads are not one
// consistent snapshot; a file removed in between is skipped.
func (s *FileStore) Search(ctx context.Context, query string) ([]string, error) {
	names, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)

	var matches []string
	for _, name := range names {
		select {
		case <-ctx.Done():
			return matches, ctx.Err()
		default:
		}

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if containsFold(data, q) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// Close is a no-op; FileStore holds no open handles.
func (s *FileStore) Close() error { return nil }
