// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/causelist/pkg/types"
)

// --- test helpers ---

type backend struct {
	name string
	open func(t *testing.T, dir string) ArtifactStore
}

var backends = []backend{
	{"file", func(t *testing.T, dir string) ArtifactStore {
		t.Helper()
		s, err := NewFileStore(dir)
		require.NoError(t, err)
		return s
	}},
	{"sqlite", func(t *testing.T, dir string) ArtifactStore {
		t.Helper()
		s, err := NewSQLiteStore(dir)
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	}},
}

// forEachBackend runs fn once per store implementation with a fresh directory.
func forEachBackend(t *testing.T, fn func(t *testing.T, st ArtifactStore, dir string)) {
	t.Helper()
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "results")
			fn(t, b.open(t, dir), dir)
		})
	}
}

func sampleArtifact(court string, cases int) types.CauseListArtifact {
	a := types.CauseListArtifact{
		CourtCode: court,
		CourtName: court + " Simulated Court",
		Date:      "2024-03-15",
		Mode:      types.ModeCivil,
	}
	for i := 1; i <= cases; i++ {
		a.Cases = append(a.Cases, types.CaseRecord{
			SerialNo:   i,
			CaseNo:     fmt.Sprintf("%s%04d2024", court[len(court)-4:], i),
			Petitioner: fmt.Sprintf("Petitioner %d", i),
			Respondent: fmt.Sprintf("Respondent %d", i),
		})
	}
	return a
}

// --- naming ---

func TestNames(t *testing.T) {
	assert.Equal(t, "C0101_CRT_1_civil_15-03-2024.json", ArtifactName("C0101_CRT_1", types.ModeCivil, "15-03-2024"))
	assert.Equal(t, "C0101_CRT_1_criminal_15-03-2024.json", ArtifactName("C0101_CRT_1", types.ModeCriminal, "15-03-2024"))
	assert.Equal(t, "C0101_CRT_2_15-03-2024.json", BulkArtifactName("C0101_CRT_2", "15-03-2024"))
	assert.Equal(t, "found_petitioner 3.json", SearchResultName("petitioner 3"))
	assert.True(t, IsSearchResult("found_x.json"))
	assert.False(t, IsSearchResult("C0101_CRT_2_15-03-2024.json"))
}

// --- contract tests, run against every backend ---

func TestPutGetRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		ctx := context.Background()
		want := sampleArtifact("C0101_CRT_1", 4)

		loc, err := st.Put(ctx, "a.json", want)
		require.NoError(t, err)
		assert.Contains(t, loc, "a.json")

		got, err := st.Get(ctx, "a.json")
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPutOverwrites(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		ctx := context.Background()
		_, err := st.Put(ctx, "a.json", sampleArtifact("C0101_CRT_1", 6))
		require.NoError(t, err)
		_, err = st.Put(ctx, "a.json", sampleArtifact("C0101_CRT_1", 3))
		require.NoError(t, err)

		got, err := st.Get(ctx, "a.json")
		require.NoError(t, err)
		assert.Len(t, got.Cases, 3)

		names, err := st.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.json"}, names)
	})
}

func TestGetMissing(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		_, err := st.Get(context.Background(), "missing.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListSorted(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		ctx := context.Background()
		for _, name := range []string{"c.json", "a.json", "b.json"} {
			_, err := st.Put(ctx, name, sampleArtifact("C0101_CRT_1", 3))
			require.NoError(t, err)
		}
		names, err := st.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.json", "b.json", "c.json"}, names)
	})
}

func TestSearch(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		ctx := context.Background()
		_, err := st.Put(ctx, "big.json", sampleArtifact("C0101_CRT_1", 5))
		require.NoError(t, err)
		_, err = st.Put(ctx, "small.json", sampleArtifact("C2401_CRT_2", 3))
		require.NoError(t, err)

		tests := []struct {
			query string
			want  []string
		}{
			{"petitioner 5", []string{"big.json"}},
			{"PETITIONER 3", []string{"big.json", "small.json"}},
			{"c2401_crt_2", []string{"small.json"}},
			{"serial_no", []string{"big.json", "small.json"}},
			{"nothing like this", nil},
		}
		for _, tt := range tests {
			got, err := st.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "query %q", tt.query)
		}
	})
}

func TestSearchEmptyStore(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		got, err := st.Search(context.Background(), "anything")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSearchIncludesSavedResults(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		ctx := context.Background()
		_, err := st.PutSearchResult(ctx, types.SearchResult{Query: "zeta", Matches: []string{"x.json"}})
		require.NoError(t, err)

		got, err := st.Search(ctx, "zeta")
		require.NoError(t, err)
		assert.Equal(t, []string{"found_zeta.json"}, got)
	})
}

// --- file backend specifics ---

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	st, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, st.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreRequiresDirectory(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestFileStoreWritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	loc, err := st.Put(context.Background(), "a.json", sampleArtifact("C0101_CRT_1", 3))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.json"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n  \"court_code\": \"C0101_CRT_1\",\n"), text)
	assert.Contains(t, text, "\n  \"cases\": [\n    {\n      \"serial_no\": 1,")

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	assert.ElementsMatch(t, []string{"court_code", "court_name", "date", "mode", "cases"}, keys(generic))
}

func TestFileStoreSearchResultFile(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	loc, err := st.PutSearchResult(context.Background(), types.SearchResult{
		Query:   "petitioner 3",
		Matches: []string{"a.json"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "found_petitioner 3.json"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	var got types.SearchResult
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "petitioner 3", got.Query)
	assert.Equal(t, []string{"a.json"}, got.Matches)
}

func TestFileStoreIgnoresNonJSON(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("petitioner 1"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	names, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)

	matches, err := st.Search(context.Background(), "petitioner 1")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFileStoreSearchHonorsCancel(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)
	_, err = st.Put(context.Background(), "a.json", sampleArtifact("C0101_CRT_1", 3))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = st.Search(ctx, "petitioner")
	assert.ErrorIs(t, err, context.Canceled)
}

// --- sqlite backend specifics ---

func TestSQLiteStoreCreatesDBFile(t *testing.T) {
	dir := t.TempDir()
	st, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	defer st.Close()

	_, err = os.Stat(filepath.Join(dir, DBFile))
	assert.NoError(t, err)
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	st, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	_, err = st.Put(context.Background(), "a.json", sampleArtifact("C1401_CRT_2", 4))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = NewSQLiteStore(dir)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.Get(context.Background(), "a.json")
	require.NoError(t, err)
	assert.Equal(t, "C1401_CRT_2", got.CourtCode)
}

// --- Open ---

func TestOpen(t *testing.T) {
	tests := []struct {
		backend types.StoreBackend
		wantErr bool
	}{
		{"", false},
		{types.BackendFile, false},
		{types.BackendSQLite, false},
		{"postgres", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			st, err := Open(types.StoreConfig{Backend: tt.backend, ResultsDir: t.TempDir()})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, st.Close())
		})
	}
}

// --- export ---

func TestExport(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		ctx := context.Background()
		_, err := st.Put(ctx, "a.json", sampleArtifact("C0101_CRT_1", 3))
		require.NoError(t, err)
		_, err = st.Put(ctx, "b.json", sampleArtifact("C0101_CRT_2", 4))
		require.NoError(t, err)
		_, err = st.PutSearchResult(ctx, types.SearchResult{Query: "q", Matches: []string{"a.json"}})
		require.NoError(t, err)

		var yamlOut bytes.Buffer
		n, err := Export(ctx, st, &yamlOut, "yaml")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		var entries []ExportEntry
		require.NoError(t, yaml.Unmarshal(yamlOut.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "a.json", entries[0].File)
		assert.Equal(t, "C0101_CRT_2", entries[1].CourtCode)
		assert.Len(t, entries[1].Cases, 4)

		var jsonOut bytes.Buffer
		n, err = Export(ctx, st, &jsonOut, "json")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		var generic []map[string]any
		require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &generic))
		require.Len(t, generic, 2)
		assert.Equal(t, "b.json", generic[1]["file"])
		assert.Equal(t, "C0101_CRT_2", generic[1]["court_code"])
	})
}

func TestExportUnsupportedFormat(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	_, err = Export(context.Background(), st, &bytes.Buffer{}, "xml")
	assert.Error(t, err)
}

// --- summary ---

func TestSummarize(t *testing.T) {
	forEachBackend(t, func(t *testing.T, st ArtifactStore, _ string) {
		ctx := context.Background()
		criminal := sampleArtifact("C0101_CRT_1", 5)
		criminal.Mode = types.ModeCriminal
		_, err := st.Put(ctx, "C0101_CRT_1_criminal_15-03-2024.json", criminal)
		require.NoError(t, err)
		_, err = st.Put(ctx, "C0101_CRT_1_15-03-2024.json", sampleArtifact("C0101_CRT_1", 3))
		require.NoError(t, err)
		_, err = st.Put(ctx, "C0101_CRT_2_15-03-2024.json", sampleArtifact("C0101_CRT_2", 4))
		require.NoError(t, err)
		_, err = st.PutSearchResult(ctx, types.SearchResult{Query: "petitioner 5", Matches: []string{"C0101_CRT_1_criminal_15-03-2024.json"}})
		require.NoError(t, err)

		sum, err := Summarize(ctx, st)
		require.NoError(t, err)
		want := Summary{
			CauseLists:    3,
			SearchResults: 1,
			Cases:         12,
			ByMode:        map[types.Mode]int{types.ModeCivil: 2, types.ModeCriminal: 1},
		}
		if diff := cmp.Diff(want, sum); diff != "" {
			t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestSummarizeEmpty(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	sum, err := Summarize(context.Background(), st)
	require.NoError(t, err)
	assert.Zero(t, sum.CauseLists)
	assert.Zero(t, sum.SearchResults)
	assert.Empty(t, sum.ByMode)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
