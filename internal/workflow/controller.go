// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow drives the hierarchical court selection, saves generated
// cause lists, and searches what has been saved.
//
// Selection state lives in an explicit State value. Each load or select
// step returns a new State; choosing a different value at one level
// invalidates everything below it, so a fetch can never reach a court that
// belongs to an earlier selection.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pdiddy/causelist/internal/catalog"
	"github.com/pdiddy/causelist/internal/store"
	"github.com/pdiddy/causelist/pkg/types"
)

// Controller runs workflow operations against a catalog and an artifact store.
type Controller struct {
	provider catalog.Provider
	store    store.ArtifactStore
	logger   *slog.Logger
	now      func() time.Time
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostic logger. The default discards output.
func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.logger = l } }

// WithClock sets the clock used for the default cause-list date.
func WithClock(now func() time.Time) Option { return func(c *Controller) { c.now = now } }

// NewController returns a Controller over p and st.
func NewController(p catalog.Provider, st store.ArtifactStore, opts ...Option) *Controller {
	c := &Controller{
		provider: p,
		store:    st,
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewState returns an empty selection dated today.
func (c *Controller) NewState() State {
	return State{Date: c.now().Format(catalog.InputDateLayout)}
}

// Load fetches the options for level. Every level but the top requires a
// selection one level up. Options and selections at and below level are
// replaced.
func (c *Controller) Load(s State, level types.Level) (State, error) {
	i, ok := levelIndex(level)
	if !ok {
		return s, fmt.Errorf("unknown level %q", level)
	}

	var parent string
	if i > 0 {
		parent = s.selected[i-1]
		if parent == "" {
			return s, &SelectionError{Level: types.Levels[i-1]}
		}
	}

	next := s.truncate(i)
	next.options[i] = c.list(level, parent)
	next.stage = Stage(i + 1)

	c.logger.Debug("loaded options", "level", level, "parent", parent, "count", len(next.options[i]))
	return next, nil
}

// Select chooses code at level. The code must be among the loaded options.
// Everything below level is cleared and must be loaded again.
func (c *Controller) Select(s State, level types.Level, code string) (State, error) {
	i, ok := levelIndex(level)
	if !ok {
		return s, fmt.Errorf("unknown level %q", level)
	}
	if _, found := types.FindNode(s.options[i], code); !found {
		return s, fmt.Errorf("%w: %s %q", ErrUnknownSelection, level, code)
	}

	next := s.truncate(i + 1)
	next.selected[i] = code

	c.logger.Debug("selected", "level", level, "code", code)
	return next, nil
}

func (c *Controller) list(level types.Level, parent string) []types.HierarchyNode {
	switch level {
	case types.LevelState:
		return c.provider.States()
	case types.LevelDistrict:
		return c.provider.Districts(parent)
	case types.LevelComplex:
		return c.provider.Complexes(parent)
	default:
		return c.provider.Courts(parent)
	}
}

// LoadStates loads the top level and clears every selection.
func (c *Controller) LoadStates(s State) (State, error) { return c.Load(s, types.LevelState) }

// LoadDistricts loads the districts of the selected state.
func (c *Controller) LoadDistricts(s State) (State, error) { return c.Load(s, types.LevelDistrict) }

// LoadComplexes loads the court complexes of the selected district.
func (c *Controller) LoadComplexes(s State) (State, error) { return c.Load(s, types.LevelComplex) }

// LoadCourts loads the courts of the selected complex.
func (c *Controller) LoadCourts(s State) (State, error) { return c.Load(s, types.LevelCourt) }

func (c *Controller) SelectState(s State, code string) (State, error) {
	return c.Select(s, types.LevelState, code)
}

func (c *Controller) SelectDistrict(s State, code string) (State, error) {
	return c.Select(s, types.LevelDistrict, code)
}

func (c *Controller) SelectComplex(s State, code string) (State, error) {
	return c.Select(s, types.LevelComplex, code)
}

func (c *Controller) SelectCourt(s State, code string) (State, error) {
	return c.Select(s, types.LevelCourt, code)
}

// Saved describes one artifact written to the store.
type Saved struct {
	Name     string
	Location string
	Artifact types.CauseListArtifact
}

// FetchCauseList generates the cause list of the selected court for the
// state's date and mode and saves it as {court}_{mode}_{date}.json. The mode
// is normalised first, so " CIVIL" saves as civil. An existing file of that
// name is replaced.
func (c *Controller) FetchCauseList(ctx context.Context, s State, mode types.Mode) (Saved, error) {
	court := s.Selected(types.LevelCourt)
	if court == "" {
		return Saved{}, &SelectionError{Level: types.LevelCourt}
	}
	mode, err := types.ParseMode(string(mode))
	if err != nil {
		return Saved{}, err
	}

	a, err := c.provider.Generate(court, s.Date, mode)
	if err != nil {
		return Saved{}, err
	}

	name := store.ArtifactName(court, mode, s.Date)
	loc, err := c.store.Put(ctx, name, a)
	if err != nil {
		return Saved{}, err
	}

	c.logger.Info("saved cause list", "court", court, "mode", mode, "date", s.Date, "cases", len(a.Cases), "location", loc)
	return Saved{Name: name, Location: loc, Artifact: a}, nil
}

// DownloadAll saves a cause list for every court in the selected complex.
// Bulk downloads are always civil and named {court}_{date}.json, unlike
// FetchCauseList. Every artifact is generated before any is written, so a
// bad date leaves the store untouched.
func (c *Controller) DownloadAll(ctx context.Context, s State) ([]Saved, error) {
	complexCode := s.Selected(types.LevelComplex)
	if complexCode == "" {
		return nil, &SelectionError{Level: types.LevelComplex}
	}

	courts := c.provider.Courts(complexCode)
	saved := make([]Saved, 0, len(courts))
	for _, court := range courts {
		a, err := c.provider.Generate(court.Code, s.Date, types.ModeCivil)
		if err != nil {
			return nil, err
		}
		saved = append(saved, Saved{Name: store.BulkArtifactName(court.Code, s.Date), Artifact: a})
	}

	for i := range saved {
		loc, err := c.store.Put(ctx, saved[i].Name, saved[i].Artifact)
		if err != nil {
			return saved[:i], err
		}
		saved[i].Location = loc
	}

	c.logger.Info("downloaded complex", "complex", complexCode, "date", s.Date, "files", len(saved))
	return saved, nil
}

// CaseCheck is the outcome of CheckCase. Location is empty when nothing
// matched and no result file was written.
type CaseCheck struct {
	Result   types.SearchResult
	Location string
}

// CheckCase searches the raw text of every saved file for query, ignoring
// case. On at least one match it saves the result as found_{query}.json;
// the query is lower-cased and trimmed but otherwise used verbatim in the
// file name.
func (c *Controller) CheckCase(ctx context.Context, query string) (CaseCheck, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return CaseCheck{}, ErrEmptyQuery
	}

	matches, err := c.store.Search(ctx, q)
	if err != nil {
		return CaseCheck{}, fmt.Errorf("searching saved files: %w", err)
	}

	check := CaseCheck{Result: types.SearchResult{Query: q, Matches: matches}}
	if len(matches) == 0 {
		c.logger.Debug("no matches", "query", q)
		return check, nil
	}

	loc, err := c.store.PutSearchResult(ctx, check.Result)
	if err != nil {
		return CaseCheck{}, err
	}
	check.Location = loc

	c.logger.Info("case check matched", "query", q, "matches", len(matches), "location", loc)
	return check, nil
}
