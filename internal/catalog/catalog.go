// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog exposes the court hierarchy and fabricates cause lists.
// The Simulated provider serves fixed sample data and never touches the
// network; a remote provider can replace it behind the Provider interface.
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pdiddy/causelist/pkg/types"
)

// InputDateLayout is the dd-mm-yyyy form accepted by Generate.
const InputDateLayout = "02-01-2006"

// isoDateLayout is the form written into artifacts.
const isoDateLayout = "2006-01-02"

// ErrInvalidDateFormat is returned when a date is not dd-mm-yyyy.
var ErrInvalidDateFormat = errors.New("invalid date format")

// Provider lists the court hierarchy and generates cause lists.
// Unknown parent codes yield an empty slice, not an error.
type Provider interface {
	States() []types.HierarchyNode
	Districts(stateCode string) []types.HierarchyNode
	Complexes(districtCode string) []types.HierarchyNode
	Courts(complexCode string) []types.HierarchyNode
	Generate(courtCode, date string, mode types.Mode) (types.CauseListArtifact, error)
}

type options struct {
	baseURL    string
	casePrefix string
	rng        *rand.Rand
}

// Option customises a Simulated provider.
type Option func(*options)

// WithBaseURL records the remote service root. It is reported but not used.
func WithBaseURL(u string) Option { return func(o *options) { o.baseURL = u } }

// WithCasePrefix prepends prefix to every generated case number.
func WithCasePrefix(prefix string) Option { return func(o *options) { o.casePrefix = prefix } }

// WithRand sets the random source that picks case counts.
func WithRand(r *rand.Rand) Option { return func(o *options) { o.rng = r } }

// WithSeed is shorthand for WithRand over a PCG source seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)))
}

// Simulated serves a Hierarchy from memory and generates synthetic cause lists.
type Simulated struct {
	hierarchy  Hierarchy
	baseURL    string
	casePrefix string
	rng        *rand.Rand
}

// NewSimulated returns a provider over h. Without WithRand or WithSeed the
// random source is seeded from the clock.
func NewSimulated(h Hierarchy, opts ...Option) *Simulated {
	o := options{baseURL: types.DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		now := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return &Simulated{
		hierarchy:  h,
		baseURL:    o.baseURL,
		casePrefix: o.casePrefix,
		rng:        o.rng,
	}
}

// NewFromConfig builds a Simulated provider from cfg, loading the hierarchy
// file when one is configured.
func NewFromConfig(cfg types.CatalogConfig) (*Simulated, error) {
	h := DefaultHierarchy()
	if cfg.HierarchyFile != "" {
		loaded, err := LoadHierarchy(cfg.HierarchyFile)
		if err != nil {
			return nil, err
		}
		h = loaded
	}

	opts := []Option{WithCasePrefix(cfg.CasePrefix)}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Seed))
	}
	return NewSimulated(h, opts...), nil
}

// BaseURL returns the configured remote service root.
func (s *Simulated) BaseURL() string { return s.baseURL }

func (s *Simulated) States() []types.HierarchyNode {
	return cloneNodes(s.hierarchy.States)
}

func (s *Simulated) Districts(stateCode string) []types.HierarchyNode {
	return cloneNodes(s.hierarchy.Districts[stateCode])
}

func (s *Simulated) Complexes(districtCode string) []types.HierarchyNode {
	return cloneNodes(s.hierarchy.Complexes[districtCode])
}

func (s *Simulated) Courts(complexCode string) []types.HierarchyNode {
	return cloneNodes(s.hierarchy.Courts[complexCode])
}

// Generate fabricates a cause list for courtCode on date (dd-mm-yyyy).
// The list holds between three and six cases, each count equally likely.
func (s *Simulated) Generate(courtCode, date string, mode types.Mode) (types.CauseListArtifact, error) {
	day, err := time.Parse(InputDateLayout, date)
	if err != nil {
		return types.CauseListArtifact{}, fmt.Errorf("%w: %q (want dd-mm-yyyy)", ErrInvalidDateFormat, date)
	}
	m, err := types.ParseMode(string(mode))
	if err != nil {
		return types.CauseListArtifact{}, err
	}

	// upper is an exclusive bound in [4, 7]; serials run 1..upper-1.
	upper := s.rng.IntN(4) + 4
	cases := make([]types.CaseRecord, 0, upper-1)
	for i := 1; i < upper; i++ {
		cases = append(cases, types.CaseRecord{
			SerialNo:   i,
			CaseNo:     CaseNumber(s.casePrefix, courtCode, i, date),
			Petitioner: fmt.Sprintf("Petitioner %d", i),
			Respondent: fmt.Sprintf("Respondent %d", i),
		})
	}

	return types.CauseListArtifact{
		CourtCode: courtCode,
		CourtName: courtCode + " Simulated Court",
		Date:      day.Format(isoDateLayout),
		Mode:      m,
		Cases:     cases,
	}, nil
}

// CaseNumber builds a synthetic case number: prefix, the last four
// characters of courtCode, the zero-padded serial, and the last four
// characters of the dd-mm-yyyy date (the year).
func CaseNumber(prefix, courtCode string, serial int, date string) string {
	return fmt.Sprintf("%s%s%04d%s", prefix, lastN(courtCode, 4), serial, lastN(date, 4))
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func cloneNodes(nodes []types.HierarchyNode) []types.HierarchyNode {
	out := make([]types.HierarchyNode, len(nodes))
	copy(out, nodes)
	return out
}
