// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultBaseURL is the public eCourts services endpoint. The simulated
// catalog records it but never dials it.
const DefaultBaseURL = "https://services.ecourts.gov.in/ecourtindia_v6/"

// CatalogConfig holds settings for the catalog provider.
type CatalogConfig struct {
	// BaseURL is the remote service root. Unused in simulated mode.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// HierarchyFile optionally replaces the built-in sample hierarchy with
	// one loaded from a YAML file.
	HierarchyFile string `json:"hierarchy_file,omitempty" yaml:"hierarchy_file,omitempty"`

	// CasePrefix is prepended to every generated case number (e.g. "CNR").
	CasePrefix string `json:"case_prefix,omitempty" yaml:"case_prefix,omitempty"`

	// Seed seeds the random source used for case counts. Zero selects a
	// time-based seed.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// StoreBackend identifies the artifact store implementation.
type StoreBackend string

const (
	BackendFile   StoreBackend = "file"
	BackendSQLite StoreBackend = "sqlite"
)

// StoreConfig holds settings for the artifact store.
type StoreConfig struct {
	// Backend selects flat JSON files (default) or an embedded SQLite database.
	Backend StoreBackend `json:"backend" yaml:"backend"`

	// ResultsDir is the directory that holds saved artifacts.
	ResultsDir string `json:"results_dir" yaml:"results_dir"`
}

// Config groups the settings for a causelist session.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Store   StoreConfig   `json:"store" yaml:"store"`
}
