package model

import "time"

// Report summarises one build run. It is diagnostic output; downstream
// consumers only depend on the artifacts.
type Report struct {
	RunID      string    `json:"run_id"`
	Source     string    `json:"source"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Workers    int       `json:"workers"`

	Rows   int    `json:"rows"`
	Counts Counts `json:"counts"`

	Distribution  []CategoryCount `json:"distribution"`
	DecidedBy     map[string]int  `json:"decided_by,omitempty"`     // name, primary, tags
	FilterReasons map[string]int  `json:"filter_reasons,omitempty"` // too_long, digit_run, denylist:<term>, short_name

	TopUnclassified []NameCount `json:"top_unclassified,omitempty"`

	Entries     int        `json:"entries"`
	MetaEntries int        `json:"meta_entries,omitempty"`
	Artifacts   []Artifact `json:"artifacts,omitempty"`
}

// Counts are the three run-scoped outcome counters
type Counts struct {
	Classified   int `json:"classified"`
	Unclassified int `json:"unclassified"`
	Filtered     int `json:"filtered"`
}

// CategoryCount is one row of the per-category distribution
type CategoryCount struct {
	Ordinal  int    `json:"ordinal"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// NameCount pairs a normalized name with how often it was seen
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Artifact describes one written output file
type Artifact struct {
	Kind    string `json:"kind"` // categories, meta, sqlite, report, xlsx
	Path    string `json:"path"`
	Entries int    `json:"entries"`
	Bytes   int64  `json:"bytes"`
}

// Duration returns the wall time of the run
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
