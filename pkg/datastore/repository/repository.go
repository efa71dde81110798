package repository

import "jagung/pkg/tabular"

// TableStore persists the named tables as delimited flat files.
type TableStore interface {
	// Load returns the current contents of a registered table,
	// creating an empty schema-shaped file if none exists. A corrupt
	// file yields an empty, columnless table, not an error.
	Load(name string) (tabular.Table, error)

	// Save overwrites the table's backing file with t and invalidates
	// any cached copy, so the next Load observes t.
	Save(name string, t tabular.Table) error

	// Generation returns the save counter for name; it bumps on every
	// Save and lets views detect staleness.
	Generation(name string) uint64
}
