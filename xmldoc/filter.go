package xmldoc

import "log/slog"

// Set answers membership queries for entry names.
type Set interface {
	Contains(name string) bool
}

// Stats summarizes one Filter pass.
type Stats struct {
	Total   int // entries visited
	Kept    int // named entries found in the set
	Removed int // named entries absent from the set
	Unnamed int // entries without a name attribute, always kept
}

// FilterOptions configures Filter.
type FilterOptions struct {
	// Logger receives a debug record per removed entry.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Filter removes every entry whose name is not in keep. Entries without a
// name attribute cannot be classified and are left in place. No entry is
// added and each entry is visited once.
func Filter(doc *Document, keep Set, opts FilterOptions) Stats {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var stats Stats
	for _, entry := range doc.Entries() {
		stats.Total++
		name, ok := entry.Name()
		if !ok {
			stats.Unnamed++
			continue
		}
		if keep.Contains(name) {
			stats.Kept++
			continue
		}
		doc.Remove(entry)
		stats.Removed++
		logger.Debug("entry removed", slog.String("name", name))
	}
	return stats
}
