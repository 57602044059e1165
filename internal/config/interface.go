package config

import "context"

// Loader is the interface for a format-specific label document loader.
type Loader interface {
	// Load reads and translates every label document found at paths. Entries
	// keep the order in which they were declared, file by file.
	Load(ctx context.Context, paths ...string) (*LabelModel, error)

	// LoadBytes translates a single in-memory document. name is used in
	// diagnostics only.
	LoadBytes(ctx context.Context, name string, src []byte) (*LabelModel, error)
}
