package nptable

import (
	"context"
	"fmt"

	"github.com/specialistvlad/biometree/internal/ctxlog"
)

// Labeler resolves biome names to codes.
type Labeler interface {
	Code(name string) (int, error)
}

// Table is a packed climate tree.
type Table struct {
	Catalog *Catalog
	Entries []Entry
}

// Words returns the packed form of every entry.
func (t *Table) Words() []uint64 {
	out := make([]uint64, len(t.Entries))
	for i, e := range t.Entries {
		out[i] = e.Word()
	}
	return out
}

// Pack deduplicates the noise points of rows and encodes every row against
// the resulting catalog.
func Pack(ctx context.Context, rows []Row, labels Labeler) (*Table, error) {
	logger := ctxlog.FromContext(ctx)

	cat, err := BuildCatalog(rows)
	if err != nil {
		return nil, err
	}
	logger.Debug("Noise point catalog built.", "points", cat.Len())

	entries, err := Dedup(rows, cat, labels)
	if err != nil {
		return nil, err
	}
	logger.Debug("Table rows packed.", "entries", len(entries))
	return &Table{Catalog: cat, Entries: entries}, nil
}

// Dedup replaces the points of every row by their catalog index and encodes
// the payload.
func Dedup(rows []Row, cat *Catalog, labels Labeler) ([]Entry, error) {
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		e := &entries[i]
		for axis, p := range r.Points {
			idx, ok := cat.Index(p)
			if !ok {
				return nil, fmt.Errorf("line %d: point %v missing from catalog", r.Line, p)
			}
			e.Indices[axis] = idx
		}

		if r.HasLabel() {
			code, err := labels.Code(r.Label)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", r.Line, err)
			}
			if code < 0 || code > 0xFF {
				return nil, fmt.Errorf("line %d: biome code %d of %q does not fit one byte", r.Line, code, r.Label)
			}
			e.Payload = labelPayload(code)
			continue
		}
		if r.Value < 0 || r.Value >= int(LabelTag) {
			return nil, &PayloadOverflowError{Line: r.Line, Value: r.Value}
		}
		e.Payload = uint16(r.Value)
	}
	return entries, nil
}
