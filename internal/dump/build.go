package dump

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/biometree/internal/biometree"
	"github.com/specialistvlad/biometree/internal/ctxlog"
)

// BuildTree reads every node record from r into a new tree and numbers it.
func BuildTree(ctx context.Context, r io.Reader) (*biometree.Tree, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building climate tree from transcript.")

	tree := biometree.New()
	sc := NewScanner(r)
	records, labelled := 0, 0
	for sc.Next() {
		rec := sc.Record()
		if err := tree.Insert(rec.Path, rec.Ranges, rec.Label); err != nil {
			return nil, &LineError{Line: rec.Line, Text: fmt.Sprint(rec.Path), Err: err}
		}
		records++
		if rec.Label != "" {
			labelled++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	count := tree.AssignIDs()
	logger.Debug("Climate tree built.", "records", records, "labelled", labelled, "nodes", count)
	return tree, nil
}
