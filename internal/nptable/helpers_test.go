package nptable

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/biometree/internal/ctxlog"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// mapLabels is a fixed name to code mapping for tests.
type mapLabels map[string]int

type unknownLabel string

func (u unknownLabel) Error() string { return "unknown label " + string(u) }

func (m mapLabels) Code(name string) (int, error) {
	code, ok := m[name]
	if !ok {
		return 0, unknownLabel(name)
	}
	return code, nil
}
