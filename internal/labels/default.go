package labels

import (
	"context"
	_ "embed"
	"sync"

	"github.com/specialistvlad/biometree/internal/config"
	"github.com/specialistvlad/biometree/internal/hcl_adapter"
)

//go:embed biomes.hcl
var builtinDocument []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the table built from the embedded biome document. It is
// evaluated on first use and shared afterwards.
func Default(ctx context.Context) (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(ctx, hcl_adapter.NewLoader())
	})
	return defaultTable, defaultErr
}

// Load builds a table from label documents read by loader. Without paths
// the embedded biome document is used.
func Load(ctx context.Context, loader config.Loader, paths ...string) (*Table, error) {
	var (
		model *config.LabelModel
		err   error
	)
	if len(paths) == 0 {
		model, err = loader.LoadBytes(ctx, "biomes.hcl", builtinDocument)
	} else {
		model, err = loader.Load(ctx, paths...)
	}
	if err != nil {
		return nil, err
	}
	return Build(ctx, model)
}
