// This file contains the logic for translating HCL schema structs into the
// format-agnostic label model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/biometree/internal/config"
	"github.com/specialistvlad/biometree/internal/ctxlog"
)

// translateLabel converts a decoded label block into a config.LabelEntry.
func translateLabel(ctx context.Context, block *hcl.Block, b *LabelBody) (*config.LabelEntry, error) {
	name := block.Labels[0]
	logger := ctxlog.FromContext(ctx).With("label", name)
	ctx = ctxlog.WithLogger(ctx, logger)

	if name == "" {
		return nil, fmt.Errorf("label block at %s has an empty name", block.DefRange)
	}

	entry := &config.LabelEntry{
		Name:      name,
		DeclRange: block.DefRange,
	}
	if isExprDefined(ctx, b.Code, "code") {
		entry.Code = b.Code
	}
	if isExprDefined(ctx, b.Reset, "reset") {
		entry.Reset = b.Reset
	}
	if entry.Code != nil && entry.Reset != nil {
		return nil, fmt.Errorf("label %q at %s sets both code and reset", name, block.DefRange)
	}
	return entry, nil
}
