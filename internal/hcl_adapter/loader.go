package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/biometree/internal/config"
	"github.com/specialistvlad/biometree/internal/ctxlog"
	"github.com/specialistvlad/biometree/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL label document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileSchema describes the top level of a label document: nothing but
// `label "name" { ... }` blocks.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "label", LabelNames: []string{"name"}},
	},
}

// LabelBody is the HCL schema of the body of a label block.
type LabelBody struct {
	Code  hcl.Expression `hcl:"code,optional"`
	Reset hcl.Expression `hcl:"reset,optional"`
}

// Load parses every .hcl file found at paths, directories included, and
// merges their label blocks into one model in declaration order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.LabelModel, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL label loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl label documents found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	model := &config.LabelModel{}
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeInto(ctx, model, file, hclFile); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL label loading complete.", "files", len(model.Sources), "labels", len(model.Entries))
	return model, nil
}

// LoadBytes parses a single in-memory label document.
func (l *Loader) LoadBytes(ctx context.Context, name string, src []byte) (*config.LabelModel, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL document %s: %w", name, diags)
	}

	model := &config.LabelModel{}
	if err := l.decodeInto(ctx, model, name, hclFile); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("HCL label document loaded.", "source", name, "labels", len(model.Entries))
	return model, nil
}

func (l *Loader) decodeInto(ctx context.Context, model *config.LabelModel, name string, file *hcl.File) error {
	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	for _, block := range content.Blocks {
		var body LabelBody
		if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
			return fmt.Errorf("failed to decode label %q in %s: %w", block.Labels[0], name, diags)
		}
		entry, err := translateLabel(ctx, block, &body)
		if err != nil {
			return fmt.Errorf("in %s: %w", name, err)
		}
		model.Entries = append(model.Entries, entry)
	}
	model.Sources = append(model.Sources, name)
	return nil
}
