package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/biometree/internal/biometree"
	"github.com/specialistvlad/biometree/internal/ctxlog"
	"github.com/specialistvlad/biometree/internal/dump"
	"github.com/specialistvlad/biometree/internal/labels"
	"github.com/specialistvlad/biometree/internal/nptable"
)

// Run reads the input file and performs the configured conversion. Nothing
// is written unless the whole conversion succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	input, err := os.ReadFile(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	a.logger.Debug("Input read.", "bytes", len(input))

	var out bytes.Buffer
	switch a.config.Mode {
	case ModeTree:
		err = a.convertTree(ctx, input, &out)
	case ModeTable:
		err = a.convertTable(ctx, input, &out)
	default:
		err = fmt.Errorf("unknown mode %v", a.config.Mode)
	}
	if err != nil {
		return err
	}

	if err := a.emit(out.Bytes()); err != nil {
		return err
	}
	a.logger.Info("Conversion finished.", "mode", a.config.Mode.String(), "bytes", out.Len())
	return nil
}

func (a *App) convertTree(ctx context.Context, input []byte, out io.Writer) error {
	tree, err := dump.BuildTree(ctx, bytes.NewReader(input))
	if err != nil {
		return fmt.Errorf("failed to build tree: %w", err)
	}

	if a.config.Dump {
		return biometree.Dump(out, tree)
	}
	return biometree.EncodeC(out, tree, biometree.EncodeOptions{FixedWidth: a.config.FixedWidth})
}

func (a *App) convertTable(ctx context.Context, input []byte, out io.Writer) error {
	table, err := a.loadLabels(ctx)
	if err != nil {
		return fmt.Errorf("failed to load biome labels: %w", err)
	}

	rows, err := nptable.ParseRows(ctx, bytes.NewReader(input))
	if err != nil {
		return fmt.Errorf("failed to parse table: %w", err)
	}
	packed, err := nptable.Pack(ctx, rows, table)
	if err != nil {
		return fmt.Errorf("failed to pack table: %w", err)
	}

	switch a.config.Format {
	case FormatHeader:
		return nptable.WriteHeader(out, a.config.TableName, packed)
	case FormatBinary:
		return nptable.WriteBinary(out, packed.Entries)
	default:
		return nptable.WriteText(out, packed)
	}
}

func (a *App) loadLabels(ctx context.Context) (*labels.Table, error) {
	if len(a.config.LabelsPaths) == 0 {
		return labels.Default(ctx)
	}
	return labels.Load(ctx, a.loader, a.config.LabelsPaths...)
}

func (a *App) emit(data []byte) error {
	if a.config.OutputPath == "" {
		_, err := a.outW.Write(data)
		return err
	}
	if err := os.WriteFile(a.config.OutputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
