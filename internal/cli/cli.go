package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/biometree/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// pathList collects a repeatable, comma-separated path flag.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*p = append(*p, part)
		}
	}
	return nil
}

var usageText = map[app.Mode]string{
	app.ModeTree: `
%[1]s - Converts a debugger dump of the climate parameter tree into a C node literal.

Usage:
  %[1]s [options] FILE

Arguments:
  FILE
    Debugger transcript of the biome parameter list.

Options:
`,
	app.ModeTable: `
%[1]s - Packs a C node literal into the noise point catalog and node words.

Usage:
  %[1]s [options] FILE

Arguments:
  FILE
    Output of the tree converter.

Options:
`,
}

// Parse processes command-line arguments for the converter named program.
// It returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(program string, mode app.Mode, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.", "program", program)
	flagSet := flag.NewFlagSet(program, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, usageText[mode], program)
		flagSet.PrintDefaults()
	}

	var labelPaths pathList
	outFlag := flagSet.String("o", "", "Write the result to this file instead of stdout.")
	flagSet.Var(&labelPaths, "labels", "Biome label document (.hcl file or directory) replacing the built-in table. Repeatable.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	var dumpFlag, fixedWidthFlag *bool
	var formatFlag, nameFlag *string
	switch mode {
	case app.ModeTree:
		dumpFlag = flagSet.Bool("dump", false, "Print an indented view of the tree instead of the C literal.")
		fixedWidthFlag = flagSet.Bool("fixed-width", false, "Emit all child slots of every node.")
	case app.ModeTable:
		formatFlag = flagSet.String("format", app.FormatText, "Output format. Options: 'text', 'header' or 'binary'.")
		nameFlag = flagSet.String("name", "", "Table name used by the header format.")
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No input file provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one input file, got %d", flagSet.NArg())}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{
		Mode:        mode,
		InputPath:   flagSet.Arg(0),
		OutputPath:  *outFlag,
		LabelsPaths: labelPaths,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	}
	if dumpFlag != nil {
		cfg.Dump = *dumpFlag
		cfg.FixedWidth = *fixedWidthFlag
	}
	if formatFlag != nil {
		cfg.Format = strings.ToLower(*formatFlag)
		cfg.TableName = *nameFlag
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "input", config.InputPath)
	return config, false, nil
}
