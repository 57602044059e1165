// Command nptree-c converts a debugger dump of the climate parameter tree into a C node literal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/biometree/internal/app"
	"github.com/specialistvlad/biometree/internal/cli"
	"github.com/specialistvlad/biometree/internal/hcl_adapter"
)

const program = "nptree-c"

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(program, app.ModeTree, args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	converter := app.NewApp(outW, errW, appConfig, hcl_adapter.NewLoader())
	return converter.Run(context.Background())
}
