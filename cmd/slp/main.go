package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"slp/internal/cli"
	"slp/internal/engine"
	"slp/internal/logging"
	"slp/internal/scenario"
)

// scenariosFileName is the catalog looked up next to the binary.
const scenariosFileName = "scenarios.yaml"

//go:embed scenarios.yaml
var bundledScenarios []byte

func main() {
	exitCode := run(os.Args[1:], os.Stdout, os.Stderr, executableDir())
	os.Exit(exitCode)
}

// run orchestrates the full execution flow and returns an exit code.
// defaultDir is where scenarios.yaml is looked up when no path is given.
func run(args []string, stdout, stderr io.Writer, defaultDir string) int {
	ctx := context.Background()

	cmd, shouldExit, err := cli.ParseArgs(ctx, args, stdout, stderr)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(stderr, "Error:", exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	if shouldExit {
		return 0
	}

	logger, err := logging.New(stderr, cmd.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	ctx = logging.With(ctx, logger)

	catalog, err := loadCatalog(ctx, cmd.ScenariosFile, defaultDir)
	if err != nil {
		logger.Error("failed to load scenarios", logging.ErrorAttrs(err)...)
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	if cmd.List {
		return printList(stdout, stderr, catalog, cmd.JSON)
	}

	s, ok := catalog.Lookup(cmd.Scenario)
	if !ok {
		logger.Debug("scenario not in catalog", "scenario", cmd.Scenario, "available", catalog.Keys())
		fmt.Fprintf(stdout, "Unknown scenario: %s\n", cmd.Scenario)
		fmt.Fprintln(stdout, "Use --list to see available scenarios.")
		return 0
	}

	summary := engine.Summarize(s)
	logger.Debug("scenario summarized",
		"scenario", s.Key,
		"layers", len(summary.Insights),
		"top", cmd.Top,
	)

	if cmd.JSON {
		out, err := engine.FormatJSON(s.Key, summary, cmd.Top)
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot format report: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0
	}

	opts := engine.TextOptions{TopN: cmd.Top}
	if cmd.Color {
		opts.Highlight = engine.ColorHighlighter()
	}
	fmt.Fprintln(stdout, engine.FormatText(summary, opts))
	return 0
}

// loadCatalog reads the catalog from path. With no path it uses scenarios.yaml
// in defaultDir, falling back to the bundled catalog when that file does not exist.
func loadCatalog(ctx context.Context, path, defaultDir string) (scenario.Catalog, error) {
	logger := logging.From(ctx)

	if path != "" {
		logger.Debug("loading scenarios", "path", path)
		return scenario.LoadCatalogFromPath(path)
	}

	if defaultDir != "" {
		defaultPath := filepath.Join(defaultDir, scenariosFileName)
		catalog, err := scenario.LoadCatalogFromPath(defaultPath)
		if err == nil {
			logger.Debug("loaded scenarios", "path", defaultPath, "count", catalog.Len())
			return catalog, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return scenario.Catalog{}, err
		}
	}

	logger.Debug("using bundled scenarios")
	return scenario.ParseCatalog(bundledScenarios)
}

func printList(stdout, stderr io.Writer, catalog scenario.Catalog, asJSON bool) int {
	if asJSON {
		out, err := engine.FormatListJSON(catalog)
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot format scenario list: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0
	}
	fmt.Fprintln(stdout, engine.FormatList(catalog))
	return 0
}

// executableDir returns the directory holding the running binary, or "".
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
