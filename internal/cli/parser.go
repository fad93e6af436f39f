package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"slp/internal/config"
	"slp/internal/logging"
)

// ProgramName is the name shown in usage output.
const ProgramName = "slp"

// Defaults for the command line.
const (
	DefaultScenario = "api_latency"
	DefaultTop      = 5
)

// ExitError is a usage error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Command represents the parsed CLI input
type Command struct {
	Scenario      string // positional, defaults to DefaultScenario
	List          bool   // --list
	Top           int    // --top <n>
	ScenariosFile string // --scenarios-file <path>, "" means the default location
	JSON          bool   // --json
	Color         bool   // --color
	LogLevel      string // --log-level <level>
	ConfigPath    string // --config <path>
}

// ParseArgs parses CLI arguments into a Command.
// It expects args to be os.Args[1:] (excluding the program name).
// The bool result is true when the program should exit cleanly without
// running (help was shown).
func ParseArgs(ctx context.Context, args []string, stdout, stderr io.Writer) (*Command, bool, error) {
	cmd := Command{
		Scenario: DefaultScenario,
		Top:      DefaultTop,
		LogLevel: logging.DefaultLevel,
	}
	var settingsErr error
	ran := false

	app := &cli.Command{
		Name:      ProgramName,
		Usage:     "System Layers Profiler (Thinking Aid): prompts layer-by-layer thinking for performance issues.",
		ArgsUsage: "[scenario]",
		Writer:    stdout,
		ErrWriter: stderr,
		// a positional "help" is a scenario key, not the help subcommand
		HideHelpCommand: true,
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			return &ExitError{Code: 2, Message: err.Error()}
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "list",
				Usage:       "List available scenarios and exit.",
				Destination: &cmd.List,
			},
			&cli.IntFlag{
				Name:        "top",
				Usage:       "How many top suspects to show.",
				Value:       DefaultTop,
				Destination: &cmd.Top,
			},
			&cli.StringFlag{
				Name:        "scenarios-file",
				Usage:       "Path to scenarios.yaml (default: next to the slp binary)",
				Destination: &cmd.ScenariosFile,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print the report as JSON.",
				Destination: &cmd.JSON,
			},
			&cli.BoolFlag{
				Name:        "color",
				Usage:       "Color likelihood labels.",
				Destination: &cmd.Color,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level for diagnostics on stderr (debug, info, warn, error).",
				Value:       logging.DefaultLevel,
				Destination: &cmd.LogLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to a TOML settings file with defaults for the flags above.",
				Destination: &cmd.ConfigPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ran = true

			if c.Args().Len() > 1 {
				return &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", c.Args().Slice()[1:])}
			}
			if c.Args().Present() {
				cmd.Scenario = c.Args().First()
			}

			if cmd.ConfigPath != "" {
				settings, err := config.Load(cmd.ConfigPath)
				if err != nil {
					settingsErr = err
					return err
				}
				applySettings(&cmd, settings, c.IsSet, filepath.Dir(cmd.ConfigPath))
			}

			if _, err := logging.ParseLevel(cmd.LogLevel); err != nil {
				return &ExitError{Code: 2, Message: fmt.Sprintf("invalid log-level: %q", cmd.LogLevel)}
			}
			return nil
		},
	}

	if err := app.Run(ctx, append([]string{ProgramName}, args...)); err != nil {
		if settingsErr != nil {
			return nil, false, goerr.Wrap(settingsErr, "failed to load settings", goerr.V("path", cmd.ConfigPath))
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !ran {
		return nil, true, nil
	}

	return &cmd, false, nil
}

// applySettings fills every field whose flag was not given on the command line.
// A relative scenarios_file is resolved against the settings file directory.
func applySettings(cmd *Command, s *config.Settings, isSet func(string) bool, baseDir string) {
	if !isSet("scenarios-file") && s.ScenariosFile != "" {
		path := s.ScenariosFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		cmd.ScenariosFile = path
	}
	if !isSet("top") && s.Top != nil {
		cmd.Top = *s.Top
	}
	if !isSet("color") && s.Color != nil {
		cmd.Color = *s.Color
	}
	if !isSet("json") && s.JSON != nil {
		cmd.JSON = *s.JSON
	}
	if !isSet("log-level") && s.LogLevel != "" {
		cmd.LogLevel = s.LogLevel
	}
}
