package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/hclprofile"
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

// Parse processes command-line arguments. It returns a validated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("buildgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
BuildGridGo - Generates a synthetic Bazel workspace for build benchmarking.

The output is a perfect n-ary tree of library packages: every non-leaf
target depends on exactly its children, so the target count grows as
targets-per-level^height.

Usage:
  buildgridgo [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.String("output", "", "Directory to write the output to; existing content will be wiped.")
	heightFlag := flagSet.Uint64("height", 0, "Height of the build graph.")
	targetsFlag := flagSet.Uint64("targets-per-level", 0, "Targets generated per level, each; must be >= 2.")
	filesFlag := flagSet.Uint64("files-per-target", 0, "Header/source stub pairs generated per target.")
	profileFlag := flagSet.String("profile", "", "Path to an HCL profile file or directory.")
	workspaceFlag := flagSet.String("workspace-file", defaultWorkspaceFile(), "Prebuilt workspace-configuration file to copy into the output.")
	workersFlag := flagSet.Int("workers", config.DefaultWorkers, "Number of concurrent emission workers.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if len(args) == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := config.Config{
		Output:          *outputFlag,
		Height:          *heightFlag,
		TargetsPerLevel: *targetsFlag,
		FilesPerTarget:  *filesFlag,
		WorkspaceFile:   *workspaceFlag,
		Workers:         *workersFlag,
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
	}

	if *profileFlag != "" {
		slog.Debug("Loading profile.", "path", *profileFlag)
		profile, err := hclprofile.Load(*profileFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applyProfile(&cfg, profile, explicitFlags(flagSet))
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	validated, err := config.New(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}

// explicitFlags reports which flags the user actually set on the command
// line, so profile values never override them.
func explicitFlags(flagSet *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyProfile fills every field of cfg that the profile sets and the
// command line left untouched.
func applyProfile(cfg *config.Config, profile *hclprofile.Profile, explicit map[string]bool) {
	if !explicit["output"] && profile.Output != nil {
		cfg.Output = *profile.Output
	}
	if !explicit["height"] && profile.Height != nil {
		cfg.Height = *profile.Height
	}
	if !explicit["targets-per-level"] && profile.TargetsPerLevel != nil {
		cfg.TargetsPerLevel = *profile.TargetsPerLevel
	}
	if !explicit["files-per-target"] && profile.FilesPerTarget != nil {
		cfg.FilesPerTarget = *profile.FilesPerTarget
	}
	if !explicit["workers"] && profile.Workers != nil {
		cfg.Workers = *profile.Workers
	}
	if !explicit["workspace-file"] && profile.WorkspaceFile != nil {
		cfg.WorkspaceFile = *profile.WorkspaceFile
	}
}

// defaultWorkspaceFile points at $HOME/GEN_WORKSPACE, the conventional
// seed location for the prebuilt workspace-configuration file.
func defaultWorkspaceFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "GEN_WORKSPACE"
	}
	return filepath.Join(home, "GEN_WORKSPACE")
}
