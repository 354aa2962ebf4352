package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildgridgo/internal/config"
)

func TestParse_Full(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	args := []string{
		"--output", "/tmp/bench",
		"--height", "3",
		"--targets-per-level", "5",
		"--files-per-target", "7",
		"--workers", "32",
		"--log-format", "json",
		"--log-level", "debug",
	}

	cfg, shouldExit, err := Parse(args, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "/tmp/bench", cfg.Output)
	assert.Equal(t, uint64(3), cfg.Height)
	assert.Equal(t, uint64(5), cfg.TargetsPerLevel)
	assert.Equal(t, uint64(7), cfg.FilesPerTarget)
	assert.Equal(t, 32, cfg.Workers)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	args := []string{"--output", "/tmp/bench", "--targets-per-level", "2"}

	cfg, shouldExit, err := Parse(args, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, config.DefaultWorkers, cfg.Workers)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Contains(t, cfg.WorkspaceFile, "GEN_WORKSPACE")
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "unknown flag",
			args:        []string{"--no-such-flag"},
			errContains: "flag provided but not defined",
		},
		{
			name:        "invalid log format",
			args:        []string{"--output", "/tmp/x", "--targets-per-level", "2", "--log-format", "xml"},
			errContains: "invalid log-format",
		},
		{
			name:        "invalid log level",
			args:        []string{"--output", "/tmp/x", "--targets-per-level", "2", "--log-level", "loud"},
			errContains: "invalid log-level",
		},
		{
			name:        "branching factor too small",
			args:        []string{"--output", "/tmp/x", "--targets-per-level", "1"},
			errContains: "targets-per-level must be >= 2",
		},
		{
			name:        "missing output",
			args:        []string{"--targets-per-level", "2"},
			errContains: "output is a required configuration field",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, shouldExit)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected an *ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}

func TestParse_ProfileFillsUnsetFlags(t *testing.T) {
	t.Parallel()

	profile := filepath.Join(t.TempDir(), "bench.hcl")
	require.NoError(t, os.WriteFile(profile, []byte(`
workspace {
  output            = "/tmp/from-profile"
  height            = 4
  targets_per_level = 6
  files_per_target  = 2
  workers           = 8
}
`), 0o644))

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"--profile", profile}, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "/tmp/from-profile", cfg.Output)
	assert.Equal(t, uint64(4), cfg.Height)
	assert.Equal(t, uint64(6), cfg.TargetsPerLevel)
	assert.Equal(t, uint64(2), cfg.FilesPerTarget)
	assert.Equal(t, 8, cfg.Workers)
}

func TestParse_FlagsOverrideProfile(t *testing.T) {
	t.Parallel()

	profile := filepath.Join(t.TempDir(), "bench.hcl")
	require.NoError(t, os.WriteFile(profile, []byte(`
workspace {
  output            = "/tmp/from-profile"
  height            = 4
  targets_per_level = 6
}
`), 0o644))

	out := &bytes.Buffer{}
	args := []string{"--profile", profile, "--output", "/tmp/from-flag", "--height", "9"}

	cfg, _, err := Parse(args, out)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-flag", cfg.Output, "an explicit flag must win over the profile")
	assert.Equal(t, uint64(9), cfg.Height)
	assert.Equal(t, uint64(6), cfg.TargetsPerLevel, "profile still fills what the flags left unset")
}

func TestParse_ProfileLoadFailure(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, _, err := Parse([]string{"--profile", filepath.Join(t.TempDir(), "absent.hcl")}, out)

	require.Error(t, err)
	assert.Nil(t, cfg)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}
