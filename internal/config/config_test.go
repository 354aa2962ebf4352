package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	cfg, err := New(Config{
		Output:          "/tmp/bench",
		Height:          3,
		TargetsPerLevel: 5,
		FilesPerTarget:  7,
		Workers:         DefaultWorkers,
	})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/bench", cfg.Output)
	assert.Equal(t, uint64(5), cfg.TargetsPerLevel)
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		cfg         Config
		errContains string
	}{
		{
			name:        "missing output",
			cfg:         Config{TargetsPerLevel: 2, Workers: 1},
			errContains: "output is a required configuration field",
		},
		{
			name:        "branching factor zero",
			cfg:         Config{Output: "/tmp/x", TargetsPerLevel: 0, Workers: 1},
			errContains: "targets-per-level must be >= 2",
		},
		{
			name:        "branching factor one",
			cfg:         Config{Output: "/tmp/x", TargetsPerLevel: 1, Workers: 1},
			errContains: "targets-per-level must be >= 2",
		},
		{
			name:        "no workers",
			cfg:         Config{Output: "/tmp/x", TargetsPerLevel: 2, Workers: 0},
			errContains: "workers must be >= 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := New(tc.cfg)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}
