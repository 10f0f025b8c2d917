package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, 16, s.CellSize())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvGridSize, "20")
	t.Setenv(EnvWindowSize, "600")
	t.Setenv(EnvStepsPerFrame, "5")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvBarrierDensity, "0.25")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvStaleSkip, "true")
	t.Setenv(EnvTrace, "1")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{
		GridSize:       20,
		WindowSize:     600,
		StepsPerFrame:  5,
		Seed:           42,
		BarrierDensity: 0.25,
		LogLevel:       slog.LevelDebug,
		StaleSkip:      true,
		Trace:          true,
	}, s)
	assert.Equal(t, 30, s.CellSize())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astar.env")
	require.NoError(t, os.WriteFile(path, []byte("ASTAR_GRID_SIZE=10\nASTAR_SEED=7\n"), 0o600))
	// godotenv sets variables directly; register them for cleanup.
	t.Setenv(EnvGridSize, "")
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvGridSize)
	os.Unsetenv(EnvSeed)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, s.GridSize)
	assert.Equal(t, int64(7), s.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadDoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astar.env")
	require.NoError(t, os.WriteFile(path, []byte("ASTAR_GRID_SIZE=10\n"), 0o600))
	t.Setenv(EnvGridSize, "25")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, s.GridSize)
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{EnvGridSize, "abc"},
		{EnvGridSize, "0"},
		{EnvWindowSize, "10"},
		{EnvStepsPerFrame, "-1"},
		{EnvSeed, "1.5"},
		{EnvBarrierDensity, "1.5"},
		{EnvBarrierDensity, "dense"},
		{EnvLogLevel, "loud"},
		{EnvStaleSkip, "maybe"},
		{EnvTrace, "loud"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidSetting)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "cell", "(1,2)")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "cell=(1,2)")
}
