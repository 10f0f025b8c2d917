// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrInvalidSetting = errors.New("invalid setting")

const (
	EnvGridSize       = "ASTAR_GRID_SIZE"
	EnvWindowSize     = "ASTAR_WINDOW_SIZE"
	EnvStepsPerFrame  = "ASTAR_STEPS_PER_FRAME"
	EnvSeed           = "ASTAR_SEED"
	EnvBarrierDensity = "ASTAR_BARRIER_DENSITY"
	EnvLogLevel       = "ASTAR_LOG_LEVEL"
	EnvStaleSkip      = "ASTAR_STALE_SKIP"
	EnvTrace          = "ASTAR_TRACE"
)

// Settings holds the runtime knobs shared by every frontend.
type Settings struct {
	GridSize       int        // cells per side
	WindowSize     int        // pixels per side of the grid area
	StepsPerFrame  int        // engine steps per frame in frame-driven frontends
	Seed           int64      // seed for Generate, 0 means time based
	BarrierDensity float64    // share of cells Generate turns into barriers
	LogLevel       slog.Level // minimum level for the logger
	StaleSkip      bool       // re-queue improved open cells and skip stale entries
	Trace          bool       // export a span per search run
}

// Defaults returns the compiled-in settings.
func Defaults() Settings {
	return Settings{
		GridSize:       GridDimension,
		WindowSize:     WindowSize,
		StepsPerFrame:  StepsPerFrame,
		BarrierDensity: BarrierDensity,
		LogLevel:       slog.LevelInfo,
	}
}

// CellSize is the pixel side of one cell, matching the integer gap the grid
// lines are drawn with.
func (s Settings) CellSize() int {
	return s.WindowSize / s.GridSize
}

// Load reads settings from the environment. Files are loaded into the
// environment first with godotenv; without arguments an optional .env in the
// working directory is used. Variables already set are never overridden.
func Load(files ...string) (Settings, error) {
	if err := loadFiles(files); err != nil {
		return Settings{}, err
	}

	s := Defaults()
	var err error
	if s.GridSize, err = intEnv(EnvGridSize, s.GridSize); err != nil {
		return Settings{}, err
	}
	if s.WindowSize, err = intEnv(EnvWindowSize, s.WindowSize); err != nil {
		return Settings{}, err
	}
	if s.StepsPerFrame, err = intEnv(EnvStepsPerFrame, s.StepsPerFrame); err != nil {
		return Settings{}, err
	}
	seed, err := intEnv(EnvSeed, int(s.Seed))
	if err != nil {
		return Settings{}, err
	}
	s.Seed = int64(seed)
	if s.BarrierDensity, err = floatEnv(EnvBarrierDensity, s.BarrierDensity); err != nil {
		return Settings{}, err
	}
	if s.StaleSkip, err = boolEnv(EnvStaleSkip, s.StaleSkip); err != nil {
		return Settings{}, err
	}
	if s.Trace, err = boolEnv(EnvTrace, s.Trace); err != nil {
		return Settings{}, err
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if s.LogLevel, err = ParseLevel(v); err != nil {
			return Settings{}, err
		}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func loadFiles(files []string) error {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
		return nil
	}
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Validate checks the cross-field constraints of s.
func (s Settings) Validate() error {
	switch {
	case s.GridSize <= 0:
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSetting, EnvGridSize, s.GridSize)
	case s.WindowSize < s.GridSize:
		return fmt.Errorf("%w: %s=%d is smaller than %s=%d", ErrInvalidSetting, EnvWindowSize, s.WindowSize, EnvGridSize, s.GridSize)
	case s.StepsPerFrame <= 0:
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSetting, EnvStepsPerFrame, s.StepsPerFrame)
	case s.BarrierDensity < 0 || s.BarrierDensity > 1:
		return fmt.Errorf("%w: %s must be within [0,1], got %g", ErrInvalidSetting, EnvBarrierDensity, s.BarrierDensity)
	}
	return nil
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
func ParseLevel(v string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, EnvLogLevel, v)
	}
	return level, nil
}

func intEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidSetting, key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %w", ErrInvalidSetting, key, err)
	}
	return f, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %w", ErrInvalidSetting, key, err)
	}
	return b, nil
}
