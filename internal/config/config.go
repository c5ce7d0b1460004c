package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/robertrueger/RC4/pkg/grid"
	"github.com/rs/zerolog"
)

// Looked up in the XDG config directories
const configFile = "rc4/config.yml"

// Environment variable pointing at the config file
const PathEnv = "RC4_CONFIG"

type EngineConfig struct {
	// Plies searched below the root move
	Depth int `yaml:"depth" env:"RC4_DEPTH" env-default:"4"`
	// Root worker pool size, 0 means one per CPU
	Threads int `yaml:"threads" env:"RC4_THREADS" env-default:"0"`
	// "parallel" or "sequential"
	Policy string `yaml:"policy" env:"RC4_POLICY" env-default:"parallel"`
}

type BoardConfig struct {
	Rows int `yaml:"rows" env:"RC4_ROWS" env-default:"6"`
	Cols int `yaml:"cols" env:"RC4_COLS" env-default:"7"`
}

type ArenaConfig struct {
	Games   int `yaml:"games" env:"RC4_ARENA_GAMES" env-default:"20"`
	Workers int `yaml:"workers" env:"RC4_ARENA_WORKERS" env-default:"2"`
	// Depth of the second contestant, the first one uses Engine.Depth
	OpponentDepth int `yaml:"opponent_depth" env:"RC4_ARENA_OPPONENT_DEPTH" env-default:"2"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"RC4_LOG_LEVEL" env-default:"info"`
	// "console" or "json"
	Format string `yaml:"format" env:"RC4_LOG_FORMAT" env-default:"console"`
}

type Config struct {
	Engine  EngineConfig `yaml:"engine"`
	Board   BoardConfig  `yaml:"board"`
	Arena   ArenaConfig  `yaml:"arena"`
	Log     LogConfig    `yaml:"log"`
	NoColor bool         `yaml:"no_color" env:"RC4_NO_COLOR"`
}

type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Read the configuration. The file is taken from path, the RC4_CONFIG
// variable or the XDG config directories, in this order. Without any file
// only the environment and the defaults are used
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		if found, err := xdg.SearchConfigFile(configFile); err == nil {
			path = found
		}
	}

	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	// NO_COLOR disables colours when set to anything
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	const minSize, maxSize = grid.MinSize, grid.MaxSize

	switch {
	case c.Engine.Depth < 0:
		return &InvalidConfigError{"engine.depth", "must not be negative"}
	case c.Engine.Threads < 0:
		return &InvalidConfigError{"engine.threads", "must not be negative"}
	case c.Engine.Policy != "parallel" && c.Engine.Policy != "sequential":
		return &InvalidConfigError{"engine.policy", "expected parallel or sequential"}
	case c.Board.Rows < minSize || c.Board.Rows > maxSize:
		return &InvalidConfigError{"board.rows", fmt.Sprintf("must be within [%d, %d]", minSize, maxSize)}
	case c.Board.Cols < minSize || c.Board.Cols > maxSize:
		return &InvalidConfigError{"board.cols", fmt.Sprintf("must be within [%d, %d]", minSize, maxSize)}
	case c.Arena.Games < 0:
		return &InvalidConfigError{"arena.games", "must not be negative"}
	case c.Arena.Workers < 1:
		return &InvalidConfigError{"arena.workers", "at least one worker is needed"}
	case c.Arena.OpponentDepth < 0:
		return &InvalidConfigError{"arena.opponent_depth", "must not be negative"}
	case c.Log.Format != "console" && c.Log.Format != "json":
		return &InvalidConfigError{"log.format", "expected console or json"}
	}

	if _, err := c.LogLevel(); err != nil {
		return &InvalidConfigError{"log.level", err.Error()}
	}
	return nil
}

func (c *Config) LogLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.Log.Level))
}

func IsInvalid(err error) bool {
	var invalid *InvalidConfigError
	return errors.As(err, &invalid)
}
