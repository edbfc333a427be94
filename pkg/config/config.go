package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/cbodonnell/spacewar/pkg/game/constants"
	"github.com/joho/godotenv"
)

const (
	EnvPort      = "SPACEWAR_PORT"
	EnvHTTPPort  = "SPACEWAR_HTTP_PORT"
	EnvMaxX      = "SPACEWAR_MAX_X"
	EnvMaxY      = "SPACEWAR_MAX_Y"
	EnvObstacles = "SPACEWAR_OBSTACLES"
	EnvLogLevel  = "SPACEWAR_LOG_LEVEL"
	EnvLogFile   = "SPACEWAR_LOG_FILE"
)

// ServerConfig holds the settings of cmd/server.
type ServerConfig struct {
	// Port is shared by the reliable and the best-effort channel.
	Port      int
	HTTPPort  int
	MaxX      int
	MaxY      int
	Obstacles int
	LogLevel  string
	LogFile   string
}

// LoadEnvFiles loads the given .env files into the environment. Missing
// files are skipped and variables already set are never overridden.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %v", f, err)
		}
	}
	return nil
}

// LoadServerConfig parses args on top of defaults taken from the environment.
func LoadServerConfig(name string, args []string) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	port, err := envInt(EnvPort, constants.DefaultPort)
	if err != nil {
		return nil, err
	}
	httpPort, err := envInt(EnvHTTPPort, constants.DefaultHTTPPort)
	if err != nil {
		return nil, err
	}
	maxX, err := envInt(EnvMaxX, int(constants.DefaultMaxX))
	if err != nil {
		return nil, err
	}
	maxY, err := envInt(EnvMaxY, int(constants.DefaultMaxY))
	if err != nil {
		return nil, err
	}
	obstacles, err := envInt(EnvObstacles, constants.DefaultObstacleCount)
	if err != nil {
		return nil, err
	}

	flags.IntVar(&cfg.Port, "port", port, "TCP and UDP port to listen on")
	flags.IntVar(&cfg.HTTPPort, "http-port", httpPort, "Observer API port to listen on, 0 disables the API")
	flags.IntVar(&cfg.MaxX, "max-x", maxX, "Width of the sector")
	flags.IntVar(&cfg.MaxY, "max-y", maxY, "Height of the sector")
	flags.IntVar(&cfg.Obstacles, "obstacles", obstacles, "Number of obstacles placed at start")
	flags.StringVar(&cfg.LogLevel, "log-level", envString(EnvLogLevel, "info"), "Log level")
	flags.StringVar(&cfg.LogFile, "log-file", envString(EnvLogFile, ""), "Rolling log file, logs go to stdout when empty")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges of the settings.
func (c *ServerConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	if c.MaxX <= 0 || c.MaxY <= 0 {
		return fmt.Errorf("invalid sector bounds %dx%d", c.MaxX, c.MaxY)
	}
	if c.Obstacles < 0 {
		return fmt.Errorf("invalid obstacle count %d", c.Obstacles)
	}
	return nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %v", key, err)
	}
	return n, nil
}
