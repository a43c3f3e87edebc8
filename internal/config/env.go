package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by the SSH server.
const (
	EnvSSHAddr     = "MAZE_SSH_ADDR"
	EnvHostKey     = "MAZE_HOST_KEY"
	EnvDBPath      = "MAZE_DB"
	EnvIdleTimeout = "MAZE_IDLE_TIMEOUT"
)

// ServerEnv holds SSH server settings taken from the environment. Empty
// fields were not set and leave the command-line values alone.
type ServerEnv struct {
	Addr        string
	HostKey     string
	DBPath      string
	IdleTimeout time.Duration
}

// LoadServerEnv loads the given .env files (missing files are ignored) into
// the process environment without overriding variables that are already
// set, then reads the MAZE_* variables.
func LoadServerEnv(files ...string) (ServerEnv, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return ServerEnv{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	env := ServerEnv{
		Addr:    os.Getenv(EnvSSHAddr),
		HostKey: os.Getenv(EnvHostKey),
		DBPath:  os.Getenv(EnvDBPath),
	}
	if raw, ok := os.LookupEnv(EnvIdleTimeout); ok && raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return ServerEnv{}, fmt.Errorf("config: %s: %w", EnvIdleTimeout, err)
		}
		if d <= 0 {
			return ServerEnv{}, fmt.Errorf("config: %s must be positive, got %s", EnvIdleTimeout, raw)
		}
		env.IdleTimeout = d
	}
	return env, nil
}
