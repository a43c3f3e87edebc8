package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-escape/internal/config"
	"github.com/vovakirdan/maze-escape/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagEnvFile     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the maze SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game session. Scores are stored
per-server (all users share the same leaderboard) under their SSH user name.

Settings can also come from the environment or a .env file. Flags given on
the command line win over the environment:
  MAZE_SSH_ADDR       - Listen address
  MAZE_HOST_KEY       - Host key path
  MAZE_DB             - Scores database path
  MAZE_IDLE_TIMEOUT   - Idle timeout (e.g. 45m)

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.maze-escape/host_key

Examples:
  maze-escape serve                           # Listen on :23234 with auto-generated key
  maze-escape serve --ssh :2222               # Listen on port 2222
  maze-escape serve --host-key ./my_host_key  # Use specific host key
  maze-escape serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Idle time before disconnecting")
	serveCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Optional .env file with MAZE_* settings")
}

func runServe(cmd *cobra.Command, _ []string) {
	env, err := config.LoadServerEnv(flagEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	applyServerEnv(cmd, env)

	logger, closeLog := mustLogger(os.Stderr, "maze-ssh")
	defer closeLog()

	game := mustLoadConfig()
	logger.Info("loaded config", "source", game.Source, "difficulties", len(game.Difficulties))

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		Game:        game,
		TickRate:    flagFPS,
		Seed:        flagSeed,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	fmt.Printf("Starting maze-escape SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// applyServerEnv fills every flag the user did not set from the environment.
func applyServerEnv(cmd *cobra.Command, env config.ServerEnv) {
	flags := cmd.Flags()
	if env.Addr != "" && !flags.Changed("ssh") {
		flagSSHAddr = env.Addr
	}
	if env.HostKey != "" && !flags.Changed("host-key") {
		flagHostKey = env.HostKey
	}
	if env.DBPath != "" && !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if env.IdleTimeout > 0 && !flags.Changed("idle-timeout") {
		flagIdleTimeout = env.IdleTimeout
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
