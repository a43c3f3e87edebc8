package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-escape/internal/maze"
	"github.com/vovakirdan/maze-escape/internal/session"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)

	ds, err := cfg.SessionDifficulties()
	require.NoError(t, err)
	assert.Equal(t, session.DefaultDifficulties(), ds)

	assert.True(t, cfg.Scores.Save)
	assert.Equal(t, 10, cfg.Scores.Limit)
	assert.Equal(t, 2, cfg.Display.CellWidth)
	require.NotEmpty(t, cfg.Credits.Lines)
	assert.Equal(t, "MAZE ESCAPE", cfg.Credits.Lines[0].Text)
	assert.Equal(t, CreditTitle, cfg.Credits.Lines[0].Style)
}

func TestHardcodedDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())

	ds, err := Default().SessionDifficulties()
	require.NoError(t, err)
	assert.Equal(t, session.DefaultDifficulties(), ds)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadWithSearch("", []string{filepath.Join(dir, "missing.yaml")})
	require.NoError(t, err)
	assert.Equal(t, "embedded", cfg.Source)
	assert.Len(t, cfg.Difficulties, 3)
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.yaml", "difficulties: [\n")
	invalid := writeFile(t, dir, "invalid.yaml", "difficulties:\n  - level: easy\n    size: 16\n")
	good := writeFile(t, dir, "good.yaml", "difficulties:\n  - level: easy\n    size: 9\n")

	cfg, err := LoadWithSearch("", []string{broken, invalid, good})
	require.NoError(t, err)
	assert.Equal(t, good, cfg.Source)

	ds, err := cfg.SessionDifficulties()
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, session.Difficulty{Level: session.Easy, Label: "Easy", Size: 9}, ds[0])

	// Sections missing from the file keep their defaults.
	assert.Equal(t, Default().Display, cfg.Display)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadWithSearch(filepath.Join(dir, "nope.yaml"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := writeFile(t, dir, "even.yaml", "difficulties:\n  - level: hard\n    size: 20\n")
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, maze.ErrInvalidSize), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		sizeEr bool
	}{
		{"no difficulties", func(c *GameConfig) { c.Difficulties = nil }, false},
		{"even size", func(c *GameConfig) { c.Difficulties[0].Size = 14 }, true},
		{"too small", func(c *GameConfig) { c.Difficulties[1].Size = 3 }, true},
		{"negative bonus", func(c *GameConfig) { c.Difficulties[2].Bonus = -10 }, false},
		{"unknown level", func(c *GameConfig) { c.Difficulties[0].Level = "insane" }, false},
		{"duplicate level", func(c *GameConfig) { c.Difficulties[1].Level = "easy" }, false},
		{"negative limit", func(c *GameConfig) { c.Scores.Limit = -1 }, false},
		{"negative scroll", func(c *GameConfig) { c.Credits.ScrollEvery = -1 }, false},
		{"bad credit style", func(c *GameConfig) { c.Credits.Lines[0].Style = "blink" }, false},
		{"negative gap", func(c *GameConfig) { c.Credits.Lines[0].Gap = -2 }, false},
		{"cell width", func(c *GameConfig) { c.Display.CellWidth = 0 }, false},
		{"multi-rune glyph", func(c *GameConfig) { c.Display.Wall = "##" }, false},
		{"empty glyph", func(c *GameConfig) { c.Display.Player = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.sizeEr, errors.Is(err, maze.ErrInvalidSize), "err = %v", err)
		})
	}
}

func TestDifficultyLookup(t *testing.T) {
	cfg := Default()

	d, ok := cfg.Difficulty(session.Hard)
	require.True(t, ok)
	assert.Equal(t, 35, d.Size)
	assert.Equal(t, 1000, d.Bonus)

	cfg.Difficulties = cfg.Difficulties[:1]
	_, ok = cfg.Difficulty(session.Hard)
	assert.False(t, ok)
}

func TestMarshalRoundTripKeepsDifficulties(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Difficulties, cfg.Difficulties)
}

func TestLoadServerEnv(t *testing.T) {
	// godotenv never overrides a set variable, even an empty one.
	for _, k := range []string{EnvSSHAddr, EnvHostKey, EnvDBPath, EnvIdleTimeout} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "MAZE_HOST_KEY=/tmp/key\nMAZE_IDLE_TIMEOUT=90s\n")

	// Already-set variables win over the file.
	t.Setenv(EnvSSHAddr, ":2222")

	env, err := LoadServerEnv(filepath.Join(dir, "missing.env"), envFile)
	require.NoError(t, err)
	assert.Equal(t, ":2222", env.Addr)
	assert.Equal(t, "/tmp/key", env.HostKey)
	assert.Equal(t, "", env.DBPath)
	assert.Equal(t, 90*time.Second, env.IdleTimeout)
}

func TestLoadServerEnvRejectsBadTimeout(t *testing.T) {
	t.Setenv(EnvIdleTimeout, "soon")
	_, err := LoadServerEnv()
	assert.Error(t, err)

	t.Setenv(EnvIdleTimeout, "-1m")
	_, err = LoadServerEnv()
	assert.Error(t, err)
}
