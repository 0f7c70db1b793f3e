package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestReadDefaults(t *testing.T) {
	cfg, err := Read("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.PokeAPI.Timeout.Duration)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)

	lang, err := cfg.DefaultLanguage()
	require.NoError(t, err)
	assert.Equal(t, model.English, lang)
	assert.ErrorIs(t, cfg.RequireDiscord(), ErrNoDiscordToken)
}

func TestReadOverrides(t *testing.T) {
	path := writeConfig(t, `
[dataset]
path = "data/pokemon.csv"

[http]
addr = "127.0.0.1:9000"
shutdown_timeout = "1m"

[discord]
token = "secret"

[pokeapi]
timeout = "250ms"

[log]
level = "debug"

[language]
default = "fr"
`)

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "data/pokemon.csv", cfg.Dataset.Path)
	assert.Equal(t, "pokeanalytics.db", cfg.DB.Path)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, time.Minute, cfg.HTTP.ShutdownTimeout.Duration)
	assert.Equal(t, 250*time.Millisecond, cfg.PokeAPI.Timeout.Duration)
	assert.NoError(t, cfg.RequireDiscord())

	lang, err := cfg.DefaultLanguage()
	require.NoError(t, err)
	assert.Equal(t, model.French, lang)
}

func TestReadRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":      "[http]\nport = 80\n",
		"bad level":        "[log]\nlevel = \"loud\"\n",
		"bad language":     "[language]\ndefault = \"de\"\n",
		"bad duration":     "[pokeapi]\ntimeout = \"soon\"\n",
		"zero concurrency": "[pokeapi]\nconcurrency = 0\n",
		"empty dataset":    "[dataset]\npath = \"\"\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(writeConfig(t, contents))
			assert.Error(t, err)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
