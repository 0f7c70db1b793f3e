// Package config reads the TOML file shared by the HTTP server and the bot.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"go.uber.org/zap/zapcore"
)

var ErrInvalid = errors.New("invalid configuration")

var ErrNoDiscordToken = errors.New("discord token is not set")

// Duration decodes TOML strings such as "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Config struct {
	Dataset struct {
		Path string `toml:"path"`
	} `toml:"dataset"`
	DB struct {
		Path string `toml:"path"`
	} `toml:"database"`
	HTTP struct {
		Addr            string   `toml:"addr"`
		ShutdownTimeout Duration `toml:"shutdown_timeout"`
		AllowedOrigins  []string `toml:"allowed_origins"`
	} `toml:"http"`
	Discord struct {
		Token   string `toml:"token"`
		GuildID string `toml:"guild_id"`
	} `toml:"discord"`
	PokeAPI struct {
		BaseURL      string   `toml:"base_url"`
		SpriteURL    string   `toml:"sprite_url"`
		Timeout      Duration `toml:"timeout"`
		Concurrency  int      `toml:"concurrency"`
		PrefetchTeam bool     `toml:"prefetch_team"`
	} `toml:"pokeapi"`
	Log struct {
		Level       string `toml:"level"`
		Development bool   `toml:"development"`
	} `toml:"log"`
	Language struct {
		Default string `toml:"default"`
	} `toml:"language"`
}

func Default() Config {
	var cfg Config
	cfg.Dataset.Path = "pokemon.csv"
	cfg.DB.Path = "pokeanalytics.db"
	cfg.HTTP.Addr = ":8080"
	cfg.HTTP.ShutdownTimeout = Duration{5 * time.Second}
	cfg.HTTP.AllowedOrigins = []string{"*"}
	cfg.PokeAPI.BaseURL = "https://pokeapi.co/api/v2"
	cfg.PokeAPI.SpriteURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	cfg.PokeAPI.Timeout = Duration{10 * time.Second}
	cfg.PokeAPI.Concurrency = 4
	cfg.PokeAPI.PrefetchTeam = true
	cfg.Log.Level = "info"
	cfg.Language.Default = string(model.LocalizationCodeEnglish)
	return cfg
}

// Read decodes the file at path over Default. An empty path yields the
// defaults. Keys the file sets but Config does not know are rejected.
func Read(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("could not read config file %q: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q in %q: %w", undecoded[0].String(), path, ErrInvalid)
		}
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	switch {
	case cfg.Dataset.Path == "":
		return fmt.Errorf("dataset.path is required: %w", ErrInvalid)
	case cfg.DB.Path == "":
		return fmt.Errorf("database.path is required: %w", ErrInvalid)
	case cfg.HTTP.Addr == "":
		return fmt.Errorf("http.addr is required: %w", ErrInvalid)
	case cfg.PokeAPI.Timeout.Duration <= 0:
		return fmt.Errorf("pokeapi.timeout must be positive: %w", ErrInvalid)
	case cfg.PokeAPI.Concurrency <= 0:
		return fmt.Errorf("pokeapi.concurrency must be positive: %w", ErrInvalid)
	}

	_, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	_, err = cfg.DefaultLanguage()
	if err != nil {
		return err
	}

	return nil
}

func (cfg *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return level, fmt.Errorf("log.level %q: %w", cfg.Log.Level, ErrInvalid)
	}

	return level, nil
}

func (cfg *Config) DefaultLanguage() (model.Language, error) {
	lang, err := model.LanguageByLocalizationCode(model.LocalizationCode(cfg.Language.Default))
	if err != nil {
		return lang, fmt.Errorf("language.default: %w", err)
	}

	return lang, nil
}

// RequireDiscord reports ErrNoDiscordToken unless the bot can log in.
func (cfg *Config) RequireDiscord() error {
	if cfg.Discord.Token == "" {
		return ErrNoDiscordToken
	}

	return nil
}
