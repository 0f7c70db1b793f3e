package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/notjagan/pokeanalytics/pkg/config"
	"github.com/notjagan/pokeanalytics/pkg/dataset"
	"github.com/notjagan/pokeanalytics/pkg/enrich"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/pokeapi"
	"github.com/notjagan/pokeanalytics/pkg/store"
	"github.com/notjagan/pokeanalytics/pkg/teambuilder"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	debug      bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pokeanalytics",
	Short: "Pokemon browser and team analytics",
	Long: `pokeanalytics serves a static Pokemon dataset and a six-member team
builder, over HTTP or as a Discord bot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Read(configPath)
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg, debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(serveCmd, botCmd, inspectCmd)
}

func newLogger(cfg *config.Config, debug bool) (*zap.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	if debug {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Log.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// app holds everything the serve and bot commands share.
type app struct {
	dex      *model.Dex
	store    *store.Store
	enricher *enrich.Enricher
	teams    *teambuilder.Service
	lang     model.Language
}

func newApp(ctx context.Context) (*app, error) {
	lang, err := cfg.DefaultLanguage()
	if err != nil {
		return nil, err
	}

	dex, err := dataset.Load(cfg.Dataset.Path, logger)
	if err != nil {
		return nil, err
	}

	rosters, err := store.Open(ctx, cfg.DB.Path)
	if err != nil {
		return nil, err
	}

	client := pokeapi.New(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout.Duration)
	enricher := enrich.New(client, enrich.Options{
		FallbackBase: cfg.PokeAPI.SpriteURL,
		Timeout:      cfg.PokeAPI.Timeout.Duration,
		Concurrency:  cfg.PokeAPI.Concurrency,
	}, logger.Named("enrich"))

	return &app{
		dex:      dex,
		store:    rosters,
		enricher: enricher,
		teams:    teambuilder.New(dex, rosters, enricher, logger.Named("teams")),
		lang:     lang,
	}, nil
}

func (a *app) Close() {
	a.enricher.Close()
	err := a.store.Close()
	if err != nil {
		logger.Error("error while closing store", zap.Error(err))
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
