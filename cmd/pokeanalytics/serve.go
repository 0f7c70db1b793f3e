package main

import (
	"github.com/notjagan/pokeanalytics/pkg/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		srv := server.New(a.dex, a.teams, a.enricher, server.Options{
			Addr:            cfg.HTTP.Addr,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout.Duration,
			AllowedOrigins:  cfg.HTTP.AllowedOrigins,
			DefaultLanguage: a.lang,
			PrefetchTeam:    cfg.PokeAPI.PrefetchTeam,
		}, logger.Named("http"))

		return srv.Run(ctx)
	},
}
