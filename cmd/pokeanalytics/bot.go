package main

import (
	"github.com/notjagan/pokeanalytics/pkg/bot"
	"github.com/notjagan/pokeanalytics/pkg/command"
	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Host the Discord bot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := cfg.RequireDiscord()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		builder := command.NewBuilder(a.dex, a.teams, a.enricher, logger.Named("command"))
		b, err := bot.New(bot.Options{
			Token:           cfg.Discord.Token,
			ResourceGuildID: cfg.Discord.GuildID,
			DefaultLanguage: a.lang,
		}, builder, logger.Named("bot"))
		if err != nil {
			return err
		}

		return b.Run(ctx)
	},
}
