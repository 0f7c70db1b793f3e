package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/pokeanalytics/pkg/model"
)

type languageOptions struct {
	LocalizationCode *string `option:"language"`
}

func languageHandle(
	ctx context.Context,
	guild *Guild,
	_ *discordgo.InteractionCreate,
	opt *languageOptions,
) (*discordgo.InteractionResponseData, error) {
	if opt.LocalizationCode == nil {
		current := guild.Language()
		name, err := current.LocalizedName(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("could not localize current language name: %w", err)
		}

		return message("Language is currently %q.", name), nil
	}

	lang, err := model.LanguageByLocalizationCode(model.LocalizationCode(*opt.LocalizationCode))
	if err != nil {
		return nil, fmt.Errorf("error while changing language: %w", err)
	}
	guild.SetLanguage(lang)

	return message("Language successfully changed."), nil
}

func (builder *Builder) language() (Command, error) {
	langChoices, err := searchChoices[model.Language](context.Background(), model.English, languageSearcher{})
	if err != nil {
		return nil, fmt.Errorf("could not get available language choices: %w", err)
	}

	return command[languageOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "language",
			Description: "Get/set the current Pokedex language.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "language",
					Description: "Language to set Pokedex to",
					Required:    false,
					Choices:     langChoices,
				},
			},
		},
		handle: languageHandle,
	}, nil
}
