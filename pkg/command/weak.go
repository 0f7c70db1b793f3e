package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/pokeanalytics/pkg/model"
)

type weakOptions struct {
	Name discordField[string] `option:"pokemon"`
}

func (builder *Builder) weakHandle(
	ctx context.Context,
	guild *Guild,
	_ *discordgo.InteractionCreate,
	opt *weakOptions,
) (*discordgo.InteractionResponseData, error) {
	pokemon, err := lookupPokemon(builder.pokedex, opt.Name.Value)
	if errors.Is(err, model.ErrNoPokemon) {
		return message("No Pokemon found with that name."), nil
	} else if err != nil {
		return nil, fmt.Errorf("error while looking up pokemon %q: %w", opt.Name.Value, err)
	}
	builder.enricher.Request(pokemon)

	fields := efficaciesToFields(pokemon.DefenseProfile(), efficacyNames{
		doubleStrong: "Weaknesses (4x)",
		strong:       "Weaknesses (2x)",
		weak:         "Resistances (0.5x)",
		doubleWeak:   "Resistances (0.25x)",
		immune:       "Immunities",
	}, builder.emojis)

	name := builder.enricher.Details(pokemon, guild.Language()).Name
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("%s %s", name, typeEmojis(pokemon, builder.emojis)),
				Description: "Defensive type chart",
				Thumbnail: &discordgo.MessageEmbedThumbnail{
					URL: string(builder.enricher.Sprite(pokemon)),
				},
				Fields: fields,
			},
		},
	}, nil
}

func (builder *Builder) weak() (Command, error) {
	return command[weakOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "weak",
			Description: "View the type chart against a defending Pokemon.",
			Options: []*discordgo.ApplicationCommandOption{
				pokemonOption("Name of the Pokemon"),
			},
		},
		handle: builder.weakHandle,
		autocomplete: func(
			ctx context.Context,
			guild *Guild,
			_ *discordgo.InteractionCreate,
			opt *weakOptions,
		) ([]*discordgo.ApplicationCommandOptionChoice, error) {
			return builder.pokemonChoices(ctx, guild, opt.Name)
		},
	}, nil
}
