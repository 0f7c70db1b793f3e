package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/pokeanalytics/pkg/model"
)

type dexOptions struct {
	Name discordField[string] `option:"pokemon"`
}

func (builder *Builder) dexHandle(
	ctx context.Context,
	guild *Guild,
	_ *discordgo.InteractionCreate,
	opt *dexOptions,
) (*discordgo.InteractionResponseData, error) {
	pokemon, err := lookupPokemon(builder.pokedex, opt.Name.Value)
	if errors.Is(err, model.ErrNoPokemon) {
		return message("No Pokemon found with that name."), nil
	} else if err != nil {
		return nil, fmt.Errorf("error while looking up pokemon %q: %w", opt.Name.Value, err)
	}

	lang := guild.Language()
	fetchCtx, cancel := context.WithTimeout(ctx, builder.fetchTimeout)
	defer cancel()
	builder.enricher.Fetch(fetchCtx, pokemon)
	details := builder.enricher.Details(pokemon, lang)

	description := details.Genus
	if details.FlavorText != "" {
		description += "\n\n" + details.FlavorText
	}

	fields := make([]*discordgo.MessageEmbedField, 0, 12)

	abilities := "_None_"
	if len(pokemon.Abilities) > 0 {
		abilities = strings.Join(pokemon.Abilities, ", ")
	}
	fields = append(fields, &discordgo.MessageEmbedField{Name: "Abilities", Value: abilities, Inline: true})

	if pokemon.HeightM != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Height",
			Value:  fmt.Sprintf("%.1f m", *pokemon.HeightM),
			Inline: true,
		})
	}
	if pokemon.WeightKg != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Weight",
			Value:  fmt.Sprintf("%.1f kg", *pokemon.WeightKg),
			Inline: true,
		})
	}

	padding := (3 - len(fields)%3) % 3
	for i := 0; i < padding; i++ {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "\u200b",
			Value:  "\u200b",
			Inline: true,
		})
	}

	for _, stat := range model.StatValues() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   statLabels[stat],
			Value:  strconv.Itoa(pokemon.BaseStats.Get(stat)),
			Inline: true,
		})
	}

	weakButton, err := followUpButton("weak", weakOptions{
		Name: discordField[string]{Value: pokemon.Name},
	}, discordgo.Button{Label: "Type Chart"})
	if err != nil {
		return nil, fmt.Errorf("could not create follow-up button for weak: %w", err)
	}

	addButton, err := followUpButton("team", teamOptions{
		Add: &teamMemberOptions{Name: discordField[string]{Value: pokemon.Name}},
	}, discordgo.Button{Label: "Add to Team", Style: discordgo.SuccessButton})
	if err != nil {
		return nil, fmt.Errorf("could not create follow-up button for team: %w", err)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("#%03d %s %s", pokemon.Number, details.Name, typeEmojis(pokemon, builder.emojis)),
				Description: description,
				Thumbnail: &discordgo.MessageEmbedThumbnail{
					URL: string(builder.enricher.Sprite(pokemon)),
				},
				Fields: fields,
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("Generation %d · Base total %d", pokemon.Generation, pokemon.BaseStats.Total()),
				},
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					weakButton,
					addButton,
				},
			},
		},
	}, nil
}

func (builder *Builder) pokemonChoices(
	ctx context.Context,
	guild *Guild,
	field discordField[string],
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	if !field.Focused {
		return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
	}

	s := pokemonSearcher{
		dex:      builder.pokedex,
		enricher: builder.enricher,
		query:    field.Value,
		limit:    builder.autocompleteLimit,
	}
	return searchChoices[pokemonResult](ctx, guild.Language(), s)
}

func pokemonOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "pokemon",
		Description:  description,
		Required:     true,
		Autocomplete: true,
	}
}

func (builder *Builder) dex() (Command, error) {
	return command[dexOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "dex",
			Description: "Look up a Pokemon's data.",
			Options: []*discordgo.ApplicationCommandOption{
				pokemonOption("Name of the Pokemon"),
			},
		},
		handle: builder.dexHandle,
		autocomplete: func(
			ctx context.Context,
			guild *Guild,
			_ *discordgo.InteractionCreate,
			opt *dexOptions,
		) ([]*discordgo.ApplicationCommandOptionChoice, error) {
			return builder.pokemonChoices(ctx, guild, opt.Name)
		},
	}, nil
}
