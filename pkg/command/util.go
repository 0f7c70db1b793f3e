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

var ErrCommandFormat = errors.New("invalid command format")

func message(format string, args ...any) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf(format, args...),
	}
}

// lookupPokemon accepts a dataset name or a pokedex number.
func lookupPokemon(dex *model.Dex, name string) (*model.Pokemon, error) {
	pokemon, err := dex.ByName(name)
	if err == nil {
		return pokemon, nil
	}

	number, convErr := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(name), "#"))
	if convErr != nil {
		return nil, err
	}

	return dex.ByNumber(number)
}

func searchChoices[T model.Localizer](
	ctx context.Context,
	lang model.Language,
	s searcher[T],
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	results, err := s.Search(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while searching for matching resources: %w", err)
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(results))
	for i, res := range results {
		name, err := res.LocalizedName(ctx, lang)
		if err != nil {
			return nil, fmt.Errorf("error while getting localized name for resource: %w", err)
		}

		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: s.Value(res),
		}
	}

	return choices, nil
}

func followUpButton[T any](cmdName string, options T, button discordgo.Button) (discordgo.Button, error) {
	id, err := customID(followUp[T]{Options: options}, cmdName)
	if err != nil {
		return button, fmt.Errorf("could not create follow-up to %q: %w", cmdName, err)
	}

	button.CustomID = id
	if button.Style == 0 {
		button.Style = discordgo.SecondaryButton
	}

	return button, nil
}

func (p paginator[T]) pageButtons(cmdName string, hasNext bool) (*discordgo.ActionsRow, error) {
	if p.Page.Offset == 0 && !hasNext {
		return nil, nil
	}

	phome := paginator[T]{
		Options: p.Options,
		Page: Page{
			Limit:  p.Page.Limit,
			Offset: 0,
		},
	}
	homeID, err := customID(phome, cmdName)
	if err != nil {
		return nil, fmt.Errorf("failed to create first page button: %w", err)
	}
	homeButton := discordgo.Button{
		Style:    discordgo.PrimaryButton,
		Label:    "⏮",
		CustomID: homeID,
		Disabled: p.Page.Offset == 0,
	}

	prevOffset := p.Page.Offset - p.Page.Limit
	if prevOffset < 0 {
		prevOffset = 0
	}
	pprev := paginator[T]{
		Options: p.Options,
		Page: Page{
			Limit:  p.Page.Limit,
			Offset: prevOffset,
		},
	}
	prevID, err := customID(pprev, cmdName)
	if err != nil {
		return nil, fmt.Errorf("failed to create previous button: %w", err)
	}
	prevButton := discordgo.Button{
		Style:    discordgo.PrimaryButton,
		Label:    "⏴",
		CustomID: prevID,
		Disabled: p.Page.Offset == 0,
	}

	pnext := paginator[T]{
		Options: p.Options,
		Page: Page{
			Limit:  p.Page.Limit,
			Offset: p.Page.Offset + p.Page.Limit,
		},
	}
	nextID, err := customID(pnext, cmdName)
	if err != nil {
		return nil, fmt.Errorf("failed to create next button: %w", err)
	}
	nextButton := discordgo.Button{
		Style:    discordgo.PrimaryButton,
		Label:    "⏵",
		CustomID: nextID,
		Disabled: !hasNext,
	}

	return &discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			homeButton,
			prevButton,
			nextButton,
		},
	}, nil
}

type efficacyNames struct {
	doubleStrong string
	strong       string
	weak         string
	doubleWeak   string
	immune       string
}

// efficaciesToFields groups a defense profile into one embed field per
// damage bucket. Multipliers between buckets round toward neutral.
func efficaciesToFields(profile model.DefenseProfile, names efficacyNames, emojis *Emojis) []*discordgo.MessageEmbedField {
	var doubleStrengths, strengths, weaks, doubleWeaks, immunes []string

	for _, eff := range profile.Weaknesses {
		emoji := emojis.Emoji(eff.Type.String())
		if eff.Level() >= model.DoubleSuperEffective {
			doubleStrengths = append(doubleStrengths, emoji)
		} else {
			strengths = append(strengths, emoji)
		}
	}
	for _, eff := range profile.Resistances {
		emoji := emojis.Emoji(eff.Type.String())
		if eff.Level() <= model.DoubleNotVeryEffective {
			doubleWeaks = append(doubleWeaks, emoji)
		} else {
			weaks = append(weaks, emoji)
		}
	}
	for _, typ := range profile.Immunities {
		immunes = append(immunes, emojis.Emoji(typ.String()))
	}

	fields := make([]*discordgo.MessageEmbedField, 0, 5)
	add := func(name string, values []string) {
		if len(values) > 0 {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:  name,
				Value: strings.Join(values, " "),
			})
		}
	}
	add(names.doubleStrong, doubleStrengths)
	add(names.strong, strengths)
	add(names.weak, weaks)
	add(names.doubleWeak, doubleWeaks)
	add(names.immune, immunes)

	if len(fields) == 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Neutral",
			Value: "_Takes neutral damage from every type_",
		})
	}

	return fields
}

func typeEmojis(pokemon *model.Pokemon, emojis *Emojis) string {
	types := pokemon.Types()
	strs := make([]string, len(types))
	for i, typ := range types {
		strs[i] = emojis.Emoji(typ.String())
	}

	return strings.Join(strs, " ")
}

var statLabels = [model.StatCount]string{
	model.StatHP:        "HP",
	model.StatAttack:    "Attack",
	model.StatDefense:   "Defense",
	model.StatSpAttack:  "Sp. Atk",
	model.StatSpDefense: "Sp. Def",
	model.StatSpeed:     "Speed",
}
