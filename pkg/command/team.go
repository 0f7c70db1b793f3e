package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/team"
)

type teamMemberOptions struct {
	Name discordField[string] `option:"pokemon"`
}

type teamOptions struct {
	Show     *struct{}          `option:"show"`
	Add      *teamMemberOptions `option:"add"`
	Remove   *teamMemberOptions `option:"remove"`
	Clear    *struct{}          `option:"clear"`
	Random   *struct{}          `option:"random"`
	Analysis *struct{}          `option:"analysis"`
}

func (builder *Builder) teamHandle(
	ctx context.Context,
	guild *Guild,
	interaction *discordgo.InteractionCreate,
	opt *teamOptions,
) (*discordgo.InteractionResponseData, error) {
	user, err := interactionUser(interaction)
	if err != nil {
		return nil, err
	}
	owner := user.ID
	lang := guild.Language()

	switch {
	case opt.Show != nil:
		roster, err := builder.teams.Roster(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("could not load team for %q: %w", owner, err)
		}
		return builder.rosterResponse(roster, lang, ""), nil

	case opt.Add != nil:
		pokemon, err := lookupPokemon(builder.pokedex, opt.Add.Name.Value)
		if errors.Is(err, model.ErrNoPokemon) {
			return message("No Pokemon found with that name."), nil
		} else if err != nil {
			return nil, fmt.Errorf("error while looking up pokemon %q: %w", opt.Add.Name.Value, err)
		}

		roster, changed, err := builder.teams.Add(ctx, owner, pokemon.Number)
		if err != nil {
			return nil, fmt.Errorf("could not add to team for %q: %w", owner, err)
		}

		name := builder.enricher.Details(pokemon, lang).Name
		switch {
		case changed:
			return builder.rosterResponse(roster, lang, fmt.Sprintf("Added %s.", name)), nil
		case roster.Contains(pokemon.Number):
			return message("%s is already on your team.", name), nil
		default:
			return message("Your team already has %d Pokemon.", team.MaxSize), nil
		}

	case opt.Remove != nil:
		pokemon, err := lookupPokemon(builder.pokedex, opt.Remove.Name.Value)
		if errors.Is(err, model.ErrNoPokemon) {
			return message("No Pokemon found with that name."), nil
		} else if err != nil {
			return nil, fmt.Errorf("error while looking up pokemon %q: %w", opt.Remove.Name.Value, err)
		}

		roster, changed, err := builder.teams.Remove(ctx, owner, pokemon.Number)
		if err != nil {
			return nil, fmt.Errorf("could not remove from team for %q: %w", owner, err)
		}

		name := builder.enricher.Details(pokemon, lang).Name
		if !changed {
			return message("%s is not on your team.", name), nil
		}
		return builder.rosterResponse(roster, lang, fmt.Sprintf("Removed %s.", name)), nil

	case opt.Clear != nil:
		_, err := builder.teams.Clear(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("could not clear team for %q: %w", owner, err)
		}
		return message("Your team has been cleared."), nil

	case opt.Random != nil:
		roster, changed, err := builder.teams.Random(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("could not generate team for %q: %w", owner, err)
		}
		if !changed {
			return message("Clear your team before generating a random one."), nil
		}
		return builder.rosterResponse(roster, lang, "Generated a random team."), nil

	case opt.Analysis != nil:
		analysis, err := builder.teams.Analyze(ctx, owner)
		if errors.Is(err, team.ErrEmptyRoster) {
			return message("Your team is empty. Add Pokemon with `/team add`."), nil
		} else if err != nil {
			return nil, fmt.Errorf("could not analyze team for %q: %w", owner, err)
		}
		return builder.analysisResponse(analysis), nil

	default:
		return nil, fmt.Errorf("unrecognized subcommand for command \"team\": %w", ErrCommandFormat)
	}
}

func (builder *Builder) rosterResponse(roster team.Roster, lang model.Language, content string) *discordgo.InteractionResponseData {
	if roster.Empty() {
		return message(strings.TrimSpace(content + "\nYour team is empty."))
	}

	fields := make([]*discordgo.MessageEmbedField, roster.Len())
	for i, p := range roster.Members() {
		builder.enricher.Request(p)
		fields[i] = &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("#%03d %s", p.Number, builder.enricher.Details(p, lang).Name),
			Value:  typeEmojis(p, builder.emojis),
			Inline: true,
		}
	}

	return &discordgo.InteractionResponseData{
		Content: content,
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Team",
				Description: fmt.Sprintf("%d/%d", roster.Len(), team.MaxSize),
				Fields:      fields,
			},
		},
	}
}

func (builder *Builder) analysisResponse(analysis *team.Analysis) *discordgo.InteractionResponseData {
	byLevel := make(map[team.VulnerabilityLevel][]string)
	for _, w := range analysis.Weaknesses {
		if w.Vulnerability != team.VulnerabilityResistant {
			byLevel[w.Vulnerability] = append(byLevel[w.Vulnerability],
				fmt.Sprintf("%s %.2gx", builder.emojis.Emoji(w.Type.String()), w.Multiplier))
		}
	}

	covered := make([]team.Coverage, 0, len(analysis.Coverage))
	var uncovered []string
	for _, c := range analysis.Coverage {
		if c.Count > 0 {
			covered = append(covered, c)
		} else {
			uncovered = append(uncovered, builder.emojis.Emoji(c.Type.String()))
		}
	}
	sort.SliceStable(covered, func(i, j int) bool {
		return covered[i].Count > covered[j].Count
	})
	coverage := make([]string, len(covered))
	for i, c := range covered {
		coverage[i] = fmt.Sprintf("%s ×%d", builder.emojis.Emoji(c.Type.String()), c.Count)
	}

	composition := make([]string, len(analysis.Composition))
	for i, tally := range analysis.Composition {
		composition[i] = fmt.Sprintf("%s %d", builder.emojis.Emoji(tally.Type.String()), tally.Count)
	}

	stats := make([]string, len(analysis.StatDistribution))
	for i, series := range analysis.StatDistribution {
		lo, hi, sum := series.Values[0], series.Values[0], 0
		for _, v := range series.Values {
			lo, hi, sum = min(lo, v), max(hi, v), sum+v
		}
		stats[i] = fmt.Sprintf("`%-7s` %3d–%-3d avg %d", statLabels[series.Stat], lo, hi, sum/len(series.Values))
	}

	orNone := func(values []string, sep string) string {
		if len(values) == 0 {
			return "_None_"
		}
		return strings.Join(values, sep)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Team Analysis",
				Description: fmt.Sprintf("%d/%d members", len(analysis.Members), team.MaxSize),
				Fields: []*discordgo.MessageEmbedField{
					{Name: "High Vulnerability", Value: orNone(byLevel[team.VulnerabilityHigh], " ")},
					{Name: "Moderate Vulnerability", Value: orNone(byLevel[team.VulnerabilityModerate], " ")},
					{Name: "Super-effective Coverage", Value: orNone(coverage, " ")},
					{Name: "No Coverage", Value: orNone(uncovered, " ")},
					{Name: "Composition", Value: orNone(composition, " ")},
					{Name: "Base Stats", Value: strings.Join(stats, "\n")},
				},
			},
		},
	}
}

func (builder *Builder) teamComplete(
	ctx context.Context,
	guild *Guild,
	interaction *discordgo.InteractionCreate,
	opt *teamOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	switch {
	case opt.Add != nil:
		return builder.pokemonChoices(ctx, guild, opt.Add.Name)
	case opt.Remove != nil && opt.Remove.Name.Focused:
		user, err := interactionUser(interaction)
		if err != nil {
			return nil, err
		}
		roster, err := builder.teams.Roster(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("could not load team for %q: %w", user.ID, err)
		}

		s := rosterSearcher{
			roster:   roster,
			enricher: builder.enricher,
			query:    opt.Remove.Name.Value,
			limit:    builder.autocompleteLimit,
		}
		return searchChoices[pokemonResult](ctx, guild.Language(), s)
	default:
		return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
	}
}

func (builder *Builder) team() (Command, error) {
	subcommand := func(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        name,
			Description: description,
			Options:     options,
		}
	}

	return command[teamOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "team",
			Description: "Build and analyze your team of up to six Pokemon.",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("show", "Show your team"),
				subcommand("add", "Add a Pokemon to your team", pokemonOption("Pokemon to add")),
				subcommand("remove", "Remove a Pokemon from your team", pokemonOption("Pokemon to remove")),
				subcommand("clear", "Remove every Pokemon from your team"),
				subcommand("random", "Fill an empty team with random Pokemon"),
				subcommand("analysis", "Analyze type coverage, weaknesses and stats"),
			},
		},
		handle:       builder.teamHandle,
		autocomplete: builder.teamComplete,
	}, nil
}
