package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type browseOptions struct {
	Query *string `option:"query"`
}

func (builder *Builder) browsePage(
	_ context.Context,
	guild *Guild,
	_ *discordgo.InteractionCreate,
	p paginator[browseOptions],
) (*discordgo.InteractionResponseData, error) {
	var query string
	if p.Options.Query != nil {
		query = *p.Options.Query
	}

	page := builder.pokedex.Browse(query, p.Page.Offset/p.Page.Limit+1, p.Page.Limit)
	if page.Count == 0 {
		return message("No Pokemon found matching %q.", query), nil
	}

	lang := guild.Language()
	lines := make([]string, len(page.Pokemon))
	for i, pokemon := range page.Pokemon {
		lines[i] = fmt.Sprintf("`#%03d` %s %s",
			pokemon.Number,
			builder.enricher.Details(pokemon, lang).Name,
			typeEmojis(pokemon, builder.emojis),
		)
	}

	title := "Pokedex"
	if query != "" {
		title = fmt.Sprintf("Pokedex: %q", query)
	}

	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: strings.Join(lines, "\n"),
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("Page %d of %d · %d Pokemon", page.Page, page.TotalPages, page.Count),
				},
			},
		},
	}

	buttons, err := p.pageButtons("browse", page.Page < page.TotalPages)
	if err != nil {
		return nil, fmt.Errorf("could not create page buttons: %w", err)
	}
	if buttons != nil {
		data.Components = []discordgo.MessageComponent{buttons}
	}

	return data, nil
}

func (builder *Builder) browse() (Command, error) {
	return command[browseOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "browse",
			Description: "Page through the Pokedex.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "Only list Pokemon whose name contains this",
					Required:    false,
				},
			},
		},
		paginate: builder.browsePage,
		limit:    &builder.pageLimit,
	}, nil
}
