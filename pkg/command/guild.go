package command

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/pokeanalytics/pkg/model"
)

// Guild is the per-server state commands run against. Direct messages get a
// Guild of their own with an empty ID.
type Guild struct {
	ID string

	mu       sync.RWMutex
	language model.Language
}

func NewGuild(id string, lang model.Language) *Guild {
	return &Guild{ID: id, language: lang}
}

func (guild *Guild) Language() model.Language {
	guild.mu.RLock()
	defer guild.mu.RUnlock()

	return guild.language
}

func (guild *Guild) SetLanguage(lang model.Language) {
	guild.mu.Lock()
	defer guild.mu.Unlock()

	guild.language = lang
}

var ErrNoUser = errors.New("interaction has no user")

// interactionUser is the member who ran the command in a guild, or the user
// in a direct message.
func interactionUser(interaction *discordgo.InteractionCreate) (*discordgo.User, error) {
	switch {
	case interaction.Member != nil && interaction.Member.User != nil:
		return interaction.Member.User, nil
	case interaction.User != nil:
		return interaction.User, nil
	default:
		return nil, fmt.Errorf("interaction %q: %w", interaction.ID, ErrNoUser)
	}
}
