package command

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Emojis renders a resource as a pair of custom emojis named "<name>1" and
// "<name>2", uploaded side by side to a resource guild. Resources without
// both halves render as plain text.
type Emojis struct {
	mu     sync.RWMutex
	byName map[string]*discordgo.Emoji
}

func (emojis *Emojis) Set(list []*discordgo.Emoji) {
	byName := make(map[string]*discordgo.Emoji, len(list))
	for _, emoji := range list {
		byName[emoji.Name] = emoji
	}

	emojis.mu.Lock()
	defer emojis.mu.Unlock()
	emojis.byName = byName
}

func (emojis *Emojis) Emoji(name string) string {
	emojis.mu.RLock()
	emoji1, ok1 := emojis.byName[name+"1"]
	emoji2, ok2 := emojis.byName[name+"2"]
	emojis.mu.RUnlock()

	if !ok1 || !ok2 {
		return fmt.Sprintf("`%s`", strings.ToUpper(name))
	}

	return fmt.Sprintf("<:%v:%v><:%v:%v>", emoji1.Name, emoji1.ID, emoji2.Name, emoji2.ID)
}
