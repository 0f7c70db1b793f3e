package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/pokeanalytics/pkg/command"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testBot(t *testing.T, opts Options) *Bot {
	t.Helper()

	dex, err := model.NewDex(nil)
	require.NoError(t, err)

	bot, err := New(opts, command.NewBuilder(dex, nil, nil, zaptest.NewLogger(t)), zaptest.NewLogger(t))
	require.NoError(t, err)
	return bot
}

func TestGuildLanguage(t *testing.T) {
	bot := testBot(t, Options{DefaultLanguage: model.English})

	fr := bot.guild("fr-guild", discordgo.French)
	assert.Equal(t, model.LocalizationCodeFrench, fr.Language().Code())
	assert.Same(t, fr, bot.guild("fr-guild", discordgo.EnglishUS))

	dm := bot.guild("", "")
	assert.Equal(t, model.LocalizationCodeEnglish, dm.Language().Code())

	fr.SetLanguage(model.English)
	assert.Equal(t, model.LocalizationCodeEnglish, bot.guild("fr-guild", "").Language().Code())

	bot.removeGuild(&discordgo.Guild{ID: "fr-guild"})
	assert.Equal(t, model.LocalizationCodeFrench, bot.guild("fr-guild", discordgo.French).Language().Code())
}

func TestAddResourceGuild(t *testing.T) {
	bot := testBot(t, Options{ResourceGuildID: "emojis"})

	bot.addGuild(&discordgo.Guild{
		ID:   "emojis",
		Name: "Type Emojis",
		Emojis: []*discordgo.Emoji{
			{ID: "1", Name: "fire1"},
			{ID: "2", Name: "fire2"},
		},
	})
	assert.Equal(t, "<:fire1:1><:fire2:2>", bot.builder.Emojis().Emoji("fire"))

	bot.addGuild(&discordgo.Guild{ID: "other", Emojis: []*discordgo.Emoji{{ID: "3", Name: "water1"}}})
	assert.Equal(t, "`WATER`", bot.builder.Emojis().Emoji("water"))
}

func TestCommand(t *testing.T) {
	bot := testBot(t, Options{})

	cmd, err := bot.command("team")
	require.NoError(t, err)
	assert.Equal(t, "team", cmd.Name())

	_, err = bot.command("learnset")
	assert.ErrorIs(t, err, ErrNoMatchingCommand)
}
