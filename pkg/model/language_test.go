package model

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, LocalizationCodeFrench, MatchLanguage("fr-CA,fr;q=0.9,en;q=0.8").Code())
	assert.Equal(t, LocalizationCodeEnglish, MatchLanguage("en-US").Code())
	assert.Equal(t, LocalizationCodeEnglish, MatchLanguage("ja").Code())
	assert.Equal(t, LocalizationCodeEnglish, MatchLanguage().Code())
	assert.Equal(t, LocalizationCodeFrench, LanguageFromLocale(discordgo.French).Code())
}

func TestLanguageZeroValue(t *testing.T) {
	assert.Equal(t, LocalizationCodeEnglish, Language{}.Code())
}

func TestLanguageByLocalizationCode(t *testing.T) {
	lang, err := LanguageByLocalizationCode("fr")
	require.NoError(t, err)

	name, err := lang.LocalizedName(context.Background(), English)
	require.NoError(t, err)
	assert.Equal(t, "Français", name)

	_, err = LanguageByLocalizationCode("xx")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}
