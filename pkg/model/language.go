package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
)

type LocalizationCode string

const (
	LocalizationCodeEnglish LocalizationCode = "en"
	LocalizationCodeFrench  LocalizationCode = "fr"
)

var AllLocalizationCodes = []LocalizationCode{
	LocalizationCodeEnglish,
	LocalizationCodeFrench,
}

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is the display language threaded through every localized lookup.
// The zero value is English.
type Language struct {
	Tag language.Tag
}

var (
	English = Language{Tag: language.English}
	French  = Language{Tag: language.French}
)

var supported = []Language{English, French}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

var endonyms = map[LocalizationCode]string{
	LocalizationCodeEnglish: "English",
	LocalizationCodeFrench:  "Français",
}

// Code is the PokeAPI language name for the language.
func (lang Language) Code() LocalizationCode {
	if lang.Tag == language.Und {
		return LocalizationCodeEnglish
	}

	base, _ := lang.Tag.Base()
	return LocalizationCode(base.String())
}

func (lang Language) String() string {
	return string(lang.Code())
}

func (lang Language) LocalizedName(context.Context, Language) (string, error) {
	name, ok := endonyms[lang.Code()]
	if !ok {
		return "", fmt.Errorf("no name for language %q: %w", lang.Code(), ErrUnsupportedLanguage)
	}

	return name, nil
}

func SupportedLanguages() []Language {
	langs := make([]Language, len(supported))
	copy(langs, supported)
	return langs
}

func LanguageByLocalizationCode(code LocalizationCode) (Language, error) {
	for _, lang := range supported {
		if lang.Code() == code {
			return lang, nil
		}
	}

	return Language{}, fmt.Errorf("localization code %q: %w", code, ErrUnsupportedLanguage)
}

// MatchLanguage picks the closest supported language for an Accept-Language
// header or a bare language code, falling back to English.
func MatchLanguage(accept ...string) Language {
	tag, _ := language.MatchStrings(matcher, accept...)
	base, _ := tag.Base()
	lang, err := LanguageByLocalizationCode(LocalizationCode(base.String()))
	if err != nil {
		return English
	}

	return lang
}

func LanguageFromLocale(locale discordgo.Locale) Language {
	return MatchLanguage(string(locale))
}
