// Package pokeapi is a small client for the public PokeAPI REST service.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/model/sprite"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

var ErrNotFound = errors.New("resource not found")

var ErrUnexpectedStatus = errors.New("unexpected status")

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("could not build request for %q: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request for %q failed: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%q: %w", path, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%q returned %d: %w", path, resp.StatusCode, ErrUnexpectedStatus)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("could not decode response for %q: %w", path, err)
	}

	return nil
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Pokemon struct {
	ID      int                   `json:"id"`
	Name    string                `json:"name"`
	Sprites sprite.PokemonSprites `json:"sprites"`
}

func (c *Client) Pokemon(ctx context.Context, name string) (*Pokemon, error) {
	var pokemon Pokemon
	err := c.get(ctx, "/pokemon/"+url.PathEscape(APIName(name)), &pokemon)
	if err != nil {
		return nil, fmt.Errorf("error while getting pokemon %q: %w", name, err)
	}

	return &pokemon, nil
}

type Name struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

type FlavorText struct {
	FlavorText   string        `json:"flavor_text"`
	Language     NamedResource `json:"language"`
	Version      NamedResource `json:"version"`
	VersionGroup NamedResource `json:"version_group"`
}

type Species struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	Names             []Name       `json:"names"`
	Genera            []Genus      `json:"genera"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

func (c *Client) Species(ctx context.Context, number int) (*Species, error) {
	var species Species
	err := c.get(ctx, "/pokemon-species/"+strconv.Itoa(number), &species)
	if err != nil {
		return nil, fmt.Errorf("error while getting species %d: %w", number, err)
	}

	return &species, nil
}

func (species *Species) LocalizedName(code model.LocalizationCode) (string, bool) {
	for _, n := range species.Names {
		if n.Language.Name == string(code) {
			return n.Name, true
		}
	}

	return "", false
}

func (species *Species) LocalizedGenus(code model.LocalizationCode) (string, bool) {
	for _, g := range species.Genera {
		if g.Language.Name == string(code) {
			return g.Genus, true
		}
	}

	return "", false
}

// Flavor text from these games is tried in order before any other entry.
var (
	PreferredVersions      = []string{"sword", "shield"}
	PreferredVersionGroups = []string{"sword-shield"}
)

// LocalizedFlavorText returns an entry from one of PreferredVersions, or
// failing that the first entry in the language.
func (species *Species) LocalizedFlavorText(code model.LocalizationCode) (string, bool) {
	return flavorText(species.FlavorTextEntries, code, PreferredVersions, func(ft FlavorText) string {
		return ft.Version.Name
	})
}

type Effect struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

type Ability struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	Names             []Name       `json:"names"`
	EffectEntries     []Effect     `json:"effect_entries"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

func (c *Client) Ability(ctx context.Context, name string) (*Ability, error) {
	var ability Ability
	err := c.get(ctx, "/ability/"+url.PathEscape(APIName(name)), &ability)
	if err != nil {
		return nil, fmt.Errorf("error while getting ability %q: %w", name, err)
	}

	return &ability, nil
}

// LocalizedDescription prefers the short effect text and falls back to the
// newest flavor text, since effect text is only published in a few languages.
func (ability *Ability) LocalizedDescription(code model.LocalizationCode) (string, bool) {
	for _, e := range ability.EffectEntries {
		if e.Language.Name == string(code) && e.ShortEffect != "" {
			return e.ShortEffect, true
		}
	}

	entries := make([]FlavorText, len(ability.FlavorTextEntries))
	for i, ft := range ability.FlavorTextEntries {
		entries[len(entries)-1-i] = ft
	}
	return flavorText(entries, code, PreferredVersionGroups, func(ft FlavorText) string {
		return ft.VersionGroup.Name
	})
}

func flavorText(
	entries []FlavorText,
	code model.LocalizationCode,
	preferred []string,
	version func(FlavorText) string,
) (string, bool) {
	var fallback *FlavorText
	for _, want := range preferred {
		for i := range entries {
			ft := &entries[i]
			if ft.Language.Name != string(code) {
				continue
			}
			if fallback == nil {
				fallback = ft
			}
			if version(*ft) == want {
				return cleanFlavorText(ft.FlavorText), true
			}
		}
	}

	if fallback == nil {
		return "", false
	}

	return cleanFlavorText(fallback.FlavorText), true
}

// Flavor text keeps the line breaks and form feeds of the game text box.
func cleanFlavorText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// APIName converts a dataset name into the slug PokeAPI uses for it, e.g.
// "Nidoran♀" to "nidoran-f" and "Mr. Mime" to "mr-mime".
func APIName(name string) string {
	// transformers carry state, so build one per call
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(stripMarks, name)
	if err != nil {
		s = name
	}

	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(
		"♀", "-f",
		"♂", "-m",
		"'", "",
		"’", "",
		".", "",
		":", "",
	).Replace(s)

	return strings.Join(strings.Fields(s), "-")
}
