package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/model/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const speciesJSON = `{
	"id": 25,
	"name": "pikachu",
	"names": [
		{"name": "Pikachu", "language": {"name": "en"}},
		{"name": "ピカチュウ", "language": {"name": "ja"}}
	],
	"genera": [
		{"genus": "Mouse Pokémon", "language": {"name": "en"}},
		{"genus": "Pokémon Souris", "language": {"name": "fr"}}
	],
	"flavor_text_entries": [
		{"flavor_text": "When several of\nthese POKéMON\fgather.", "language": {"name": "en"}, "version": {"name": "red"}},
		{"flavor_text": "Il stocke l'électricité.", "language": {"name": "fr"}, "version": {"name": "x"}},
		{"flavor_text": "Pikachu that can generate\npowerful electricity.", "language": {"name": "en"}, "version": {"name": "sword"}}
	]
}`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/nidoran-f", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{
			"id": 29,
			"name": "nidoran-f",
			"sprites": {
				"front_default": "front/29.png",
				"other": {"official-artwork": {"front_default": "art/29.png"}}
			}
		}`)
	})
	mux.HandleFunc("/pokemon-species/25", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, speciesJSON)
	})
	mux.HandleFunc("/ability/solar-power", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": 94,
			"name": "solar-power",
			"effect_entries": [
				{"effect": "long", "short_effect": "Increases Special Attack in sunshine.", "language": {"name": "en"}}
			],
			"flavor_text_entries": [
				{"flavor_text": "Ancien texte.", "language": {"name": "fr"}, "version_group": {"name": "x-y"}},
				{"flavor_text": "Texte récent.", "language": {"name": "fr"}, "version_group": {"name": "sun-moon"}}
			]
		}`)
	})
	mux.HandleFunc("/pokemon/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/pokemon/garbled", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sprites": `)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestPokemon(t *testing.T) {
	c := New(testServer(t).URL+"/", time.Second)

	pokemon, err := c.Pokemon(context.Background(), "Nidoran♀")
	require.NoError(t, err)
	assert.Equal(t, 29, pokemon.ID)

	s, ok := pokemon.Sprites.Preferred()
	require.True(t, ok)
	assert.Equal(t, sprite.Sprite("art/29.png"), s)
}

func TestPokemonErrors(t *testing.T) {
	c := New(testServer(t).URL, time.Second)
	ctx := context.Background()

	_, err := c.Pokemon(ctx, "missingno")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Pokemon(ctx, "broken")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	_, err = c.Pokemon(ctx, "garbled")
	assert.Error(t, err)
}

func TestSpecies(t *testing.T) {
	c := New(testServer(t).URL, time.Second)

	species, err := c.Species(context.Background(), 25)
	require.NoError(t, err)

	name, ok := species.LocalizedName(model.LocalizationCodeEnglish)
	require.True(t, ok)
	assert.Equal(t, "Pikachu", name)
	_, ok = species.LocalizedName(model.LocalizationCodeFrench)
	assert.False(t, ok)

	genus, ok := species.LocalizedGenus(model.LocalizationCodeFrench)
	require.True(t, ok)
	assert.Equal(t, "Pokémon Souris", genus)

	text, ok := species.LocalizedFlavorText(model.LocalizationCodeEnglish)
	require.True(t, ok)
	assert.Equal(t, "Pikachu that can generate powerful electricity.", text)

	text, ok = species.LocalizedFlavorText(model.LocalizationCodeFrench)
	require.True(t, ok)
	assert.Equal(t, "Il stocke l'électricité.", text)

	_, ok = species.LocalizedFlavorText("de")
	assert.False(t, ok)
}

func TestAbility(t *testing.T) {
	c := New(testServer(t).URL, time.Second)

	ability, err := c.Ability(context.Background(), "Solar Power")
	require.NoError(t, err)

	desc, ok := ability.LocalizedDescription(model.LocalizationCodeEnglish)
	require.True(t, ok)
	assert.Equal(t, "Increases Special Attack in sunshine.", desc)

	desc, ok = ability.LocalizedDescription(model.LocalizationCodeFrench)
	require.True(t, ok)
	assert.Equal(t, "Texte récent.", desc)
}

func TestAPIName(t *testing.T) {
	for in, want := range map[string]string{
		"Bulbasaur":   "bulbasaur",
		"Nidoran♀":    "nidoran-f",
		"Nidoran♂":    "nidoran-m",
		"Mr. Mime":    "mr-mime",
		"Farfetch'd":  "farfetchd",
		"Flabébé":     "flabebe",
		"Type: Null":  "type-null",
		"Solar Power": "solar-power",
	} {
		assert.Equal(t, want, APIName(in), in)
	}
}
