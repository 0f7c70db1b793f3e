package command

import (
	"context"
	"strings"

	"github.com/notjagan/pokeanalytics/pkg/enrich"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/team"
)

type searcher[T model.Localizer] interface {
	Search(context.Context) ([]T, error)
	Value(T) any
}

type pokemonResult struct {
	model.Localizer
	pokemon *model.Pokemon
}

func localize(enricher *enrich.Enricher, pokemon []*model.Pokemon) []pokemonResult {
	results := make([]pokemonResult, len(pokemon))
	for i, p := range pokemon {
		results[i] = pokemonResult{Localizer: enricher.Localizer(p), pokemon: p}
	}

	return results
}

type pokemonSearcher struct {
	dex      *model.Dex
	enricher *enrich.Enricher
	query    string
	limit    int
}

func (s pokemonSearcher) Search(context.Context) ([]pokemonResult, error) {
	return localize(s.enricher, s.dex.Search(s.query, s.limit)), nil
}

func (pokemonSearcher) Value(res pokemonResult) any {
	return res.pokemon.Name
}

// rosterSearcher completes from the members already on a roster.
type rosterSearcher struct {
	roster   team.Roster
	enricher *enrich.Enricher
	query    string
	limit    int
}

func (s rosterSearcher) Search(context.Context) ([]pokemonResult, error) {
	query := strings.ToLower(strings.TrimSpace(s.query))
	matches := make([]*model.Pokemon, 0, s.roster.Len())
	for _, p := range s.roster.Members() {
		if len(matches) == s.limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), query) {
			matches = append(matches, p)
		}
	}

	return localize(s.enricher, matches), nil
}

func (rosterSearcher) Value(res pokemonResult) any {
	return res.pokemon.Name
}

type languageSearcher struct{}

func (languageSearcher) Search(context.Context) ([]model.Language, error) {
	return model.SupportedLanguages(), nil
}

func (languageSearcher) Value(lang model.Language) any {
	return string(lang.Code())
}
