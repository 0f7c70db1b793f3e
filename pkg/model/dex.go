package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoPokemon = errors.New("no matching pokemon found")

var ErrDuplicatePokemon = errors.New("duplicate pokedex number")

// Dex is the static dataset. It is built once and never mutated, so it is
// safe for concurrent readers.
type Dex struct {
	pokemon  []*Pokemon
	byNumber map[int]*Pokemon
	byName   map[string]*Pokemon
}

func NewDex(pokemon []*Pokemon) (*Dex, error) {
	dex := &Dex{
		pokemon:  make([]*Pokemon, 0, len(pokemon)),
		byNumber: make(map[int]*Pokemon, len(pokemon)),
		byName:   make(map[string]*Pokemon, len(pokemon)),
	}

	for _, p := range pokemon {
		if _, ok := dex.byNumber[p.Number]; ok {
			return nil, fmt.Errorf("pokemon %q has pokedex number %d: %w", p.Name, p.Number, ErrDuplicatePokemon)
		}
		dex.pokemon = append(dex.pokemon, p)
		dex.byNumber[p.Number] = p
		dex.byName[strings.ToLower(p.Name)] = p
	}

	return dex, nil
}

func (dex *Dex) Len() int {
	return len(dex.pokemon)
}

// All returns the records in dataset order. The slice must not be modified.
func (dex *Dex) All() []*Pokemon {
	return dex.pokemon
}

func (dex *Dex) ByNumber(number int) (*Pokemon, error) {
	p, ok := dex.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("pokedex number %d: %w", number, ErrNoPokemon)
	}

	return p, nil
}

func (dex *Dex) ByName(name string) (*Pokemon, error) {
	p, ok := dex.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("pokemon %q: %w", name, ErrNoPokemon)
	}

	return p, nil
}

// Search returns up to limit records whose name contains query, ignoring
// case, in dataset order. A blank query matches nothing.
func (dex *Dex) Search(query string, limit int) []*Pokemon {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}

	results := make([]*Pokemon, 0, limit)
	for _, p := range dex.pokemon {
		if strings.Contains(strings.ToLower(p.Name), query) {
			results = append(results, p)
			if len(results) == limit {
				break
			}
		}
	}

	return results
}

type Page struct {
	Pokemon    []*Pokemon `json:"pokemon"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Count      int        `json:"count"`
}

// Browse filters by name substring (blank query keeps everything) and returns
// the requested 1-based page. Out of range pages come back empty.
func (dex *Dex) Browse(query string, page int, perPage int) Page {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := dex.pokemon
	if query != "" {
		filtered = make([]*Pokemon, 0)
		for _, p := range dex.pokemon {
			if strings.Contains(strings.ToLower(p.Name), query) {
				filtered = append(filtered, p)
			}
		}
	}

	if perPage <= 0 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	totalPages := len(filtered) / perPage
	if len(filtered)%perPage != 0 {
		totalPages++
	}
	result := Page{
		Pokemon:    []*Pokemon{},
		Page:       page,
		TotalPages: totalPages,
		Count:      len(filtered),
	}
	if page > totalPages {
		return result
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}
	result.Pokemon = filtered[start:end]

	return result
}
