// Package enrich fills a cache of sprites and localized species data keyed by
// pokedex number. Every read has a deterministic fallback, so callers never
// see an enrichment failure.
package enrich

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/model/sprite"
	"github.com/notjagan/pokeanalytics/pkg/pokeapi"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const DefaultFallbackBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

type Source interface {
	Pokemon(ctx context.Context, name string) (*pokeapi.Pokemon, error)
	Species(ctx context.Context, number int) (*pokeapi.Species, error)
	Ability(ctx context.Context, name string) (*pokeapi.Ability, error)
}

type Options struct {
	FallbackBase string
	Timeout      time.Duration
	Concurrency  int
}

type Details struct {
	Name       string `json:"name"`
	Genus      string `json:"genus"`
	FlavorText string `json:"flavor_text"`
}

type entry struct {
	sprite  sprite.Sprite
	species *pokeapi.Species
}

type abilityKey struct {
	name string
	code model.LocalizationCode
}

type Enricher struct {
	source Source
	opts   Options
	logger *zap.Logger

	mu        sync.RWMutex
	entries   map[int]*entry
	abilities map[abilityKey]string

	group  singleflight.Group
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func New(source Source, opts Options, logger *zap.Logger) *Enricher {
	if opts.FallbackBase == "" {
		opts.FallbackBase = DefaultFallbackBase
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Enricher{
		source:    source,
		opts:      opts,
		logger:    logger,
		entries:   make(map[int]*entry),
		abilities: make(map[abilityKey]string),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Close abandons in-flight fills and waits for their goroutines.
func (e *Enricher) Close() {
	e.cancel()
	e.wg.Wait()
}

// Wait blocks until every fill started by Request has finished.
func (e *Enricher) Wait() {
	e.wg.Wait()
}

func (e *Enricher) entry(number int) entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if ent, ok := e.entries[number]; ok {
		return *ent
	}

	return entry{}
}

func (e *Enricher) update(number int, fn func(*entry)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.entries[number]
	if !ok {
		ent = &entry{}
		e.entries[number] = ent
	}
	fn(ent)
}

// Cached reports whether both the sprite and species data are filled.
func (e *Enricher) Cached(number int) bool {
	ent := e.entry(number)
	return !ent.sprite.IsZero() && ent.species != nil
}

// Request starts a background fill for pokemon and returns immediately. The
// result is cached even if nobody is interested in it any more.
func (e *Enricher) Request(pokemon *model.Pokemon) {
	if e.Cached(pokemon.Number) {
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		ctx, cancel := context.WithTimeout(e.ctx, e.opts.Timeout)
		defer cancel()
		e.Fetch(ctx, pokemon)
	}()
}

// Fetch fills the cache for pokemon synchronously. Concurrent fetches of the
// same pokedex number share one upstream request.
func (e *Enricher) Fetch(ctx context.Context, pokemon *model.Pokemon) {
	ent := e.entry(pokemon.Number)
	if ent.sprite.IsZero() {
		e.fetchSprite(ctx, pokemon)
	}
	if ent.species == nil {
		e.fetchSpecies(ctx, pokemon)
	}
}

func (e *Enricher) fetchSprite(ctx context.Context, pokemon *model.Pokemon) {
	key := "sprite:" + strconv.Itoa(pokemon.Number)
	_, _, _ = e.group.Do(key, func() (any, error) {
		resp, err := e.source.Pokemon(ctx, pokemon.Name)
		if err != nil {
			e.logger.Warn("falling back to default sprite",
				zap.Int("number", pokemon.Number),
				zap.String("name", pokemon.Name),
				zap.Error(err),
			)
			return nil, err
		}

		// A pokemon PokeAPI has no sprite for keeps the fallback for good.
		s, ok := resp.Sprites.Preferred()
		if !ok {
			s = sprite.Fallback(e.opts.FallbackBase, pokemon.Number)
		}

		e.update(pokemon.Number, func(ent *entry) { ent.sprite = s })
		return s, nil
	})
}

func (e *Enricher) fetchSpecies(ctx context.Context, pokemon *model.Pokemon) {
	key := "species:" + strconv.Itoa(pokemon.Number)
	_, _, _ = e.group.Do(key, func() (any, error) {
		species, err := e.source.Species(ctx, pokemon.Number)
		if err != nil {
			e.logger.Warn("species lookup failed",
				zap.Int("number", pokemon.Number),
				zap.Error(err),
			)
			return nil, err
		}

		e.update(pokemon.Number, func(ent *entry) { ent.species = species })
		return species, nil
	})
}

// Prefetch fills the cache for every pokemon before returning, a few at a
// time. It only fails if ctx ends first.
func (e *Enricher) Prefetch(ctx context.Context, pokemon []*model.Pokemon) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)

	for _, p := range pokemon {
		p := p
		g.Go(func() error {
			e.Fetch(gctx, p)
			return gctx.Err()
		})
	}

	err := g.Wait()
	if err != nil {
		return fmt.Errorf("prefetch interrupted: %w", err)
	}

	return nil
}

// Sprite is the cached image URL, or the default sprite for the pokedex number.
func (e *Enricher) Sprite(pokemon *model.Pokemon) sprite.Sprite {
	if s := e.entry(pokemon.Number).sprite; !s.IsZero() {
		return s
	}

	return sprite.Fallback(e.opts.FallbackBase, pokemon.Number)
}

// Details localizes the cached species data, falling back to the dataset's
// own name and classification.
func (e *Enricher) Details(pokemon *model.Pokemon, lang model.Language) Details {
	details := Details{
		Name:  pokemon.Name,
		Genus: pokemon.Classification,
	}

	species := e.entry(pokemon.Number).species
	if species == nil {
		return details
	}

	code := lang.Code()
	if name, ok := species.LocalizedName(code); ok {
		details.Name = name
	}
	if genus, ok := species.LocalizedGenus(code); ok {
		details.Genus = genus
	}
	if text, ok := species.LocalizedFlavorText(code); ok {
		details.FlavorText = text
	}

	return details
}

// AbilityDescription looks up and caches the localized description of an
// ability. It returns "" when none can be found.
func (e *Enricher) AbilityDescription(ctx context.Context, name string, lang model.Language) string {
	key := abilityKey{name: pokeapi.APIName(name), code: lang.Code()}

	e.mu.RLock()
	desc, ok := e.abilities[key]
	e.mu.RUnlock()
	if ok {
		return desc
	}

	v, err, _ := e.group.Do("ability:"+key.name+":"+string(key.code), func() (any, error) {
		ability, err := e.source.Ability(ctx, name)
		if err != nil {
			return "", err
		}

		desc, _ := ability.LocalizedDescription(key.code)
		e.mu.Lock()
		e.abilities[key] = desc
		e.mu.Unlock()

		return desc, nil
	})
	if err != nil {
		e.logger.Warn("ability lookup failed", zap.String("ability", name), zap.Error(err))
		return ""
	}

	return v.(string)
}

type localizedPokemon struct {
	enricher *Enricher
	pokemon  *model.Pokemon
}

func (lp localizedPokemon) LocalizedName(_ context.Context, lang model.Language) (string, error) {
	return lp.enricher.Details(lp.pokemon, lang).Name, nil
}

// Localizer adapts pokemon to model.Localizer using the cache.
func (e *Enricher) Localizer(pokemon *model.Pokemon) model.Localizer {
	return localizedPokemon{enricher: e, pokemon: pokemon}
}
