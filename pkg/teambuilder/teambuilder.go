// Package teambuilder keeps one roster per owner, persists every change and
// runs the analytics over it.
package teambuilder

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/store"
	"github.com/notjagan/pokeanalytics/pkg/team"
	"go.uber.org/zap"
)

var ErrNoOwner = errors.New("roster owner must not be empty")

type RosterStore interface {
	SaveRoster(ctx context.Context, owner string, numbers []int) error
	LoadRoster(ctx context.Context, owner string) ([]int, error)
	DeleteRoster(ctx context.Context, owner string) error
}

type Enricher interface {
	Request(pokemon *model.Pokemon)
}

type owned struct {
	mu     sync.Mutex
	loaded bool
	roster team.Roster
}

type Service struct {
	Dex      *model.Dex
	Store    RosterStore
	Enricher Enricher
	Chart    model.TypeChart
	Logger   *zap.Logger

	randMu sync.Mutex
	Rand   *rand.Rand

	mu     sync.Mutex
	owners map[string]*owned
}

func New(dex *model.Dex, rosters RosterStore, enricher Enricher, logger *zap.Logger) *Service {
	return &Service{
		Dex:      dex,
		Store:    rosters,
		Enricher: enricher,
		Chart:    model.DefaultTypeChart,
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		owners:   make(map[string]*owned),
	}
}

func (svc *Service) owner(owner string) (*owned, error) {
	if owner == "" {
		return nil, ErrNoOwner
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.owners == nil {
		svc.owners = make(map[string]*owned)
	}
	o, ok := svc.owners[owner]
	if !ok {
		o = &owned{}
		svc.owners[owner] = o
	}

	return o, nil
}

// with runs fn holding the owner's lock, after loading the saved roster on
// first use. A missing or malformed saved roster starts out empty. Any other
// load error serves an empty roster for this call only and the load is
// retried on the next one.
func (svc *Service) with(ctx context.Context, owner string, fn func(o *owned) error) error {
	o, err := svc.owner(owner)
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		o.roster, o.loaded = svc.load(ctx, owner)
		if o.loaded {
			svc.enrich(o.roster.Members())
		}
	}

	return fn(o)
}

// load reports false when the saved roster could not be read and may still
// exist.
func (svc *Service) load(ctx context.Context, owner string) (team.Roster, bool) {
	numbers, err := svc.Store.LoadRoster(ctx, owner)
	switch {
	case errors.Is(err, store.ErrNoRoster):
		return team.Roster{}, true
	case errors.Is(err, store.ErrCorruptRoster):
		svc.Logger.Warn("discarding malformed saved roster", zap.String("owner", owner), zap.Error(err))
		return team.Roster{}, true
	case err != nil:
		svc.Logger.Warn("could not load saved roster", zap.String("owner", owner), zap.Error(err))
		return team.Roster{}, false
	}

	roster := team.FromNumbers(svc.Dex, numbers)
	if roster.Len() != len(numbers) {
		svc.Logger.Warn("dropped unknown members from saved roster",
			zap.String("owner", owner),
			zap.Ints("saved", numbers),
			zap.Ints("kept", roster.Numbers()),
		)
	}

	return roster, true
}

func (svc *Service) save(ctx context.Context, owner string, roster team.Roster) {
	var err error
	if roster.Empty() {
		err = svc.Store.DeleteRoster(ctx, owner)
	} else {
		err = svc.Store.SaveRoster(ctx, owner, roster.Numbers())
	}
	if err != nil {
		svc.Logger.Error("could not persist roster", zap.String("owner", owner), zap.Error(err))
	}
}

func (svc *Service) enrich(pokemon []*model.Pokemon) {
	if svc.Enricher == nil {
		return
	}
	for _, p := range pokemon {
		svc.Enricher.Request(p)
	}
}

// update applies change to the owner's roster and persists the result if it
// differs. It reports whether the roster changed.
func (svc *Service) update(
	ctx context.Context,
	owner string,
	change func(team.Roster) team.Roster,
) (team.Roster, bool, error) {
	var (
		roster  team.Roster
		changed bool
	)
	err := svc.with(ctx, owner, func(o *owned) error {
		before := o.roster
		roster = change(before)
		o.roster = roster

		changed = !sameMembers(before, roster)
		if !changed {
			return nil
		}

		if o.loaded {
			svc.save(ctx, owner, roster)
		} else {
			svc.Logger.Warn("not persisting roster until the saved one can be loaded", zap.String("owner", owner))
		}
		svc.enrich(added(before, roster))
		return nil
	})

	return roster, changed, err
}

func sameMembers(a, b team.Roster) bool {
	x, y := a.Numbers(), b.Numbers()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

func added(before, after team.Roster) []*model.Pokemon {
	var pokemon []*model.Pokemon
	for _, p := range after.Members() {
		if !before.Contains(p.Number) {
			pokemon = append(pokemon, p)
		}
	}

	return pokemon
}

func (svc *Service) Roster(ctx context.Context, owner string) (team.Roster, error) {
	var roster team.Roster
	err := svc.with(ctx, owner, func(o *owned) error {
		roster = o.roster
		return nil
	})

	return roster, err
}

// Add appends the pokemon with the given pokedex number. Adding to a full
// roster or adding a member twice leaves the roster unchanged.
func (svc *Service) Add(ctx context.Context, owner string, number int) (team.Roster, bool, error) {
	pokemon, err := svc.Dex.ByNumber(number)
	if err != nil {
		return team.Roster{}, false, fmt.Errorf("could not add %d to roster: %w", number, err)
	}

	return svc.update(ctx, owner, func(r team.Roster) team.Roster {
		return r.Add(pokemon)
	})
}

// Remove drops the member with the given pokedex number. Removing a number
// that is not on the roster leaves it unchanged.
func (svc *Service) Remove(ctx context.Context, owner string, number int) (team.Roster, bool, error) {
	return svc.update(ctx, owner, func(r team.Roster) team.Roster {
		return r.Remove(number)
	})
}

func (svc *Service) Clear(ctx context.Context, owner string) (team.Roster, error) {
	roster, _, err := svc.update(ctx, owner, team.Roster.Clear)
	return roster, err
}

// Random fills an empty roster from the whole dex. A roster that already has
// members is returned as is.
func (svc *Service) Random(ctx context.Context, owner string) (team.Roster, bool, error) {
	return svc.update(ctx, owner, func(r team.Roster) team.Roster {
		svc.randMu.Lock()
		defer svc.randMu.Unlock()

		return r.Random(svc.Dex.All(), svc.Rand)
	})
}

func (svc *Service) Analyze(ctx context.Context, owner string) (*team.Analysis, error) {
	roster, err := svc.Roster(ctx, owner)
	if err != nil {
		return nil, err
	}

	analysis, err := team.Analyze(roster, svc.Chart)
	if err != nil {
		return nil, fmt.Errorf("could not analyze roster for %q: %w", owner, err)
	}

	return analysis, nil
}
