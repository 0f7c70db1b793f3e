// Package team holds the six-member roster and the analytics derived from it.
package team

import (
	"math/rand"

	"github.com/notjagan/pokeanalytics/pkg/model"
)

const MaxSize = 6

// Roster is an ordered, duplicate-free selection of at most MaxSize Pokemon.
// It is a value: every mutation returns a new Roster and leaves the receiver
// untouched.
type Roster struct {
	members []*model.Pokemon
}

func New(pokemon ...*model.Pokemon) Roster {
	return Roster{}.Replace(pokemon)
}

// FromNumbers rebuilds a roster from persisted pokedex numbers. Numbers the
// dex does not know are dropped.
func FromNumbers(dex *model.Dex, numbers []int) Roster {
	pokemon := make([]*model.Pokemon, 0, len(numbers))
	for _, n := range numbers {
		p, err := dex.ByNumber(n)
		if err != nil {
			continue
		}
		pokemon = append(pokemon, p)
	}

	return New(pokemon...)
}

func (r Roster) Len() int {
	return len(r.members)
}

func (r Roster) Empty() bool {
	return len(r.members) == 0
}

func (r Roster) Full() bool {
	return len(r.members) >= MaxSize
}

// Members returns a copy of the members in insertion order.
func (r Roster) Members() []*model.Pokemon {
	members := make([]*model.Pokemon, len(r.members))
	copy(members, r.members)
	return members
}

func (r Roster) Numbers() []int {
	numbers := make([]int, len(r.members))
	for i, p := range r.members {
		numbers[i] = p.Number
	}

	return numbers
}

func (r Roster) Contains(number int) bool {
	for _, p := range r.members {
		if p.Number == number {
			return true
		}
	}

	return false
}

// Add appends pokemon unless the roster is full or already holds that
// pokedex number, in which case the roster is returned unchanged.
func (r Roster) Add(pokemon *model.Pokemon) Roster {
	if pokemon == nil || r.Full() || r.Contains(pokemon.Number) {
		return r
	}

	members := make([]*model.Pokemon, len(r.members), len(r.members)+1)
	copy(members, r.members)
	return Roster{members: append(members, pokemon)}
}

func (r Roster) Remove(number int) Roster {
	if !r.Contains(number) {
		return r
	}

	members := make([]*model.Pokemon, 0, len(r.members)-1)
	for _, p := range r.members {
		if p.Number != number {
			members = append(members, p)
		}
	}

	return Roster{members: members}
}

func (r Roster) Clear() Roster {
	return Roster{}
}

// Replace discards the current members for pokemon, applying the same
// capacity and uniqueness rules as Add.
func (r Roster) Replace(pokemon []*model.Pokemon) Roster {
	next := Roster{}
	for _, p := range pokemon {
		next = next.Add(p)
	}

	return next
}

// Random fills an empty roster with up to MaxSize distinct pool members drawn
// uniformly without replacement, in draw order. A non-empty roster is
// returned unchanged.
func (r Roster) Random(pool []*model.Pokemon, rng *rand.Rand) Roster {
	if !r.Empty() {
		return r
	}

	next := Roster{}
	for _, i := range rng.Perm(len(pool)) {
		if next.Full() {
			break
		}
		next = next.Add(pool[i])
	}

	return next
}
