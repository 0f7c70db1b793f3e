package model

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDefenseProfile(t *testing.T) {
	pokemon := &Pokemon{
		Number: 1,
		Name:   "Example",
		Type1:  TypeWater,
		Multipliers: map[Type]float64{
			TypeWater:    2,
			TypeGrass:    0.5,
			TypeElectric: 0,
		},
	}

	want := DefenseProfile{
		Weaknesses:  []Efficacy{{Type: TypeWater, Multiplier: 2}},
		Resistances: []Efficacy{{Type: TypeGrass, Multiplier: 0.5}},
		Immunities:  []Type{TypeElectric},
	}
	if diff := cmp.Diff(want, pokemon.DefenseProfile()); diff != "" {
		t.Errorf("DefenseProfile() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefenseProfileOrdering(t *testing.T) {
	// Charizard-like: rock 4x, then water/electric 2x in canonical order.
	pokemon := &Pokemon{
		Multipliers: map[Type]float64{
			TypeElectric: 2,
			TypeWater:    2,
			TypeRock:     4,
			TypeFire:     0.5,
			TypeBug:      0.25,
			TypeGround:   0,
			TypeGrass:    0.25,
		},
	}

	profile := pokemon.DefenseProfile()
	assert.Equal(t, []Efficacy{
		{Type: TypeRock, Multiplier: 4},
		{Type: TypeWater, Multiplier: 2},
		{Type: TypeElectric, Multiplier: 2},
	}, profile.Weaknesses)
	assert.Equal(t, []Efficacy{
		{Type: TypeFire, Multiplier: 0.5},
		{Type: TypeGrass, Multiplier: 0.25},
		{Type: TypeBug, Multiplier: 0.25},
	}, profile.Resistances)
	assert.Equal(t, []Type{TypeGround}, profile.Immunities)
}

func TestDefenseProfilePartition(t *testing.T) {
	values := []float64{0, 0.25, 0.5, 1, 2, 4}
	multipliers := make(map[Type]float64, TypeCount)
	for i, typ := range TypeValues() {
		multipliers[typ] = values[i%len(values)]
	}
	pokemon := &Pokemon{Multipliers: multipliers}

	profile := pokemon.DefenseProfile()
	seen := make(map[Type]int)
	for _, eff := range profile.Weaknesses {
		seen[eff.Type]++
		assert.Greater(t, eff.Multiplier, 1.0)
	}
	for _, eff := range profile.Resistances {
		seen[eff.Type]++
		assert.Less(t, eff.Multiplier, 1.0)
		assert.Greater(t, eff.Multiplier, 0.0)
	}
	for _, typ := range profile.Immunities {
		seen[typ]++
	}

	for _, typ := range TypeValues() {
		if multipliers[typ] == 1 {
			assert.Zero(t, seen[typ], typ.String())
		} else {
			assert.Equal(t, 1, seen[typ], typ.String())
		}
	}
}

func TestDefenseProfileMalformed(t *testing.T) {
	pokemon := &Pokemon{
		Multipliers: map[Type]float64{
			TypeFire:  math.NaN(),
			TypeWater: -2,
			TypeIce:   math.Inf(1),
		},
	}

	profile := pokemon.DefenseProfile()
	assert.Empty(t, profile.Weaknesses)
	assert.Empty(t, profile.Resistances)
	assert.Empty(t, profile.Immunities)
}

func TestEfficacyLevel(t *testing.T) {
	for m, want := range map[float64]EfficacyLevel{
		4:    DoubleSuperEffective,
		2:    SuperEffective,
		1:    NormalEffective,
		0.5:  NotVeryEffective,
		0.25: DoubleNotVeryEffective,
		0:    Immune,
	} {
		assert.Equal(t, want, Efficacy{Multiplier: m}.Level())
	}
}
