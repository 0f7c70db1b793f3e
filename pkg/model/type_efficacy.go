package model

import (
	"math"
	"sort"
)

type EfficacyLevel int

const (
	DoubleSuperEffective   EfficacyLevel = 400
	SuperEffective         EfficacyLevel = 200
	NormalEffective        EfficacyLevel = 100
	NotVeryEffective       EfficacyLevel = 50
	DoubleNotVeryEffective EfficacyLevel = 25
	Immune                 EfficacyLevel = 0
)

type Efficacy struct {
	Type       Type    `json:"type"`
	Multiplier float64 `json:"multiplier"`
}

// Level rounds the multiplier to the nearest damage factor bucket.
func (eff Efficacy) Level() EfficacyLevel {
	return EfficacyLevel(math.Round(eff.Multiplier * 100))
}

type DefenseProfile struct {
	Weaknesses  []Efficacy `json:"weaknesses"`
	Resistances []Efficacy `json:"resistances"`
	Immunities  []Type     `json:"immunities"`
}

// DefenseProfile splits the non-neutral multipliers into weaknesses (sorted
// strongest first), resistances and immunities. Neutral types appear in none.
func (pokemon *Pokemon) DefenseProfile() DefenseProfile {
	profile := DefenseProfile{
		Weaknesses:  []Efficacy{},
		Resistances: []Efficacy{},
		Immunities:  []Type{},
	}

	for _, typ := range TypeValues() {
		m := pokemon.Multiplier(typ)
		switch {
		case m > 1:
			profile.Weaknesses = append(profile.Weaknesses, Efficacy{Type: typ, Multiplier: m})
		case m > 0 && m < 1:
			profile.Resistances = append(profile.Resistances, Efficacy{Type: typ, Multiplier: m})
		case m == 0:
			profile.Immunities = append(profile.Immunities, typ)
		}
	}

	sort.SliceStable(profile.Weaknesses, func(i, j int) bool {
		return profile.Weaknesses[i].Multiplier > profile.Weaknesses[j].Multiplier
	})

	return profile
}
