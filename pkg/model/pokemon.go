package model

import (
	"math"
)

// Pokemon is one immutable row of the static dataset.
type Pokemon struct {
	Number         int              `json:"pokedex_number"`
	Name           string           `json:"name"`
	JapaneseName   string           `json:"japanese_name"`
	Classification string           `json:"classification"`
	Type1          Type             `json:"type1"`
	Type2          *Type            `json:"type2"`
	BaseStats      BaseStats        `json:"base_stats"`
	Abilities      []string         `json:"abilities"`
	Multipliers    map[Type]float64 `json:"against"`

	HeightM          *float64 `json:"height_m"`
	WeightKg         *float64 `json:"weight_kg"`
	PercentageMale   *float64 `json:"percentage_male"`
	CaptureRate      string   `json:"capture_rate"`
	BaseHappiness    int      `json:"base_happiness"`
	BaseEggSteps     int      `json:"base_egg_steps"`
	ExperienceGrowth int      `json:"experience_growth"`
	BaseTotal        int      `json:"base_total"`
	Generation       int      `json:"generation"`
	IsLegendary      bool     `json:"is_legendary"`
}

func (pokemon *Pokemon) Types() []Type {
	if pokemon.Type2 == nil {
		return []Type{pokemon.Type1}
	}

	return []Type{pokemon.Type1, *pokemon.Type2}
}

func (pokemon *Pokemon) HasType(typ Type) bool {
	return pokemon.Type1 == typ || (pokemon.Type2 != nil && *pokemon.Type2 == typ)
}

// Multiplier is the damage factor taken from an attack of the given type.
// Missing or malformed values count as neutral.
func (pokemon *Pokemon) Multiplier(typ Type) float64 {
	m, ok := pokemon.Multipliers[typ]
	if !ok || m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 1
	}

	return m
}

// IsGenderless reports whether the dataset has no gender ratio for the Pokemon.
func (pokemon *Pokemon) IsGenderless() bool {
	return pokemon.PercentageMale == nil
}
