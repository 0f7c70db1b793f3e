package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPokemonTypes(t *testing.T) {
	flying := TypeFlying
	charizard := &Pokemon{Type1: TypeFire, Type2: &flying}
	assert.Equal(t, []Type{TypeFire, TypeFlying}, charizard.Types())
	assert.True(t, charizard.HasType(TypeFlying))
	assert.False(t, charizard.HasType(TypeWater))

	pikachu := &Pokemon{Type1: TypeElectric}
	assert.Equal(t, []Type{TypeElectric}, pikachu.Types())
}

func TestPokemonMultiplierDefault(t *testing.T) {
	pokemon := &Pokemon{Multipliers: map[Type]float64{TypeGround: 0, TypeWater: 2}}
	assert.Equal(t, 0.0, pokemon.Multiplier(TypeGround))
	assert.Equal(t, 2.0, pokemon.Multiplier(TypeWater))
	assert.Equal(t, 1.0, pokemon.Multiplier(TypeFire))
	assert.Equal(t, 1.0, (&Pokemon{}).Multiplier(TypeFire))
}

func TestBaseStats(t *testing.T) {
	stats := BaseStats{45, 49, 49, 65, 65, 45}
	assert.Equal(t, 318, stats.Total())
	assert.Equal(t, 65, stats.Get(StatSpAttack))
	assert.Equal(t, 0, stats.Get(Stat(42)))
	assert.Equal(t, "sp_defense", StatSpDefense.String())
}
