package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOrder(t *testing.T) {
	assert.Len(t, TypeValues(), TypeCount)
	assert.Equal(t, []string{
		"normal", "fire", "water", "electric", "grass", "ice",
		"fighting", "poison", "ground", "flying", "psychic", "bug",
		"rock", "ghost", "dragon", "dark", "steel", "fairy",
	}, TypeStrings())
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{
		"fire":     TypeFire,
		" Fire ":   TypeFire,
		"FAIRY":    TypeFairy,
		"fight":    TypeFighting,
		"fighting": TypeFighting,
	} {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseType("shadow")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTypeJSON(t *testing.T) {
	b, err := json.Marshal(map[Type]float64{TypeWater: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"water": 2}`, string(b))

	var typ Type
	require.NoError(t, json.Unmarshal([]byte(`"steel"`), &typ))
	assert.Equal(t, TypeSteel, typ)
	assert.Error(t, json.Unmarshal([]byte(`"laser"`), &typ))
}

func TestDefaultTypeChart(t *testing.T) {
	assert.Nil(t, DefaultTypeChart.SuperEffectiveAgainst(TypeNormal))
	assert.Equal(t,
		[]Type{TypeGrass, TypeIce, TypeBug, TypeSteel},
		DefaultTypeChart.SuperEffectiveAgainst(TypeFire),
	)

	// fire beats grass, not the other way around
	assert.NotContains(t, DefaultTypeChart.SuperEffectiveAgainst(TypeGrass), TypeFire)
	assert.Len(t, DefaultTypeChart, TypeCount-1)
}
