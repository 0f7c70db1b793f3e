package model

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDex(t *testing.T, n int) *Dex {
	t.Helper()

	pokemon := make([]*Pokemon, n)
	for i := range pokemon {
		pokemon[i] = &Pokemon{Number: i + 1, Name: fmt.Sprintf("Mon%02d", i+1), Type1: TypeNormal}
	}
	dex, err := NewDex(pokemon)
	require.NoError(t, err)

	return dex
}

func TestNewDexDuplicate(t *testing.T) {
	_, err := NewDex([]*Pokemon{
		{Number: 1, Name: "Bulbasaur"},
		{Number: 1, Name: "Ivysaur"},
	})
	assert.ErrorIs(t, err, ErrDuplicatePokemon)
}

func TestDexLookup(t *testing.T) {
	dex, err := NewDex([]*Pokemon{
		{Number: 25, Name: "Pikachu", Type1: TypeElectric},
		{Number: 29, Name: "Nidoran♀", Type1: TypePoison},
	})
	require.NoError(t, err)

	p, err := dex.ByNumber(25)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", p.Name)

	p, err = dex.ByName("pikachu")
	require.NoError(t, err)
	assert.Equal(t, 25, p.Number)

	_, err = dex.ByNumber(999)
	assert.ErrorIs(t, err, ErrNoPokemon)
	_, err = dex.ByName("missingno")
	assert.ErrorIs(t, err, ErrNoPokemon)
}

func TestDexSearch(t *testing.T) {
	dex := testDex(t, 30)

	results := dex.Search("mon", 5)
	require.Len(t, results, 5)
	assert.Equal(t, 1, results[0].Number)

	results = dex.Search("MON1", 5)
	require.Len(t, results, 5)
	assert.Equal(t, 10, results[0].Number)

	assert.Empty(t, dex.Search("   ", 5))
	assert.Empty(t, dex.Search("zzz", 5))
}

func TestDexBrowse(t *testing.T) {
	dex := testDex(t, 40)

	page := dex.Browse("", 1, 16)
	assert.Equal(t, 40, page.Count)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Pokemon, 16)

	page = dex.Browse("", 3, 16)
	require.Len(t, page.Pokemon, 8)
	assert.Equal(t, 33, page.Pokemon[0].Number)

	page = dex.Browse("", 4, 16)
	assert.Empty(t, page.Pokemon)

	page = dex.Browse("", math.MaxInt, 16)
	assert.Empty(t, page.Pokemon)
	assert.Equal(t, math.MaxInt, page.Page)
	assert.Equal(t, 3, page.TotalPages)

	page = dex.Browse("", 2, math.MaxInt)
	assert.Empty(t, page.Pokemon)
	assert.Equal(t, 1, page.TotalPages)

	page = dex.Browse("mon0", 0, 16)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 9, page.Count)
	assert.Equal(t, 1, page.TotalPages)
}
