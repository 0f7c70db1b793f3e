package team

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typePtr(typ model.Type) *model.Type {
	return &typ
}

func TestTypeCoverageSingleType(t *testing.T) {
	chart := model.TypeChart{
		model.TypeFire: {model.TypeGrass, model.TypeIce, model.TypeBug, model.TypeSteel},
	}
	r := New(&model.Pokemon{Number: 4, Type1: model.TypeFire})

	var want [model.TypeCount]int
	want[model.TypeGrass] = 1
	want[model.TypeIce] = 1
	want[model.TypeBug] = 1
	want[model.TypeSteel] = 1
	assert.Equal(t, want, TypeCoverage(r, chart))
}

func TestTypeCoverageDualTypeSums(t *testing.T) {
	// ice and rock both hit flying: counted twice
	r := New(&model.Pokemon{Number: 1, Type1: model.TypeIce, Type2: typePtr(model.TypeRock)})
	coverage := TypeCoverage(r, model.DefaultTypeChart)

	var want [model.TypeCount]int
	for _, typ := range model.DefaultTypeChart[model.TypeIce] {
		want[typ]++
	}
	for _, typ := range model.DefaultTypeChart[model.TypeRock] {
		want[typ]++
	}
	assert.Equal(t, want, coverage)
	assert.Equal(t, 2, coverage[model.TypeFlying])
}

func TestTypeCoverageEmpty(t *testing.T) {
	assert.Equal(t, [model.TypeCount]int{}, TypeCoverage(Roster{}, model.DefaultTypeChart))
}

func TestWeaknesses(t *testing.T) {
	a := &model.Pokemon{Number: 1, Multipliers: map[model.Type]float64{model.TypeFire: 2, model.TypeWater: 0.5}}
	b := &model.Pokemon{Number: 2, Multipliers: map[model.Type]float64{model.TypeFire: 4, model.TypeGround: 0}}

	weaknesses, err := Weaknesses(New(a, b))
	require.NoError(t, err)
	assert.Equal(t, 3.0, weaknesses[model.TypeFire])
	assert.Equal(t, 0.75, weaknesses[model.TypeWater]) // missing counts as 1
	assert.Equal(t, 0.5, weaknesses[model.TypeGround])
	assert.Equal(t, 1.0, weaknesses[model.TypeNormal])
}

func TestWeaknessesSingleMember(t *testing.T) {
	p := &model.Pokemon{Number: 1, Multipliers: map[model.Type]float64{
		model.TypeRock: 4, model.TypeWater: 2, model.TypeGrass: 0.25, model.TypeGround: 0,
	}}

	weaknesses, err := Weaknesses(New(p))
	require.NoError(t, err)
	for _, typ := range model.TypeValues() {
		assert.Equal(t, p.Multiplier(typ), weaknesses[typ], typ.String())
	}
}

func TestWeaknessesEmpty(t *testing.T) {
	_, err := Weaknesses(Roster{})
	assert.True(t, errors.Is(err, ErrEmptyRoster))
}

func TestComposition(t *testing.T) {
	r := New(
		&model.Pokemon{Number: 1, Type1: model.TypeGrass, Type2: typePtr(model.TypePoison)},
		&model.Pokemon{Number: 4, Type1: model.TypeFire},
		&model.Pokemon{Number: 94, Type1: model.TypeGhost, Type2: typePtr(model.TypePoison)},
		&model.Pokemon{Number: 6, Type1: model.TypeFire, Type2: typePtr(model.TypeFlying)},
	)

	want := []TypeTally{
		{Type: model.TypeGrass, Count: 1},
		{Type: model.TypePoison, Count: 2},
		{Type: model.TypeFire, Count: 2},
		{Type: model.TypeGhost, Count: 1},
		{Type: model.TypeFlying, Count: 1},
	}
	if diff := cmp.Diff(want, Composition(r)); diff != "" {
		t.Errorf("Composition() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, Composition(Roster{}))
}

func TestStatDistribution(t *testing.T) {
	r := New(
		&model.Pokemon{Number: 1, Name: "Bulbasaur", BaseStats: model.BaseStats{45, 49, 49, 65, 65, 45}},
		&model.Pokemon{Number: 25, Name: "Pikachu", BaseStats: model.BaseStats{35, 55, 40, 50, 50, 90}},
	)

	names := []string{"Bulbasaur", "Pikachu"}
	dist := StatDistribution(r)
	assert.Equal(t, StatSeries{Stat: model.StatHP, Names: names, Values: []int{45, 35}}, dist[model.StatHP])
	assert.Equal(t, StatSeries{Stat: model.StatSpeed, Names: names, Values: []int{45, 90}}, dist[model.StatSpeed])
	assert.Empty(t, StatDistribution(Roster{})[model.StatAttack].Values)
}

func TestVulnerability(t *testing.T) {
	assert.Equal(t, VulnerabilityHigh, Vulnerability(2.5))
	assert.Equal(t, VulnerabilityModerate, Vulnerability(2))
	assert.Equal(t, VulnerabilityModerate, Vulnerability(1.25))
	assert.Equal(t, VulnerabilityResistant, Vulnerability(1))
	assert.Equal(t, VulnerabilityResistant, Vulnerability(0))
	assert.Equal(t, "moderate", VulnerabilityModerate.String())
}

func TestAnalyze(t *testing.T) {
	_, err := Analyze(Roster{}, model.DefaultTypeChart)
	assert.ErrorIs(t, err, ErrEmptyRoster)

	charmander := &model.Pokemon{
		Number:      4,
		Type1:       model.TypeFire,
		BaseStats:   model.BaseStats{39, 52, 43, 60, 50, 65},
		Multipliers: map[model.Type]float64{model.TypeWater: 2, model.TypeRock: 2, model.TypeGround: 2, model.TypeFire: 0.5},
	}
	analysis, err := Analyze(New(charmander), model.DefaultTypeChart)
	require.NoError(t, err)

	assert.Equal(t, []int{4}, analysis.Members)
	require.Len(t, analysis.Coverage, model.TypeCount)
	require.Len(t, analysis.Weaknesses, model.TypeCount)
	require.Len(t, analysis.StatDistribution, model.StatCount)
	for i, typ := range model.TypeValues() {
		assert.Equal(t, typ, analysis.Coverage[i].Type)
		assert.Equal(t, typ, analysis.Weaknesses[i].Type)
	}
	assert.Equal(t, 1, analysis.Coverage[model.TypeGrass].Count)
	assert.Equal(t, Weakness{Type: model.TypeWater, Multiplier: 2, Vulnerability: VulnerabilityModerate}, analysis.Weaknesses[model.TypeWater])
	assert.Equal(t, []TypeTally{{Type: model.TypeFire, Count: 1}}, analysis.Composition)
}
