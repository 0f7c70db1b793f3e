package team

import (
	"errors"

	"github.com/notjagan/pokeanalytics/pkg/model"
)

var ErrEmptyRoster = errors.New("roster has no members")

// TypeCoverage counts, per defending type, how many of the roster's own types
// hit it super-effectively. A dual-typed member whose types both cover the
// same defender counts twice.
func TypeCoverage(r Roster, chart model.TypeChart) [model.TypeCount]int {
	var coverage [model.TypeCount]int
	for _, p := range r.members {
		for _, typ := range p.Types() {
			for _, defender := range chart.SuperEffectiveAgainst(typ) {
				coverage[defender]++
			}
		}
	}

	return coverage
}

// Weaknesses averages each member's multiplier per attacking type. The mean
// over an empty roster is undefined and reported as ErrEmptyRoster.
func Weaknesses(r Roster) ([model.TypeCount]float64, error) {
	var weaknesses [model.TypeCount]float64
	if r.Empty() {
		return weaknesses, ErrEmptyRoster
	}

	for _, typ := range model.TypeValues() {
		sum := 0.0
		for _, p := range r.members {
			sum += p.Multiplier(typ)
		}
		weaknesses[typ] = sum / float64(len(r.members))
	}

	return weaknesses, nil
}

type TypeTally struct {
	Type  model.Type `json:"type"`
	Count int        `json:"count"`
}

// Composition counts members per type in first-seen order, type1 before type2.
func Composition(r Roster) []TypeTally {
	tallies := []TypeTally{}
	index := make(map[model.Type]int)
	for _, p := range r.members {
		for _, typ := range p.Types() {
			i, ok := index[typ]
			if !ok {
				i = len(tallies)
				index[typ] = i
				tallies = append(tallies, TypeTally{Type: typ})
			}
			tallies[i].Count++
		}
	}

	return tallies
}

// StatSeries holds one base stat across the roster. Names[i] labels Values[i].
type StatSeries struct {
	Stat   model.Stat `json:"stat"`
	Names  []string   `json:"names"`
	Values []int      `json:"values"`
}

// StatDistribution lists every member's value for each base stat in roster
// order.
func StatDistribution(r Roster) [model.StatCount]StatSeries {
	names := make([]string, len(r.members))
	for i, p := range r.members {
		names[i] = p.Name
	}

	var dist [model.StatCount]StatSeries
	for _, stat := range model.StatValues() {
		values := make([]int, len(r.members))
		for i, p := range r.members {
			values[i] = p.BaseStats.Get(stat)
		}
		dist[stat] = StatSeries{Stat: stat, Names: names, Values: values}
	}

	return dist
}

//go:generate go run github.com/dmarkham/enumer -type=VulnerabilityLevel -trimprefix=Vulnerability -transform=snake -json -text -output=vulnerability_enumer.go

type VulnerabilityLevel int

const (
	VulnerabilityResistant VulnerabilityLevel = iota
	VulnerabilityModerate
	VulnerabilityHigh
)

// Vulnerability buckets an averaged multiplier: above 2 is high, above 1 is
// moderate, anything else is resistant.
func Vulnerability(m float64) VulnerabilityLevel {
	switch {
	case m > 2:
		return VulnerabilityHigh
	case m > 1:
		return VulnerabilityModerate
	default:
		return VulnerabilityResistant
	}
}

type Weakness struct {
	Type          model.Type         `json:"type"`
	Multiplier    float64            `json:"multiplier"`
	Vulnerability VulnerabilityLevel `json:"vulnerability"`
}

type Coverage struct {
	Type  model.Type `json:"type"`
	Count int        `json:"count"`
}

type Analysis struct {
	Members          []int        `json:"members"`
	Coverage         []Coverage   `json:"coverage"`
	Weaknesses       []Weakness   `json:"weaknesses"`
	Composition      []TypeTally  `json:"composition"`
	StatDistribution []StatSeries `json:"stat_distribution"`
}

// Analyze recomputes all four views from scratch.
func Analyze(r Roster, chart model.TypeChart) (*Analysis, error) {
	weaknesses, err := Weaknesses(r)
	if err != nil {
		return nil, err
	}
	coverage := TypeCoverage(r, chart)
	dist := StatDistribution(r)

	analysis := &Analysis{
		Members:          r.Numbers(),
		Coverage:         make([]Coverage, model.TypeCount),
		Weaknesses:       make([]Weakness, model.TypeCount),
		Composition:      Composition(r),
		StatDistribution: dist[:],
	}
	for _, typ := range model.TypeValues() {
		analysis.Coverage[typ] = Coverage{Type: typ, Count: coverage[typ]}
		analysis.Weaknesses[typ] = Weakness{
			Type:          typ,
			Multiplier:    weaknesses[typ],
			Vulnerability: Vulnerability(weaknesses[typ]),
		}
	}

	return analysis, nil
}
