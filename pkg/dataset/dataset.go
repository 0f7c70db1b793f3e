// Package dataset reads the bundled pokemon.csv into a model.Dex.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/notjagan/pokeanalytics/pkg/model"
	"go.uber.org/zap"
)

var ErrMissingColumn = errors.New("required column missing")

var ErrInvalidRow = errors.New("invalid row")

const againstPrefix = "against_"

var statColumns = [model.StatCount]string{
	model.StatHP:        "hp",
	model.StatAttack:    "attack",
	model.StatDefense:   "defense",
	model.StatSpAttack:  "sp_attack",
	model.StatSpDefense: "sp_defense",
	model.StatSpeed:     "speed",
}

var requiredColumns = []string{"pokedex_number", "name", "type1"}

func Load(path string, logger *zap.Logger) (*model.Dex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	dex, err := Read(f, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", path, err)
	}

	return dex, nil
}

// Read parses a CSV with a header row. Rows without a usable pokedex number
// or primary type are skipped, as are repeated pokedex numbers.
func Read(r io.Reader, logger *zap.Logger) (*model.Dex, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}

	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
		}
	}

	var pokemon []*model.Pokemon
	seen := make(map[int]bool)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("could not read line %d: %w", line, err)
		}

		p, err := cols.pokemon(record)
		if err != nil {
			logger.Warn("skipping dataset row", zap.Int("line", line), zap.Error(err))
			continue
		}
		if seen[p.Number] {
			logger.Warn("skipping duplicate pokedex number", zap.Int("line", line), zap.Int("number", p.Number))
			continue
		}
		seen[p.Number] = true
		pokemon = append(pokemon, p)
	}

	dex, err := model.NewDex(pokemon)
	if err != nil {
		return nil, fmt.Errorf("could not build dex: %w", err)
	}
	logger.Info("loaded dataset", zap.Int("pokemon", dex.Len()))

	return dex, nil
}

type columns map[string]int

func (cols columns) get(record []string, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}

func (cols columns) atoi(record []string, name string) int {
	v, err := strconv.Atoi(cols.get(record, name))
	if err != nil {
		return 0
	}

	return v
}

func (cols columns) parseFloat(record []string, name string) *float64 {
	v, err := strconv.ParseFloat(cols.get(record, name), 64)
	if err != nil {
		return nil
	}

	return &v
}

func (cols columns) pokemon(record []string) (*model.Pokemon, error) {
	number, err := strconv.Atoi(cols.get(record, "pokedex_number"))
	if err != nil || number <= 0 {
		return nil, fmt.Errorf("bad pokedex number %q: %w", cols.get(record, "pokedex_number"), ErrInvalidRow)
	}

	type1, err := model.ParseType(cols.get(record, "type1"))
	if err != nil {
		return nil, fmt.Errorf("bad primary type for pokedex number %d: %w", number, err)
	}

	p := &model.Pokemon{
		Number:           number,
		Name:             cols.get(record, "name"),
		JapaneseName:     cols.get(record, "japanese_name"),
		Classification:   cols.classification(record),
		Type1:            type1,
		Abilities:        ParseAbilities(cols.get(record, "abilities")),
		Multipliers:      cols.multipliers(record),
		HeightM:          cols.parseFloat(record, "height_m"),
		WeightKg:         cols.parseFloat(record, "weight_kg"),
		PercentageMale:   cols.parseFloat(record, "percentage_male"),
		CaptureRate:      cols.get(record, "capture_rate"),
		BaseHappiness:    cols.atoi(record, "base_happiness"),
		BaseEggSteps:     cols.atoi(record, "base_egg_steps"),
		ExperienceGrowth: cols.atoi(record, "experience_growth"),
		BaseTotal:        cols.atoi(record, "base_total"),
		Generation:       cols.atoi(record, "generation"),
		IsLegendary:      cols.get(record, "is_legendary") == "1" || strings.EqualFold(cols.get(record, "is_legendary"), "true"),
	}

	if t2 := cols.get(record, "type2"); t2 != "" {
		type2, err := model.ParseType(t2)
		if err == nil && type2 != type1 {
			p.Type2 = &type2
		}
	}

	for stat, name := range statColumns {
		p.BaseStats[stat] = cols.atoi(record, name)
	}
	if p.BaseTotal == 0 {
		p.BaseTotal = p.BaseStats.Total()
	}

	return p, nil
}

// The upstream file spells the column "classfication".
func (cols columns) classification(record []string) string {
	if v := cols.get(record, "classification"); v != "" {
		return v
	}

	return cols.get(record, "classfication")
}

func (cols columns) multipliers(record []string) map[model.Type]float64 {
	var names []string
	for name := range cols {
		if strings.HasPrefix(name, againstPrefix) {
			names = append(names, name)
		}
	}
	// against_fighting sorts after against_fight, so the full spelling wins
	// when a file has both.
	sort.Strings(names)

	m := make(map[model.Type]float64, model.TypeCount)
	for _, name := range names {
		typ, err := model.ParseType(strings.TrimPrefix(name, againstPrefix))
		if err != nil {
			continue
		}

		v, err := strconv.ParseFloat(cols.get(record, name), 64)
		if err != nil || v < 0 {
			continue
		}
		m[typ] = v
	}

	return m
}

// ParseAbilities reads the list literal the dataset stores abilities as,
// e.g. ['Overgrow', 'Chlorophyll'].
func ParseAbilities(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	abilities := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.Trim(strings.TrimSpace(part), `'"`)
		if part != "" {
			abilities = append(abilities, part)
		}
	}

	return abilities
}
