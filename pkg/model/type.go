package model

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type=Type -trimprefix=Type -transform=lower -json -text -output=type_enumer.go

// Type is one of the eighteen elemental categories. The declaration order is
// the canonical order used by every per-type vector in this module.
type Type int

const (
	TypeNormal Type = iota
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
)

const TypeCount = 18

// The dataset abbreviates fighting in its against_* columns.
var typeAliases = map[string]Type{
	"fight": TypeFighting,
}

var ErrUnknownType = errors.New("unknown type")

// ParseType accepts any enumer spelling of a type plus the dataset aliases.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if typ, ok := typeAliases[s]; ok {
		return typ, nil
	}

	typ, err := TypeString(s)
	if err != nil {
		return 0, fmt.Errorf("unknown type %q: %w", s, ErrUnknownType)
	}

	return typ, nil
}

// TypeChart maps an attacking type to the defending types it is
// super-effective against.
type TypeChart map[Type][]Type

func (chart TypeChart) SuperEffectiveAgainst(typ Type) []Type {
	return chart[typ]
}

// DefaultTypeChart is the offensive table the team builder scores coverage
// with. Normal hits nothing super-effectively and has no entry.
var DefaultTypeChart = TypeChart{
	TypeFire:     {TypeGrass, TypeIce, TypeBug, TypeSteel},
	TypeWater:    {TypeFire, TypeGround, TypeRock},
	TypeElectric: {TypeWater, TypeFlying},
	TypeGrass:    {TypeWater, TypeGround, TypeRock},
	TypeIce:      {TypeGrass, TypeGround, TypeFlying, TypeDragon},
	TypeFighting: {TypeNormal, TypeIce, TypeRock, TypeDark, TypeSteel},
	TypePoison:   {TypeGrass, TypeFairy},
	TypeGround:   {TypeFire, TypeElectric, TypePoison, TypeRock, TypeSteel},
	TypeFlying:   {TypeGrass, TypeFighting, TypeBug},
	TypePsychic:  {TypeFighting, TypePoison},
	TypeBug:      {TypeGrass, TypePsychic, TypeDark},
	TypeRock:     {TypeFire, TypeIce, TypeFlying, TypeBug},
	TypeGhost:    {TypePsychic, TypeGhost},
	TypeDragon:   {TypeDragon},
	TypeDark:     {TypePsychic, TypeGhost},
	TypeSteel:    {TypeIce, TypeRock, TypeFairy},
	TypeFairy:    {TypeFighting, TypeDragon, TypeDark},
}
