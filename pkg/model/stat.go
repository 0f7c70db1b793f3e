package model

//go:generate go run github.com/dmarkham/enumer -type=Stat -trimprefix=Stat -transform=snake -json -text -output=stat_enumer.go

type Stat int

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
)

const StatCount = 6

// BaseStats is indexed by Stat.
type BaseStats [StatCount]int

func (bs BaseStats) Get(stat Stat) int {
	if !stat.IsAStat() {
		return 0
	}

	return bs[stat]
}

func (bs BaseStats) Total() int {
	total := 0
	for _, v := range bs {
		total += v
	}

	return total
}
