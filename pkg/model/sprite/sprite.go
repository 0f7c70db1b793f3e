package sprite

import (
	"fmt"
	"strings"
)

// Sprite is the URL of an image. An empty Sprite means the API had none.
type Sprite string

func (s Sprite) IsZero() bool {
	return s == ""
}

// Fallback is the plain front sprite every pokedex number has.
func Fallback(base string, number int) Sprite {
	return Sprite(fmt.Sprintf("%s/%d.png", strings.TrimRight(base, "/"), number))
}
