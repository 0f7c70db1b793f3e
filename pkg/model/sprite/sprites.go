package sprite

const OfficialArtwork = "official-artwork"

// Sprites is the subset of a sprite set the enricher reads.
type Sprites struct {
	Default Sprite  `json:"front_default"`
	Shiny   *Sprite `json:"front_shiny"`
}

type PokemonSprites struct {
	Sprites
	Other map[string]Sprites `json:"other"`
}

// Preferred is the official artwork when present, otherwise the default
// front sprite. It reports false when neither exists.
func (ps *PokemonSprites) Preferred() (Sprite, bool) {
	if art, ok := ps.Other[OfficialArtwork]; ok && !art.Default.IsZero() {
		return art.Default, true
	}
	if !ps.Default.IsZero() {
		return ps.Default, true
	}

	return "", false
}
