package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"rosecrypt/internal/dungeon"
)

// Style centralizes the palette used when drawing a dungeon: paper and ink
// for the parchment look, material colors for walls and doors, and the
// per-material door and frame mappings.
type Style struct {
	Paper colorful.Color
	Ink   colorful.Color
	Water colorful.Color
	Wood  colorful.Color
	Stone colorful.Color
	Glass colorful.Color
	Metal colorful.Color
	Floor colorful.Color
	Wall  colorful.Color

	DoorColors  map[dungeon.DoorMaterial]colorful.Color
	FrameColors map[dungeon.DoorMaterial]colorful.Color
}

// DefaultStyle is the standard parchment-and-ink palette.
func DefaultStyle() Style {
	s := Style{
		Paper: mustHex("#E5E2CF"),
		Ink:   mustHex("#2C241D"),
		Water: mustHex("#5B9698"), // reserved for water tiles
		Wood:  mustHex("#A37143"),
		Stone: mustHex("#BFBEB6"),
		Glass: mustHex("#A87C5F"),
		Metal: mustHex("#888A8C"),
		Floor: mustHex("#D9D5C3"),
	}
	s.Wall = s.Stone
	s.DoorColors = map[dungeon.DoorMaterial]colorful.Color{
		dungeon.DoorGlass: s.Glass,
		dungeon.DoorWood:  s.Wood,
		dungeon.DoorMetal: s.Metal,
		dungeon.DoorStone: s.Stone,
	}
	s.FrameColors = map[dungeon.DoorMaterial]colorful.Color{
		dungeon.DoorGlass: s.Stone,
		dungeon.DoorWood:  s.Wood,
		dungeon.DoorMetal: s.Stone,
		dungeon.DoorStone: s.Stone,
	}
	return s
}

// DoorColor returns the fill color for a door material, falling back to
// wood for unknown materials.
func (s Style) DoorColor(m dungeon.DoorMaterial) colorful.Color {
	if c, ok := s.DoorColors[m]; ok {
		return c
	}
	return s.Wood
}

// FrameColor returns the frame color for a door material, falling back to
// stone.
func (s Style) FrameColor(m dungeon.DoorMaterial) colorful.Color {
	if c, ok := s.FrameColors[m]; ok {
		return c
	}
	return s.Stone
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("render: bad palette color " + hex)
	}
	return c
}
