package render

import "hash/fnv"

// Pixel dimensions of the rendered output. Everything else scales off the
// tile size.
const (
	TileSize      = 100
	WallThickness = 5
	Border        = 2
	FrameSize     = TileSize / 8

	brickMinWidth  = FrameSize*2 + 10
	brickMaxWidth  = brickMinWidth + 20
	brickMinHeight = FrameSize*2 + 10
	brickMaxHeight = brickMinHeight + 20
)

// Settings selects the visual treatment for one render pass. The seed only
// affects cosmetics (brick sizes, pebbles, cracks), never layout.
type Settings struct {
	Seed  string
	Aging Aging
	Style Style
}

// NewSettings builds render settings with the default palette.
func NewSettings(seed string, aging Aging) Settings {
	return Settings{Seed: seed, Aging: aging, Style: DefaultStyle()}
}

func (s Settings) seedValue() int64 {
	h := fnv.New64a()
	h.Write([]byte(s.Seed))
	return int64(h.Sum64())
}
