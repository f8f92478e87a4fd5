package generate

import "hash/fnv"

// Settings is the resolved configuration for one generation run. Room size
// and depth are derived from the tag selection at construction time.
type Settings struct {
	Seed   string
	Tags   TagSet
	Width  int
	Height int

	MinRoomSize int
	MaxRoomSize int
	MaxDepth    int
	Margin      int
}

// NewSettings resolves the tag selection into numeric parameters.
func NewSettings(seed string, tags TagSet, width, height int) Settings {
	minSize, maxSize := ResolveRoomSize(tags)
	return Settings{
		Seed:        seed,
		Tags:        tags,
		Width:       width,
		Height:      height,
		MinRoomSize: minSize,
		MaxRoomSize: maxSize,
		MaxDepth:    ResolveMaxDepth(tags),
		Margin:      1,
	}
}

// SeedValue hashes the seed string into the value fed to the generator's
// random source. The same string always yields the same layout.
func (s Settings) SeedValue() int64 {
	h := fnv.New64a()
	h.Write([]byte(s.Seed))
	return int64(h.Sum64())
}
