package render

// Aging controls how weathered the rendered dungeon looks. Higher levels
// raise the chance of cracks along walls and of branches splitting off them.
type Aging uint8

const (
	Young Aging = iota
	Old
	Ancient
)

func (a Aging) String() string {
	switch a {
	case Young:
		return "young"
	case Ancient:
		return "ancient"
	default:
		return "old"
	}
}

// Chances returns the per-wall crack probability and the per-crack branch
// probability for the aging level.
func (a Aging) Chances() (crack, branch float64) {
	switch a {
	case Young:
		return 0.1, 0.3
	case Ancient:
		return 0.3, 0.5
	default:
		return 0.2, 0.4
	}
}

// AgingByName maps the canonical level names to their values, for flag
// parsing.
func AgingByName() map[string]Aging {
	return map[string]Aging{
		"young":   Young,
		"old":     Old,
		"ancient": Ancient,
	}
}
