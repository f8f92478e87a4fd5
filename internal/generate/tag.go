package generate

import "math/rand"

// Tag is one generation option. Tags are modular switches grouped into
// mutually exclusive categories (room size, density, entrance, theme,
// hallway style); a TagSet holds at most one tag per group.
type Tag uint8

const (
	SmallRooms Tag = iota
	MediumRooms
	LargeRooms

	Sparse
	MediumDensity
	Dense

	EntranceNorth
	EntranceSouth
	EntranceWest
	EntranceEast
	Stairs

	AnyTheme
	Arctic
	Coastal
	Desert
	Forest
	Grassland
	Hill
	Mountain
	Swamp
	Underdark
	Underwater
	Urban
	Bandit
	Necromancer
	Kobold
	Goblin
	Gnoll

	StraightHalls
	MazeHalls

	tagCount
)

// Exclusion group ids. Tags sharing a group cannot be active together.
const (
	groupRoomSize = iota
	groupDensity
	groupEntrance
	groupTheme
	groupHallway
)

type tagInfo struct {
	name     string
	category string
	group    int

	// payload, meaning depends on category
	minSize, maxSize int
	depth            int
}

var tagTable = [tagCount]tagInfo{
	SmallRooms:  {name: "small rooms", category: "Room Size", group: groupRoomSize, minSize: 4, maxSize: 6},
	MediumRooms: {name: "medium rooms", category: "Room Size", group: groupRoomSize, minSize: 6, maxSize: 10},
	LargeRooms:  {name: "large rooms", category: "Room Size", group: groupRoomSize, minSize: 10, maxSize: 16},

	Sparse:        {name: "sparse", category: "Room Distribution", group: groupDensity, depth: 3},
	MediumDensity: {name: "medium", category: "Room Distribution", group: groupDensity, depth: 5},
	Dense:         {name: "dense", category: "Room Distribution", group: groupDensity, depth: 7},

	EntranceNorth: {name: "entrance north", category: "Entrances", group: groupEntrance},
	EntranceSouth: {name: "entrance south", category: "Entrances", group: groupEntrance},
	EntranceWest:  {name: "entrance west", category: "Entrances", group: groupEntrance},
	EntranceEast:  {name: "entrance east", category: "Entrances", group: groupEntrance},
	Stairs:        {name: "stairs", category: "Entrances", group: groupEntrance},

	AnyTheme:    {name: "any", category: "Themes", group: groupTheme},
	Arctic:      {name: "arctic", category: "Themes", group: groupTheme},
	Coastal:     {name: "coastal", category: "Themes", group: groupTheme},
	Desert:      {name: "desert", category: "Themes", group: groupTheme},
	Forest:      {name: "forest", category: "Themes", group: groupTheme},
	Grassland:   {name: "grassland", category: "Themes", group: groupTheme},
	Hill:        {name: "hill", category: "Themes", group: groupTheme},
	Mountain:    {name: "mountain", category: "Themes", group: groupTheme},
	Swamp:       {name: "swamp", category: "Themes", group: groupTheme},
	Underdark:   {name: "underdark", category: "Themes", group: groupTheme},
	Underwater:  {name: "underwater", category: "Themes", group: groupTheme},
	Urban:       {name: "urban", category: "Themes", group: groupTheme},
	Bandit:      {name: "bandit", category: "Themes", group: groupTheme},
	Necromancer: {name: "necromancer", category: "Themes", group: groupTheme},
	Kobold:      {name: "kobold", category: "Themes", group: groupTheme},
	Goblin:      {name: "goblin", category: "Themes", group: groupTheme},
	Gnoll:       {name: "gnoll", category: "Themes", group: groupTheme},

	StraightHalls: {name: "straight hallways", category: "Hallways", group: groupHallway},
	MazeHalls:     {name: "maze hallways", category: "Hallways", group: groupHallway},
}

func (t Tag) String() string {
	if t < tagCount {
		return tagTable[t].name
	}
	return "unknown"
}

// Category returns the option group label the tag belongs to.
func (t Tag) Category() string {
	if t < tagCount {
		return tagTable[t].category
	}
	return "unknown"
}

// TagSet is the active option selection for one generation run.
type TagSet map[Tag]bool

// Has reports whether t is active.
func (s TagSet) Has(t Tag) bool { return s[t] }

// Toggle returns a copy of the set with t flipped. Activating a tag first
// deactivates every other tag in its exclusion group.
func Toggle(s TagSet, t Tag) TagSet {
	out := make(TagSet, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	if out[t] {
		delete(out, t)
		return out
	}
	group := tagTable[t].group
	for k := Tag(0); k < tagCount; k++ {
		if tagTable[k].group == group {
			delete(out, k)
		}
	}
	out[t] = true
	return out
}

// Select returns a copy of the set with t active, replacing any other tag
// in its exclusion group. Unlike Toggle it never deactivates an already
// active tag, so it is safe for applying explicit choices over defaults.
func Select(s TagSet, t Tag) TagSet {
	out := make(TagSet, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	group := tagTable[t].group
	for k := Tag(0); k < tagCount; k++ {
		if tagTable[k].group == group {
			delete(out, k)
		}
	}
	out[t] = true
	return out
}

// TagsByName maps the canonical tag names to their values, for flag parsing.
func TagsByName() map[string]Tag {
	out := make(map[string]Tag, tagCount)
	for t := Tag(0); t < tagCount; t++ {
		out[tagTable[t].name] = t
	}
	return out
}

// ResolveRoomSize returns the (min, max) room dimensions for the active
// room-size tag, defaulting to medium.
func ResolveRoomSize(s TagSet) (int, int) {
	switch {
	case s.Has(SmallRooms):
		return tagTable[SmallRooms].minSize, tagTable[SmallRooms].maxSize
	case s.Has(LargeRooms):
		return tagTable[LargeRooms].minSize, tagTable[LargeRooms].maxSize
	default:
		return tagTable[MediumRooms].minSize, tagTable[MediumRooms].maxSize
	}
}

// ResolveMaxDepth returns the placement depth for the active density tag,
// defaulting to medium.
func ResolveMaxDepth(s TagSet) int {
	switch {
	case s.Has(Sparse):
		return tagTable[Sparse].depth
	case s.Has(Dense):
		return tagTable[Dense].depth
	default:
		return tagTable[MediumDensity].depth
	}
}

// groupMembers returns the tags in an exclusion group in declaration order.
func groupMembers(group int) []Tag {
	var out []Tag
	for t := Tag(0); t < tagCount; t++ {
		if tagTable[t].group == group {
			out = append(out, t)
		}
	}
	return out
}

// DefaultTags builds a full selection with one tag per exclusion group:
// medium rooms and density, straight hallways, and a random entrance and
// theme drawn from rng.
func DefaultTags(rng *rand.Rand) TagSet {
	entrances := groupMembers(groupEntrance)
	themes := groupMembers(groupTheme)
	return TagSet{
		MediumRooms:   true,
		MediumDensity: true,
		entrances[rng.Intn(len(entrances))]: true,
		themes[rng.Intn(len(themes))]:       true,
		StraightHalls: true,
	}
}
