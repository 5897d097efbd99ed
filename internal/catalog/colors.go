package catalog

import "hash/fnv"

// palettes are primary/secondary pairs curated for reciter cards.
var palettes = [][2]string{
	{"#4A90E2", "#8CB4FF"}, // blue
	{"#7B68EE", "#A594F9"}, // purple
	{"#20B2AA", "#5ED4CD"}, // teal
	{"#E67E22", "#F5A962"}, // orange
	{"#27AE60", "#6FCF97"}, // green
	{"#9B59B6", "#C39BD3"}, // violet
	{"#3498DB", "#7FB3D5"}, // light blue
	{"#1ABC9C", "#76D7C4"}, // turquoise
	{"#E74C3C", "#F1948A"}, // red
	{"#F39C12", "#F7DC6F"}, // yellow
	{"#8E44AD", "#BB8FCE"}, // deep purple
	{"#16A085", "#73C6B6"}, // sea green
	{"#2980B9", "#85C1E9"}, // ocean blue
	{"#D35400", "#EB984E"}, // burnt orange
	{"#C0392B", "#E6B0AA"}, // dark red
	{"#2C3E50", "#85929E"}, // dark blue gray
}

// ColorsForSeed deterministically picks a primary/secondary palette pair for
// the given seed string, typically a reciter id. The same seed always maps to
// the same pair.
func ColorsForSeed(seed string) (primary, secondary string) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	pair := palettes[h.Sum32()%uint32(len(palettes))]
	return pair[0], pair[1]
}
