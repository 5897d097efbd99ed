package catalog

import (
	"strings"
	"testing"
)

func TestColorsForSeedIsDeterministic(t *testing.T) {
	p1, s1 := ColorsForSeed("hussary")
	p2, s2 := ColorsForSeed("hussary")
	if p1 != p2 || s1 != s2 {
		t.Fatalf("same seed produced different colors: (%s,%s) vs (%s,%s)", p1, s1, p2, s2)
	}
}

func TestColorsForSeedReturnsPaletteEntries(t *testing.T) {
	seeds := []string{"", "a", "saad-alghamdi", "minshawi", "abdul-basit"}
	for _, seed := range seeds {
		primary, secondary := ColorsForSeed(seed)
		if !strings.HasPrefix(primary, "#") || len(primary) != 7 {
			t.Errorf("seed %q: bad primary %q", seed, primary)
		}
		if !strings.HasPrefix(secondary, "#") || len(secondary) != 7 {
			t.Errorf("seed %q: bad secondary %q", seed, secondary)
		}
		found := false
		for _, pair := range palettes {
			if pair[0] == primary && pair[1] == secondary {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("seed %q: colors not from the palette table", seed)
		}
	}
}
