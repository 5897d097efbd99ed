package surah

import "fmt"

// Count is the number of surahs in the canonical catalog.
const Count = 114

// Pad returns the canonical 3-digit zero-padded identifier for a surah
// number, e.g. 1 -> "001", 114 -> "114".
func Pad(number int) string {
	return fmt.Sprintf("%03d", number)
}

// ValidNumber reports whether n identifies a surah.
func ValidNumber(n int) bool {
	return n >= 1 && n <= Count
}

// ValidRange validates an inclusive surah number range.
func ValidRange(start, end int) error {
	if !ValidNumber(start) || !ValidNumber(end) || start > end {
		return fmt.Errorf("invalid surah range %d-%d: must satisfy 1 <= start <= end <= %d", start, end, Count)
	}
	return nil
}

// Name pairs a surah number with its Arabic and English names.
type Name struct {
	Number  int
	Arabic  string
	English string
}
