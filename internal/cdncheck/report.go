package cdncheck

import (
	"sort"

	"qariee/internal/surah"
)

// AudioCoverage summarizes one reciter's surah presence on the CDN.
type AudioCoverage struct {
	PresentCount  int
	MissingSurahs []int
}

// Complete reports whether every surah is present.
func (c AudioCoverage) Complete() bool {
	return len(c.MissingSurahs) == 0
}

// BuildAudioReport reduces a finished audio scan into per-reciter coverage.
// A reciter with no recorded probes is treated as fully missing. Missing
// surah numbers are ascending and deduplicated.
func BuildAudioReport(reciterIDs []string, results map[Key]ProbeResult) map[string]AudioCoverage {
	report := make(map[string]AudioCoverage, len(reciterIDs))
	for _, id := range reciterIDs {
		coverage := AudioCoverage{}
		for number := 1; number <= surah.Count; number++ {
			result, ok := results[Key{ReciterID: id, Surah: number}]
			if ok && result.Present {
				coverage.PresentCount++
			} else {
				coverage.MissingSurahs = append(coverage.MissingSurahs, number)
			}
		}
		report[id] = coverage
	}
	return report
}

// BuildImageReport returns the ids of reciters whose image probe came back
// absent or errored, in ascending order. A reciter with no recorded probe is
// treated as missing.
func BuildImageReport(reciterIDs []string, results map[Key]ProbeResult) []string {
	var missing []string
	for _, id := range reciterIDs {
		result, ok := results[Key{ReciterID: id}]
		if !ok || !result.Present {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}
