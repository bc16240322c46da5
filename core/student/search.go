package student

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

var minSuggestRatio = .6

func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

// SuggestID returns the existing student ID closest to id, if any is similar enough.
// Ties go to the student that comes first.
func (r *Roster) SuggestID(id string) (string, bool) {
	var (
		best      string
		bestRatio float64
	)
	for _, s := range r.students {
		if s.ID == id {
			return s.ID, true
		}
		if ratio := similarity(id, s.ID); ratio > bestRatio {
			best, bestRatio = s.ID, ratio
		}
	}
	if bestRatio < minSuggestRatio {
		return "", false
	}
	return best, true
}
