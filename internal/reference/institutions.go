package reference

import (
	"regexp"
	"sort"
	"strings"
)

// RankedInstitution is one entry of an institution ranking
type RankedInstitution struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// InstitutionRanking is an immutable lookup from institution name to rank
type InstitutionRanking struct {
	ranks map[string]int
	// keys ordered longest first so containment prefers the most specific name
	keys []string
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeInstitution lowercases, drops punctuation and a leading "the"
func normalizeInstitution(name string) string {
	key := strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(name), " "))
	return strings.TrimPrefix(key, "the ")
}

// NewInstitutionRanking builds a ranking. When a name appears more than once the best
// rank is kept; entries with a blank name or non-positive rank are ignored.
func NewInstitutionRanking(entries []RankedInstitution) *InstitutionRanking {
	r := &InstitutionRanking{ranks: make(map[string]int, len(entries))}
	for _, e := range entries {
		key := normalizeInstitution(e.Name)
		if key == "" || e.Rank < 1 {
			continue
		}
		if existing, ok := r.ranks[key]; !ok || e.Rank < existing {
			if !ok {
				r.keys = append(r.keys, key)
			}
			r.ranks[key] = e.Rank
		}
	}
	sort.Slice(r.keys, func(i, j int) bool {
		if len(r.keys[i]) != len(r.keys[j]) {
			return len(r.keys[i]) > len(r.keys[j])
		}
		return r.keys[i] < r.keys[j]
	})
	return r
}

// Len returns the number of ranked institutions
func (r *InstitutionRanking) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ranks)
}

// Rank looks up an institution. An exact match on the normalized name wins; otherwise
// the longest ranked name contained in the given name as whole words is used, so
// "Dept. of CS, Stanford University" resolves to "Stanford University".
func (r *InstitutionRanking) Rank(name string) (int, bool) {
	if r.Len() == 0 {
		return 0, false
	}
	key := normalizeInstitution(name)
	if key == "" {
		return 0, false
	}
	if rank, ok := r.ranks[key]; ok {
		return rank, true
	}
	padded := " " + key + " "
	for _, k := range r.keys {
		if strings.Contains(padded, " "+k+" ") {
			return r.ranks[k], true
		}
	}
	return 0, false
}

// BestRank returns the best rank among several institutions
func (r *InstitutionRanking) BestRank(names []string) (int, bool) {
	best, found := 0, false
	for _, n := range names {
		if rank, ok := r.Rank(n); ok && (!found || rank < best) {
			best, found = rank, true
		}
	}
	return best, found
}
