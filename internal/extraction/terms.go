package extraction

import (
	"regexp"
	"sort"
)

// termPattern matches a single term preceded by a boundary that treats the characters
// used in names like C++, C#, Node.js and R&D as part of a word. The trailing boundary
// is checked by findSpans so that the separator stays available to the next match.
func termPattern(term string, caseSensitive bool) *regexp.Regexp {
	flags := "(?i)"
	if caseSensitive {
		flags = ""
	}
	return regexp.MustCompile(flags + `(?:^|[^\w+#.&])(` + regexp.QuoteMeta(term) + `)`)
}

// endsTerm reports whether position end of text closes a term
func endsTerm(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	switch c := text[end]; {
	case c == '_', c == '+', c == '#', c == '&':
		return false
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	}
	return true
}

// span is one occurrence of a term, attributed to a canonical skill
type span struct {
	skill string
	start int
	end   int
}

func findSpans(re *regexp.Regexp, skill, text string) []span {
	var spans []span
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if !endsTerm(text, m[3]) {
			continue
		}
		spans = append(spans, span{skill: skill, start: m[2], end: m[3]})
	}
	return spans
}

// resolveSpans drops occurrences that sit inside a longer occurrence of a different
// skill (React inside React Native) and collapses duplicates of the same skill at the
// same position (Vue and Vue.js).
func resolveSpans(spans []span) []span {
	sort.SliceStable(spans, func(i, j int) bool {
		li, lj := spans[i].end-spans[i].start, spans[j].end-spans[j].start
		if li != lj {
			return li > lj
		}
		return spans[i].start < spans[j].start
	})

	var accepted []span
	for _, s := range spans {
		keep := true
		for _, a := range accepted {
			if s.start >= a.start && s.end <= a.end {
				keep = false
				break
			}
			if s.skill == a.skill && s.start < a.end && a.start < s.end {
				keep = false
				break
			}
		}
		if keep {
			accepted = append(accepted, s)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].start < accepted[j].start
	})
	return accepted
}
