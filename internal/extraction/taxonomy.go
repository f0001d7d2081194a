package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/parsing"
)

// SkillHit is one skill found in a text
type SkillHit struct {
	Skill    string
	Category string
	Count    int
	// First is the byte offset of the first occurrence
	First int
}

// SkillSource finds skills of one kind in a text. Taxonomy and Lexicon are the
// built-in implementations; either can be swapped out without touching the pipeline.
type SkillSource interface {
	Find(text string) []SkillHit
}

// TaxonomyEntry describes one canonical skill
type TaxonomyEntry struct {
	Skill    string
	Category string
	// Aliases are extra spellings that resolve to Skill
	Aliases []string
	// CaseSensitive restricts matching to the exact casing, for short or ambiguous names like Go and R
	CaseSensitive bool
}

type compiledTerm struct {
	skill    string
	category string
	patterns []*regexp.Regexp
}

// Taxonomy maps canonical technical skills to categories and matches them in text
type Taxonomy struct {
	terms      []compiledTerm
	categories map[string]string
}

// NewTaxonomy compiles a taxonomy. Aliases known to the skill normalizer are added
// automatically.
func NewTaxonomy(entries []TaxonomyEntry) *Taxonomy {
	t := &Taxonomy{categories: make(map[string]string, len(entries))}
	for _, e := range entries {
		if _, dup := t.categories[e.Skill]; dup {
			continue
		}
		t.categories[e.Skill] = e.Category
		t.terms = append(t.terms, compileTerm(e.Skill, e.Category, e.Aliases, e.CaseSensitive))
	}
	return t
}

// Category returns the category of a canonical skill
func (t *Taxonomy) Category(skill string) (string, bool) {
	c, ok := t.categories[skill]
	return c, ok
}

// Find implements SkillSource
func (t *Taxonomy) Find(text string) []SkillHit {
	return findTerms(t.terms, text)
}

// Lexicon is a flat list of soft-skill phrases matched case-insensitively
type Lexicon struct {
	terms []compiledTerm
}

// NewLexicon compiles a lexicon
func NewLexicon(phrases []string) *Lexicon {
	l := &Lexicon{}
	seen := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		key := strings.ToLower(strings.TrimSpace(p))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		l.terms = append(l.terms, compileTerm(key, "", nil, false))
	}
	return l
}

// Find implements SkillSource
func (l *Lexicon) Find(text string) []SkillHit {
	return findTerms(l.terms, text)
}

func compileTerm(skill, category string, aliases []string, caseSensitive bool) compiledTerm {
	ct := compiledTerm{skill: skill, category: category}
	ct.patterns = append(ct.patterns, termPattern(skill, caseSensitive))

	seen := map[string]bool{strings.ToLower(skill): true}
	extra := append(append([]string{}, aliases...), parsing.AliasesOf(skill)...)
	for _, alias := range extra {
		key := strings.ToLower(alias)
		if seen[key] {
			continue
		}
		seen[key] = true
		ct.patterns = append(ct.patterns, termPattern(alias, false))
	}
	return ct
}

func findTerms(terms []compiledTerm, text string) []SkillHit {
	var spans []span
	for _, ct := range terms {
		for _, re := range ct.patterns {
			spans = append(spans, findSpans(re, ct.skill, text)...)
		}
	}
	if len(spans) == 0 {
		return nil
	}

	category := make(map[string]string, len(terms))
	for _, ct := range terms {
		category[ct.skill] = ct.category
	}

	var hits []SkillHit
	index := make(map[string]int)
	for _, s := range resolveSpans(spans) {
		if i, ok := index[s.skill]; ok {
			hits[i].Count++
			continue
		}
		index[s.skill] = len(hits)
		hits = append(hits, SkillHit{Skill: s.skill, Category: category[s.skill], Count: 1, First: s.start})
	}
	return hits
}
