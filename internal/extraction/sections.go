package extraction

import (
	"regexp"
	"strings"
)

// Section names recognised by SplitSections
const (
	SectionHeader         = ""
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
)

var sectionHeadings = map[string]string{
	"summary":                     SectionSummary,
	"professional summary":        SectionSummary,
	"profile":                     SectionSummary,
	"objective":                   SectionSummary,
	"career objective":            SectionSummary,
	"about me":                    SectionSummary,
	"experience":                  SectionExperience,
	"work experience":             SectionExperience,
	"professional experience":     SectionExperience,
	"employment":                  SectionExperience,
	"employment history":          SectionExperience,
	"work history":                SectionExperience,
	"career history":              SectionExperience,
	"education":                   SectionEducation,
	"education and training":      SectionEducation,
	"academic background":         SectionEducation,
	"academic qualifications":     SectionEducation,
	"qualifications":              SectionEducation,
	"skills":                      SectionSkills,
	"technical skills":            SectionSkills,
	"core competencies":           SectionSkills,
	"competencies":                SectionSkills,
	"skills and competencies":     SectionSkills,
	"projects":                    SectionProjects,
	"personal projects":           SectionProjects,
	"certifications":              SectionCertifications,
	"certificates":                SectionCertifications,
	"licenses and certifications": SectionCertifications,
	"languages":                   SectionLanguages,
}

var headingTrim = regexp.MustCompile(`[^a-z ]+`)

// Section is one titled block of a CV
type Section struct {
	Name string
	Body string
}

// Sections is a CV split at its headings, in document order
type Sections []Section

// SplitSections splits text at lines that consist of a known heading. Text before the
// first heading is kept under SectionHeader.
func SplitSections(text string) Sections {
	var sections Sections
	current := Section{Name: SectionHeader}
	var body strings.Builder

	flush := func() {
		current.Body = strings.TrimSpace(body.String())
		if current.Body != "" || current.Name != SectionHeader {
			sections = append(sections, current)
		}
		body.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := headingName(line); ok {
			flush()
			current = Section{Name: name}
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	flush()
	return sections
}

func headingName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 40 {
		return "", false
	}
	key := strings.ToLower(trimmed)
	key = strings.ReplaceAll(key, "&", "and")
	key = strings.Join(strings.Fields(headingTrim.ReplaceAllString(key, " ")), " ")
	name, ok := sectionHeadings[key]
	return name, ok
}

// Has reports whether a section with the given name exists
func (s Sections) Has(name string) bool {
	for _, sec := range s {
		if sec.Name == name {
			return true
		}
	}
	return false
}

// Text returns the bodies of all sections with the given name
func (s Sections) Text(name string) string {
	var parts []string
	for _, sec := range s {
		if sec.Name == name && sec.Body != "" {
			parts = append(parts, sec.Body)
		}
	}
	return strings.Join(parts, "\n")
}

// Except returns the bodies of all sections not named
func (s Sections) Except(names ...string) string {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	var parts []string
	for _, sec := range s {
		if !skip[sec.Name] && sec.Body != "" {
			parts = append(parts, sec.Body)
		}
	}
	return strings.Join(parts, "\n")
}
