package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSections(t *testing.T) {
	sections := SplitSections(sampleCV)

	assert.True(t, sections.Has(SectionHeader))
	assert.True(t, sections.Has(SectionExperience))
	assert.True(t, sections.Has(SectionEducation))
	assert.True(t, sections.Has(SectionSkills))
	assert.False(t, sections.Has(SectionProjects))

	assert.Contains(t, sections.Text(SectionExperience), "Acme GmbH")
	assert.NotContains(t, sections.Text(SectionExperience), "University")
	assert.Contains(t, sections.Text(SectionHeader), "Jane Doe")
}

func TestSplitSections_HeadingVariants(t *testing.T) {
	text := "WORK EXPERIENCE:\nBuilt things\n\nEducation & Training\nBSc Physics\n"
	sections := SplitSections(text)

	assert.Equal(t, "Built things", sections.Text(SectionExperience))
	assert.Equal(t, "BSc Physics", sections.Text(SectionEducation))
	assert.False(t, sections.Has(SectionHeader))
}

func TestSplitSections_NoHeadings(t *testing.T) {
	sections := SplitSections("just some text\nwithout headings")

	assert.Len(t, sections, 1)
	assert.Equal(t, SectionHeader, sections[0].Name)
	assert.Equal(t, "just some text\nwithout headings", sections.Except(SectionEducation))
}
