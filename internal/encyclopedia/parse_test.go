package encyclopedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diabetesExtract = `Diabetes mellitus is a group of metabolic disorders.


== Signs and symptoms ==
The classic symptoms are frequent urination, increased thirst and increased hunger.

=== Diabetic emergencies ===
Low blood sugar is common in people with type 1 diabetes.


== Cause ==
Diabetes is due to either the pancreas not producing enough insulin.


== Management ==
Management concentrates on keeping blood sugar levels close to normal.

==== Nested too deep ====
Deep text.


== References ==
`

func TestParseSections(t *testing.T) {
	lead, sections := ParseSections(diabetesExtract)

	assert.Equal(t, "Diabetes mellitus is a group of metabolic disorders.", lead)
	require.Len(t, sections, 4)

	assert.Equal(t, "Signs and symptoms", sections[0].Title)
	assert.Equal(t, "The classic symptoms are frequent urination, increased thirst and increased hunger.", sections[0].Text)
	require.Len(t, sections[0].Sections, 1)
	assert.Equal(t, "Diabetic emergencies", sections[0].Sections[0].Title)
	assert.Equal(t, "Low blood sugar is common in people with type 1 diabetes.", sections[0].Sections[0].Text)

	assert.Equal(t, "Cause", sections[1].Title)

	assert.Equal(t, "Management", sections[2].Title)
	require.Len(t, sections[2].Sections, 1)
	assert.Equal(t, "Nested too deep", sections[2].Sections[0].Title)
	assert.Equal(t, "Deep text.", sections[2].Sections[0].Text)

	assert.Equal(t, "References", sections[3].Title)
	assert.Empty(t, sections[3].Text)
}

func TestParseSections_NoHeadings(t *testing.T) {
	lead, sections := ParseSections("Just a stub article.")
	assert.Equal(t, "Just a stub article.", lead)
	assert.Empty(t, sections)
}

func TestParseSections_MismatchedMarkersAreText(t *testing.T) {
	_, sections := ParseSections("== Symptoms ==\n=== not a heading ==\nbody")
	require.Len(t, sections, 1)
	assert.Equal(t, "=== not a heading ==\nbody", sections[0].Text)
}

func TestParseSections_ThreeLevelsDeep(t *testing.T) {
	_, sections := ParseSections("== A ==\n=== B ===\n==== C ====\nc text\n== D ==\nd text")
	require.Len(t, sections, 2)
	require.Len(t, sections[0].Sections, 1)
	require.Len(t, sections[0].Sections[0].Sections, 1)
	assert.Equal(t, "C", sections[0].Sections[0].Sections[0].Title)
	assert.Equal(t, "c text", sections[0].Sections[0].Sections[0].Text)
	assert.Equal(t, "d text", sections[1].Text)
}
