package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "python", Normalize("  Python "))
	assert.Equal(t, "system design", Normalize("System Design"))
	assert.Equal(t, "", Normalize("   "))
}

func TestRelated_ForwardAndReverse(t *testing.T) {
	o := New(map[string][]string{
		"python":           {"django", "machine learning"},
		"machine learning": {"python", "tensorflow"},
	})

	related := o.Related("python")
	// Forward: django, machine learning. Reverse: machine learning lists python.
	assert.ElementsMatch(t, []string{"django", "machine learning"}, related)

	// django has no authored entry but is reachable by reverse scan.
	assert.Equal(t, []string{"python"}, o.Related("Django"))
}

func TestRelated_UnknownSkill(t *testing.T) {
	o := Default()
	assert.Empty(t, o.Related("underwater basket weaving"))
}

func TestSimilarity_Identity(t *testing.T) {
	o := Default()
	for _, skill := range []string{"python", "DSA", "System Design", "never heard of it"} {
		assert.Equal(t, 1.0, o.Similarity(skill, skill), "similarity(s, s) must be 1.0 for %q", skill)
	}
	// Case-insensitive exact match.
	assert.Equal(t, 1.0, o.Similarity("Python", "python"))
}

func TestSimilarity_DirectEdge(t *testing.T) {
	o := Default()
	// Authored forward edge.
	assert.Equal(t, 0.7, o.Similarity("python", "django"))
	// Reverse direction of the same edge.
	assert.Equal(t, 0.7, o.Similarity("django", "python"))
}

func TestSimilarity_SharedRelations(t *testing.T) {
	o := Default()
	// javascript and html are not directly related but share "frontend".
	sim := o.Similarity("javascript", "html")
	require.Greater(t, sim, 0.3)
	require.Less(t, sim, 0.7)

	// Symmetric by construction.
	assert.Equal(t, sim, o.Similarity("html", "javascript"))
}

func TestSimilarity_SharedRelationsFormula(t *testing.T) {
	o := New(map[string][]string{
		"a": {"x", "y"},
		"b": {"x", "z", "w"},
	})
	// overlap = {x}; |related(a)| = 2, |related(b)| = 3.
	assert.InDelta(t, 0.3+0.4*1.0/3.0, o.Similarity("a", "b"), 1e-9)
}

func TestSimilarity_NoPath(t *testing.T) {
	o := Default()
	assert.Equal(t, 0.0, o.Similarity("communication", "kubernetes"))
	assert.Equal(t, 0.0, o.Similarity("nope", "also nope 2"))
}

func TestDefault_ContainsCoreSkills(t *testing.T) {
	o := Default()
	for _, skill := range []string{"python", "java", "dsa", "system design", "communication"} {
		assert.NotEmpty(t, o.Related(skill), "expected relations for %q", skill)
	}
}
