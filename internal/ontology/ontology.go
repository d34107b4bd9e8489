// Package ontology provides the authored skill relation graph and the
// similarity heuristic built on top of it.
package ontology

import (
	"sort"
	"strings"
)

// Similarity constants. Shared-neighbour scores fall strictly between the
// direct-edge score and the base, so the 0.6 match threshold separates
// direct relations from indirect ones.
const (
	similarityExact      = 1.0
	similarityDirectEdge = 0.7
	similarityBase       = 0.3
	similaritySpan       = 0.4
)

// Normalize lower-cases and whitespace-trims a skill token. Tokens are
// unique by normalized form; no further canonicalization is performed, so
// synonyms stay distinct unless related in the ontology.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// Ontology is an authored, asymmetric relation graph between skill tokens.
// Only directly authored pairs and their reverse exist; no transitive
// closure is computed.
type Ontology struct {
	relations map[string][]string
}

// New builds an Ontology from an authored relation map. Keys and values are
// normalized; empty tokens are dropped.
func New(relations map[string][]string) *Ontology {
	normalized := make(map[string][]string, len(relations))
	for skill, related := range relations {
		key := Normalize(skill)
		if key == "" {
			continue
		}
		values := make([]string, 0, len(related))
		for _, r := range related {
			if n := Normalize(r); n != "" {
				values = append(values, n)
			}
		}
		normalized[key] = values
	}
	return &Ontology{relations: normalized}
}

// Related returns the union of a skill's authored forward relations and
// every token whose relation set contains it (reverse scan), sorted for
// deterministic output. Unknown tokens yield an empty set, never an error.
func (o *Ontology) Related(skill string) []string {
	set := o.relatedSet(skill)
	related := make([]string, 0, len(set))
	for r := range set {
		related = append(related, r)
	}
	sort.Strings(related)
	return related
}

// relatedSet collects the forward and reverse relations of a skill.
func (o *Ontology) relatedSet(skill string) map[string]struct{} {
	normalized := Normalize(skill)
	set := make(map[string]struct{})

	for _, r := range o.relations[normalized] {
		set[r] = struct{}{}
	}

	// Reverse scan: skills that list this one as related.
	for key, values := range o.relations {
		for _, v := range values {
			if v == normalized {
				set[key] = struct{}{}
				break
			}
		}
	}

	return set
}

// Similarity scores two skills in [0, 1]:
//   - exact match (case-insensitive): 1.0
//   - direct ontology edge in either direction: 0.7
//   - shared related skills: 0.3 + 0.4 * |overlap| / max(|related(a)|, |related(b)|, 1)
//   - no relation path of length <= 2: 0.0
//
// The heuristic is deterministic and symmetric by construction.
func (o *Ontology) Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return similarityExact
	}

	relatedA := o.relatedSet(a)
	relatedB := o.relatedSet(b)

	if _, ok := relatedA[nb]; ok {
		return similarityDirectEdge
	}
	if _, ok := relatedB[na]; ok {
		return similarityDirectEdge
	}

	overlap := 0
	for r := range relatedA {
		if _, ok := relatedB[r]; ok {
			overlap++
		}
	}
	if overlap > 0 {
		denom := max(len(relatedA), len(relatedB), 1)
		return similarityBase + similaritySpan*float64(overlap)/float64(denom)
	}

	return 0.0
}
