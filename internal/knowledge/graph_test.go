package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansetu/internal/domain"
)

func TestBuildGraphFromCatalog(t *testing.T) {
	g := Build(Catalog())

	stats := g.Stats()
	assert.Equal(t, 16, stats.Schemes)
	assert.Greater(t, stats.Rules, 0)
	assert.Greater(t, stats.Documents, 0)
	assert.Equal(t, stats.TotalNodes, stats.Schemes+stats.Rules+stats.Documents)

	// Every scheme keeps its catalog identity.
	schemes := g.Schemes()
	require.Len(t, schemes, 16)
	assert.Equal(t, "pm_kisan", schemes[0].ID)

	s, ok := g.Scheme("atal_pension")
	require.True(t, ok)
	assert.Equal(t, "Atal Pension Yojana", s.Name)

	_, ok = g.Scheme("no_such_scheme")
	assert.False(t, ok)
}

func TestGraphEdges(t *testing.T) {
	g := Build(Catalog())

	// Scheme -> rule edges carry the rule_ prefix.
	rules := g.Successors("pm_kisan", RelRequires)
	assert.ElementsMatch(t, []string{"rule_pmk_1", "rule_pmk_2"}, rules)

	// Scheme -> document edges carry the doc_ prefix.
	docs := g.Successors("pm_jan_dhan", RelNeedsDocument)
	assert.Equal(t, []string{"doc_aadhaar"}, docs)

	// Dependencies are directed; conflict edges exist in both directions.
	assert.Equal(t, []string{"pm_jan_dhan"}, g.Successors("pmay", RelDependsOn))
	assert.Contains(t, g.Successors("sukanya_samriddhi", RelConflictsWith), "beti_bachao")
	assert.Contains(t, g.Successors("beti_bachao", RelConflictsWith), "sukanya_samriddhi")
}

func TestBuildSkipsUnknownRelationshipTargets(t *testing.T) {
	g := Build([]*domain.Scheme{
		{
			ID:            "alpha",
			Name:          "Alpha",
			DependsOn:     []string{"ghost"},
			ConflictsWith: []string{"phantom"},
		},
	})

	assert.Empty(t, g.Successors("alpha", RelDependsOn))
	assert.Empty(t, g.Successors("alpha", RelConflictsWith))
}

func TestSharedDocumentNodesAreNotDuplicated(t *testing.T) {
	g := Build(Catalog())
	stats := g.Stats()

	// aadhaar is required by every scheme but must appear as one node.
	docTypes := map[string]bool{}
	for _, s := range g.Schemes() {
		for _, d := range s.RequiredDocuments {
			docTypes[d] = true
		}
	}
	assert.Equal(t, len(docTypes), stats.Documents)
}
