package knowledge

import (
	"sort"

	"jansetu/internal/domain"
)

// MaxChainHops bounds benefit-chain traversal depth.
const MaxChainHops = 5

// BenefitChain follows DEPENDS_ON edges backwards from schemeID and returns
// the IDs of schemes that require it as a prerequisite, directly or
// transitively, up to MaxChainHops hops. Results appear in breadth-first
// order; each scheme at most once. Unknown scheme IDs yield an empty chain.
func (g *Graph) BenefitChain(schemeID string) []string {
	var dependents []string
	visited := map[string]bool{schemeID: true}

	frontier := []string{schemeID}
	for hop := 0; hop < MaxChainHops && len(frontier) > 0; hop++ {
		var next []string
		for _, current := range frontier {
			for _, pred := range g.Predecessors(current, RelDependsOn) {
				if visited[pred] {
					continue
				}
				visited[pred] = true
				dependents = append(dependents, pred)
				next = append(next, pred)
			}
		}
		frontier = next
	}

	return dependents
}

// DetectConflicts returns the mutually exclusive pairs within the given
// scheme IDs. Each pair is reported once with its IDs in lexical order,
// regardless of input order or duplicates in the input.
func (g *Graph) DetectConflicts(schemeIDs []string) []domain.ConflictPair {
	requested := make(map[string]bool, len(schemeIDs))
	for _, id := range schemeIDs {
		requested[id] = true
	}

	seen := make(map[[2]string]bool)
	var pairs []domain.ConflictPair

	for _, id := range schemeIDs {
		for _, neighbor := range g.Successors(id, RelConflictsWith) {
			if !requested[neighbor] {
				continue
			}
			a, b := id, neighbor
			if a > b {
				a, b = b, a
			}
			key := [2]string{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true

			pair := domain.ConflictPair{SchemeA: a, SchemeB: b}
			if s, ok := g.Scheme(a); ok {
				pair.SchemeAName = s.Name
			}
			if s, ok := g.Scheme(b); ok {
				pair.SchemeBName = s.Name
			}
			pair.Message = pair.SchemeAName + " and " + pair.SchemeBName + " cannot be claimed together"
			pairs = append(pairs, pair)
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].SchemeA != pairs[j].SchemeA {
			return pairs[i].SchemeA < pairs[j].SchemeA
		}
		return pairs[i].SchemeB < pairs[j].SchemeB
	})

	return pairs
}
