package knowledge

import "jansetu/internal/domain"

// NodeKind classifies graph nodes.
type NodeKind string

const (
	NodeScheme   NodeKind = "scheme"
	NodeRule     NodeKind = "rule"
	NodeDocument NodeKind = "document"
)

// Relation labels a directed edge in the scheme graph.
type Relation string

const (
	// RelRequires links a scheme to one of its eligibility rule nodes.
	RelRequires Relation = "REQUIRES"
	// RelNeedsDocument links a scheme to a required document node.
	RelNeedsDocument Relation = "NEEDS_DOCUMENT"
	// RelDependsOn links a scheme to a prerequisite scheme.
	RelDependsOn Relation = "DEPENDS_ON"
	// RelConflictsWith links mutually exclusive schemes, in both directions.
	RelConflictsWith Relation = "CONFLICTS_WITH"
)

// Stats summarises graph size for the health and stats endpoints.
type Stats struct {
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
	Schemes    int `json:"schemes"`
	Rules      int `json:"rules"`
	Documents  int `json:"documents"`
}

// Graph is the in-memory scheme knowledge graph. It is built once at startup
// and read-only afterwards, so it is safe for concurrent use.
type Graph struct {
	nodes   map[string]NodeKind
	out     map[string]map[Relation][]string
	in      map[string]map[Relation][]string
	schemes map[string]*domain.Scheme
	order   []string // scheme IDs in catalog order
	edges   int
}

// Build constructs the graph from a scheme catalog. Rule nodes get a "rule_"
// prefix and document nodes a "doc_" prefix so IDs never collide with scheme
// IDs. Dependency and conflict edges pointing at unknown schemes are skipped.
func Build(schemes []*domain.Scheme) *Graph {
	g := &Graph{
		nodes:   make(map[string]NodeKind),
		out:     make(map[string]map[Relation][]string),
		in:      make(map[string]map[Relation][]string),
		schemes: make(map[string]*domain.Scheme, len(schemes)),
	}

	for _, s := range schemes {
		g.nodes[s.ID] = NodeScheme
		g.schemes[s.ID] = s
		g.order = append(g.order, s.ID)
	}

	for _, s := range schemes {
		for _, rule := range s.EligibilityRules {
			ruleNode := "rule_" + rule.ID
			g.nodes[ruleNode] = NodeRule
			g.addEdge(s.ID, ruleNode, RelRequires)
		}
		for _, doc := range s.RequiredDocuments {
			docNode := "doc_" + doc
			g.nodes[docNode] = NodeDocument
			g.addEdge(s.ID, docNode, RelNeedsDocument)
		}
		for _, depID := range s.DependsOn {
			if _, ok := g.schemes[depID]; ok {
				g.addEdge(s.ID, depID, RelDependsOn)
			}
		}
		for _, conflictID := range s.ConflictsWith {
			if _, ok := g.schemes[conflictID]; ok {
				g.addEdge(s.ID, conflictID, RelConflictsWith)
				g.addEdge(conflictID, s.ID, RelConflictsWith)
			}
		}
	}

	return g
}

func (g *Graph) addEdge(from, to string, rel Relation) {
	if g.hasEdge(from, to, rel) {
		return
	}
	if g.out[from] == nil {
		g.out[from] = make(map[Relation][]string)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[Relation][]string)
	}
	g.out[from][rel] = append(g.out[from][rel], to)
	g.in[to][rel] = append(g.in[to][rel], from)
	g.edges++
}

func (g *Graph) hasEdge(from, to string, rel Relation) bool {
	for _, n := range g.out[from][rel] {
		if n == to {
			return true
		}
	}
	return false
}

// Successors returns nodes reachable from id via edges of the given relation.
func (g *Graph) Successors(id string, rel Relation) []string {
	return g.out[id][rel]
}

// Predecessors returns nodes with an edge of the given relation into id.
func (g *Graph) Predecessors(id string, rel Relation) []string {
	return g.in[id][rel]
}

// Scheme looks up a scheme by ID. The second return is false if unknown.
func (g *Graph) Scheme(id string) (*domain.Scheme, bool) {
	s, ok := g.schemes[id]
	return s, ok
}

// Schemes returns all schemes in catalog order.
func (g *Graph) Schemes() []*domain.Scheme {
	out := make([]*domain.Scheme, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.schemes[id])
	}
	return out
}

// Stats reports node and edge counts by kind.
func (g *Graph) Stats() Stats {
	st := Stats{TotalNodes: len(g.nodes), TotalEdges: g.edges}
	for _, kind := range g.nodes {
		switch kind {
		case NodeScheme:
			st.Schemes++
		case NodeRule:
			st.Rules++
		case NodeDocument:
			st.Documents++
		}
	}
	return st
}
