package domain

import (
	"iter"
	"sort"
)

// Triple is an RDF statement
type Triple struct {
	S Term
	P Term
	O Term
}

// NewTriple creates a Triple object
func NewTriple(s, p, o Term) Triple {
	return Triple{S: s, P: p, O: o}
}

// String returns the N-Triples line of the triple
func (t Triple) String() string {
	return t.S.String() + " " + t.P.String() + " " + t.O.String() + " ."
}

// Graph structure
type Graph struct {
	triples map[Triple]struct{}
	uri     string
}

// NewGraph creates a Graph object
func NewGraph(uri string) *Graph {
	return &Graph{
		triples: make(map[Triple]struct{}),
		uri:     uri,
	}
}

// Len returns the length of the graph as number of triples in the graph
func (g *Graph) Len() int {
	return len(g.triples)
}

func (g *Graph) NotEmpty() bool {
	return len(g.triples) > 0
}

// URI returns the base URI of the graph
func (g *Graph) URI() string {
	return g.uri
}

func isNilOrEquals(t1 Term, t2 Term) bool {
	if t1 == nil {
		return true
	}
	return t2.Equal(t1)
}

// One returns one triple based on a triple pattern of S, P, O objects
func (g *Graph) One(s Term, p Term, o Term) *Triple {
	for triple := range g.triples {
		if isNilOrEquals(s, triple.S) && isNilOrEquals(p, triple.P) && isNilOrEquals(o, triple.O) {
			return &triple
		}
	}
	return nil
}

// Triples iterates through all the triples in a graph
func (g *Graph) Triples() iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for triple := range g.triples {
			if !yield(triple) {
				return
			}
		}
	}
}

// Sorted returns the triples ordered by their N-Triples form
func (g *Graph) Sorted() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for triple := range g.triples {
		out = append(out, triple)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Has reports whether the triple is in the graph
func (g *Graph) Has(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Add is used to add a Triple object to the graph
func (g *Graph) Add(t Triple) {
	g.triples[t] = struct{}{}
}

// AddTriple is used to add a triple made of individual S, P, O objects
func (g *Graph) AddTriple(s Term, p Term, o Term) {
	g.Add(NewTriple(s, p, o))
}

// Remove is used to remove a Triple object
func (g *Graph) Remove(t Triple) {
	delete(g.triples, t)
}

// All is used to return all triples that match a given pattern of S, P, O objects
func (g *Graph) All(s Term, p Term, o Term) []Triple {
	var triples []Triple
	for triple := range g.triples {
		if isNilOrEquals(s, triple.S) && isNilOrEquals(p, triple.P) && isNilOrEquals(o, triple.O) {
			triples = append(triples, triple)
		}
	}
	return triples
}
