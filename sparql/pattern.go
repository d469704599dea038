package sparql

import (
	"strings"

	"github.com/err0r500/go-ldp-server/domain"
)

// varName returns the variable a pattern term stands for. Blank nodes in
// graph patterns behave as variables.
func varName(t domain.Term) (string, bool) {
	switch t := t.(type) {
	case domain.IRI:
		return strings.CutPrefix(t.Value, varPrefix)
	case domain.BlankNode:
		return "_:" + t.ID, true
	}
	return "", false
}

func isVar(t domain.Term) bool {
	iri, ok := t.(domain.IRI)
	return ok && strings.HasPrefix(iri.Value, varPrefix)
}

type binding map[string]domain.Term

// resolve returns the bound value of a pattern term, nil for an unbound
// variable
func (b binding) resolve(t domain.Term) domain.Term {
	if name, ok := varName(t); ok {
		return b[name]
	}
	return t
}

func (b binding) extend(pattern, t domain.Triple) (binding, bool) {
	next := make(binding, len(b)+3)
	for k, v := range b {
		next[k] = v
	}
	for _, pair := range [...][2]domain.Term{{pattern.S, t.S}, {pattern.P, t.P}, {pattern.O, t.O}} {
		name, ok := varName(pair[0])
		if !ok {
			continue
		}
		if bound, seen := next[name]; seen && !bound.Equal(pair[1]) {
			return nil, false
		}
		next[name] = pair[1]
	}
	return next, true
}

// match evaluates a basic graph pattern against g. The empty pattern has a
// single empty solution.
func match(g *domain.Graph, patterns []domain.Triple) []binding {
	solutions := []binding{{}}
	for _, p := range patterns {
		var next []binding
		for _, b := range solutions {
			for _, t := range g.All(b.resolve(p.S), b.resolve(p.P), b.resolve(p.O)) {
				if nb, ok := b.extend(p, t); ok {
					next = append(next, nb)
				}
			}
		}
		solutions = next
		if len(solutions) == 0 {
			break
		}
	}
	return solutions
}

// instantiate fills a template triple from the solution. Blank nodes get a
// fresh node per solution when fresh is non nil. Triples left with an
// unbound variable or an invalid term position are skipped.
func (b binding) instantiate(t domain.Triple, fresh map[string]domain.Term) (domain.Triple, bool) {
	fill := func(term domain.Term) domain.Term {
		if bn, ok := term.(domain.BlankNode); ok {
			if fresh == nil {
				return nil
			}
			if n, seen := fresh[bn.ID]; seen {
				return n
			}
			n := newBlankNode()
			fresh[bn.ID] = n
			return n
		}
		if isVar(term) {
			name, _ := varName(term)
			return b[name]
		}
		return term
	}
	s, p, o := fill(t.S), fill(t.P), fill(t.O)
	if s == nil || p == nil || o == nil {
		return domain.Triple{}, false
	}
	if s.Kind() == domain.TermLiteral || p.Kind() != domain.TermIRI {
		return domain.Triple{}, false
	}
	return domain.NewTriple(s, p, o), true
}
