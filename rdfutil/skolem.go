package rdfutil

import (
	"strings"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
)

// Skolemize maps a blank node to its internal IRI; any other term is
// returned unchanged
func Skolemize(t domain.Term) domain.Term {
	if b, ok := t.(domain.BlankNode); ok {
		return domain.NewIRI(constant.SkolemPrefix + b.ID)
	}
	return t
}

// Unskolemize maps an IRI produced by Skolemize back to its blank node; any
// other term is returned unchanged
func Unskolemize(t domain.Term) domain.Term {
	if !IsSkolem(t) {
		return t
	}
	return domain.NewBlankNode(strings.TrimPrefix(t.(domain.IRI).Value, constant.SkolemPrefix))
}

// IsSkolem reports whether the term is a skolem IRI
func IsSkolem(t domain.Term) bool {
	iri, ok := t.(domain.IRI)
	return ok && len(iri.Value) > len(constant.SkolemPrefix) && strings.HasPrefix(iri.Value, constant.SkolemPrefix)
}

// TermMapper rewrites a single term
type TermMapper func(domain.Term) domain.Term

// Triple applies the mapper to the subject and object of t
func (f TermMapper) Triple(t domain.Triple) domain.Triple {
	return domain.NewTriple(f(t.S), t.P, f(t.O))
}

// Then composes two mappers, f running first
func (f TermMapper) Then(g TermMapper) TermMapper {
	return func(t domain.Term) domain.Term { return g(f(t)) }
}
