package rdfutil

import (
	"strings"

	"github.com/err0r500/go-ldp-server/domain"
)

// IRIMapper rewrites identifiers between the internal partition namespace
// (gold:<partition>/) and the base URL the client used
type IRIMapper struct {
	Internal string
	External string
}

// NewIRIMapper builds a mapper; both prefixes get a trailing slash
func NewIRIMapper(internal, external string) IRIMapper {
	return IRIMapper{Internal: withSlash(internal), External: withSlash(external)}
}

func withSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

func swapPrefix(t domain.Term, from, to string) domain.Term {
	iri, ok := t.(domain.IRI)
	if !ok || len(from) == 0 {
		return t
	}
	if rest, found := strings.CutPrefix(iri.Value, from); found {
		return domain.NewIRI(to + rest)
	}
	// the root itself, without its trailing slash
	if iri.Value+"/" == from {
		return domain.NewIRI(strings.TrimSuffix(to, "/"))
	}
	return t
}

// Externalize maps an internal identifier to the external one
func (m IRIMapper) Externalize(t domain.Term) domain.Term {
	return swapPrefix(t, m.Internal, m.External)
}

// Internalize maps an external identifier to the internal one
func (m IRIMapper) Internalize(t domain.Term) domain.Term {
	return swapPrefix(t, m.External, m.Internal)
}

// ToExternal maps an internal identifier string
func (m IRIMapper) ToExternal(identifier string) string {
	return m.Externalize(domain.NewIRI(identifier)).(domain.IRI).Value
}

// ToInternal maps an external identifier string
func (m IRIMapper) ToInternal(identifier string) string {
	return m.Internalize(domain.NewIRI(identifier)).(domain.IRI).Value
}
