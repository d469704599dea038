package rdfutil

import (
	"strings"

	"github.com/err0r500/go-ldp-server/domain"
)

const (
	ReturnRepresentation = "representation"
	ReturnMinimal        = "minimal"
)

// Prefer holds the LDP specific parts of a Prefer header
type Prefer struct {
	Return  string
	Include []string
	Omit    []string
}

func unquoteList(s string) []string {
	return strings.Fields(strings.Trim(strings.TrimSpace(s), `"`))
}

// ParsePrefer parses the Prefer header; unknown preferences are ignored
func ParsePrefer(header string) *Prefer {
	ret := new(Prefer)
	for _, v := range strings.Split(header, ",") {
		for _, s := range strings.Split(v, ";") {
			key, value, _ := strings.Cut(strings.TrimSpace(s), "=")
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "return":
				ret.Return = strings.ToLower(strings.Trim(strings.TrimSpace(value), `"`))
			case "include":
				ret.Include = append(ret.Include, unquoteList(value)...)
			case "omit":
				ret.Omit = append(ret.Omit, unquoteList(value)...)
			}
		}
	}
	return ret
}

// Graphs returns the partitions the preference selects. The user-managed
// graph is included by default; omit always wins over include.
func (p *Prefer) Graphs() map[domain.GraphTag]bool {
	graphs := map[domain.GraphTag]bool{domain.UserManaged: true}
	for _, iri := range p.Include {
		if tag, ok := domain.GraphTagFromIRI(iri); ok {
			graphs[tag] = true
		}
	}
	for _, iri := range p.Omit {
		if tag, ok := domain.GraphTagFromIRI(iri); ok {
			delete(graphs, tag)
		}
	}
	return graphs
}

// Applied returns the Preference-Applied value for the return preference;
// only representation and minimal are ever honored
func (p *Prefer) Applied() string {
	switch p.Return {
	case ReturnRepresentation, ReturnMinimal:
		return "return=" + p.Return
	}
	return ""
}

// FilterByPrefer returns a predicate keeping the quads the Prefer header
// asks for
func FilterByPrefer(header string) func(domain.Quad) bool {
	graphs := ParsePrefer(header).Graphs()
	return func(q domain.Quad) bool {
		return graphs[q.Graph]
	}
}
