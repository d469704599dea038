package domain

import "github.com/err0r500/go-ldp-server/constant"

// NS is a generic namespace type
type NS string

var (
	RDF  = NewNS(constant.NsRDF)
	LDP  = NewNS(constant.NsLDP)
	DC   = NewNS(constant.NsDC)
	PROV = NewNS(constant.NsPROV)
	AS   = NewNS(constant.NsAS)
	Gold = NewNS(constant.NsGold)
)

// NewNS is used to set a new namespace
func NewNS(base string) (ns NS) {
	return NS(base)
}

// Get is used to return the IRI of a name in the namespace
func (ns NS) Get(name string) IRI {
	return NewIRI(string(ns) + name)
}
