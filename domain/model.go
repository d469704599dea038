package domain

import "github.com/err0r500/go-ldp-server/constant"

// InteractionModel is the LDP kind of a resource
type InteractionModel uint8

const (
	LDPResource InteractionModel = iota
	RDFSource
	Container
	BasicContainer
	DirectContainer
	IndirectContainer
	NonRDFSource
)

var interactionModelIRIs = [...]string{
	LDPResource:       constant.LDPResource,
	RDFSource:         constant.LDPRDFSource,
	Container:         constant.LDPContainer,
	BasicContainer:    constant.LDPBasicContainer,
	DirectContainer:   constant.LDPDirectContainer,
	IndirectContainer: constant.LDPIndirectContainer,
	NonRDFSource:      constant.LDPNonRDFSource,
}

// IRI returns the LDP type IRI of the interaction model
func (m InteractionModel) IRI() string {
	return interactionModelIRIs[m]
}

func (m InteractionModel) String() string {
	return m.IRI()[len(constant.NsLDP):]
}

// InteractionModelFromIRI maps an LDP type IRI to its interaction model
func InteractionModelFromIRI(iri string) (InteractionModel, bool) {
	for m, v := range interactionModelIRIs {
		if v == iri {
			return InteractionModel(m), true
		}
	}
	return 0, false
}

// IsContainer reports whether the model is one of the container variants
func (m InteractionModel) IsContainer() bool {
	switch m {
	case Container, BasicContainer, DirectContainer, IndirectContainer:
		return true
	}
	return false
}

// IsRDF reports whether the representation of the model is an RDF graph
func (m InteractionModel) IsRDF() bool {
	return m != NonRDFSource
}

// Types returns the LDP type hierarchy of the model, most specific first,
// as advertised in rel="type" Link headers.
func (m InteractionModel) Types() []string {
	switch m {
	case NonRDFSource:
		return []string{constant.LDPNonRDFSource, constant.LDPResource}
	case RDFSource:
		return []string{constant.LDPRDFSource, constant.LDPResource}
	case Container:
		return []string{constant.LDPContainer, constant.LDPRDFSource, constant.LDPResource}
	case BasicContainer, DirectContainer, IndirectContainer:
		return []string{m.IRI(), constant.LDPContainer, constant.LDPRDFSource, constant.LDPResource}
	}
	return []string{constant.LDPResource}
}
