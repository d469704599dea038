package uc

import (
	"net/http"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/encoder"
)

// Capability is what a resource in a given state allows
type Capability struct {
	Allow       []string
	AcceptPost  []string
	AcceptPatch []string
}

var (
	readOnly         = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	aclMethods       = []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPatch}
	rdfMethods       = []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete, http.MethodPatch}
	containerMethods = append(append([]string{}, rdfMethods...), http.MethodPost)

	patchTypes = []string{constant.ApplicationSPARQLUpd}
)

// acceptPostTypes lists the media types a container accepts in POST bodies
func acceptPostTypes() []string {
	out := make([]string, 0, len(encoder.InputSyntaxes))
	for _, s := range encoder.InputSyntaxes {
		out = append(out, s.MediaType())
	}
	return out
}

type state uint8

const (
	stateRDF state = iota
	stateContainer
	stateACL
	stateMemento
)

var capabilities = [...]Capability{
	stateRDF:       {Allow: rdfMethods, AcceptPatch: patchTypes},
	stateContainer: {Allow: containerMethods, AcceptPost: acceptPostTypes(), AcceptPatch: patchTypes},
	stateACL:       {Allow: aclMethods, AcceptPatch: patchTypes},
	stateMemento:   {Allow: readOnly},
}

// Capabilities returns the methods and body types allowed on a resource of
// the given model, seen through the ext view, memento or not. Mementos and
// the timemap are read-only.
func Capabilities(model domain.InteractionModel, ext string, memento bool) Capability {
	switch {
	case memento, ext == constant.ExtTimemap:
		return capabilities[stateMemento]
	case ext == constant.ExtACL:
		return capabilities[stateACL]
	case model.IsContainer():
		return capabilities[stateContainer]
	}
	return capabilities[stateRDF]
}

// Allows reports whether the method is in the capability's Allow set
func (c Capability) Allows(method string) bool {
	for _, m := range c.Allow {
		if m == method {
			return true
		}
	}
	return false
}
