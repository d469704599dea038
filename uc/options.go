package uc

import (
	"context"
	"net/http"
	"strings"

	"github.com/err0r500/go-ldp-server/domain"
)

// Options advertises what the resource allows in its current state
func (s Interactor) Options(_ context.Context, req *Request, res *domain.Resource) *Response {
	r := NewResponse()
	if res == nil {
		return r.Respond(http.StatusNotFound)
	}
	if out := s.gone(req, res); out != nil {
		return out
	}

	capability := Capabilities(res.InteractionModel, req.Ext, res.IsMemento)
	if len(req.CORSRequestHeaders) > 0 { // CORS preflight only
		r.HeaderSet("Access-Control-Allow-Headers", req.CORSRequestHeaders)
	}
	if len(req.CORSRequestMethod) > 0 { // CORS preflight only
		r.HeaderSet("Access-Control-Allow-Methods", req.CORSRequestMethod)
	} else {
		r.HeaderSet("Access-Control-Allow-Methods", strings.Join(capability.Allow, ", "))
	}

	return r.Types(res.InteractionModel.Types()).
		Allow(capability.Allow).
		AcceptPost(capability.AcceptPost).
		AcceptPatch(capability.AcceptPatch).
		Respond(http.StatusNoContent)
}
