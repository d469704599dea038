package uc

import (
	"context"
	"net/http"

	"github.com/err0r500/go-ldp-server/audit"
	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
)

// Delete replaces the resource by a tombstone. The user-managed and
// access-control graphs are dropped, the audit history is kept.
func (s Interactor) Delete(ctx context.Context, req *Request, res *domain.Resource) *Response {
	r := NewResponse()
	if res == nil {
		return r.Respond(http.StatusNotFound)
	}
	if out := s.gone(req, res); out != nil {
		return out
	}
	if !Capabilities(res.InteractionModel, req.Ext, res.IsMemento).Allows(http.MethodDelete) {
		return r.Respond(http.StatusMethodNotAllowed)
	}
	if out := s.evaluate(req, res); out != nil {
		return out
	}

	d := s.nextState(req, domain.LDPResource, res, audit.Delete)
	d.AddTriple(domain.ServerManaged, typeTriple(req.Identifier, constant.GoldDeletedResource))
	if !s.persist(ctx, req, d) {
		return r.Respond(http.StatusInternalServerError)
	}
	s.logger.Debug("deleted resource", "identifier", req.Identifier)
	return r.Respond(http.StatusNoContent)
}
