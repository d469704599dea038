package uc

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/err0r500/go-ldp-server/audit"
	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/encoder"
	"github.com/err0r500/go-ldp-server/rdfutil"
)

// Patch applies a SPARQL update to the user-managed graph, or to the
// access-control graph for the acl view
func (s Interactor) Patch(ctx context.Context, req *Request, res *domain.Resource) *Response {
	r := NewResponse()
	if req.Session == nil {
		s.logger.Debug("PATCH without a session", "identifier", req.Identifier)
		return r.Respond(http.StatusBadRequest)
	}
	if req.Body == nil {
		s.logger.Debug("PATCH without a body", "identifier", req.Identifier)
		return r.Respond(http.StatusBadRequest)
	}
	buf, err := io.ReadAll(req.Body)
	if err != nil || len(strings.TrimSpace(string(buf))) == 0 {
		s.logger.Debug("could not patch resource, no SPARQL statements found in the request", "identifier", req.Identifier)
		return r.Respond(http.StatusBadRequest)
	}
	if res == nil {
		return r.Respond(http.StatusNotFound)
	}
	if out := s.gone(req, res); out != nil {
		return out
	}
	if !Capabilities(res.InteractionModel, req.Ext, res.IsMemento).Allows(http.MethodPatch) {
		return r.Respond(http.StatusMethodNotAllowed)
	}
	if out := s.evaluate(req, res); out != nil {
		return out
	}
	if mediaType, _, err := mime.ParseMediaType(req.ContentType); err != nil || mediaType != constant.ApplicationSPARQLUpd {
		s.logger.Debug("unsupported patch type", "identifier", req.Identifier, "contentType", req.ContentType)
		return r.Respond(http.StatusUnsupportedMediaType)
	}

	prefer := rdfutil.ParsePrefer(req.Prefer)
	var syntax encoder.Syntax
	if prefer.Return == rdfutil.ReturnRepresentation {
		if syntax, err = rdfutil.SelectSyntax(req.Accept, req.Profile); err != nil {
			return r.Respond(http.StatusNotAcceptable)
		}
	}

	target, other := domain.UserManaged, domain.AccessControl
	if req.IsACL() {
		target, other = domain.AccessControl, domain.UserManaged
	}

	g := domain.NewGraph(req.BaseURL)
	out := s.outbound(req)
	for t := range res.StreamGraph(target) {
		g.Add(out(t))
	}
	if err := s.io.Update(ctx, g, string(buf), req.BaseURL); err != nil {
		s.logger.Debug("SPARQL update failed", "identifier", req.Identifier, "err", err)
		return r.Respond(http.StatusBadRequest)
	}
	updated := s.inboundGraph(req, g.Triples())

	if target == domain.UserManaged {
		if v := s.constraints.ConstrainedBy(res.InteractionModel, req.BaseURL, updated); v != nil {
			return s.violated(req, v)
		}
	}

	d := s.nextState(req, res.InteractionModel, res, audit.Update)
	carryServerManaged(d, res)
	d.AddAll(target, updated.Triples())
	d.AddAll(other, res.StreamGraph(other))
	if !s.persist(ctx, req, d) {
		return r.Respond(http.StatusInternalServerError)
	}
	s.logger.Debug("patched resource", "identifier", req.Identifier, "graph", target.String())

	r.Types(res.InteractionModel.Types())
	if prefer.Return != rdfutil.ReturnRepresentation {
		return r.Respond(http.StatusNoContent)
	}

	keep := rdfutil.FilterByPrefer(req.Prefer)
	if req.IsACL() {
		keep = func(q domain.Quad) bool { return q.Graph == domain.AccessControl }
	}
	r.PreferenceApplied(prefer.Applied()).Respond(http.StatusOK)
	return s.represent(r, req, syntax, s.outboundTriples(req, d.Quads(), keep))
}
