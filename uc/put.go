package uc

import (
	"context"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/err0r500/go-ldp-server/audit"
	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/encoder"
)

// Put creates the resource when res is nil, replaces it otherwise
func (s Interactor) Put(ctx context.Context, req *Request, res *domain.Resource) *Response {
	if out := s.gone(req, res); out != nil {
		return out
	}
	model := s.interactionModel(req, res)
	if !Capabilities(model, req.Ext, res != nil && res.IsMemento).Allows(http.MethodPut) {
		return NewResponse().Respond(http.StatusMethodNotAllowed)
	}
	if out := s.evaluate(req, res); out != nil {
		return out
	}
	if res != nil && res.InteractionModel.IsRDF() != model.IsRDF() {
		s.logger.Debug("interaction model change refused", "identifier", req.Identifier, "from", res.InteractionModel.String(), "to", model.String())
		return NewResponse().Respond(http.StatusConflict)
	}

	activity := audit.Create
	if res != nil {
		activity = audit.Update
	}

	var (
		d   *domain.Dataset
		out *Response
	)
	if model.IsRDF() {
		d, out = s.rdfState(ctx, req, res, model, activity)
	} else {
		d, out = s.binaryState(ctx, req, res, activity)
	}
	if out != nil {
		return out
	}
	if !s.persist(ctx, req, d) {
		return NewResponse().Respond(http.StatusInternalServerError)
	}

	r := NewResponse().Types(model.Types())
	if res == nil {
		s.logger.Debug("created resource", "identifier", req.Identifier, "model", model.String())
		return r.HeaderSet(constant.HLocation, req.BaseURL).Respond(http.StatusCreated)
	}
	s.logger.Debug("replaced resource", "identifier", req.Identifier, "model", model.String())
	return r.Respond(http.StatusNoContent)
}

// interactionModel picks the model from the Link type, then the existing
// resource, then the body type
func (s Interactor) interactionModel(req *Request, res *domain.Resource) domain.InteractionModel {
	if m, ok := domain.InteractionModelFromIRI(req.LinkType); ok && m != domain.LDPResource {
		if m == domain.Container {
			return domain.BasicContainer
		}
		return m
	}
	if res != nil {
		return res.InteractionModel
	}
	if _, ok := encoder.Lookup(req.ContentType); ok || len(req.ContentType) == 0 {
		return domain.RDFSource
	}
	return domain.NonRDFSource
}

func body(req *Request) io.Reader {
	if req.Body == nil {
		return strings.NewReader("")
	}
	return req.Body
}

// rdfState parses an RDF body into the next dataset of the resource
func (s Interactor) rdfState(ctx context.Context, req *Request, res *domain.Resource, model domain.InteractionModel, activity audit.Activity) (*domain.Dataset, *Response) {
	syntax := encoder.Turtle
	if len(req.ContentType) > 0 {
		var ok bool
		if syntax, ok = encoder.Lookup(req.ContentType); !ok {
			s.logger.Debug("unsupported RDF content type", "identifier", req.Identifier, "contentType", req.ContentType)
			return nil, NewResponse().Respond(http.StatusUnsupportedMediaType)
		}
	}

	triples, err := encoder.Parse(ctx, body(req), syntax, req.BaseURL)
	if err != nil {
		s.logger.Debug("parsing body failed", "identifier", req.Identifier, "syntax", syntax.String(), "err", err)
		return nil, NewResponse().Respond(http.StatusBadRequest)
	}
	g := s.inboundGraph(req, slices.Values(triples))
	if v := s.constraints.ConstrainedBy(model, req.BaseURL, g); v != nil {
		return nil, s.violated(req, v)
	}

	d := s.nextState(req, model, res, activity)
	d.AddAll(domain.UserManaged, g.Triples())
	if res != nil {
		d.AddAll(domain.AccessControl, res.StreamGraph(domain.AccessControl))
	}
	return d, nil
}

// binaryState stores the body as binary content and describes it in the
// server-managed graph
func (s Interactor) binaryState(ctx context.Context, req *Request, res *domain.Resource, activity audit.Activity) (*domain.Dataset, *Response) {
	mediaType := req.ContentType
	if len(mediaType) == 0 {
		mediaType = constant.ApplicationOctet
	}
	location := constant.InternalScheme + "binary/" + s.newID()
	size, err := s.binaries.Put(ctx, location, body(req))
	if err != nil {
		s.logger.Error("writing binary failed", "identifier", req.Identifier, "location", location, "err", err)
		return nil, NewResponse().Respond(http.StatusInternalServerError)
	}

	d := s.nextState(req, domain.NonRDFSource, res, activity)
	id, loc := domain.NewIRI(req.Identifier), domain.NewIRI(location)
	d.AddTriple(domain.ServerManaged, domain.NewTriple(id, domain.NewIRI(constant.DCHasPart), loc))
	d.AddTriple(domain.ServerManaged, domain.NewTriple(loc, domain.NewIRI(constant.DCFormat), domain.NewLiteral(mediaType)))
	d.AddTriple(domain.ServerManaged, domain.NewTriple(loc, domain.NewIRI(constant.DCExtent),
		domain.NewLiteralWithDatatype(strconv.FormatInt(size, 10), constant.XSDLong)))
	if res != nil {
		d.AddAll(domain.UserManaged, res.StreamGraph(domain.UserManaged))
		d.AddAll(domain.AccessControl, res.StreamGraph(domain.AccessControl))
	}
	return d, nil
}
