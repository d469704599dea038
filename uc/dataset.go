package uc

import (
	"context"
	"iter"
	"net/http"
	"time"

	"github.com/err0r500/go-ldp-server/audit"
	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/encoder"
	"github.com/err0r500/go-ldp-server/precondition"
	"github.com/err0r500/go-ldp-server/rdfutil"
)

var rdfType = domain.NewIRI(constant.RDFType)

func typeTriple(identifier, typ string) domain.Triple {
	return domain.NewTriple(domain.NewIRI(identifier), rdfType, domain.NewIRI(typ))
}

func validator(res *domain.Resource) precondition.Validator {
	return precondition.NewValidator(res.Identifier, res.Modified, res.InteractionModel)
}

// inbound maps a triple from the client's IRI space to the stored one
func (s Interactor) inbound(req *Request) func(domain.Triple) domain.Triple {
	m := req.Mapper()
	terms := rdfutil.TermMapper(m.Internalize).Then(s.resources.Skolemize)
	return func(t domain.Triple) domain.Triple {
		t = terms.Triple(t)
		return domain.NewTriple(t.S, m.Internalize(t.P), t.O)
	}
}

// outbound maps a stored triple to the client's IRI space
func (s Interactor) outbound(req *Request) func(domain.Triple) domain.Triple {
	m := req.Mapper()
	terms := rdfutil.TermMapper(s.resources.Unskolemize).Then(m.Externalize)
	return func(t domain.Triple) domain.Triple {
		t = terms.Triple(t)
		return domain.NewTriple(t.S, m.Externalize(t.P), t.O)
	}
}

// inboundGraph collects client triples into a graph of stored triples
func (s Interactor) inboundGraph(req *Request, triples iter.Seq[domain.Triple]) *domain.Graph {
	in := s.inbound(req)
	g := domain.NewGraph(req.Identifier)
	for t := range triples {
		g.Add(in(t))
	}
	return g
}

// outboundTriples streams the kept quads of a resource, mapped for the client
func (s Interactor) outboundTriples(req *Request, quads iter.Seq[domain.Quad], keep func(domain.Quad) bool) iter.Seq[domain.Triple] {
	out := s.outbound(req)
	return func(yield func(domain.Triple) bool) {
		for q := range quads {
			if keep(q) && !yield(out(q.Triple)) {
				return
			}
		}
	}
}

// nextState starts the dataset of a write with the interaction model type
// and the audit history plus the new activity
func (s Interactor) nextState(req *Request, model domain.InteractionModel, previous *domain.Resource, activity audit.Activity) *domain.Dataset {
	d := domain.NewDataset()
	d.AddTriple(domain.ServerManaged, typeTriple(req.Identifier, model.IRI()))
	d.DerivedFrom(time.Time{})
	if previous != nil {
		d.DerivedFrom(previous.Modified)
		d.AddAll(domain.Audit, previous.StreamGraph(domain.Audit))
	}
	for _, q := range s.auditor.Quads(req.Identifier, req.session(), activity, s.now()) {
		d.Add(q)
	}
	return d
}

// carryServerManaged copies the server-managed triples of previous other
// than its types, that is the binary description of a NonRDFSource
func carryServerManaged(d *domain.Dataset, previous *domain.Resource) {
	for t := range previous.StreamGraph(domain.ServerManaged) {
		if !t.P.Equal(rdfType) {
			d.AddTriple(domain.ServerManaged, t)
		}
	}
}

// persist freezes the dataset and hands it to the resource service
func (s Interactor) persist(ctx context.Context, req *Request, d *domain.Dataset) bool {
	d.Freeze()
	ok, err := s.resources.Put(ctx, req.Identifier, d)
	if err != nil {
		s.logger.Error("persisting resource failed", "identifier", req.Identifier, "err", err)
		return false
	}
	if !ok {
		s.logger.Debug("resource service refused the write", "identifier", req.Identifier)
	}
	return ok
}

// evaluate runs the conditional headers against the current state; a
// non-nil response ends the request
func (s Interactor) evaluate(req *Request, res *domain.Resource) *Response {
	if req.Conditions.Empty() {
		return nil
	}
	var (
		outcome precondition.Outcome
		v       precondition.Validator
	)
	if res == nil {
		outcome = precondition.EvaluateAbsent(req.Conditions)
	} else {
		v = validator(res)
		outcome = v.Evaluate(req.Method, req.Conditions)
	}
	status := precondition.Status(req.Method, outcome)
	if status == 0 {
		return nil
	}
	s.logger.Debug("precondition not met", "identifier", req.Identifier, "method", req.Method, "outcome", outcome.String())
	r := NewResponse().Respond(status)
	if res != nil {
		r.Validators(v)
	}
	return r
}

// gone answers 410 for a tombstone
func (s Interactor) gone(req *Request, res *domain.Resource) *Response {
	if res == nil || !res.IsDeleted() {
		return nil
	}
	s.logger.Debug("resource is deleted", "identifier", req.Identifier)
	return NewResponse().Respond(http.StatusGone)
}

func (s Interactor) violated(req *Request, v *domain.ConstraintViolation) *Response {
	if v.Triple != nil {
		s.logger.Debug("constraint violation", "identifier", req.Identifier, "constraint", v.Constraint, "triple", v.Triple.String())
	} else {
		s.logger.Debug("constraint violation", "identifier", req.Identifier, "constraint", v.Constraint)
	}
	return NewResponse().ConstrainedBy(v.Constraint).Respond(http.StatusBadRequest)
}

// profile returns the JSON-LD profile a representation is written with
func (s Interactor) profile(req *Request, syntax encoder.Syntax) string {
	if !syntax.SupportsProfiles() {
		return ""
	}
	if len(req.Profile) > 0 {
		return req.Profile
	}
	if p, ok := rdfutil.ProfileParam(req.Accept, syntax); ok {
		return p
	}
	return s.defaultProfile
}

func contentType(syntax encoder.Syntax, profile string) string {
	if len(profile) == 0 {
		return syntax.MediaType()
	}
	return syntax.MediaType() + `; profile="` + profile + `"`
}

// represent sets the negotiated RDF body of r
func (s Interactor) represent(r *Response, req *Request, syntax encoder.Syntax, triples iter.Seq[domain.Triple]) *Response {
	profile := s.profile(req, syntax)
	if req.Method == http.MethodHead {
		return r.HeaderSet(constant.HCType, contentType(syntax, profile))
	}
	return r.Stream(contentType(syntax, profile), encoder.NewResourceStreamer(triples, syntax, profile).Write)
}
