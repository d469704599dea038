package uc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/encoder"
	"github.com/err0r500/go-ldp-server/rdfutil"
)

// GetHead answers GET and HEAD. HEAD carries the same headers as GET and no
// body.
func (s Interactor) GetHead(ctx context.Context, req *Request, res *domain.Resource) *Response {
	r := NewResponse()
	if res == nil {
		return r.Respond(http.StatusNotFound)
	}
	if out := s.gone(req, res); out != nil {
		return out
	}
	if req.Ext == constant.ExtTimemap {
		return s.timemap(req, res)
	}
	if out := s.evaluate(req, res); out != nil {
		return out
	}

	s.describe(r, req, res)

	if res.InteractionModel == domain.NonRDFSource && !req.IsACL() && !wantsDescription(req.Accept) {
		return s.content(ctx, r, req, res)
	}

	keep := rdfutil.FilterByPrefer(req.Prefer)
	if req.IsACL() {
		if !hasGraph(res, domain.AccessControl) {
			return r.Respond(http.StatusNotFound)
		}
		keep = func(q domain.Quad) bool { return q.Graph == domain.AccessControl }
	}

	syntax, err := rdfutil.SelectSyntax(req.Accept, req.Profile)
	if err != nil {
		s.logger.Debug("no acceptable representation", "identifier", req.Identifier, "err", err)
		return r.Respond(http.StatusNotAcceptable)
	}

	prefer := rdfutil.ParsePrefer(req.Prefer)
	r.PreferenceApplied(prefer.Applied())
	if prefer.Return == rdfutil.ReturnMinimal {
		return r.Respond(http.StatusNoContent)
	}

	r.Respond(http.StatusOK)
	return s.represent(r, req, syntax, s.outboundTriples(req, res.Stream(), keep))
}

// describe sets the headers shared by every GET/HEAD representation
func (s Interactor) describe(r *Response, req *Request, res *domain.Resource) {
	capability := Capabilities(res.InteractionModel, req.Ext, res.IsMemento)

	r.Validators(validator(res))
	r.Types(res.InteractionModel.Types())
	r.HeaderSet(constant.HVary, strings.Join([]string{constant.HAccept, constant.HPrefer}, ", "))
	r.Allow(capability.Allow)
	r.AcceptPatch(capability.AcceptPatch)
	r.AcceptPost(capability.AcceptPost)

	if !req.IsACL() {
		r.Link(req.BaseURL+"?ext="+constant.ExtACL, constant.RelACL)
	}
	if res.IsMemento {
		r.Link(req.BaseURL, constant.RelOriginal)
		r.HeaderSet(constant.HMementoDatetime, res.Modified.UTC().Format(http.TimeFormat))
	}
	if res.IsMemento || res.HasMementos() {
		r.Link(req.BaseURL+"?ext="+constant.ExtTimemap, constant.RelTimemap)
	}
}

// content answers with the binary of a NonRDFSource
func (s Interactor) content(ctx context.Context, r *Response, req *Request, res *domain.Resource) *Response {
	if res.Binary == nil {
		s.logger.Error("binary metadata missing", "identifier", req.Identifier)
		return r.Respond(http.StatusInternalServerError)
	}
	mediaType := res.Binary.MediaType
	if len(mediaType) == 0 {
		mediaType = constant.ApplicationOctet
	}
	r.HeaderSet(constant.HAcceptRanges, "bytes")
	r.Respond(http.StatusOK)
	if req.Method == http.MethodHead {
		return r.HeaderSet(constant.HCType, mediaType)
	}

	rc, err := s.binaries.Content(ctx, res.Binary.Location)
	if err != nil {
		s.logger.Error("reading binary failed", "identifier", req.Identifier, "location", res.Binary.Location, "err", err)
		return NewResponse().Respond(http.StatusInternalServerError)
	}
	return r.Binary(mediaType, rc)
}

// timemap lists the mementos of the resource in link-format
func (s Interactor) timemap(req *Request, res *domain.Resource) *Response {
	r := NewResponse()
	links := []string{
		fmt.Sprintf(`<%s>; rel="original timegate"`, req.BaseURL),
		fmt.Sprintf(`<%s?ext=%s>; rel="self"; type="%s"`, req.BaseURL, constant.ExtTimemap, constant.ApplicationLinkFormat),
	}
	for _, m := range res.Mementos {
		links = append(links, fmt.Sprintf(`<%s?version=%d>; rel="%s"; datetime="%s"`,
			req.BaseURL, m.Unix(), constant.RelMemento, m.UTC().Format(http.TimeFormat)))
	}
	body := strings.Join(links, ",\n") + "\n"

	r.Allow(Capabilities(res.InteractionModel, constant.ExtTimemap, false).Allow)
	r.Link(req.BaseURL, constant.RelOriginal)
	r.Respond(http.StatusOK)
	if req.Method == http.MethodHead {
		return r.HeaderSet(constant.HCType, constant.ApplicationLinkFormat)
	}
	return r.Stream(constant.ApplicationLinkFormat, func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

// wantsDescription reports whether the client explicitly asked for an RDF
// syntax, in which case a NonRDFSource answers with its description
func wantsDescription(acceptable rdfutil.AcceptList) bool {
	for _, m := range acceptable {
		if m.Wildcard() || m.Q <= 0 {
			continue
		}
		if syntax, ok := encoder.Lookup(m.String()); ok && syntax.Writable() {
			return true
		}
	}
	return false
}

func hasGraph(res *domain.Resource, tag domain.GraphTag) bool {
	for range res.StreamGraph(tag) {
		return true
	}
	return false
}
