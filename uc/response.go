package uc

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/precondition"
)

// BodyWriter produces the response body; it is called at most once
type BodyWriter func(ctx context.Context, w io.Writer) error

// Response is the decision of a handler: status, headers and an optional
// body. Content carries binary content instead of Body; it is closed by the
// writer.
type Response struct {
	Status  int
	headers http.Header
	Body    BodyWriter
	Content io.ReadCloser
}

func NewResponse() *Response {
	return &Response{
		Status:  http.StatusInternalServerError,
		headers: http.Header{},
	}
}

func (r *Response) Headers() http.Header {
	return r.headers
}

func (r *Response) HeaderAdd(key, value string) *Response {
	r.headers.Add(key, value)
	return r
}

func (r *Response) HeaderSet(key, value string) *Response {
	r.headers.Set(key, value)
	return r
}

func (r *Response) HeaderDel(key string) *Response {
	r.headers.Del(key)
	return r
}

func (r *Response) Respond(status int) *Response {
	r.Status = status
	return r
}

// Stream sets the content type and the body producer
func (r *Response) Stream(contentType string, body BodyWriter) *Response {
	r.HeaderSet(constant.HCType, contentType)
	r.Body = body
	return r
}

// Binary sets the content type and the binary content
func (r *Response) Binary(contentType string, content io.ReadCloser) *Response {
	r.HeaderSet(constant.HCType, contentType)
	r.Content = content
	return r
}

// Link adds a Link header with the given relation
func (r *Response) Link(uri, rel string) *Response {
	return r.HeaderAdd(constant.HLink, "<"+uri+`>; rel="`+rel+`"`)
}

// Types adds one rel="type" Link per IRI
func (r *Response) Types(types []string) *Response {
	for _, t := range types {
		r.Link(t, constant.RelType)
	}
	return r
}

func (r *Response) Allow(methods []string) *Response {
	return r.HeaderSet(constant.HAllow, strings.Join(methods, ","))
}

func (r *Response) AcceptPatch(types []string) *Response {
	if len(types) == 0 {
		return r
	}
	return r.HeaderSet(constant.HAcceptPatch, strings.Join(types, ","))
}

func (r *Response) AcceptPost(types []string) *Response {
	if len(types) == 0 {
		return r
	}
	return r.HeaderSet(constant.HAcceptPost, strings.Join(types, ","))
}

func (r *Response) PreferenceApplied(value string) *Response {
	if len(value) == 0 {
		return r
	}
	return r.HeaderSet(constant.HPreferenceApplied, value)
}

// Validators sets ETag and Last-Modified
func (r *Response) Validators(v precondition.Validator) *Response {
	r.HeaderSet(constant.HETag, v.ETag)
	return r.HeaderSet(constant.HLastModified, v.LastModifiedHeader())
}

// ConstrainedBy links the violated constraint
func (r *Response) ConstrainedBy(constraint string) *Response {
	return r.Link(constraint, constant.RelConstrainedBy)
}
