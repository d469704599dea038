package uc

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/precondition"
)

// Post creates a child of the container res. The child name comes from the
// Slug header unless it is taken or unusable.
func (s Interactor) Post(ctx context.Context, req *Request, res *domain.Resource) *Response {
	if res == nil {
		return NewResponse().Respond(http.StatusNotFound)
	}
	if out := s.gone(req, res); out != nil {
		return out
	}
	if !Capabilities(res.InteractionModel, req.Ext, res.IsMemento).Allows(http.MethodPost) {
		return NewResponse().Respond(http.StatusMethodNotAllowed)
	}
	if out := s.evaluate(req, res); out != nil {
		return out
	}
	return s.Put(ctx, s.child(ctx, req), nil)
}

// child derives the creation request of a new container member
func (s Interactor) child(ctx context.Context, req *Request) *Request {
	name := slug(req.Slug)
	if len(name) == 0 || s.taken(ctx, join(req.Identifier, name)) {
		name = s.newID()
	}
	c := *req
	c.Identifier = join(req.Identifier, name)
	c.BaseURL = join(req.BaseURL, name)
	c.Ext = ""
	c.Slug = ""
	c.Conditions = precondition.Headers{}
	return &c
}

func (s Interactor) taken(ctx context.Context, identifier string) bool {
	res, err := s.resources.Get(ctx, identifier)
	return err == nil && res != nil
}

func join(parent, name string) string {
	return strings.TrimSuffix(parent, "/") + "/" + name
}

// slug keeps the Slug header usable as a single path segment
func slug(header string) string {
	name, err := url.PathUnescape(strings.TrimSpace(header))
	if err != nil {
		return ""
	}
	name = strings.Trim(name, "/")
	if strings.ContainsAny(name, "/?#") || name == "." || name == ".." {
		return ""
	}
	return url.PathEscape(name)
}
