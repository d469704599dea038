package reqHandler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/precondition"
	"github.com/err0r500/go-ldp-server/rdfutil"
	"github.com/err0r500/go-ldp-server/uc"
)

// ErrBadRequest wraps every request the parser refuses
var ErrBadRequest = errors.New("bad request")

// SessionResolver finds the session of a request
type SessionResolver interface {
	Session(r *http.Request) *domain.Session
}

// Parser turns HTTP requests into handler requests
type Parser struct {
	// BaseURL overrides the external root derived from the request
	BaseURL string
	// Partition is the internal namespace, without scheme
	Partition string
	Sessions  SessionResolver
}

type httpRequest struct {
	request *http.Request
}

func (req httpRequest) Header(key string) string { return req.request.Header.Get(key) }

// HeaderComplete joins repeated header lines into one list value
func (req httpRequest) HeaderComplete(key string) string {
	return strings.Join(req.request.Header.Values(key), ", ")
}

// Root returns the external URL of the server root, with a trailing slash
func (req httpRequest) Root() string {
	scheme := "http"
	if req.request.TLS != nil || req.request.Header.Get("X-Forwarded-Proto") == "https" {
		scheme += "s"
	}
	reqHost := req.request.Host
	if len(req.Header("X-Forwarded-Host")) > 0 {
		reqHost = req.Header("X-Forwarded-Host")
	}
	host, port, err := net.SplitHostPort(reqHost)
	if err != nil {
		host = reqHost
	}
	if len(host) == 0 {
		host = "localhost"
	}
	if len(port) > 0 {
		port = ":" + port
	}
	if (scheme == "https" && port == ":443") || (scheme == "http" && port == ":80") {
		port = ""
	}
	return scheme + "://" + host + port + "/"
}

// Accept parses the Accept header. A missing header defaults to */*.
func (req httpRequest) Accept() (rdfutil.AcceptList, error) {
	headers := req.request.Header.Values(constant.HAccept)
	if len(headers) == 0 {
		return rdfutil.ParseAccept("*/*")
	}
	return rdfutil.ParseAccept(strings.Join(headers, ","))
}

func (req httpRequest) ext() (string, error) {
	switch ext := req.request.URL.Query().Get("ext"); ext {
	case "", constant.ExtACL, constant.ExtTimemap:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: unknown ext %q", ErrBadRequest, ext)
	}
}

func (req httpRequest) version() (*time.Time, error) {
	v := req.request.URL.Query().Get("version")
	if len(v) == 0 {
		return nil, nil
	}
	secs, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid version %q", ErrBadRequest, v)
	}
	t := time.Unix(secs, 0).UTC()
	return &t, nil
}

// profile reads Accept-Profile, which names one profile IRI
func (req httpRequest) profile() string {
	p := strings.TrimSpace(req.Header(constant.HAcceptProfile))
	if i := strings.IndexByte(p, ','); i >= 0 {
		p = p[:i]
	}
	return strings.Trim(strings.TrimSpace(p), `<>"`)
}

// Parse builds the handler request of r
func (p Parser) Parse(r *http.Request) (*uc.Request, error) {
	req := httpRequest{request: r}

	accept, err := req.Accept()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	ext, err := req.ext()
	if err != nil {
		return nil, err
	}
	version, err := req.version()
	if err != nil {
		return nil, err
	}

	root := req.Root()
	if len(p.BaseURL) > 0 {
		root = strings.TrimSuffix(p.BaseURL, "/") + "/"
	}
	partition := p.Partition
	if len(partition) == 0 {
		partition = constant.DefaultPartition
	}
	path := strings.Trim(r.URL.EscapedPath(), "/")

	out := &uc.Request{
		Method:      r.Method,
		Identifier:  constant.InternalScheme + partition + "/" + path,
		BaseURL:     root + path,
		Partition:   constant.InternalScheme + partition,
		Root:        root,
		Ext:         ext,
		Version:     version,
		Session:     domain.AnonymousSession(),
		Prefer:      req.HeaderComplete(constant.HPrefer),
		Accept:      accept,
		Profile:     req.profile(),
		ContentType: req.Header(constant.HCType),
		LinkType:    uc.ParseLinkHeader(req.HeaderComplete(constant.HLink)).MatchRel(constant.RelType),
		Slug:        req.Header(constant.HSlug),
		Body:        r.Body,
		Conditions: precondition.Headers{
			IfMatch:           req.HeaderComplete(constant.HIfMatch),
			IfNoneMatch:       req.HeaderComplete(constant.HIfNoneMatch),
			IfModifiedSince:   req.Header(constant.HIfModifiedSince),
			IfUnmodifiedSince: req.Header(constant.HIfUnmodifiedSince),
		},
		CORSRequestHeaders: req.HeaderComplete("Access-Control-Request-Headers"),
		CORSRequestMethod:  req.HeaderComplete("Access-Control-Request-Method"),
	}
	if p.Sessions != nil {
		out.Session = p.Sessions.Session(r)
	}
	return out, nil
}

// Write flushes a handler response. Binary content that can seek is served
// with byte range support.
func Write(ctx context.Context, w http.ResponseWriter, r *http.Request, res *uc.Response) error {
	for k, v := range res.Headers() {
		w.Header()[k] = v
	}

	if res.Content != nil {
		defer res.Content.Close()
		if rs, ok := res.Content.(io.ReadSeeker); ok && res.Status == http.StatusOK {
			http.ServeContent(w, r, "", time.Time{}, rs)
			return nil
		}
		w.WriteHeader(res.Status)
		if r.Method == http.MethodHead {
			return nil
		}
		_, err := io.Copy(w, res.Content)
		return err
	}

	w.WriteHeader(res.Status)
	if res.Body == nil || r.Method == http.MethodHead {
		return nil
	}
	return res.Body(ctx, w)
}
