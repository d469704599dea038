package uc

import (
	"io"
	"time"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/precondition"
	"github.com/err0r500/go-ldp-server/rdfutil"
)

// Request is an inbound LDP request, already routed and parsed by the HTTP
// layer
type Request struct {
	Method string
	// Identifier is the internal identifier of the target (gold:<partition>/path)
	Identifier string
	// BaseURL is the external URL the client used for the target
	BaseURL string
	// Partition is the internal root (gold:<partition>)
	Partition string
	// Root is the external URL of the partition root
	Root string
	// Ext selects a view of the resource: "", acl or timemap
	Ext string
	// Version selects a memento
	Version *time.Time

	Session     *domain.Session
	Prefer      string
	Accept      rdfutil.AcceptList
	Profile     string
	ContentType string
	LinkType    string
	Slug        string
	Body        io.Reader
	Conditions  precondition.Headers

	// CORS preflight headers, only read by OPTIONS
	CORSRequestHeaders string
	CORSRequestMethod  string
}

// Mapper returns the internal/external IRI mapping of the request
func (r *Request) Mapper() rdfutil.IRIMapper {
	return rdfutil.NewIRIMapper(r.Partition, r.Root)
}

// IsACL reports whether the request targets the access-control view
func (r *Request) IsACL() bool {
	return r.Ext == constant.ExtACL
}

func (r *Request) session() *domain.Session {
	if r.Session == nil {
		return domain.AnonymousSession()
	}
	return r.Session
}
