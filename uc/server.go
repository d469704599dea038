package uc

import (
	"strings"
	"time"

	"github.com/err0r500/go-ldp-server/audit"
	"github.com/err0r500/go-ldp-server/rdfutil"
	"github.com/google/uuid"
)

// Interactor holds the verb handlers and their collaborators. Handlers keep
// no state between calls.
type Interactor struct {
	resources   ResourceService
	io          IOService
	constraints ConstraintService
	binaries    BinaryService
	logger      Logger

	auditor        audit.Service
	now            func() time.Time
	newID          func() string
	defaultProfile string
}

// Option customizes an Interactor
type Option func(*Interactor)

// WithClock sets the time source used for audit activities
func WithClock(now func() time.Time) Option {
	return func(s *Interactor) { s.now = now }
}

// WithIDGenerator sets the generator of POST child ids, binary locations
// and audit activity ids
func WithIDGenerator(newID func() string) Option {
	return func(s *Interactor) { s.newID = newID }
}

// WithDefaultProfile sets the JSON-LD profile used when the client names none
func WithDefaultProfile(profile string) Option {
	return func(s *Interactor) {
		if len(profile) > 0 {
			s.defaultProfile = profile
		}
	}
}

func NewInteractor(resources ResourceService, io IOService, constraints ConstraintService, binaries BinaryService, logger Logger, opts ...Option) Interactor {
	s := Interactor{
		resources:      resources,
		io:             io,
		constraints:    constraints,
		binaries:       binaries,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
		defaultProfile: rdfutil.DefaultProfile,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.auditor = audit.Service{NewID: s.newID}
	return s
}

type linkheader struct {
	uri string
	rel string
}

// Linkheaders holds the list of Link headers
type Linkheaders struct {
	headers []*linkheader
}

// ParseLinkHeader is a generic Link header parser
func ParseLinkHeader(header string) *Linkheaders {
	ret := new(Linkheaders)

	for _, v := range strings.Split(header, ",") {
		item := new(linkheader)
		for _, s := range strings.Split(v, ";") {
			s = strings.TrimSpace(s)
			if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
				item.uri = strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
			} else if rel, ok := strings.CutPrefix(s, "rel="); ok {
				item.rel = strings.Trim(rel, `"'`)
			}
		}
		if len(item.uri) > 0 {
			ret.headers = append(ret.headers, item)
		}
	}
	return ret
}

// MatchRel attempts to match a Link header based on the rel value
func (l *Linkheaders) MatchRel(rel string) string {
	for _, v := range l.headers {
		for _, r := range strings.Fields(v.rel) {
			if r == rel {
				return v.uri
			}
		}
	}
	return ""
}
