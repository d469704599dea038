// Package audit synthesizes the provenance quads recorded with every write
package audit

import (
	"time"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/rdfutil"
	"github.com/google/uuid"
)

// Activity is the kind of change a write performs
type Activity uint8

const (
	Create Activity = iota
	Update
	Delete
)

var activityIRIs = [...]string{
	Create: constant.ASCreate,
	Update: constant.ASUpdate,
	Delete: constant.ASDelete,
}

// IRI returns the ActivityStreams type of the activity
func (a Activity) IRI() string {
	return activityIRIs[a]
}

// Service builds audit quads. The activity node is a skolem IRI minted
// from NewID.
type Service struct {
	NewID func() string
}

// New returns a Service minting random UUIDs
func New() Service {
	return Service{NewID: uuid.NewString}
}

// Quads describes one activity on identifier by the session's agent at the
// given time; every quad is in the audit graph
func (s Service) Quads(identifier string, session *domain.Session, activity Activity, at time.Time) []domain.Quad {
	if session == nil {
		session = domain.AnonymousSession()
	}
	newID := s.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	node := rdfutil.Skolemize(domain.NewBlankNode(newID()))
	subject := domain.NewIRI(identifier)
	rdfType := domain.NewIRI(constant.RDFType)

	quads := []domain.Quad{
		domain.NewQuad(domain.Audit, subject, domain.NewIRI(constant.PROVWasGeneratedBy), node),
		domain.NewQuad(domain.Audit, node, rdfType, domain.NewIRI(constant.PROVActivity)),
		domain.NewQuad(domain.Audit, node, rdfType, domain.NewIRI(activity.IRI())),
		domain.NewQuad(domain.Audit, node, domain.NewIRI(constant.PROVWasAssociatedWith), domain.NewIRI(session.Agent)),
		domain.NewQuad(domain.Audit, node, domain.NewIRI(constant.PROVAtTime),
			domain.NewLiteralWithDatatype(at.UTC().Format(time.RFC3339Nano), constant.XSDDateTime)),
	}
	if len(session.Delegatee) > 0 {
		quads = append(quads, domain.NewQuad(domain.Audit, node, domain.NewIRI(constant.PROVActedOnBehalfOf), domain.NewIRI(session.Delegatee)))
	}
	return quads
}
