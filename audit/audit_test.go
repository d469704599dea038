package audit_test

import (
	"testing"
	"time"

	"github.com/err0r500/go-ldp-server/audit"
	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditQuads(t *testing.T) {
	s := audit.Service{NewID: func() string { return "act1" }}
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	quads := s.Quads("gold:repository/a", domain.NewSession("http://ex.org/alice"), audit.Create, at)

	require.Len(t, quads, 5)
	node := domain.NewIRI("gold:bnode/act1")
	for _, q := range quads {
		assert.Equal(t, domain.Audit, q.Graph)
	}
	assert.Equal(t, domain.NewQuad(domain.Audit, domain.NewIRI("gold:repository/a"), domain.NewIRI(constant.PROVWasGeneratedBy), node), quads[0])
	assert.Contains(t, quads, domain.NewQuad(domain.Audit, node, domain.NewIRI(constant.RDFType), domain.NewIRI(constant.ASCreate)))
	assert.Contains(t, quads, domain.NewQuad(domain.Audit, node, domain.NewIRI(constant.PROVWasAssociatedWith), domain.NewIRI("http://ex.org/alice")))
	assert.Contains(t, quads, domain.NewQuad(domain.Audit, node, domain.NewIRI(constant.PROVAtTime),
		domain.NewLiteralWithDatatype("2024-05-01T10:00:00Z", constant.XSDDateTime)))
}

func TestAuditDelegateAndAnonymous(t *testing.T) {
	session := domain.NewSession("http://ex.org/alice")
	session.Delegatee = "http://ex.org/app"
	quads := audit.New().Quads("gold:repository/a", session, audit.Delete, time.Now())
	require.Len(t, quads, 6)
	assert.Equal(t, domain.NewIRI(constant.PROVActedOnBehalfOf), quads[5].P)
	assert.Equal(t, domain.NewIRI(constant.ASDelete), quads[2].O)

	quads = audit.New().Quads("gold:repository/a", nil, audit.Update, time.Now())
	assert.Equal(t, domain.NewIRI(constant.GoldAnonymousAgent), quads[3].O)
}

func TestAuditActivityNodesAreUnique(t *testing.T) {
	s := audit.New()
	a := s.Quads("gold:repository/a", nil, audit.Update, time.Now())
	b := s.Quads("gold:repository/a", nil, audit.Update, time.Now())
	assert.NotEqual(t, a[0].O, b[0].O)
}
