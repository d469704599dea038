package constraint_test

import (
	"testing"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/constraint"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "gold:repository/c"

func graph(triples ...[2]domain.Term) *domain.Graph {
	g := domain.NewGraph(base)
	for _, po := range triples {
		g.AddTriple(domain.NewIRI(base), po[0], po[1])
	}
	return g
}

func iri(s string) domain.IRI { return domain.NewIRI(s) }

func TestValidRDFSource(t *testing.T) {
	g := graph([2]domain.Term{iri(constant.NsDC + "title"), domain.NewLiteral("A title")})
	assert.Nil(t, constraint.New().ConstrainedBy(domain.RDFSource, "http://ex.org/c", g))
	assert.Nil(t, constraint.New().ConstrainedBy(domain.RDFSource, "http://ex.org/c", domain.NewGraph(base)))
}

func TestInvalidProperty(t *testing.T) {
	g := graph([2]domain.Term{iri(constant.LDPContains), iri("gold:repository/c/child")})
	v := constraint.New().ConstrainedBy(domain.BasicContainer, "", g)
	require.NotNil(t, v)
	assert.Equal(t, constant.GoldInvalidProperty, v.Constraint)
	require.NotNil(t, v.Triple)
	assert.Equal(t, iri(constant.LDPContains), v.Triple.P)

	g = graph([2]domain.Term{iri(constant.LDPMembershipResource), iri("gold:repository/m")})
	v = constraint.New().ConstrainedBy(domain.RDFSource, "", g)
	require.NotNil(t, v)
	assert.Equal(t, constant.GoldInvalidProperty, v.Constraint)
}

func TestInvalidType(t *testing.T) {
	g := graph([2]domain.Term{iri(constant.RDFType), iri(constant.LDPBasicContainer)})
	v := constraint.New().ConstrainedBy(domain.RDFSource, "", g)
	require.NotNil(t, v)
	assert.Equal(t, constant.GoldInvalidType, v.Constraint)

	g = graph([2]domain.Term{iri(constant.RDFType), iri("http://xmlns.com/foaf/0.1/Person")})
	assert.Nil(t, constraint.New().ConstrainedBy(domain.RDFSource, "", g))
}

func TestDirectContainer(t *testing.T) {
	valid := graph(
		[2]domain.Term{iri(constant.LDPMembershipResource), iri("gold:repository/m")},
		[2]domain.Term{iri(constant.LDPHasMemberRelation), iri(constant.DCHasPart)},
	)
	assert.Nil(t, constraint.New().ConstrainedBy(domain.DirectContainer, "", valid))

	missing := graph([2]domain.Term{iri(constant.LDPMembershipResource), iri("gold:repository/m")})
	v := constraint.New().ConstrainedBy(domain.DirectContainer, "", missing)
	require.NotNil(t, v)
	assert.Equal(t, constant.GoldInvalidCardinality, v.Constraint)

	v = constraint.New().ConstrainedBy(domain.DirectContainer, "", domain.NewGraph(base))
	require.NotNil(t, v)
	assert.Equal(t, constant.GoldInvalidCardinality, v.Constraint)
	assert.Nil(t, v.Triple)

	both := graph(
		[2]domain.Term{iri(constant.LDPMembershipResource), iri("gold:repository/m")},
		[2]domain.Term{iri(constant.LDPHasMemberRelation), iri(constant.DCHasPart)},
		[2]domain.Term{iri(constant.LDPIsMemberOfRelation), iri(constant.DCHasPart)},
	)
	v = constraint.New().ConstrainedBy(domain.DirectContainer, "", both)
	require.NotNil(t, v)
	assert.Equal(t, constant.GoldInvalidCardinality, v.Constraint)
}

func TestIndirectContainer(t *testing.T) {
	g := graph(
		[2]domain.Term{iri(constant.LDPMembershipResource), iri("gold:repository/m")},
		[2]domain.Term{iri(constant.LDPHasMemberRelation), iri(constant.DCHasPart)},
	)
	v := constraint.New().ConstrainedBy(domain.IndirectContainer, "", g)
	require.NotNil(t, v)
	assert.Equal(t, constant.GoldInvalidCardinality, v.Constraint)

	g.AddTriple(iri(base), iri(constant.LDPInsertedContentRelation), iri("http://xmlns.com/foaf/0.1/primaryTopic"))
	assert.Nil(t, constraint.New().ConstrainedBy(domain.IndirectContainer, "", g))
}

func TestInvalidRange(t *testing.T) {
	g := graph(
		[2]domain.Term{iri(constant.LDPMembershipResource), domain.NewLiteral("not an IRI")},
		[2]domain.Term{iri(constant.LDPHasMemberRelation), iri(constant.DCHasPart)},
	)
	v := constraint.New().ConstrainedBy(domain.DirectContainer, "", g)
	require.NotNil(t, v)
	assert.Equal(t, constant.GoldInvalidRange, v.Constraint)
}
