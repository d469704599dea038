package domain_test

import (
	"testing"
	"time"

	"github.com/err0r500/go-ldp-server/domain"
	"github.com/stretchr/testify/assert"
)

func TestGraphOne(t *testing.T) {
	g := domain.NewGraph("http://test/")

	g.AddTriple(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewIRI("c"))
	assert.Equal(t, g.One(domain.NewIRI("a"), nil, nil).String(), "<a> <b> <c> .")
	assert.Equal(t, g.One(domain.NewIRI("a"), domain.NewIRI("b"), nil).String(), "<a> <b> <c> .")

	g.AddTriple(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewIRI("d"))
	assert.Equal(t, g.One(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewIRI("d")).String(), "<a> <b> <d> .")
	assert.Equal(t, g.One(nil, domain.NewIRI("b"), domain.NewIRI("d")).String(), "<a> <b> <d> .")

	g.AddTriple(domain.NewIRI("g"), domain.NewIRI("b2"), domain.NewLiteral("e"))
	assert.Equal(t, g.One(nil, domain.NewIRI("b2"), nil).String(), "<g> <b2> \"e\" .")
	assert.Equal(t, g.One(nil, nil, domain.NewLiteral("e")).String(), "<g> <b2> \"e\" .")

	assert.Nil(t, g.One(domain.NewIRI("x"), nil, nil))
	assert.Nil(t, g.One(nil, domain.NewIRI("x"), nil))
	assert.Nil(t, g.One(nil, nil, domain.NewIRI("x")))
}

func TestGraphAll(t *testing.T) {
	g := domain.NewGraph("http://test/")
	g.AddTriple(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewIRI("c"))
	g.AddTriple(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewIRI("d"))
	g.AddTriple(domain.NewIRI("a"), domain.NewIRI("f"), domain.NewLiteral("h"))
	g.AddTriple(domain.NewIRI("g"), domain.NewIRI("b2"), domain.NewIRI("e"))
	g.AddTriple(domain.NewIRI("g"), domain.NewIRI("b2"), domain.NewIRI("c"))

	assert.Equal(t, 5, len(g.All(nil, nil, nil)))
	assert.Equal(t, 3, len(g.All(domain.NewIRI("a"), nil, nil)))
	assert.Equal(t, 2, len(g.All(nil, domain.NewIRI("b"), nil)))
	assert.Equal(t, 1, len(g.All(nil, nil, domain.NewIRI("d"))))
	assert.Equal(t, 2, len(g.All(nil, nil, domain.NewIRI("c"))))
}

func TestGraphSetSemantics(t *testing.T) {
	g := domain.NewGraph("http://test/")
	g.AddTriple(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewLiteral("c"))
	g.AddTriple(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewLiteral("c"))
	g.AddTriple(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewLiteralWithDatatype("c", "http://www.w3.org/2001/XMLSchema#string"))
	assert.Equal(t, 1, g.Len())

	g.Remove(domain.NewTriple(domain.NewIRI("a"), domain.NewIRI("b"), domain.NewLiteral("c")))
	assert.False(t, g.NotEmpty())
}

func TestTermString(t *testing.T) {
	assert.Equal(t, `"a\"b"@en`, domain.NewLiteralWithLanguage(`a"b`, "EN").String())
	assert.Equal(t, `"1"^^<http://www.w3.org/2001/XMLSchema#int>`, domain.NewLiteralWithDatatype("1", "http://www.w3.org/2001/XMLSchema#int").String())
	assert.Equal(t, "_:b0", domain.NewBlankNode("_:b0").String())
	assert.Equal(t, `<a\u0020b>`, domain.NewIRI("a b").String())
}

func TestDatasetFreeze(t *testing.T) {
	d := domain.NewDataset()
	q := domain.NewQuad(domain.ServerManaged, domain.NewIRI("a"), domain.NewIRI("b"), domain.NewIRI("c"))
	assert.True(t, d.Add(q))
	assert.True(t, d.Add(q))
	assert.Equal(t, 1, d.Len())

	d.Freeze()
	assert.False(t, d.AddTriple(domain.UserManaged, q.Triple))
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 0, d.LenGraph(domain.UserManaged))
	assert.True(t, d.Contains(q))
}

func TestDatasetDerivedFrom(t *testing.T) {
	d := domain.NewDataset()
	_, ok := d.Previous()
	assert.False(t, ok)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	d.DerivedFrom(at)
	d.Freeze()
	d.DerivedFrom(time.Time{})
	prev, ok := d.Previous()
	assert.True(t, ok)
	assert.Equal(t, at, prev)
}

func TestGraphTagIRI(t *testing.T) {
	for _, tag := range domain.GraphTags {
		back, ok := domain.GraphTagFromIRI(tag.IRI())
		assert.True(t, ok)
		assert.Equal(t, tag, back)
	}
	_, ok := domain.GraphTagFromIRI("http://example.org/nope")
	assert.False(t, ok)
}

func TestInteractionModel(t *testing.T) {
	m, ok := domain.InteractionModelFromIRI("http://www.w3.org/ns/ldp#DirectContainer")
	assert.True(t, ok)
	assert.Equal(t, domain.DirectContainer, m)
	assert.True(t, m.IsContainer())
	assert.Equal(t, "DirectContainer", m.String())
	assert.False(t, domain.NonRDFSource.IsRDF())
	assert.Equal(t, []string{"http://www.w3.org/ns/ldp#RDFSource", "http://www.w3.org/ns/ldp#Resource"}, domain.RDFSource.Types())
}
