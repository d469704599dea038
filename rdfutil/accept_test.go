package rdfutil_test

import (
	"testing"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/rdfutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	chrome = "application/xml,application/xhtml+xml,text/html;q=0.9,text/plain;q=0.8,image/png,*/*;q=0.5"
	rdflib = "application/rdf+xml;q=0.9, application/xhtml+xml;q=0.3, text/xml;q=0.2, application/xml;q=0.2, text/html;q=0.3, text/plain;q=0.1, text/n3;q=1.0, application/x-turtle;q=1, text/turtle;q=1"
)

func mustAccept(t *testing.T, accept string) rdfutil.AcceptList {
	al, err := rdfutil.ParseAccept(accept)
	require.NoError(t, err)
	return al
}

func TestNegotiatePicturesOfWebPages(t *testing.T) {
	contentType, err := mustAccept(t, chrome).Negotiate("text/html", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
}

func TestNegotiateFirstMatch(t *testing.T) {
	contentType, err := mustAccept(t, chrome).Negotiate("text/html", constant.TextPlain, "text/n3")
	require.NoError(t, err)
	assert.Equal(t, "text/html", contentType)
}

func TestNegotiateSecondMatch(t *testing.T) {
	contentType, err := mustAccept(t, chrome).Negotiate("text/n3", constant.TextPlain)
	require.NoError(t, err)
	assert.Equal(t, constant.TextPlain, contentType)
}

func TestNegotiateWildcardMatch(t *testing.T) {
	contentType, err := mustAccept(t, chrome).Negotiate("text/n3", constant.ApplicationRDFXML)
	require.NoError(t, err)
	assert.Equal(t, "text/n3", contentType)
}

func TestNegotiateInvalidMediaRange(t *testing.T) {
	_, err := rdfutil.ParseAccept("something/valid, rubbish, other/valid")
	assert.Error(t, err)
}

func TestNegotiateInvalidParam(t *testing.T) {
	_, err := rdfutil.ParseAccept("text/plain; foo")
	assert.Error(t, err)
}

func TestNegotiateEmptyAccept(t *testing.T) {
	al := mustAccept(t, "")
	assert.Empty(t, al)
	_, err := al.Negotiate(constant.TextPlain)
	assert.ErrorIs(t, err, rdfutil.ErrNotAcceptable)
}

func TestNegotiateStarAccept(t *testing.T) {
	al := mustAccept(t, "*")
	require.Len(t, al, 1)
	assert.Equal(t, "*/*", al[0].String())
}

func TestNegotiateNoAlternative(t *testing.T) {
	_, err := mustAccept(t, chrome).Negotiate()
	assert.Error(t, err)
}

func TestAcceptOrdering(t *testing.T) {
	al := mustAccept(t, `*/*;q=0.1, text/*, text/turtle;q=0.5, application/ld+json;profile="http://www.w3.org/ns/json-ld#expanded"`)
	require.Len(t, al, 4)
	assert.Equal(t, constant.ApplicationLDJSON, al[0].String())
	assert.Equal(t, "http://www.w3.org/ns/json-ld#expanded", al[0].Param("profile"))
	assert.Equal(t, "text/*", al[1].String())
	assert.Equal(t, constant.TextTurtle, al[2].String())
	assert.Equal(t, "*/*", al[3].String())
}

func TestMediaTypeZeroQuality(t *testing.T) {
	al := mustAccept(t, "text/turtle;q=0")
	assert.False(t, al[0].Matches(constant.TextTurtle))
}
