package encoder

import (
	"errors"
	"strings"

	"github.com/err0r500/go-ldp-server/constant"
)

var (
	// ErrUnsupportedSyntax is returned when no codec handles a media type
	ErrUnsupportedSyntax = errors.New("unsupported RDF syntax")
	// ErrStreamConsumed is returned by a second Write on a ResourceStreamer
	ErrStreamConsumed = errors.New("resource stream already consumed")
)

// Syntax is an RDF serialization known to the server
type Syntax uint8

const (
	Turtle Syntax = iota
	JSONLD
	NTriples
	RDFXML
)

type syntaxInfo struct {
	name      string
	mediaType string
	aliases   []string
	profiles  bool
	writable  bool
}

var syntaxes = [...]syntaxInfo{
	Turtle:   {name: "Turtle", mediaType: constant.TextTurtle, aliases: []string{"application/x-turtle"}, writable: true},
	JSONLD:   {name: "JSON-LD", mediaType: constant.ApplicationLDJSON, profiles: true, writable: true},
	NTriples: {name: "N-Triples", mediaType: constant.ApplicationNTriples, writable: true},
	RDFXML:   {name: "RDF/XML", mediaType: constant.ApplicationRDFXML},
}

// OutputSyntaxes lists the syntaxes a representation can be negotiated to,
// in order of server preference. The first one is the default.
var OutputSyntaxes = []Syntax{Turtle, JSONLD, NTriples}

// InputSyntaxes lists the syntaxes a request body can be parsed from
var InputSyntaxes = []Syntax{Turtle, JSONLD, NTriples, RDFXML}

func (s Syntax) String() string {
	return syntaxes[s].name
}

// MediaType returns the canonical media type of the syntax
func (s Syntax) MediaType() string {
	return syntaxes[s].mediaType
}

// SupportsProfiles reports whether the syntax takes a profile parameter
func (s Syntax) SupportsProfiles() bool {
	return syntaxes[s].profiles
}

// Writable reports whether representations can be serialized to the syntax
func (s Syntax) Writable() bool {
	return syntaxes[s].writable
}

// Matches reports whether the bare media type names the syntax
func (s Syntax) Matches(mediaType string) bool {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == syntaxes[s].mediaType {
		return true
	}
	for _, alias := range syntaxes[s].aliases {
		if mediaType == alias {
			return true
		}
	}
	return false
}

// Lookup returns the input syntax of a Content-Type value, parameters ignored
func Lookup(contentType string) (Syntax, bool) {
	mediaType := contentType
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	for _, s := range InputSyntaxes {
		if s.Matches(mediaType) {
			return s, true
		}
	}
	return 0, false
}
