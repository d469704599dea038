package domain

import (
	"strings"

	"github.com/err0r500/go-ldp-server/constant"
)

// TermKind identifies the RDF term types
type TermKind uint8

const (
	TermIRI TermKind = iota
	TermBlankNode
	TermLiteral
)

// Term is a value that can appear in an RDF statement. Every implementation
// is a comparable value type so terms and triples can be used as map keys.
type Term interface {
	Kind() TermKind
	// String returns the N-Triples form of the term
	String() string
	Equal(Term) bool
}

// IRI is an RDF IRI term
type IRI struct {
	Value string
}

// BlankNode is an anonymous RDF node
type BlankNode struct {
	ID string
}

// Literal is an RDF literal. Datatype is empty for simple and language-tagged
// literals; xsd:string is normalized to empty on construction.
type Literal struct {
	Lexical  string
	Datatype string
	Lang     string
}

// NewIRI creates an IRI term
func NewIRI(uri string) IRI {
	return IRI{Value: uri}
}

// NewBlankNode creates a blank node term
func NewBlankNode(id string) BlankNode {
	return BlankNode{ID: strings.TrimPrefix(id, "_:")}
}

// NewLiteral creates a simple literal
func NewLiteral(value string) Literal {
	return Literal{Lexical: value}
}

// NewLiteralWithLanguage creates a language-tagged literal
func NewLiteralWithLanguage(value, lang string) Literal {
	return Literal{Lexical: value, Lang: strings.ToLower(lang)}
}

// NewLiteralWithDatatype creates a typed literal
func NewLiteralWithDatatype(value, datatype string) Literal {
	if datatype == constant.XSDString {
		datatype = ""
	}
	return Literal{Lexical: value, Datatype: datatype}
}

func (IRI) Kind() TermKind       { return TermIRI }
func (BlankNode) Kind() TermKind { return TermBlankNode }
func (Literal) Kind() TermKind   { return TermLiteral }

func (i IRI) String() string {
	return "<" + escapeIRI(i.Value) + ">"
}

func (b BlankNode) String() string {
	return "_:" + b.ID
}

func (l Literal) String() string {
	s := `"` + escapeLiteral(l.Lexical) + `"`
	if len(l.Lang) > 0 {
		return s + "@" + l.Lang
	}
	if len(l.Datatype) > 0 {
		return s + "^^<" + escapeIRI(l.Datatype) + ">"
	}
	return s
}

func (i IRI) Equal(t Term) bool {
	o, ok := t.(IRI)
	return ok && o == i
}

func (b BlankNode) Equal(t Term) bool {
	o, ok := t.(BlankNode)
	return ok && o == b
}

func (l Literal) Equal(t Term) bool {
	o, ok := t.(Literal)
	return ok && o == l
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

var iriEscaper = strings.NewReplacer(
	">", `\u003E`,
	"<", `\u003C`,
	`"`, `\u0022`,
	" ", `\u0020`,
)

func escapeIRI(s string) string {
	return iriEscaper.Replace(s)
}
