package encoder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/err0r500/go-ldp-server/domain"
	"github.com/google/uuid"
	"github.com/knakk/rdf"
)

// RdfEncoder converts between the domain terms and the knakk/rdf codec
type RdfEncoder struct{}

func (RdfEncoder) format(s Syntax) (rdf.Format, error) {
	switch s {
	case Turtle:
		return rdf.Turtle, nil
	case NTriples:
		return rdf.NTriples, nil
	case RDFXML:
		return rdf.RDFXML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedSyntax, s)
}

// blankLabels gives every blank node label of one parse a fresh unique id, so
// that two requests both using _:b0 never share a node.
type blankLabels map[string]string

func (l blankLabels) get(label string) string {
	label = strings.TrimPrefix(label, "_:")
	if id, ok := l[label]; ok {
		return id
	}
	id := uuid.NewString()
	l[label] = id
	return id
}

// ToDomain maps a parsed term to its domain value
func (RdfEncoder) ToDomain(term rdf.Term, labels blankLabels) (domain.Term, error) {
	switch term.Type() {
	case rdf.TermIRI:
		return domain.NewIRI(term.String()), nil
	case rdf.TermBlank:
		return domain.NewBlankNode(labels.get(term.String())), nil
	case rdf.TermLiteral:
		lit, ok := term.(rdf.Literal)
		if !ok {
			return nil, fmt.Errorf("unexpected literal type %T", term)
		}
		if len(lit.Lang()) > 0 {
			return domain.NewLiteralWithLanguage(lit.String(), lit.Lang()), nil
		}
		return domain.NewLiteralWithDatatype(lit.String(), lit.DataType.String()), nil
	}
	return nil, fmt.Errorf("unknown term %v", term)
}

func (RdfEncoder) subject(t domain.Term) (rdf.Subject, error) {
	switch t := t.(type) {
	case domain.IRI:
		return rdf.NewIRI(t.Value)
	case domain.BlankNode:
		return rdf.NewBlank(t.ID)
	}
	return nil, fmt.Errorf("invalid subject %s", t)
}

func (RdfEncoder) predicate(t domain.Term) (rdf.Predicate, error) {
	if iri, ok := t.(domain.IRI); ok {
		return rdf.NewIRI(iri.Value)
	}
	return nil, fmt.Errorf("invalid predicate %s", t)
}

func (RdfEncoder) object(t domain.Term) (rdf.Object, error) {
	switch t := t.(type) {
	case domain.IRI:
		return rdf.NewIRI(t.Value)
	case domain.BlankNode:
		return rdf.NewBlank(t.ID)
	case domain.Literal:
		if len(t.Lang) > 0 {
			return rdf.NewLangLiteral(t.Lexical, t.Lang)
		}
		if len(t.Datatype) > 0 {
			dt, err := rdf.NewIRI(t.Datatype)
			if err != nil {
				return nil, err
			}
			return rdf.NewTypedLiteral(t.Lexical, dt), nil
		}
		return rdf.NewLiteral(t.Lexical)
	}
	return nil, fmt.Errorf("invalid object %v", t)
}

// FromDomain maps a domain triple to the codec's triple
func (h RdfEncoder) FromDomain(t domain.Triple) (rdf.Triple, error) {
	s, err := h.subject(t.S)
	if err != nil {
		return rdf.Triple{}, err
	}
	p, err := h.predicate(t.P)
	if err != nil {
		return rdf.Triple{}, err
	}
	o, err := h.object(t.O)
	if err != nil {
		return rdf.Triple{}, err
	}
	return rdf.Triple{Subj: s, Pred: p, Obj: o}, nil
}

func (h RdfEncoder) parse(ctx context.Context, r io.Reader, s Syntax, base string, labels blankLabels) ([]domain.Triple, error) {
	f, err := h.format(s)
	if err != nil {
		return nil, err
	}
	dec := rdf.NewTripleDecoder(r, f)
	// N-Triples has no relative IRIs and its decoder takes no options
	if len(base) > 0 && s != NTriples {
		baseIRI, err := rdf.NewIRI(base)
		if err != nil {
			return nil, fmt.Errorf("invalid base %q: %w", base, err)
		}
		if err := dec.SetOption(rdf.Base, baseIRI); err != nil {
			return nil, err
		}
	}

	var out []domain.Triple
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := dec.Decode()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", s, err)
		}
		triple, err := h.toDomainTriple(t, labels)
		if err != nil {
			return nil, err
		}
		out = append(out, triple)
	}
}

func (h RdfEncoder) toDomainTriple(t rdf.Triple, labels blankLabels) (domain.Triple, error) {
	s, err := h.ToDomain(t.Subj, labels)
	if err != nil {
		return domain.Triple{}, err
	}
	p, err := h.ToDomain(t.Pred, labels)
	if err != nil {
		return domain.Triple{}, err
	}
	o, err := h.ToDomain(t.Obj, labels)
	if err != nil {
		return domain.Triple{}, err
	}
	return domain.NewTriple(s, p, o), nil
}

// write streams the triples to w one at a time
func (h RdfEncoder) write(ctx context.Context, w io.Writer, s Syntax, triples func(yield func(domain.Triple) bool)) error {
	f, err := h.format(s)
	if err != nil {
		return err
	}
	enc := rdf.NewTripleEncoder(w, f)
	var werr error
	triples(func(t domain.Triple) bool {
		if werr = ctx.Err(); werr != nil {
			return false
		}
		var rt rdf.Triple
		if rt, werr = h.FromDomain(t); werr != nil {
			return false
		}
		werr = enc.Encode(rt)
		return werr == nil
	})
	if cerr := enc.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
