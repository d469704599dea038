package encoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/piprate/json-gold/ld"
)

const nquadsFormat = "application/n-quads"

// JSONLDEncoder drives the json-gold processor. The JSON-LD algorithms work
// on a whole document, so both directions buffer.
type JSONLDEncoder struct{}

func (e JSONLDEncoder) parse(ctx context.Context, r io.Reader, base string, labels blankLabels) ([]domain.Triple, error) {
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing JSON-LD: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions(base)
	result, err := proc.ToRDF(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON-LD: %w", err)
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("parsing JSON-LD: unexpected result %T", result)
	}

	var out []domain.Triple
	for _, quads := range dataset.Graphs {
		for _, q := range quads {
			s, err := e.ToDomain(q.Subject, labels)
			if err != nil {
				return nil, err
			}
			p, err := e.ToDomain(q.Predicate, labels)
			if err != nil {
				return nil, err
			}
			o, err := e.ToDomain(q.Object, labels)
			if err != nil {
				return nil, err
			}
			out = append(out, domain.NewTriple(s, p, o))
		}
	}
	return out, nil
}

// ToDomain maps a json-gold node to its domain value
func (JSONLDEncoder) ToDomain(node ld.Node, labels blankLabels) (domain.Term, error) {
	switch n := node.(type) {
	case ld.IRI:
		return domain.NewIRI(n.Value), nil
	case ld.BlankNode:
		return domain.NewBlankNode(labels.get(n.GetValue())), nil
	case ld.Literal:
		if len(n.Language) > 0 {
			return domain.NewLiteralWithLanguage(n.Value, n.Language), nil
		}
		return domain.NewLiteralWithDatatype(n.Value, n.Datatype), nil
	}
	return nil, fmt.Errorf("unknown JSON-LD node %T", node)
}

// serialize writes the triples as a JSON-LD document in the given profile.
// Unknown profiles fall back to compacted.
func (JSONLDEncoder) serialize(ctx context.Context, w io.Writer, triples iter.Seq[domain.Triple], profile string) error {
	var nquads strings.Builder
	for t := range triples {
		if err := ctx.Err(); err != nil {
			return err
		}
		nquads.WriteString(t.String())
		nquads.WriteByte('\n')
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = nquadsFormat
	doc, err := proc.FromRDF(nquads.String(), opts)
	if err != nil {
		return fmt.Errorf("serializing JSON-LD: %w", err)
	}

	opts = ld.NewJsonLdOptions("")
	var out interface{}
	switch profile {
	case constant.JSONLDExpanded:
		out = doc
	case constant.JSONLDFlattened:
		out, err = proc.Flatten(doc, nil, opts)
	default:
		out, err = proc.Compact(doc, map[string]interface{}{}, opts)
	}
	if err != nil {
		return fmt.Errorf("serializing JSON-LD: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
