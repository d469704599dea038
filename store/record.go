package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/err0r500/go-ldp-server/domain"
)

const (
	kindIRI     = "iri"
	kindBlank   = "bnode"
	kindLiteral = "literal"
)

type termRecord struct {
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

type quadRecord struct {
	Graph string     `json:"graph"`
	S     termRecord `json:"s"`
	P     termRecord `json:"p"`
	O     termRecord `json:"o"`
}

type record struct {
	Identifier string       `json:"id"`
	Quads      []quadRecord `json:"quads"`
}

func fromTerm(t domain.Term) termRecord {
	switch v := t.(type) {
	case domain.IRI:
		return termRecord{Kind: kindIRI, Value: v.Value}
	case domain.BlankNode:
		return termRecord{Kind: kindBlank, Value: v.ID}
	case domain.Literal:
		return termRecord{Kind: kindLiteral, Value: v.Lexical, Datatype: v.Datatype, Lang: v.Lang}
	}
	return termRecord{}
}

func (t termRecord) term() (domain.Term, error) {
	switch t.Kind {
	case kindIRI:
		return domain.NewIRI(t.Value), nil
	case kindBlank:
		return domain.NewBlankNode(t.Value), nil
	case kindLiteral:
		if len(t.Lang) > 0 {
			return domain.NewLiteralWithLanguage(t.Value, t.Lang), nil
		}
		return domain.NewLiteralWithDatatype(t.Value, t.Datatype), nil
	}
	return nil, fmt.Errorf("unknown term kind %q", t.Kind)
}

func graphTag(name string) (domain.GraphTag, error) {
	for _, tag := range domain.GraphTags {
		if tag.String() == name {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("unknown graph %q", name)
}

// encode serializes a dataset, graph by graph in N-Triples order so equal
// datasets give equal bytes
func encode(identifier string, d *domain.Dataset) ([]byte, error) {
	rec := record{Identifier: identifier, Quads: []quadRecord{}}
	for _, tag := range domain.GraphTags {
		var triples []domain.Triple
		for t := range d.Graph(tag) {
			triples = append(triples, t)
		}
		sort.Slice(triples, func(i, j int) bool { return triples[i].String() < triples[j].String() })
		for _, t := range triples {
			rec.Quads = append(rec.Quads, quadRecord{Graph: tag.String(), S: fromTerm(t.S), P: fromTerm(t.P), O: fromTerm(t.O)})
		}
	}
	return json.Marshal(rec)
}

func decode(data []byte) (string, []domain.Quad, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", nil, fmt.Errorf("decoding record: %w", err)
	}
	quads := make([]domain.Quad, 0, len(rec.Quads))
	for _, q := range rec.Quads {
		tag, err := graphTag(q.Graph)
		if err != nil {
			return "", nil, err
		}
		s, err := q.S.term()
		if err != nil {
			return "", nil, err
		}
		p, err := q.P.term()
		if err != nil {
			return "", nil, err
		}
		o, err := q.O.term()
		if err != nil {
			return "", nil, err
		}
		quads = append(quads, domain.NewQuad(tag, s, p, o))
	}
	return rec.Identifier, quads, nil
}
