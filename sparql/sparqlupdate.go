// Package sparql applies SPARQL 1.1 Update requests to an in-memory graph.
// INSERT DATA, DELETE DATA, DELETE WHERE and DELETE/INSERT ... WHERE with
// basic graph patterns are evaluated.
package sparql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/encoder"
	"github.com/google/uuid"
)

var (
	// ErrMalformed is returned for requests that do not follow the grammar
	ErrMalformed = errors.New("malformed SPARQL update")
	// ErrUnsupported is returned for valid operations the engine does not evaluate
	ErrUnsupported = errors.New("unsupported SPARQL update")
)

type opKind uint8

const (
	insertData opKind = iota
	deleteData
	deleteWhere
	modify
)

type operation struct {
	kind   opKind
	delete []domain.Triple
	insert []domain.Triple
	where  []domain.Triple
}

type prologue struct {
	base     string
	prefixes strings.Builder
}

// Engine is the default update engine
type Engine struct{}

func New() Engine {
	return Engine{}
}

// Update parses the request and applies its operations to g in order.
// Relative IRIs resolve against base. On error g may hold the effects of
// the operations preceding the failing one, so callers work on a copy.
func (e Engine) Update(ctx context.Context, g *domain.Graph, update, base string) error {
	ops, err := e.parse(ctx, update, base)
	if err != nil {
		return err
	}
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		op.apply(g)
	}
	return nil
}

func (e Engine) parse(ctx context.Context, update, base string) ([]operation, error) {
	toks, err := lex(update)
	if err != nil {
		return nil, err
	}
	p := &prologue{base: base}
	var ops []operation
	done := 0

	next := func() (token, bool) {
		if len(toks) == 0 {
			return token{}, false
		}
		t := toks[0]
		toks = toks[1:]
		return t, true
	}
	block := func() (string, error) {
		t, ok := next()
		if !ok || t.kind != tokBlock {
			return "", malformed("expected a '{' block")
		}
		return t.text, nil
	}
	keyword := func(word string) bool {
		if len(toks) > 0 && toks[0].kind == tokWord && strings.EqualFold(toks[0].text, word) {
			toks = toks[1:]
			return true
		}
		return false
	}
	triples := func(text string, allowVars bool) ([]domain.Triple, error) {
		return p.triples(ctx, text, allowVars)
	}

	for len(toks) > 0 {
		t, _ := next()
		if t.kind == tokSemicolon {
			continue
		}
		if t.kind != tokWord {
			return nil, malformed("unexpected %q", t.text)
		}
		switch strings.ToUpper(t.text) {
		case "PREFIX":
			name, ok := next()
			if !ok || name.kind != tokWord || !strings.HasSuffix(name.text, ":") {
				return nil, malformed("invalid PREFIX")
			}
			iri, ok := next()
			if !ok || iri.kind != tokIRI {
				return nil, malformed("invalid PREFIX")
			}
			fmt.Fprintf(&p.prefixes, "@prefix %s <%s> .\n", name.text, iri.text)
		case "BASE":
			iri, ok := next()
			if !ok || iri.kind != tokIRI {
				return nil, malformed("invalid BASE")
			}
			p.base = iri.text
		case "INSERT":
			op := operation{kind: modify}
			if keyword("DATA") {
				op.kind = insertData
			}
			text, err := block()
			if err != nil {
				return nil, err
			}
			if op.insert, err = triples(text, op.kind == modify); err != nil {
				return nil, err
			}
			if op.kind == modify {
				if op.where, err = p.where(ctx, keyword, block); err != nil {
					return nil, err
				}
			}
			ops = append(ops, op)
		case "DELETE":
			op := operation{kind: modify}
			switch {
			case keyword("DATA"):
				op.kind = deleteData
			case keyword("WHERE"):
				op.kind = deleteWhere
			}
			text, err := block()
			if err != nil {
				return nil, err
			}
			if op.delete, err = triples(text, op.kind != deleteData); err != nil {
				return nil, err
			}
			if hasBlankNode(op.delete) {
				return nil, malformed("blank nodes are not allowed in DELETE")
			}
			switch op.kind {
			case deleteWhere:
				op.where = op.delete
			case modify:
				if keyword("INSERT") {
					if text, err = block(); err != nil {
						return nil, err
					}
					if op.insert, err = triples(text, true); err != nil {
						return nil, err
					}
				}
				if op.where, err = p.where(ctx, keyword, block); err != nil {
					return nil, err
				}
			}
			ops = append(ops, op)
		case "LOAD", "CLEAR", "DROP", "CREATE", "ADD", "MOVE", "COPY", "WITH", "USING":
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, strings.ToUpper(t.text))
		default:
			return nil, malformed("unexpected %q", t.text)
		}
		if len(ops) > done && len(toks) > 0 && toks[0].kind != tokSemicolon {
			return nil, malformed("expected ';' after operation")
		}
		done = len(ops)
	}
	return ops, nil
}

func (p *prologue) where(ctx context.Context, keyword func(string) bool, block func() (string, error)) ([]domain.Triple, error) {
	if keyword("USING") || keyword("WITH") {
		return nil, fmt.Errorf("%w: USING", ErrUnsupported)
	}
	if !keyword("WHERE") {
		return nil, malformed("expected WHERE")
	}
	text, err := block()
	if err != nil {
		return nil, err
	}
	return p.triples(ctx, text, true)
}

// triples reads a block through the Turtle parser
func (p *prologue) triples(ctx context.Context, text string, allowVars bool) ([]domain.Triple, error) {
	body, err := toTurtle(text)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	out, err := encoder.Parse(ctx, strings.NewReader(p.prefixes.String()+body), encoder.Turtle, p.base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !allowVars {
		for _, t := range out {
			if isVar(t.S) || isVar(t.P) || isVar(t.O) {
				return nil, malformed("variables are not allowed in DATA blocks")
			}
		}
	}
	return out, nil
}

func hasBlankNode(triples []domain.Triple) bool {
	for _, t := range triples {
		if t.S.Kind() == domain.TermBlankNode || t.O.Kind() == domain.TermBlankNode {
			return true
		}
	}
	return false
}

func (op operation) apply(g *domain.Graph) {
	switch op.kind {
	case insertData:
		for _, t := range op.insert {
			g.Add(t)
		}
	case deleteData:
		for _, t := range op.delete {
			g.Remove(t)
		}
	default:
		solutions := match(g, op.where)
		var removed, added []domain.Triple
		for _, b := range solutions {
			for _, t := range op.delete {
				if tr, ok := b.instantiate(t, nil); ok {
					removed = append(removed, tr)
				}
			}
			fresh := map[string]domain.Term{}
			for _, t := range op.insert {
				if tr, ok := b.instantiate(t, fresh); ok {
					added = append(added, tr)
				}
			}
		}
		for _, t := range removed {
			g.Remove(t)
		}
		for _, t := range added {
			g.Add(t)
		}
	}
}

func newBlankNode() domain.Term {
	return domain.NewBlankNode(uuid.NewString())
}
