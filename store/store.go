// Package store persists resources as JSON records over a pluggable
// key/value backend. Every save keeps the previous states as mementos.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/rdfutil"
)

var (
	// ErrNotFound is returned when no state is stored for an identifier
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned by Backend.Save when the current state moved
	ErrConflict = errors.New("resource modified concurrently")
)

// Entry is one stored state of a resource
type Entry struct {
	Modified time.Time
	Data     []byte
}

// Backend stores entries by identifier. Save replaces the current entry
// only if its modification time is still prev (zero for absent) and keeps
// the new entry in the version history.
type Backend interface {
	Current(ctx context.Context, identifier string) (Entry, error)
	Version(ctx context.Context, identifier string, at time.Time) (Entry, error)
	Versions(ctx context.Context, identifier string) ([]time.Time, error)
	Save(ctx context.Context, identifier string, prev time.Time, e Entry) error
	Close() error
}

// Service implements the resource service of the verb handlers
type Service struct {
	backend Backend
	now     func() time.Time
}

func New(backend Backend) *Service {
	return &Service{
		backend: backend,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source of modification times
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Close() error {
	return s.backend.Close()
}

func (s *Service) Get(ctx context.Context, identifier string) (*domain.Resource, error) {
	e, err := s.backend.Current(ctx, identifier)
	if err != nil {
		return nil, err
	}
	res, err := resource(identifier, e)
	if err != nil {
		return nil, err
	}
	if res.Mementos, err = s.backend.Versions(ctx, identifier); err != nil {
		return nil, fmt.Errorf("listing versions of %s: %w", identifier, err)
	}
	return res, nil
}

// GetVersion returns the state that was current at the given time
func (s *Service) GetVersion(ctx context.Context, identifier string, at time.Time) (*domain.Resource, error) {
	e, err := s.backend.Version(ctx, identifier, at)
	if err != nil {
		return nil, err
	}
	res, err := resource(identifier, e)
	if err != nil {
		return nil, err
	}
	res.IsMemento = true
	return res, nil
}

// Put stores the dataset as the new state of identifier. The save is
// conditioned on the snapshot the dataset was derived from, or on the
// current state when none was recorded. It reports false without error when
// another write won the race.
func (s *Service) Put(ctx context.Context, identifier string, d *domain.Dataset) (bool, error) {
	prev, ok := d.Previous()
	if !ok {
		cur, err := s.backend.Current(ctx, identifier)
		switch {
		case err == nil:
			prev = cur.Modified
		case !errors.Is(err, ErrNotFound):
			return false, err
		}
	}

	data, err := encode(identifier, d)
	if err != nil {
		return false, err
	}
	modified := s.now().UTC()
	if !modified.After(prev) {
		modified = prev.Add(time.Nanosecond)
	}

	err = s.backend.Save(ctx, identifier, prev, Entry{Modified: modified, Data: data})
	if errors.Is(err, ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (*Service) Skolemize(t domain.Term) domain.Term {
	return rdfutil.Skolemize(t)
}

func (*Service) Unskolemize(t domain.Term) domain.Term {
	return rdfutil.Unskolemize(t)
}

// resource rebuilds a snapshot; the interaction model, types and binary
// description are read from the server-managed graph
func resource(identifier string, e Entry) (*domain.Resource, error) {
	_, quads, err := decode(e.Data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", identifier, err)
	}

	subject := domain.NewIRI(identifier)
	model := domain.LDPResource
	var (
		types    []string
		location domain.Term
	)
	for _, q := range quads {
		if q.Graph != domain.ServerManaged || !q.S.Equal(subject) {
			continue
		}
		iri, ok := q.O.(domain.IRI)
		if !ok {
			continue
		}
		p, _ := q.P.(domain.IRI)
		switch p.Value {
		case constant.RDFType:
			types = append(types, iri.Value)
			if m, ok := domain.InteractionModelFromIRI(iri.Value); ok && m != domain.LDPResource {
				model = m
			}
		case constant.DCHasPart:
			location = iri
		}
	}

	res := domain.NewResource(identifier, model, e.Modified, quads)
	res.Types = types
	if location != nil {
		res.Binary = binary(quads, location)
	}
	return res, nil
}

func binary(quads []domain.Quad, location domain.Term) *domain.BinaryMetadata {
	b := &domain.BinaryMetadata{Location: location.(domain.IRI).Value}
	for _, q := range quads {
		if q.Graph != domain.ServerManaged || !q.S.Equal(location) {
			continue
		}
		lit, ok := q.O.(domain.Literal)
		if !ok {
			continue
		}
		p, _ := q.P.(domain.IRI)
		switch p.Value {
		case constant.DCFormat:
			b.MediaType = lit.Lexical
		case constant.DCExtent:
			b.Size, _ = strconv.ParseInt(lit.Lexical, 10, 64)
		}
	}
	return b
}
