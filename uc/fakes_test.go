package uc_test

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/err0r500/go-ldp-server/constraint"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/logger"
	"github.com/err0r500/go-ldp-server/rdfutil"
	"github.com/err0r500/go-ldp-server/sparql"
	"github.com/err0r500/go-ldp-server/uc"
)

const (
	partition = "gold:repository"
	root      = "http://example.org/"
	id        = "gold:repository/res"
	baseURL   = "http://example.org/res"
)

var (
	errNotFound = errors.New("not found")
	modified    = time.Date(2024, 5, 1, 10, 30, 15, 0, time.UTC)
	now         = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
)

type fakeResources struct {
	stored map[string]*domain.Resource
	puts   []*domain.Dataset
	ok     bool
	err    error
}

func newFakeResources() *fakeResources {
	return &fakeResources{stored: map[string]*domain.Resource{}, ok: true}
}

func (f *fakeResources) Get(_ context.Context, identifier string) (*domain.Resource, error) {
	if r, ok := f.stored[identifier]; ok {
		return r, nil
	}
	return nil, errNotFound
}

func (f *fakeResources) GetVersion(ctx context.Context, identifier string, _ time.Time) (*domain.Resource, error) {
	return f.Get(ctx, identifier)
}

func (f *fakeResources) Put(_ context.Context, _ string, d *domain.Dataset) (bool, error) {
	f.puts = append(f.puts, d)
	return f.ok, f.err
}

func (f *fakeResources) Skolemize(t domain.Term) domain.Term   { return rdfutil.Skolemize(t) }
func (f *fakeResources) Unskolemize(t domain.Term) domain.Term { return rdfutil.Unskolemize(t) }

type fakeBinaries struct {
	content map[string]string
	err     error
}

func newFakeBinaries() *fakeBinaries {
	return &fakeBinaries{content: map[string]string{}}
}

func (f *fakeBinaries) Content(_ context.Context, location string) (io.ReadCloser, error) {
	c, ok := f.content[location]
	if !ok {
		return nil, errNotFound
	}
	return io.NopCloser(strings.NewReader(c)), nil
}

func (f *fakeBinaries) Put(_ context.Context, location string, r io.Reader) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.content[location] = string(b)
	return int64(len(b)), nil
}

func ids() func() string {
	n := 0
	return func() string {
		n++
		return "id" + strconv.Itoa(n)
	}
}

func newInteractor(resources *fakeResources, binaries *fakeBinaries) uc.Interactor {
	return uc.NewInteractor(resources, sparql.New(), constraint.New(), binaries, logger.Discard(),
		uc.WithClock(func() time.Time { return now }),
		uc.WithIDGenerator(ids()),
	)
}

func request(method string) *uc.Request {
	return &uc.Request{
		Method:     method,
		Identifier: id,
		BaseURL:    baseURL,
		Partition:  partition,
		Root:       root,
		Session:    domain.AnonymousSession(),
	}
}

func resource(model domain.InteractionModel, quads ...domain.Quad) *domain.Resource {
	r := domain.NewResource(id, model, modified, quads)
	r.Types = []string{model.IRI()}
	return r
}

func tombstone() *domain.Resource {
	r := resource(domain.LDPResource)
	r.Types = append(r.Types, "https://w3id.org/gold/ns#DeletedResource")
	return r
}

func title(value string) domain.Quad {
	return domain.NewQuad(domain.UserManaged, domain.NewIRI(id), domain.NewIRI("http://purl.org/dc/terms/title"), domain.NewLiteral(value))
}

func quadsOf(d *domain.Dataset, tag domain.GraphTag) []domain.Triple {
	var out []domain.Triple
	for t := range d.Graph(tag) {
		out = append(out, t)
	}
	return out
}
