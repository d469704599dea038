package uc

import (
	"context"
	"io"
	"time"

	"github.com/err0r500/go-ldp-server/domain"
)

// ResourceService loads and persists resources. Put is atomic: on a false
// return nothing was written.
type ResourceService interface {
	Get(ctx context.Context, identifier string) (*domain.Resource, error)
	GetVersion(ctx context.Context, identifier string, at time.Time) (*domain.Resource, error)
	Put(ctx context.Context, identifier string, dataset *domain.Dataset) (bool, error)
	Skolemize(term domain.Term) domain.Term
	Unskolemize(term domain.Term) domain.Term
}

// IOService applies a SPARQL update to g in place
type IOService interface {
	Update(ctx context.Context, g *domain.Graph, update, base string) error
}

// ConstraintService checks a user-managed graph against the rules of an
// interaction model; nil means the graph is valid
type ConstraintService interface {
	ConstrainedBy(model domain.InteractionModel, baseURL string, g *domain.Graph) *domain.ConstraintViolation
}

// BinaryService stores the content of NonRDFSources
type BinaryService interface {
	Content(ctx context.Context, location string) (io.ReadCloser, error)
	Put(ctx context.Context, location string, r io.Reader) (int64, error)
}

type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}
