package encoder

import (
	"context"
	"fmt"
	"io"
	"iter"
	"sync/atomic"

	"github.com/err0r500/go-ldp-server/domain"
)

// ResourceStreamer serializes a single-pass triple sequence to a writer
type ResourceStreamer struct {
	triples  iter.Seq[domain.Triple]
	syntax   Syntax
	profile  string
	consumed atomic.Bool
}

// NewResourceStreamer wraps the sequence; profile only matters for JSON-LD
func NewResourceStreamer(triples iter.Seq[domain.Triple], syntax Syntax, profile string) *ResourceStreamer {
	return &ResourceStreamer{triples: triples, syntax: syntax, profile: profile}
}

// Write serializes the sequence to w, consuming it. Turtle and N-Triples
// are written triple by triple; cancelling ctx stops between triples.
func (s *ResourceStreamer) Write(ctx context.Context, w io.Writer) error {
	if !s.consumed.CompareAndSwap(false, true) {
		return ErrStreamConsumed
	}
	if !s.syntax.Writable() {
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedSyntax, s.syntax)
	}
	if s.syntax == JSONLD {
		return JSONLDEncoder{}.serialize(ctx, w, s.triples, s.profile)
	}
	return RdfEncoder{}.write(ctx, w, s.syntax, s.triples)
}
