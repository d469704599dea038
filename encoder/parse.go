package encoder

import (
	"context"
	"io"

	"github.com/err0r500/go-ldp-server/domain"
)

// Parse reads every triple of r in the given syntax, resolving relative IRIs
// against base. Blank node labels are replaced by fresh unique ids.
func Parse(ctx context.Context, r io.Reader, syntax Syntax, base string) ([]domain.Triple, error) {
	labels := blankLabels{}
	if syntax == JSONLD {
		return JSONLDEncoder{}.parse(ctx, r, base, labels)
	}
	return RdfEncoder{}.parse(ctx, r, syntax, base, labels)
}
