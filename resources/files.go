package resources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	_path "path/filepath"
	"strings"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/uc"
)

// BinaryPrefix prefixes the locations the files handler accepts
const BinaryPrefix = constant.InternalScheme + "binary/"

// ErrInvalidLocation is returned for a location outside the binary namespace
var ErrInvalidLocation = errors.New("invalid binary location")

type filesHandler struct {
	root string
}

// New stores binary content as files under root
func New(root string) uc.BinaryService {
	return filesHandler{root: root}
}

func (h filesHandler) path(location string) (string, error) {
	name, ok := strings.CutPrefix(location, BinaryPrefix)
	if !ok || len(name) == 0 || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	return _path.Join(h.root, name), nil
}

// Content opens the file of location. The returned file also implements
// io.Seeker, which lets the HTTP layer serve byte ranges.
func (h filesHandler) Content(_ context.Context, location string) (io.ReadCloser, error) {
	p, err := h.path(location)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

// Put writes r to the file of location and returns its size. The content
// is written to a temporary file first so readers never see a partial file.
func (h filesHandler) Put(ctx context.Context, location string, r io.Reader) (int64, error) {
	p, err := h.path(location)
	if err != nil {
		return 0, err
	}
	if err := createFolderIfNeeded(p); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(_path.Dir(p), ".upload-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, contextReader{ctx: ctx, r: r})
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return 0, err
	}
	return n, nil
}

func createFolderIfNeeded(path string) error {
	return os.MkdirAll(_path.Dir(path), 0755)
}

// contextReader stops a copy once ctx is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
