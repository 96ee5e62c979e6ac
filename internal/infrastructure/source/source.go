// Package source resolves the byte source an operation reads its input from.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Opener opens "-" as standard input and any other path as a file.
type Opener struct {
	Stdin io.Reader
}

var _ cryptoalg.SourceOpener = (*Opener)(nil)

// NewOpener returns an Opener reading standard input from os.Stdin.
func NewOpener() *Opener {
	return &Opener{Stdin: os.Stdin}
}

// Open returns the source for path. Closing standard input is a no-op.
func (o *Opener) Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		if o.Stdin == nil {
			return nil, fmt.Errorf("%w: standard input unavailable", cryptoalg.ErrSourceNotFound)
		}
		return io.NopCloser(o.Stdin), nil
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", cryptoalg.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	return f, nil
}

// ReadAll drains the source for path into memory.
func ReadAll(ctx context.Context, opener cryptoalg.SourceOpener, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Close()
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return data, nil
}
