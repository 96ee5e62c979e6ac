package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// KeyFileMode is the permission applied to every written key file.
const KeyFileMode os.FileMode = 0600

type keyFileStore struct {
	logger logger.Logger
}

// NewKeyFileStore creates a new filesystem-backed KeyStore implementation
func NewKeyFileStore(logger logger.Logger) cryptoalg.KeyStore {
	return &keyFileStore{
		logger: logger,
	}
}

func (s *keyFileStore) Save(ctx context.Context, dir string, format cryptoalg.Format, blobs [][]byte) ([]string, error) {
	names := format.KeyFileNames()
	if names == nil {
		return nil, fmt.Errorf("%w: %s", cryptoalg.ErrUnsupportedFormat, format)
	}
	if len(names) != len(blobs) {
		return nil, fmt.Errorf("%s expects %d key blobs, got %d", format, len(names), len(blobs))
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", cryptoalg.ErrOutputDirNotFound, dir)
		}
		return nil, fmt.Errorf("failed to stat output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", cryptoalg.ErrOutputDirNotFound, dir)
	}

	paths := make([]string, 0, len(names))
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		path := filepath.Join(dir, name)
		if err := writeFile(path, blobs[i], KeyFileMode); err != nil {
			return paths, fmt.Errorf("failed to write key file %s: %w", path, err)
		}
		s.logger.Info("Saved ", format, " key file ", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
