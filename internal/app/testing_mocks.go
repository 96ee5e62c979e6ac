//go:build unit
// +build unit

package app

import (
	"context"
	"io"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockKeyGenerator is a mock implementation of KeyGenerator
type MockKeyGenerator struct {
	mock.Mock
}

func (m *MockKeyGenerator) Generate(format cryptoalg.Format) ([][]byte, error) {
	args := m.Called(format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}

// MockKeyStore is a mock implementation of KeyStore
type MockKeyStore struct {
	mock.Mock
}

func (m *MockKeyStore) Save(ctx context.Context, dir string, format cryptoalg.Format, blobs [][]byte) ([]string, error) {
	args := m.Called(ctx, dir, format, blobs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSourceOpener is a mock implementation of SourceOpener
type MockSourceOpener struct {
	mock.Mock
}

func (m *MockSourceOpener) Open(path string) (io.ReadCloser, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
