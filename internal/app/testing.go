//go:build unit
// +build unit

package app

import (
	"io"
	"testing"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/source"
	"github.com/MGTheTrain/textcrypt/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services for testing
type TestServices struct {
	TextService          cryptoalg.TextService
	KeyGenerationService cryptoalg.KeyGenerationService
}

// SetupTestServices wires the services against real infrastructure, reading "-" from stdin.
func SetupTestServices(t *testing.T, stdin io.Reader) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	textService, err := NewTextService(&source.Opener{Stdin: stdin}, cryptography.NewKeyGenerator(logger), logger)
	require.NoError(t, err, "Failed to create TextService")

	keyGenerationService, err := NewKeyGenerationService(textService, persistence.NewKeyFileStore(logger), logger)
	require.NoError(t, err, "Failed to create KeyGenerationService")

	return &TestServices{
		TextService:          textService,
		KeyGenerationService: keyGenerationService,
	}
}
