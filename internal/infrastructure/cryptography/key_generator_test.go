//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/genpass"
	"github.com/MGTheTrain/textcrypt/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGenerator(t *testing.T) {
	generator := NewKeyGenerator(testutil.SetupTestLogger(t))

	t.Run("Blake3", func(t *testing.T) {
		blobs, err := generator.Generate(cryptoalg.FormatBlake3)
		require.NoError(t, err)
		require.Len(t, blobs, 1)
		assert.Len(t, blobs[0], cryptoalg.KeySize)
	})

	t.Run("ChaCha20Poly1305", func(t *testing.T) {
		blobs, err := generator.Generate(cryptoalg.FormatChaCha20Poly1305)
		require.NoError(t, err)
		require.Len(t, blobs, 1)
		assert.Len(t, blobs[0], cryptoalg.KeySize)
		assert.False(t, strings.ContainsAny(string(blobs[0]), genpass.Symbol))
	})

	t.Run("Ed25519SignVerify", func(t *testing.T) {
		logger := testutil.SetupTestLogger(t)

		blobs, err := generator.Generate(cryptoalg.FormatEd25519)
		require.NoError(t, err)
		require.Len(t, blobs, 2)
		assert.Len(t, blobs[0], cryptoalg.KeySize)
		assert.Len(t, blobs[1], cryptoalg.KeySize)

		var seed cryptoalg.Ed25519PrivateKey
		copy(seed[:], blobs[0])
		var pub cryptoalg.Ed25519PublicKey
		copy(pub[:], blobs[1])

		signer := NewEd25519Signer(seed, logger)
		verifier, err := NewEd25519Verifier(pub, logger)
		require.NoError(t, err)

		msg := []byte("hello world!")
		sig, err := signer.Sign(msg)
		require.NoError(t, err)

		valid, err := verifier.Verify(msg, sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Fresh", func(t *testing.T) {
		a, err := generator.Generate(cryptoalg.FormatBlake3)
		require.NoError(t, err)
		b, err := generator.Generate(cryptoalg.FormatBlake3)
		require.NoError(t, err)
		assert.NotEqual(t, a[0], b[0])
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := generator.Generate(cryptoalg.Format(0))
		assert.ErrorIs(t, err, cryptoalg.ErrUnsupportedFormat)
	})
}
