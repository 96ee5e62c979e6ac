//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChaCha20Poly1305Processor(t *testing.T, fill byte) *ChaCha20Poly1305Processor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	var key cryptoalg.CipherKey
	for i := range key {
		key[i] = fill
	}
	processor, err := NewChaCha20Poly1305Processor(key, logger)
	require.NoError(t, err)
	return processor
}

func TestChaCha20Poly1305Processor(t *testing.T) {
	processor := setupChaCha20Poly1305Processor(t, 0x42)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		tests := []struct {
			name      string
			plaintext []byte
		}{
			{"text", []byte("attack at dawn")},
			{"empty", []byte{}},
			{"multi-byte utf8", []byte("grüße, 世界")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				envelope, err := processor.Encrypt(tt.plaintext)
				require.NoError(t, err)
				assert.Len(t, envelope, cryptoalg.NonceSize+len(tt.plaintext)+16)

				plaintext, err := processor.Decrypt(envelope)
				require.NoError(t, err)
				assert.Equal(t, string(tt.plaintext), string(plaintext))
			})
		}
	})

	t.Run("FreshNonce", func(t *testing.T) {
		a, err := processor.Encrypt([]byte("same"))
		require.NoError(t, err)
		b, err := processor.Encrypt([]byte("same"))
		require.NoError(t, err)

		assert.NotEqual(t, a[:cryptoalg.NonceSize], b[:cryptoalg.NonceSize])
		assert.NotEqual(t, a, b)
	})

	t.Run("TamperedEnvelope", func(t *testing.T) {
		envelope, err := processor.Encrypt([]byte("attack at dawn"))
		require.NoError(t, err)

		for _, i := range []int{0, cryptoalg.NonceSize, len(envelope) - 1} {
			tampered := append([]byte{}, envelope...)
			tampered[i] ^= 0x80

			plaintext, err := processor.Decrypt(tampered)
			assert.ErrorIs(t, err, cryptoalg.ErrAuthenticationFailed)
			assert.Nil(t, plaintext)
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		envelope, err := processor.Encrypt([]byte("attack at dawn"))
		require.NoError(t, err)

		other := setupChaCha20Poly1305Processor(t, 0x43)
		_, err = other.Decrypt(envelope)
		assert.ErrorIs(t, err, cryptoalg.ErrAuthenticationFailed)
	})

	t.Run("EnvelopeTooShort", func(t *testing.T) {
		_, err := processor.Decrypt(make([]byte, cryptoalg.NonceSize-1))
		assert.ErrorIs(t, err, cryptoalg.ErrEnvelopeTooShort)

		// A bare nonce has no tag and cannot authenticate.
		_, err = processor.Decrypt(make([]byte, cryptoalg.NonceSize))
		assert.ErrorIs(t, err, cryptoalg.ErrAuthenticationFailed)
	})
}
