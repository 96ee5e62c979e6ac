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

func setupBlake3Processor(t *testing.T) *Blake3Processor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	var key cryptoalg.HashKey
	copy(key[:], testutil.SequentialKey(cryptoalg.KeySize))
	return NewBlake3Processor(key, logger)
}

func TestBlake3Processor(t *testing.T) {
	processor := setupBlake3Processor(t)

	t.Run("SignVerify", func(t *testing.T) {
		msg := []byte("hello world!")
		sig, err := processor.Sign(msg)
		require.NoError(t, err)
		assert.Len(t, sig, cryptoalg.Blake3SignatureSize)

		valid, err := processor.Verify(msg, sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := processor.Sign([]byte("hello"))
		require.NoError(t, err)
		second, err := processor.Sign([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		sig, err := processor.Sign(nil)
		require.NoError(t, err)

		valid, err := processor.Verify([]byte{}, sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("BitFlipRejected", func(t *testing.T) {
		msg := []byte("hello")
		sig, err := processor.Sign(msg)
		require.NoError(t, err)

		for i := range sig {
			tampered := append([]byte{}, sig...)
			tampered[i] ^= 0x01

			valid, err := processor.Verify(msg, tampered)
			require.NoError(t, err)
			assert.False(t, valid, "flipped bit in byte %d", i)
		}

		valid, err := processor.Verify([]byte("hellO"), sig)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := processor.Verify([]byte("hello"), make([]byte, cryptoalg.Ed25519SignatureSize))
		assert.ErrorIs(t, err, cryptoalg.ErrSignatureLengthMismatch)

		_, err = processor.Verify([]byte("hello"), nil)
		assert.ErrorIs(t, err, cryptoalg.ErrSignatureLengthMismatch)
	})

	t.Run("DifferentKeyDifferentDigest", func(t *testing.T) {
		var other cryptoalg.HashKey
		other[0] = 0xFF
		otherProcessor := NewBlake3Processor(other, testutil.SetupTestLogger(t))

		a, err := processor.Sign([]byte("hello"))
		require.NoError(t, err)
		b, err := otherProcessor.Sign([]byte("hello"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}
