//go:build unit
// +build unit

package cryptography

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEd25519Pair(t *testing.T) (*Ed25519Signer, *Ed25519Verifier) {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	var seed cryptoalg.Ed25519PrivateKey
	copy(seed[:], priv.Seed())

	signer := NewEd25519Signer(seed, logger)
	verifier, err := NewEd25519Verifier(signer.PublicKey(), logger)
	require.NoError(t, err)
	return signer, verifier
}

func TestEd25519Processor(t *testing.T) {
	signer, verifier := newEd25519Pair(t)

	t.Run("SignVerify", func(t *testing.T) {
		msg := []byte("hello world!")
		sig, err := signer.Sign(msg)
		require.NoError(t, err)
		assert.Len(t, sig, cryptoalg.Ed25519SignatureSize)

		valid, err := verifier.Verify(msg, sig)
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = verifier.Verify([]byte("hello world?"), sig)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := signer.Sign([]byte("hello"))
		require.NoError(t, err)
		second, err := signer.Sign([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("WrongPublicKey", func(t *testing.T) {
		_, otherVerifier := newEd25519Pair(t)

		sig, err := signer.Sign([]byte("hello"))
		require.NoError(t, err)

		valid, err := otherVerifier.Verify([]byte("hello"), sig)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := verifier.Verify([]byte("hello"), make([]byte, cryptoalg.Blake3SignatureSize))
		assert.ErrorIs(t, err, cryptoalg.ErrSignatureLengthMismatch)
	})
}

func TestEd25519Signer_MatchesStdlibDerivation(t *testing.T) {
	var seed cryptoalg.Ed25519PrivateKey
	copy(seed[:], testutil.SequentialKey(cryptoalg.KeySize))

	signer := NewEd25519Signer(seed, testutil.SetupTestLogger(t))
	expected := ed25519.NewKeyFromSeed(seed.Slice()).Public().(ed25519.PublicKey)
	assert.Equal(t, []byte(expected), signer.PublicKey().Slice())
}

func TestNewEd25519Verifier_InvalidPoint(t *testing.T) {
	var pub cryptoalg.Ed25519PublicKey
	pub[0] = 0x02

	_, err := NewEd25519Verifier(pub, testutil.SetupTestLogger(t))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidPublicKey)
}
