package cryptography

import (
	"crypto/ed25519"
	"fmt"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// Ed25519Signer signs messages with an Ed25519 private key.
type Ed25519Signer struct {
	key    ed25519.PrivateKey
	logger logger.Logger
}

// Ed25519Verifier checks Ed25519 signatures against a public key.
type Ed25519Verifier struct {
	key    ed25519.PublicKey
	logger logger.Logger
}

var (
	_ cryptoalg.Signer   = (*Ed25519Signer)(nil)
	_ cryptoalg.Verifier = (*Ed25519Verifier)(nil)
)

// NewEd25519Signer expands seed into a signing key.
func NewEd25519Signer(seed cryptoalg.Ed25519PrivateKey, logger logger.Logger) *Ed25519Signer {
	return &Ed25519Signer{
		key:    ed25519.NewKeyFromSeed(seed.Slice()),
		logger: logger,
	}
}

// NewEd25519Verifier creates a verifier for pub. It fails with
// cryptoalg.ErrInvalidPublicKey if pub is not a curve point.
func NewEd25519Verifier(pub cryptoalg.Ed25519PublicKey, logger logger.Logger) (*Ed25519Verifier, error) {
	if err := validatePublicKey(pub); err != nil {
		return nil, err
	}
	return &Ed25519Verifier{
		key:    ed25519.PublicKey(pub.Slice()),
		logger: logger,
	}, nil
}

// Sign returns the 64-byte Ed25519 signature of message.
func (s *Ed25519Signer) Sign(message []byte) ([]byte, error) {
	sig := ed25519.Sign(s.key, message)
	s.logger.Debug("Ed25519 signature created over ", len(message), " bytes")
	return sig, nil
}

// PublicKey returns the public half of the signing key.
func (s *Ed25519Signer) PublicKey() cryptoalg.Ed25519PublicKey {
	var pub cryptoalg.Ed25519PublicKey
	copy(pub[:], s.key.Public().(ed25519.PublicKey))
	return pub
}

// Verify reports whether signature is a valid Ed25519 signature of message.
func (v *Ed25519Verifier) Verify(message, signature []byte) (bool, error) {
	if len(signature) != cryptoalg.Ed25519SignatureSize {
		return false, fmt.Errorf("%w: ed25519 expects %d bytes, got %d",
			cryptoalg.ErrSignatureLengthMismatch, cryptoalg.Ed25519SignatureSize, len(signature))
	}

	valid := ed25519.Verify(v.key, message, signature)
	v.logger.Debug("Ed25519 verification finished, valid=", valid)
	return valid, nil
}
