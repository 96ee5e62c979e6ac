package cryptography

import (
	"crypto/subtle"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// Blake3Processor signs and verifies messages with keyed BLAKE3.
type Blake3Processor struct {
	key    cryptoalg.HashKey
	logger logger.Logger
}

var (
	_ cryptoalg.Signer   = (*Blake3Processor)(nil)
	_ cryptoalg.Verifier = (*Blake3Processor)(nil)
)

// NewBlake3Processor creates a keyed-hash processor bound to key.
func NewBlake3Processor(key cryptoalg.HashKey, logger logger.Logger) *Blake3Processor {
	return &Blake3Processor{
		key:    key,
		logger: logger,
	}
}

func (p *Blake3Processor) digest(message []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(p.key.Slice())
	if err != nil {
		return nil, fmt.Errorf("failed to create keyed hasher: %w", err)
	}
	// Hasher.Write never returns an error.
	_, _ = h.Write(message)
	return h.Sum(nil), nil
}

// Sign returns the 32-byte keyed BLAKE3 digest of message.
func (p *Blake3Processor) Sign(message []byte) ([]byte, error) {
	sig, err := p.digest(message)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("BLAKE3 keyed hash computed over ", len(message), " bytes")
	return sig, nil
}

// Verify recomputes the digest and compares it with signature in constant time.
func (p *Blake3Processor) Verify(message, signature []byte) (bool, error) {
	if len(signature) != cryptoalg.Blake3SignatureSize {
		return false, fmt.Errorf("%w: blake3 expects %d bytes, got %d",
			cryptoalg.ErrSignatureLengthMismatch, cryptoalg.Blake3SignatureSize, len(signature))
	}

	expected, err := p.digest(message)
	if err != nil {
		return false, err
	}

	valid := subtle.ConstantTimeCompare(expected, signature) == 1
	p.logger.Debug("BLAKE3 verification finished, valid=", valid)
	return valid, nil
}
