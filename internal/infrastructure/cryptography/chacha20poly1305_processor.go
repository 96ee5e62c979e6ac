package cryptography

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// ChaCha20Poly1305Processor seals and opens nonce-prefixed AEAD envelopes.
type ChaCha20Poly1305Processor struct {
	aead   cipher.AEAD
	logger logger.Logger
}

var (
	_ cryptoalg.Encryptor = (*ChaCha20Poly1305Processor)(nil)
	_ cryptoalg.Decryptor = (*ChaCha20Poly1305Processor)(nil)
)

// NewChaCha20Poly1305Processor creates a processor bound to key.
func NewChaCha20Poly1305Processor(key cryptoalg.CipherKey, logger logger.Logger) (*ChaCha20Poly1305Processor, error) {
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}
	return &ChaCha20Poly1305Processor{
		aead:   aead,
		logger: logger,
	}, nil
}

// Encrypt returns nonce || ciphertext || tag. Every call draws a fresh nonce.
func (p *ChaCha20Poly1305Processor) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, cryptoalg.NonceSize, cryptoalg.NonceSize+len(plaintext)+p.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	envelope := p.aead.Seal(nonce, nonce, plaintext, nil)
	p.logger.Debug("ChaCha20-Poly1305 encryption produced ", len(envelope), " bytes")
	return envelope, nil
}

// Decrypt opens an envelope created by Encrypt with the same key.
func (p *ChaCha20Poly1305Processor) Decrypt(envelope []byte) ([]byte, error) {
	if len(envelope) < cryptoalg.NonceSize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d",
			cryptoalg.ErrEnvelopeTooShort, cryptoalg.NonceSize, len(envelope))
	}

	nonce, ciphertext := envelope[:cryptoalg.NonceSize], envelope[cryptoalg.NonceSize:]
	plaintext, err := p.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		p.logger.Warn("ChaCha20-Poly1305 authentication failed")
		return nil, cryptoalg.ErrAuthenticationFailed
	}
	return plaintext, nil
}
