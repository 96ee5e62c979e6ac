package cryptography

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/genpass"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// keyGenerator implements cryptoalg.KeyGenerator.
type keyGenerator struct {
	logger logger.Logger
}

// NewKeyGenerator creates and returns a new key generator.
func NewKeyGenerator(logger logger.Logger) cryptoalg.KeyGenerator {
	return &keyGenerator{logger: logger}
}

// Generate returns one blob for the symmetric formats and [seed, public key] for Ed25519.
func (g *keyGenerator) Generate(format cryptoalg.Format) ([][]byte, error) {
	blobs, err := cryptoalg.MatchFormat[[][]byte](format, generateCases{})
	if err != nil {
		return nil, err
	}
	g.logger.Info("Generated ", format, " key material")
	return blobs, nil
}

type generateCases struct{}

func (generateCases) Blake3() ([][]byte, error) {
	key, err := printableKey(genpass.DefaultOptions())
	if err != nil {
		return nil, err
	}
	return [][]byte{key}, nil
}

func (generateCases) Ed25519() ([][]byte, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Ed25519 key pair: %w", err)
	}
	return [][]byte{priv.Seed(), []byte(pub)}, nil
}

func (generateCases) ChaCha20Poly1305() ([][]byte, error) {
	key, err := printableKey(genpass.Options{Upper: true, Lower: true, Number: true})
	if err != nil {
		return nil, err
	}
	return [][]byte{key}, nil
}

// printableKey draws a KeySize character password so symmetric key files stay readable text.
func printableKey(opts genpass.Options) ([]byte, error) {
	pass, err := genpass.Generate(cryptoalg.KeySize, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return []byte(pass), nil
}
