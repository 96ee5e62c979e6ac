package app

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/source"
	"github.com/MGTheTrain/textcrypt/internal/pkg/codec"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// textService implements the TextService interface
type textService struct {
	opener       cryptoalg.SourceOpener
	keyGenerator cryptoalg.KeyGenerator
	logger       logger.Logger
}

// NewTextService creates a new textService instance
func NewTextService(opener cryptoalg.SourceOpener, keyGenerator cryptoalg.KeyGenerator, logger logger.Logger) (cryptoalg.TextService, error) {
	if opener == nil {
		return nil, fmt.Errorf("source opener must not be nil")
	}
	if keyGenerator == nil {
		return nil, fmt.Errorf("key generator must not be nil")
	}
	return &textService{
		opener:       opener,
		keyGenerator: keyGenerator,
		logger:       logger,
	}, nil
}

// Sign loads the signing key for format, drains input and returns the base64url signature.
func (s *textService) Sign(ctx context.Context, input, keyPath string, format cryptoalg.Format) (string, error) {
	opID := uuid.New().String()
	s.logger.Info("Sign ", opID, " started with format ", format)

	signer, err := cryptoalg.MatchFormat[cryptoalg.Signer](format, signerCases{keyPath: keyPath, logger: s.logger})
	if err != nil {
		return "", err
	}

	message, err := source.ReadAll(ctx, s.opener, input)
	if err != nil {
		return "", err
	}

	sig, err := signer.Sign(message)
	if err != nil {
		return "", fmt.Errorf("failed to sign input: %w", err)
	}

	s.logger.Info("Sign ", opID, " finished")
	return codec.EncodeURL(sig), nil
}

// Verify decodes signature, loads the verification key for format and checks it against input.
func (s *textService) Verify(ctx context.Context, input, keyPath, signature string, format cryptoalg.Format) (bool, error) {
	opID := uuid.New().String()
	s.logger.Info("Verify ", opID, " started with format ", format)

	sig, err := codec.DecodeURL(signature)
	if err != nil {
		return false, fmt.Errorf("failed to decode signature: %w", err)
	}

	verifier, err := cryptoalg.MatchFormat[cryptoalg.Verifier](format, verifierCases{keyPath: keyPath, logger: s.logger})
	if err != nil {
		return false, err
	}

	message, err := source.ReadAll(ctx, s.opener, input)
	if err != nil {
		return false, err
	}

	valid, err := verifier.Verify(message, sig)
	if err != nil {
		return false, err
	}

	s.logger.Info("Verify ", opID, " finished, valid=", valid)
	return valid, nil
}

// Encrypt seals input under the ChaCha20-Poly1305 key at keyPath and returns the base64url envelope.
func (s *textService) Encrypt(ctx context.Context, input, keyPath string) (string, error) {
	opID := uuid.New().String()
	s.logger.Info("Encrypt ", opID, " started")

	processor, err := s.cipherProcessor(keyPath)
	if err != nil {
		return "", err
	}

	plaintext, err := source.ReadAll(ctx, s.opener, input)
	if err != nil {
		return "", err
	}

	envelope, err := processor.Encrypt(plaintext)
	if err != nil {
		return "", err
	}

	s.logger.Info("Encrypt ", opID, " finished")
	return codec.EncodeURL(envelope), nil
}

// Decrypt reads a base64url envelope from input and returns the plaintext as text.
func (s *textService) Decrypt(ctx context.Context, input, keyPath string) (string, error) {
	opID := uuid.New().String()
	s.logger.Info("Decrypt ", opID, " started")

	processor, err := s.cipherProcessor(keyPath)
	if err != nil {
		return "", err
	}

	text, err := source.ReadAll(ctx, s.opener, input)
	if err != nil {
		return "", err
	}

	envelope, err := codec.DecodeURL(string(text))
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	plaintext, err := processor.Decrypt(envelope)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", cryptoalg.ErrInvalidUTF8Output
	}

	s.logger.Info("Decrypt ", opID, " finished")
	return string(plaintext), nil
}

// GenerateKeys returns fresh key material for format.
func (s *textService) GenerateKeys(ctx context.Context, format cryptoalg.Format) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.keyGenerator.Generate(format)
}

func (s *textService) cipherProcessor(keyPath string) (*cryptography.ChaCha20Poly1305Processor, error) {
	key, err := cryptography.LoadCipherKey(keyPath)
	if err != nil {
		return nil, err
	}
	return cryptography.NewChaCha20Poly1305Processor(key, s.logger)
}

// signerCases builds the signer for each format from the key file at keyPath.
type signerCases struct {
	keyPath string
	logger  logger.Logger
}

func (c signerCases) Blake3() (cryptoalg.Signer, error) {
	key, err := cryptography.LoadHashKey(c.keyPath)
	if err != nil {
		return nil, err
	}
	return cryptography.NewBlake3Processor(key, c.logger), nil
}

func (c signerCases) Ed25519() (cryptoalg.Signer, error) {
	seed, err := cryptography.LoadEd25519PrivateKey(c.keyPath)
	if err != nil {
		return nil, err
	}
	return cryptography.NewEd25519Signer(seed, c.logger), nil
}

func (c signerCases) ChaCha20Poly1305() (cryptoalg.Signer, error) {
	return nil, fmt.Errorf("%w: %s cannot sign", cryptoalg.ErrUnsupportedFormat, cryptoalg.FormatChaCha20Poly1305)
}

// verifierCases builds the verifier for each format from the key file at keyPath.
type verifierCases struct {
	keyPath string
	logger  logger.Logger
}

func (c verifierCases) Blake3() (cryptoalg.Verifier, error) {
	key, err := cryptography.LoadHashKey(c.keyPath)
	if err != nil {
		return nil, err
	}
	return cryptography.NewBlake3Processor(key, c.logger), nil
}

func (c verifierCases) Ed25519() (cryptoalg.Verifier, error) {
	pub, err := cryptography.LoadEd25519PublicKey(c.keyPath)
	if err != nil {
		return nil, err
	}
	return cryptography.NewEd25519Verifier(pub, c.logger)
}

func (c verifierCases) ChaCha20Poly1305() (cryptoalg.Verifier, error) {
	return nil, fmt.Errorf("%w: %s cannot verify", cryptoalg.ErrUnsupportedFormat, cryptoalg.FormatChaCha20Poly1305)
}
