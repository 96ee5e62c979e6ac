package cryptoalg

import (
	"context"
	"io"
)

// Signer produces a signature envelope over a fully buffered message.
type Signer interface {
	// Sign returns the raw signature bytes for message.
	// It does not fail once the key has been loaded successfully.
	Sign(message []byte) ([]byte, error)
}

// Verifier checks a signature envelope against a fully buffered message.
type Verifier interface {
	// Verify reports whether signature is valid for message.
	// A well-formed but wrong signature yields false and a nil error; an error means
	// verification could not be attempted (e.g. ErrSignatureLengthMismatch).
	Verify(message, signature []byte) (bool, error)
}

// Encryptor seals plaintext into a nonce-prefixed envelope.
type Encryptor interface {
	// Encrypt returns nonce || ciphertext || tag, using a fresh random nonce on every call.
	Encrypt(plaintext []byte) ([]byte, error)
}

// Decryptor opens an envelope produced by an Encryptor with the same key.
type Decryptor interface {
	// Decrypt returns the plaintext or ErrAuthenticationFailed. No partial plaintext is
	// ever returned.
	Decrypt(envelope []byte) ([]byte, error)
}

// KeyGenerator produces fresh key material for a format.
type KeyGenerator interface {
	// Generate returns one blob for symmetric formats and [private, public] for Ed25519.
	Generate(format Format) ([][]byte, error)
}

// SourceOpener yields the byte source an operation reads from.
type SourceOpener interface {
	// Open returns standard input for "-" and the named file otherwise.
	Open(path string) (io.ReadCloser, error)
}

// TextService is the dispatch layer: it loads key material, drains the byte source
// exactly once, runs the capability chosen by the format and encodes the result.
type TextService interface {
	// Sign returns the base64url signature of the input.
	Sign(ctx context.Context, input, keyPath string, format Format) (string, error)

	// Verify decodes signature and checks it against the input.
	Verify(ctx context.Context, input, keyPath, signature string, format Format) (bool, error)

	// Encrypt returns the base64url cipher envelope of the input.
	Encrypt(ctx context.Context, input, keyPath string) (string, error)

	// Decrypt reads a base64url envelope from the input and returns the plaintext text.
	Decrypt(ctx context.Context, input, keyPath string) (string, error)

	// GenerateKeys returns fresh key material for format.
	GenerateKeys(ctx context.Context, format Format) ([][]byte, error)
}

// KeyStore persists generated key material.
type KeyStore interface {
	// Save writes blobs under format.KeyFileNames() inside dir and returns the written paths.
	Save(ctx context.Context, dir string, format Format, blobs [][]byte) ([]string, error)
}

// KeyGenerationService generates key material and persists it as key files.
type KeyGenerationService interface {
	// Generate writes fresh key files for format into dir and returns their paths.
	Generate(ctx context.Context, format Format, dir string) ([]string, error)
}
