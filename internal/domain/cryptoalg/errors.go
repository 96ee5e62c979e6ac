package cryptoalg

import "errors"

var (
	// ErrSourceNotFound is returned when the input file does not exist.
	ErrSourceNotFound = errors.New("input source not found")

	// ErrKeyNotFound is returned when a key file does not exist.
	ErrKeyNotFound = errors.New("key file not found")

	// ErrKeyTooShort is returned when a key file holds fewer than KeySize bytes.
	ErrKeyTooShort = errors.New("key material too short")

	// ErrInvalidPublicKey is returned when public key bytes do not encode a curve point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrUnsupportedFormat is returned for unknown format tags and for formats
	// that lack the requested capability.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrCodec is returned when base64 text cannot be decoded.
	ErrCodec = errors.New("malformed base64 input")

	// ErrSignatureLengthMismatch is returned when a decoded signature does not
	// have the fixed length of the selected format.
	ErrSignatureLengthMismatch = errors.New("signature length mismatch")

	// ErrEnvelopeTooShort is returned when a cipher envelope cannot even hold a nonce.
	ErrEnvelopeTooShort = errors.New("ciphertext envelope too short")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong key or tampered ciphertext")

	// ErrInvalidUTF8Output is returned when decrypted bytes are not valid UTF-8 text.
	ErrInvalidUTF8Output = errors.New("decrypted output is not valid UTF-8")
)

// ErrOutputDirNotFound is returned when generated keys target a directory that does not exist.
var ErrOutputDirNotFound = errors.New("output directory not found")
