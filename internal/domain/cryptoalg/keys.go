package cryptoalg

import "fmt"

// KeySize is the length in bytes of every key handled by the engine.
// Loaders read the first KeySize bytes of a key file and ignore the rest.
const KeySize = 32

// Signature lengths per format
const (
	Blake3SignatureSize  = 32
	Ed25519SignatureSize = 64
)

// NonceSize is the length of the nonce prefixed to every cipher envelope.
const NonceSize = 12

// HashKey is the secret of the keyed-hash format.
type HashKey [KeySize]byte

// CipherKey is the secret of the AEAD format. It is a distinct type from HashKey
// so the two can never be swapped by accident.
type CipherKey [KeySize]byte

// Ed25519PrivateKey is the 32-byte Ed25519 seed the signing key is derived from.
type Ed25519PrivateKey [KeySize]byte

// Ed25519PublicKey is a compressed edwards25519 point.
type Ed25519PublicKey [KeySize]byte

// Slice returns the key as a []byte.
func (k HashKey) Slice() []byte { return k[:] }

// Slice returns the key as a []byte.
func (k CipherKey) Slice() []byte { return k[:] }

// Slice returns the key as a []byte.
func (k Ed25519PrivateKey) Slice() []byte { return k[:] }

// Slice returns the key as a []byte.
func (k Ed25519PublicKey) Slice() []byte { return k[:] }

// TruncateKey returns the first KeySize bytes of raw.
// Inputs shorter than KeySize fail with ErrKeyTooShort instead of being padded.
func TruncateKey(raw []byte) ([KeySize]byte, error) {
	var out [KeySize]byte
	if len(raw) < KeySize {
		return out, fmt.Errorf("%w: want at least %d bytes, got %d", ErrKeyTooShort, KeySize, len(raw))
	}
	copy(out[:], raw[:KeySize])
	return out, nil
}
