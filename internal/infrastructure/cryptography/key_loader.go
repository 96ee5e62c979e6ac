package cryptography

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"filippo.io/edwards25519"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
)

// readKeyFile returns the first KeySize bytes of the file at path.
func readKeyFile(path string) ([cryptoalg.KeySize]byte, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		var zero [cryptoalg.KeySize]byte
		if errors.Is(err, fs.ErrNotExist) {
			return zero, fmt.Errorf("%w: %s", cryptoalg.ErrKeyNotFound, path)
		}
		return zero, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	key, err := cryptoalg.TruncateKey(raw)
	if err != nil {
		return key, fmt.Errorf("%s: %w", path, err)
	}
	return key, nil
}

// LoadHashKey reads a keyed-hash secret.
func LoadHashKey(path string) (cryptoalg.HashKey, error) {
	key, err := readKeyFile(path)
	return cryptoalg.HashKey(key), err
}

// LoadCipherKey reads an AEAD secret.
func LoadCipherKey(path string) (cryptoalg.CipherKey, error) {
	key, err := readKeyFile(path)
	return cryptoalg.CipherKey(key), err
}

// LoadEd25519PrivateKey reads an Ed25519 seed.
func LoadEd25519PrivateKey(path string) (cryptoalg.Ed25519PrivateKey, error) {
	key, err := readKeyFile(path)
	return cryptoalg.Ed25519PrivateKey(key), err
}

// LoadEd25519PublicKey reads an Ed25519 public key and checks that it encodes a
// point on edwards25519.
func LoadEd25519PublicKey(path string) (cryptoalg.Ed25519PublicKey, error) {
	key, err := readKeyFile(path)
	if err != nil {
		return cryptoalg.Ed25519PublicKey{}, err
	}
	pub := cryptoalg.Ed25519PublicKey(key)
	if err := validatePublicKey(pub); err != nil {
		return cryptoalg.Ed25519PublicKey{}, fmt.Errorf("%s: %w", path, err)
	}
	return pub, nil
}

func validatePublicKey(pub cryptoalg.Ed25519PublicKey) error {
	if _, err := new(edwards25519.Point).SetBytes(pub.Slice()); err != nil {
		return fmt.Errorf("%w: %v", cryptoalg.ErrInvalidPublicKey, err)
	}
	return nil
}
