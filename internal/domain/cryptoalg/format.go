package cryptoalg

import (
	"fmt"
	"strings"
)

// Format identifies one of the supported algorithm families.
// The zero value is not a valid format; obtain one through ParseFormat or the exported constants.
type Format uint8

const (
	// FormatBlake3 is the keyed BLAKE3 hash used for symmetric signing.
	FormatBlake3 Format = iota + 1
	// FormatEd25519 is the Ed25519 asymmetric signature scheme.
	FormatEd25519
	// FormatChaCha20Poly1305 is the ChaCha20-Poly1305 AEAD cipher.
	FormatChaCha20Poly1305
)

// Canonical format tags
const (
	FormatTagBlake3           = "blake3"
	FormatTagEd25519          = "ed25519"
	FormatTagChaCha20Poly1305 = "chacha20poly1305"
)

// Role-based aliases accepted on the command line
const (
	FormatAliasKeyedHash  = "keyed-hash"
	FormatAliasAsymmetric = "asymmetric"
	FormatAliasCipher     = "cipher"
)

// ParseFormat maps a format tag to a Format. It never touches the filesystem.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case FormatTagBlake3, FormatAliasKeyedHash:
		return FormatBlake3, nil
	case FormatTagEd25519, FormatAliasAsymmetric:
		return FormatEd25519, nil
	case FormatTagChaCha20Poly1305, FormatAliasCipher:
		return FormatChaCha20Poly1305, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
	}
}

// Formats lists every supported format in declaration order.
func Formats() []Format {
	return []Format{FormatBlake3, FormatEd25519, FormatChaCha20Poly1305}
}

// FormatCases is implemented once per operation that behaves differently for each format.
// A new format adds a method here, so every dispatch site stops compiling until it handles it.
type FormatCases[T any] interface {
	Blake3() (T, error)
	Ed25519() (T, error)
	ChaCha20Poly1305() (T, error)
}

// MatchFormat calls the case of c that corresponds to f.
func MatchFormat[T any](f Format, c FormatCases[T]) (T, error) {
	switch f {
	case FormatBlake3:
		return c.Blake3()
	case FormatEd25519:
		return c.Ed25519()
	case FormatChaCha20Poly1305:
		return c.ChaCha20Poly1305()
	default:
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrUnsupportedFormat, uint8(f))
	}
}

// String returns the canonical tag of the format.
func (f Format) String() string {
	switch f {
	case FormatBlake3:
		return FormatTagBlake3
	case FormatEd25519:
		return FormatTagEd25519
	case FormatChaCha20Poly1305:
		return FormatTagChaCha20Poly1305
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// KeyFileNames returns the file names generated key material is stored under,
// in the order KeyGenerator returns the blobs.
func (f Format) KeyFileNames() []string {
	switch f {
	case FormatEd25519:
		return []string{f.String() + ".sk", f.String() + ".pk"}
	case FormatBlake3, FormatChaCha20Poly1305:
		return []string{f.String() + ".key"}
	default:
		return nil
	}
}

// Set implements pflag.Value so a Format can be bound directly to a command flag.
func (f *Format) Set(tag string) error {
	parsed, err := ParseFormat(tag)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }
