// Package genpass generates random passwords from a fixed set of unambiguous
// character classes. Key generation uses it to derive printable symmetric keys.
package genpass

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Character classes. Visually ambiguous characters (I, O, i, l, o, 0) are left out.
const (
	Upper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Lower  = "abcdefghjkmnopqrstuvwxyz"
	Number = "123456789"
	Symbol = "!@#$%^&*_"
)

// ErrNoCharacterClass is returned when every class is disabled.
var ErrNoCharacterClass = errors.New("at least one character class must be enabled")

// Options selects the character classes a password is drawn from.
type Options struct {
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

// DefaultOptions enables every class.
func DefaultOptions() Options {
	return Options{Upper: true, Lower: true, Number: true, Symbol: true}
}

func (o Options) classes() []string {
	var classes []string
	if o.Upper {
		classes = append(classes, Upper)
	}
	if o.Lower {
		classes = append(classes, Lower)
	}
	if o.Number {
		classes = append(classes, Number)
	}
	if o.Symbol {
		classes = append(classes, Symbol)
	}
	return classes
}

// Generate returns a password of length characters containing at least one
// character from every enabled class.
func Generate(length int, opts Options) (string, error) {
	classes := opts.classes()
	if len(classes) == 0 {
		return "", ErrNoCharacterClass
	}
	if length < len(classes) {
		return "", fmt.Errorf("length %d is shorter than the %d enabled character classes", length, len(classes))
	}

	pass := make([]byte, 0, length)
	var pool string
	for _, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		pass = append(pass, c)
		pool += class
	}

	for len(pass) < length {
		c, err := pick(pool)
		if err != nil {
			return "", err
		}
		pass = append(pass, c)
	}

	if err := shuffle(pass); err != nil {
		return "", err
	}
	return string(pass), nil
}

func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return int(v.Int64()), nil
}

func pick(set string) (byte, error) {
	i, err := randIntn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randIntn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
