// Package codec converts binary envelopes to and from the text that crosses the
// command-line boundary.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
)

// EncodeURL returns b as URL-safe base64 without padding.
func EncodeURL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeURL reverses EncodeURL. Padded or standard-alphabet input is rejected with
// cryptoalg.ErrCodec. Leading and trailing whitespace is ignored.
func DecodeURL(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.Strict().DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrCodec, err)
	}
	return b, nil
}

// Engine selects the base64 alphabet used by the base64 command.
type Engine string

// Supported engines
const (
	EngineStandard Engine = "standard"
	EngineURLSafe  Engine = "urlsafe"
)

// ParseEngine validates an engine name.
func ParseEngine(name string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(name))); e {
	case EngineStandard, EngineURLSafe:
		return e, nil
	default:
		return "", fmt.Errorf("unsupported base64 format: %q", name)
	}
}

func (e Engine) encoding() *base64.Encoding {
	if e == EngineURLSafe {
		return base64.RawURLEncoding
	}
	return base64.StdEncoding
}

// Encode encodes b with the engine's alphabet.
func (e Engine) Encode(b []byte) string {
	return e.encoding().EncodeToString(b)
}

// Decode decodes s with the engine's alphabet, ignoring surrounding whitespace.
func (e Engine) Decode(s string) ([]byte, error) {
	b, err := e.encoding().DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrCodec, err)
	}
	return b, nil
}
