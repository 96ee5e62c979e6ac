//go:build unit
// +build unit

package source

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Stdin", func(t *testing.T) {
		opener := &Opener{Stdin: strings.NewReader("from stdin")}
		data, err := ReadAll(ctx, opener, Stdin)
		require.NoError(t, err)
		assert.Equal(t, "from stdin", string(data))
	})

	t.Run("File", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "input.txt", []byte("from file"))
		data, err := ReadAll(ctx, NewOpener(), path)
		require.NoError(t, err)
		assert.Equal(t, "from file", string(data))
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "empty.txt", nil)
		data, err := ReadAll(ctx, NewOpener(), path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ReadAll(ctx, NewOpener(), filepath.Join(t.TempDir(), "nope.txt"))
		assert.ErrorIs(t, err, cryptoalg.ErrSourceNotFound)
	})

	t.Run("NoStdin", func(t *testing.T) {
		_, err := ReadAll(ctx, &Opener{}, Stdin)
		assert.ErrorIs(t, err, cryptoalg.ErrSourceNotFound)
	})

	t.Run("Canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := ReadAll(canceled, &Opener{Stdin: strings.NewReader("x")}, Stdin)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
