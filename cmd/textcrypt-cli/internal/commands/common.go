package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/source"
	"github.com/MGTheTrain/textcrypt/internal/pkg/config"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// Flag names shared by the command groups
const (
	flagInput  = "input"
	flagKey    = "key"
	flagFormat = "format"
	flagSig    = "sig"
	flagOutput = "output"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// addInputFlag registers --input/-i, where "-" reads standard input.
func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flagInput, "i", source.Stdin, `Input file, or "-" for standard input`)
}

// addFormatFlag registers --format with a default taken from the settings.
// The value is parsed while flags are parsed, so an unknown format fails before any I/O.
func addFormatFlag(cmd *cobra.Command, defaultFormat cryptoalg.Format, usage string) {
	format := defaultFormat
	cmd.Flags().Var(&format, flagFormat, usage)
}

func getFormatFlag(cmd *cobra.Command) (cryptoalg.Format, error) {
	f := cmd.Flags().Lookup(flagFormat)
	if f == nil {
		return 0, fmt.Errorf("flag --%s not defined", flagFormat)
	}
	format, ok := f.Value.(*cryptoalg.Format)
	if !ok {
		return 0, fmt.Errorf("flag --%s has unexpected type %T", flagFormat, f.Value)
	}
	return *format, nil
}

func getStringFlags(cmd *cobra.Command, names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", name, err)
		}
		values[i] = v
	}
	return values, nil
}
