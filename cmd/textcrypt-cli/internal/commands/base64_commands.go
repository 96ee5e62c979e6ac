package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MGTheTrain/textcrypt/internal/infrastructure/source"
	"github.com/MGTheTrain/textcrypt/internal/pkg/codec"
	"github.com/MGTheTrain/textcrypt/internal/pkg/config"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// Base64CommandHandler encapsulates logic for base64 encoding and decoding via CLI.
type Base64CommandHandler struct {
	logger logger.Logger
}

// NewBase64CommandHandler initializes and returns a Base64CommandHandler instance.
func NewBase64CommandHandler(settings *config.CLISettings) (*Base64CommandHandler, error) {
	loggerInstance, err := setupLogger(&settings.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &Base64CommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *Base64CommandHandler) readInput(cmd *cobra.Command) ([]byte, codec.Engine, error) {
	flags, err := getStringFlags(cmd, flagInput, flagFormat)
	if err != nil {
		return nil, "", err
	}

	engine, err := codec.ParseEngine(flags[1])
	if err != nil {
		return nil, "", err
	}

	data, err := source.ReadAll(cmd.Context(), &source.Opener{Stdin: cmd.InOrStdin()}, flags[0])
	if err != nil {
		return nil, "", err
	}
	commandHandler.logger.Debug("Read ", len(data), " bytes for base64 ", engine)
	return data, engine, nil
}

// EncodeCmd prints the input encoded as base64
func (commandHandler *Base64CommandHandler) EncodeCmd(cmd *cobra.Command, _ []string) error {
	data, engine, err := commandHandler.readInput(cmd)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), engine.Encode(data))
	return err
}

// DecodeCmd prints the decoded bytes of base64 input
func (commandHandler *Base64CommandHandler) DecodeCmd(cmd *cobra.Command, _ []string) error {
	data, engine, err := commandHandler.readInput(cmd)
	if err != nil {
		return err
	}

	decoded, err := engine.Decode(string(data))
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}

// InitBase64Commands registers the base64 command group
func InitBase64Commands(rootCmd *cobra.Command, settings *config.CLISettings) error {
	handler, err := NewBase64CommandHandler(settings)
	if err != nil {
		return fmt.Errorf("failed to create base64 command handler: %w", err)
	}

	var base64Cmd = &cobra.Command{
		Use:   "base64",
		Short: "Base64 encode or decode",
	}

	var encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode the input as base64",
		Args:  cobra.NoArgs,
		RunE:  handler.EncodeCmd,
	}
	addInputFlag(encodeCmd)
	encodeCmd.Flags().String(flagFormat, string(codec.EngineStandard), "Alphabet: standard or urlsafe")
	base64Cmd.AddCommand(encodeCmd)

	var decodeCmd = &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input",
		Args:  cobra.NoArgs,
		RunE:  handler.DecodeCmd,
	}
	addInputFlag(decodeCmd)
	decodeCmd.Flags().String(flagFormat, string(codec.EngineStandard), "Alphabet: standard or urlsafe")
	base64Cmd.AddCommand(decodeCmd)

	rootCmd.AddCommand(base64Cmd)
	return nil
}
