package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MGTheTrain/textcrypt/internal/app"
	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textcrypt/internal/infrastructure/source"
	"github.com/MGTheTrain/textcrypt/internal/pkg/config"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// TextCommandHandler encapsulates logic for handling sign, verify, generate, encrypt and
// decrypt operations via CLI.
type TextCommandHandler struct {
	keyGenerator cryptoalg.KeyGenerator
	keyStore     cryptoalg.KeyStore
	logger       logger.Logger
}

// NewTextCommandHandler initializes and returns a TextCommandHandler instance with
// configured logger, key generator and key store.
func NewTextCommandHandler(settings *config.CLISettings) (*TextCommandHandler, error) {
	loggerInstance, err := setupLogger(&settings.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &TextCommandHandler{
		keyGenerator: cryptography.NewKeyGenerator(loggerInstance),
		keyStore:     persistence.NewKeyFileStore(loggerInstance),
		logger:       loggerInstance,
	}, nil
}

// textService builds the service around the command's standard input.
func (commandHandler *TextCommandHandler) textService(cmd *cobra.Command) (cryptoalg.TextService, error) {
	return app.NewTextService(&source.Opener{Stdin: cmd.InOrStdin()}, commandHandler.keyGenerator, commandHandler.logger)
}

// SignCmd prints the base64url signature of the input
func (commandHandler *TextCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	flags, err := getStringFlags(cmd, flagInput, flagKey)
	if err != nil {
		return err
	}
	format, err := getFormatFlag(cmd)
	if err != nil {
		return err
	}

	service, err := commandHandler.textService(cmd)
	if err != nil {
		return err
	}

	sig, err := service.Sign(cmd.Context(), flags[0], flags[1], format)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sig)
	return err
}

// VerifyCmd prints true or false depending on whether --sig matches the input
func (commandHandler *TextCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	flags, err := getStringFlags(cmd, flagInput, flagKey, flagSig)
	if err != nil {
		return err
	}
	format, err := getFormatFlag(cmd)
	if err != nil {
		return err
	}

	service, err := commandHandler.textService(cmd)
	if err != nil {
		return err
	}

	valid, err := service.Verify(cmd.Context(), flags[0], flags[1], flags[2], format)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), valid)
	return err
}

// GenerateCmd writes fresh key files into --output and prints their paths
func (commandHandler *TextCommandHandler) GenerateCmd(cmd *cobra.Command, _ []string) error {
	flags, err := getStringFlags(cmd, flagOutput)
	if err != nil {
		return err
	}
	format, err := getFormatFlag(cmd)
	if err != nil {
		return err
	}

	service, err := commandHandler.textService(cmd)
	if err != nil {
		return err
	}
	generation, err := app.NewKeyGenerationService(service, commandHandler.keyStore, commandHandler.logger)
	if err != nil {
		return err
	}

	paths, err := generation.Generate(cmd.Context(), format, flags[0])
	if err != nil {
		return err
	}

	for _, path := range paths {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}

// EncryptCmd prints the base64url cipher envelope of the input
func (commandHandler *TextCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	flags, err := getStringFlags(cmd, flagInput, flagKey)
	if err != nil {
		return err
	}

	service, err := commandHandler.textService(cmd)
	if err != nil {
		return err
	}

	envelope, err := service.Encrypt(cmd.Context(), flags[0], flags[1])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), envelope)
	return err
}

// DecryptCmd reads a base64url envelope and prints the plaintext
func (commandHandler *TextCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	flags, err := getStringFlags(cmd, flagInput, flagKey)
	if err != nil {
		return err
	}

	service, err := commandHandler.textService(cmd)
	if err != nil {
		return err
	}

	plaintext, err := service.Decrypt(cmd.Context(), flags[0], flags[1])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), plaintext)
	return err
}

// InitTextCommands registers the text command group
func InitTextCommands(rootCmd *cobra.Command, settings *config.CLISettings) error {
	handler, err := NewTextCommandHandler(settings)
	if err != nil {
		return fmt.Errorf("failed to create text command handler: %w", err)
	}

	defaultFormat, err := cryptoalg.ParseFormat(settings.DefaultFormat)
	if err != nil {
		return fmt.Errorf("invalid default format: %w", err)
	}

	var textCmd = &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
	}

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign the input and print a base64url signature",
		Args:  cobra.NoArgs,
		RunE:  handler.SignCmd,
	}
	addInputFlag(signCmd)
	signCmd.Flags().StringP(flagKey, "k", "", "Path to the signing key")
	addFormatFlag(signCmd, defaultFormat, "Signature format: blake3 (keyed-hash) or ed25519 (asymmetric)")
	_ = signCmd.MarkFlagRequired(flagKey)
	textCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a base64url signature over the input",
		Args:  cobra.NoArgs,
		RunE:  handler.VerifyCmd,
	}
	addInputFlag(verifyCmd)
	verifyCmd.Flags().StringP(flagKey, "k", "", "Path to the verification key")
	verifyCmd.Flags().StringP(flagSig, "s", "", "Base64url signature to check")
	addFormatFlag(verifyCmd, defaultFormat, "Signature format: blake3 (keyed-hash) or ed25519 (asymmetric)")
	_ = verifyCmd.MarkFlagRequired(flagKey)
	_ = verifyCmd.MarkFlagRequired(flagSig)
	textCmd.AddCommand(verifyCmd)

	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate key files for a format",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateCmd,
	}
	addFormatFlag(generateCmd, defaultFormat, "Key format: blake3, ed25519 or chacha20poly1305")
	generateCmd.Flags().StringP(flagOutput, "o", ".", "Existing directory the key files are written to")
	textCmd.AddCommand(generateCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt the input with ChaCha20-Poly1305 and print a base64url envelope",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptCmd,
	}
	addInputFlag(encryptCmd)
	encryptCmd.Flags().StringP(flagKey, "k", "", "Path to the cipher key")
	_ = encryptCmd.MarkFlagRequired(flagKey)
	textCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a base64url envelope read from the input",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptCmd,
	}
	addInputFlag(decryptCmd)
	decryptCmd.Flags().StringP(flagKey, "k", "", "Path to the cipher key")
	_ = decryptCmd.MarkFlagRequired(flagKey)
	textCmd.AddCommand(decryptCmd)

	rootCmd.AddCommand(textCmd)
	return nil
}
