// Package main is the entry point for the textcrypt-cli application.
// It loads the CLI settings, registers the text, base64 and genpass command groups
// and executes the command-line interface.
package main

import (
	"fmt"
	"os"

	commands "github.com/MGTheTrain/textcrypt/cmd/textcrypt-cli/internal/commands"
	"github.com/MGTheTrain/textcrypt/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.InitializeCLIConfig(os.Getenv(config.ConfigPathEnv))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	rootCmd := newRootCmd()

	if err := initializeCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "textcrypt-cli",
		Short: "Sign, verify, encrypt and decrypt text from files or standard input",
		Long: `textcrypt-cli signs and verifies text with keyed BLAKE3 or Ed25519 and
encrypts it with ChaCha20-Poly1305. Binary results are printed as URL-safe
base64 without padding; logs go to standard error.

Configuration is read from the YAML file named by ` + config.ConfigPathEnv + `
and from ` + config.EnvPrefix + `_* environment variables, e.g.
` + config.EnvPrefix + `_LOGGER_LOG_LEVEL=debug or ` + config.EnvPrefix + `_DEFAULT_FORMAT=ed25519.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command, settings *config.CLISettings) error {
	if err := commands.InitTextCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize text commands: %w", err)
	}

	if err := commands.InitBase64Commands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize base64 commands: %w", err)
	}

	commands.InitGenPassCommands(rootCmd)

	return nil
}
