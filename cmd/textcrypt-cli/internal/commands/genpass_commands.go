package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MGTheTrain/textcrypt/internal/pkg/genpass"
)

// GenPassCmd prints a random password built from the selected character classes
func GenPassCmd(cmd *cobra.Command, _ []string) error {
	length, err := cmd.Flags().GetUint8("length")
	if err != nil {
		return fmt.Errorf("invalid length flag: %w", err)
	}

	var opts genpass.Options
	for name, target := range map[string]*bool{
		"upper":  &opts.Upper,
		"lower":  &opts.Lower,
		"number": &opts.Number,
		"symbol": &opts.Symbol,
	} {
		if *target, err = cmd.Flags().GetBool(name); err != nil {
			return fmt.Errorf("invalid %s flag: %w", name, err)
		}
	}

	pass, err := genpass.Generate(int(length), opts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), pass)
	return err
}

// InitGenPassCommands registers the genpass command
func InitGenPassCommands(rootCmd *cobra.Command) {
	var genPassCmd = &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE:  GenPassCmd,
	}
	genPassCmd.Flags().Uint8P("length", "l", 16, "Password length")
	genPassCmd.Flags().Bool("upper", true, "Include uppercase letters")
	genPassCmd.Flags().Bool("lower", true, "Include lowercase letters")
	genPassCmd.Flags().Bool("number", true, "Include digits")
	genPassCmd.Flags().Bool("symbol", true, "Include symbols")
	rootCmd.AddCommand(genPassCmd)
}
