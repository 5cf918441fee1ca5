package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Import a seed into the encrypted keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := seedText
			if text == "" {
				var err error
				if text, err = promptSecret("Seed (base58): "); err != nil {
					return err
				}
			}
			pass, err := resolvePassphrase("Choose a keystore passphrase: ")
			if err != nil {
				return err
			}

			addr, err := appCtx.Wallet.Import(pass, text)
			if err != nil {
				return err
			}
			fmt.Printf("Keystore created.\nAddress: %s\n", addr)
			return nil
		},
	}
}
