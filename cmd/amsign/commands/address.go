package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"amsign/internal/util/memzero"
)

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the signer address for the configured seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := resolveSeed()
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)

			fmt.Println(appCtx.Wallet.AddressOf(seed))
			return nil
		},
	}
}
