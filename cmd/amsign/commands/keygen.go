package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"amsign/internal/domain"
	"amsign/internal/util/memzero"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a fresh signing seed and print it with its address",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, addr, err := appCtx.Wallet.Generate()
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)

			fmt.Printf("Seed:    %s\n", domain.EncodeSeed(seed))
			fmt.Printf("Address: %s\n", addr)
			fmt.Println("Store the seed somewhere safe; it is the only copy.")
			return nil
		},
	}
}
