package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"amsign/internal/bls"
	"amsign/internal/domain"
)

// verify <address> <payload-hex> <signature>: offline signature check.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <address> <payload-hex> <signature>",
		Short: "Check a signature against an address and signing payload",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := domain.ParsePublicKey(args[0])
			if err != nil {
				return err
			}
			payload, err := hex.DecodeString(args[1])
			if err != nil {
				return domain.Decodef("payload is not valid hex")
			}
			sig, err := domain.ParseSignature(args[2])
			if err != nil {
				return err
			}

			ok, err := bls.Verify(pub, payload, sig)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("signature is NOT valid for this address and payload")
			}
			fmt.Println("signature valid")
			return nil
		},
	}
}
