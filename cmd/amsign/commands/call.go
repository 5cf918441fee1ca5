package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"amsign/internal/domain"
	"amsign/internal/util/memzero"
)

// call <contract> <function> <args-json>: run the full signing pipeline.
func callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <contract> <function> <args-json>",
		Short: "Build, sign and broadcast a contract call",
		Long: `Asks the ledger service to build an unsigned transaction for the call,
signs the returned payload locally, and submits the signed transaction.
The seed never leaves this process.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, function, rawArgs := args[0], args[1], args[2]

			// Arguments are forwarded opaquely, but must at least be a JSON array.
			var list []json.RawMessage
			if err := json.Unmarshal([]byte(rawArgs), &list); err != nil {
				return domain.Usagef("args must be a JSON array: %v", err)
			}

			seed, err := resolveSeed()
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)

			ctx, cancel := context.WithTimeout(cmd.Context(), appCtx.Config.Timeout)
			defer cancel()

			result, err := appCtx.Submit.Submit(ctx, seed, domain.CallRequest{
				Contract: contract,
				Function: function,
				Args:     json.RawMessage(rawArgs),
			}, appCtx.Config.Network)
			if err != nil {
				return err
			}

			fmt.Println(string(result))
			return nil
		},
	}
}
