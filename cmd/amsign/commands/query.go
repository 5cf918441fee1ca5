package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// The query commands call the ledger service's read-only tools and print the
// result JSON verbatim.

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Query the balances of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return appCtx.Ledger.AccountBalance(ctx, args[0])
			})
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Query current chain statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return appCtx.Ledger.ChainStats(ctx)
			})
		},
	}
}

func txCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tx <hash>",
		Short: "Look up a transaction by hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return appCtx.Ledger.Transaction(ctx, args[0])
			})
		},
	}
}

func validatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validators",
		Short: "List the current validator set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context) (json.RawMessage, error) {
				return appCtx.Ledger.Validators(ctx)
			})
		},
	}
}

func runQuery(cmd *cobra.Command, q func(context.Context) (json.RawMessage, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), appCtx.Config.Timeout)
	defer cancel()

	result, err := q(ctx)
	if err != nil {
		return err
	}
	fmt.Println(string(result))
	return nil
}
