package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"amsign/internal/app"
)

var (
	home       string
	seedText   string
	passphrase string
	verbose    bool
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "amsign",
		Short: "Sign and broadcast Amadeus ledger transactions without exposing the key",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".amsign")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			viper.SetConfigName("config")
			viper.AddConfigPath(home)
			if err := viper.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return err
				}
			}

			appCtx = app.New(app.Config{
				Home:     home,
				Endpoint: viper.GetString("endpoint"),
				Network:  viper.GetString("network"),
				Timeout:  viper.GetDuration("timeout"),
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.amsign)")
	root.PersistentFlags().StringVar(&seedText, "seed", "", "base58 signing seed (bypasses the keystore; prefer AMSIGN_SEED)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "keystore passphrase")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("endpoint", app.DefaultEndpoint, "ledger JSON-RPC endpoint URL")
	root.PersistentFlags().String("network", app.DefaultNetwork, "network tag used on submit")
	root.PersistentFlags().Duration("timeout", app.DefaultTimeout, "deadline for each remote call")

	viper.SetEnvPrefix("AMSIGN")
	viper.AutomaticEnv()
	for _, name := range []string{"endpoint", "network", "timeout"} {
		if err := viper.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			return err
		}
	}

	root.AddCommand(
		keygenCmd(), initCmd(), addressCmd(),
		callCmd(), verifyCmd(),
		balanceCmd(), statsCmd(), txCmd(), validatorsCmd(),
	)
	return root.Execute()
}
