package commands

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"amsign/internal/domain"
)

// resolveSeed returns the raw seed for signing commands: --seed / AMSIGN_SEED
// first, otherwise the encrypted keystore. The caller owns the bytes and must
// wipe them.
func resolveSeed() ([]byte, error) {
	text := seedText
	if text == "" {
		text = viper.GetString("seed")
	}
	if text != "" {
		return domain.DecodeSeed(text)
	}

	if !appCtx.Store.HasSeed() {
		return nil, domain.Usagef("no seed available: pass --seed or run 'amsign init' first")
	}
	pass, err := resolvePassphrase("Keystore passphrase: ")
	if err != nil {
		return nil, err
	}
	return appCtx.Wallet.Load(pass)
}

// resolvePassphrase returns -p if given, otherwise prompts on the terminal
// without echo.
func resolvePassphrase(prompt string) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	return promptSecret(prompt)
}

// promptSecret reads one secret line from the terminal without echo.
func promptSecret(prompt string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", domain.Usagef("input required but stdin is not a terminal (use -p / --seed)")
	}
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
