package cli

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/mrz1836/slip39/internal/output"
	"github.com/mrz1836/slip39/internal/shareset"
	"github.com/mrz1836/slip39/pkg/slip39err"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	recoverMnemonicDerive           bool
	recoverMnemonicDerivePassphrase string
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var recoverMnemonicCmd = &cobra.Command{
	Use:   "recover-mnemonic [share...]",
	Short: "Recover a BIP-39 mnemonic from SLIP-39 shares",
	Long: `Parse the given SLIP-39 share mnemonics, recover the encrypted master
secret they encode, and decrypt it back to the original BIP-39 mnemonic.

Each share argument is a full share mnemonic (quote it as one string).
If no arguments are given, shares are read one per line from stdin until
a blank line.

With --derive, also print the BIP-32 root extended private key for the
recovered mnemonic, the way a wallet CLI would. Nothing is written to
disk; the key is only printed to the terminal.

Example:
  slip39 recover-mnemonic "duckling enlarge academic ..." "shadow pistol academic ..."`,
	RunE: runRecoverMnemonic,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(recoverMnemonicCmd)
	recoverMnemonicCmd.Flags().BoolVar(&recoverMnemonicDerive, "derive", false, "also print the BIP-32 root extended private key")
	recoverMnemonicCmd.Flags().StringVar(&recoverMnemonicDerivePassphrase, "bip39-passphrase", "", "BIP-39 passphrase used when deriving the BIP-32 root key (default: empty)")
}

func runRecoverMnemonic(cmd *cobra.Command, args []string) error {
	shares := args
	if len(shares) == 0 {
		var err error
		shares, err = readSharesFromStdin()
		if err != nil {
			return err
		}
	}

	if len(shares) == 0 {
		return slip39err.WithSuggestion(slip39err.ErrInvalidInput, "no share mnemonics provided")
	}

	passphrase, err := promptPassphrase()
	if err != nil {
		return err
	}

	phrase, err := shareset.RecoverMnemonic(shares, []byte(passphrase))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	outln(w, phrase)

	if recoverMnemonicDerive {
		output.Info("Deriving BIP-32 root key...")
		rootKey, deriveErr := deriveBIP32RootKey(phrase, recoverMnemonicDerivePassphrase)
		if deriveErr != nil {
			return deriveErr
		}
		out(w, "BIP-32 root key: %s\n", rootKey)
	}

	return nil
}

// deriveBIP32RootKey derives the BIP-32 root extended private key for a
// BIP-39 mnemonic, the same way a wallet CLI would when offering to show
// the master key behind a recovered seed.
func deriveBIP32RootKey(mnemonicPhrase, bip39Passphrase string) (string, error) {
	seed := bip39.NewSeed(mnemonicPhrase, bip39Passphrase)
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return "", slip39err.Wrap(err, "deriving BIP-32 root key")
	}
	return key.B58Serialize(), nil
}

// readSharesFromStdin reads one share mnemonic per line until a blank line
// or EOF.
func readSharesFromStdin() ([]string, error) {
	outln(os.Stderr, "Enter share mnemonics, one per line, then a blank line:")

	var shares []string
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1<<16)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		shares = append(shares, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return shares, nil
}
