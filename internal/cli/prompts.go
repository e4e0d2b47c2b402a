package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/mrz1836/slip39/internal/mnemonic"
	"github.com/mrz1836/slip39/internal/secure"
	"github.com/mrz1836/slip39/pkg/slip39err"
)

// promptPassword prompts for a password with hidden input.
// The caller is responsible for zeroing the returned bytes after use.
func promptPassword(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	password, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return password, nil
}

// promptPassphrase prompts for the SLIP-39 passphrase used to encrypt or
// decrypt the master secret. An empty passphrase is valid.
// The caller is responsible for zeroing the returned string's backing data if needed.
func promptPassphrase() (string, error) {
	outln(os.Stderr, "\nSLIP-39 passphrase (leave empty for none):")
	outln(os.Stderr, "WARNING: if you forget this passphrase, the shares alone cannot recover your secret!")

	passphrase, err := promptPassword("Enter passphrase: ")
	if err != nil {
		return "", err
	}

	if len(passphrase) == 0 {
		return "", nil
	}

	confirm, err := promptPassword("Confirm passphrase: ")
	if err != nil {
		secure.ZeroBytes(passphrase)
		return "", err
	}
	defer secure.ZeroBytes(confirm)

	if string(passphrase) != string(confirm) {
		secure.ZeroBytes(passphrase)
		return "", slip39err.WithSuggestion(
			slip39err.ErrInvalidInput,
			"passphrases do not match",
		)
	}

	result := string(passphrase)
	secure.ZeroBytes(passphrase)
	return result, nil
}

// promptConfirmation asks the user to confirm a destructive or irreversible action.
func promptConfirmation(question string) bool {
	out(os.Stderr, "\n%s [y/N]: ", question)

	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// promptBIP39Mnemonic prompts for the BIP-39 mnemonic to be split into shares.
func promptBIP39Mnemonic() (string, error) {
	outln(os.Stderr, "Enter your BIP-39 mnemonic (all words on one line):")

	phrase, err := promptMnemonicWords()
	if err != nil {
		return "", err
	}

	if err := mnemonic.Validate(phrase); err != nil {
		return "", err
	}

	return phrase, nil
}

// promptMnemonicWords reads whitespace-separated words from stdin until a
// blank line or EOF.
func promptMnemonicWords() (string, error) {
	var words []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		words = append(words, strings.Fields(line)...)
	}

	if len(words) == 0 {
		return "", slip39err.WithSuggestion(slip39err.ErrInvalidInput, "no input provided")
	}

	return strings.Join(words, " "), nil
}
