package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/slip39/internal/config"
	"github.com/mrz1836/slip39/internal/output"
	"github.com/mrz1836/slip39/internal/shareset"
	"github.com/mrz1836/slip39/pkg/slip39err"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	generateSharesThreshold int
	generateSharesCount     int
	generateSharesExponent  int
	generateSharesMnemonic  string
	generateSharesYes       bool
	generateSharesQR        bool
	generateSharesGroups    string
	generateSharesGroupThr  int
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var generateSharesCmd = &cobra.Command{
	Use:   "generate-shares",
	Short: "Split a BIP-39 mnemonic into SLIP-39 shares",
	Long: `Encrypt the entropy behind a BIP-39 mnemonic and split it into SLIP-39
mnemonic shares.

With no --groups flag, this splits into a single group: any --threshold of
--shares mnemonics recovers the secret.

With --groups, this performs a full two-level split: --group-threshold of
the listed groups must each independently reach their own member threshold.
--groups takes a comma-separated list of threshold:count pairs, one per
group, e.g. --groups 2:3,3:5 for a 2-of-3 group and a 3-of-5 group.

If --mnemonic is not given, the BIP-39 mnemonic is read from stdin.

Example:
  slip39 generate-shares --threshold 2 --shares 5
  slip39 generate-shares --group-threshold 2 --groups 2:3,3:5,1:1`,
	RunE: runGenerateShares,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(generateSharesCmd)
	generateSharesCmd.Flags().IntVarP(&generateSharesThreshold, "threshold", "k", 2, "number of shares required to recover (ignored if --groups is set)")
	generateSharesCmd.Flags().IntVarP(&generateSharesCount, "shares", "n", 3, "total number of shares to generate (ignored if --groups is set)")
	generateSharesCmd.Flags().IntVarP(&generateSharesExponent, "iteration-exponent", "e", 0, "PBKDF2 iteration exponent")
	generateSharesCmd.Flags().StringVarP(&generateSharesMnemonic, "mnemonic", "m", "", "BIP-39 mnemonic to split (prompted if omitted)")
	generateSharesCmd.Flags().BoolVarP(&generateSharesYes, "yes", "y", false, "skip the confirmation prompt before printing shares")
	generateSharesCmd.Flags().BoolVar(&generateSharesQR, "qr", false, "also render each share mnemonic as a terminal QR code, for paper backup")
	generateSharesCmd.Flags().StringVar(&generateSharesGroups, "groups", "", "comma-separated member threshold:count pairs, one per group (e.g. 2:3,3:5)")
	generateSharesCmd.Flags().IntVar(&generateSharesGroupThr, "group-threshold", 0, "number of groups required to recover; defaults to sharing.group_threshold")
}

// parseGroupSpecs parses a --groups flag value ("2:3,3:5") into GroupSpecs.
func parseGroupSpecs(raw string) ([]shareset.GroupSpec, error) {
	parts := strings.Split(raw, ",")
	specs := make([]shareset.GroupSpec, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		thresholdStr, countStr, ok := strings.Cut(p, ":")
		if !ok {
			return nil, slip39err.WithDetails(slip39err.ErrInvalidInput, map[string]string{"groups": p})
		}
		threshold, err := strconv.Atoi(strings.TrimSpace(thresholdStr))
		if err != nil {
			return nil, slip39err.WithDetails(slip39err.ErrInvalidInput, map[string]string{"groups": p})
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, slip39err.WithDetails(slip39err.ErrInvalidInput, map[string]string{"groups": p})
		}
		specs = append(specs, shareset.GroupSpec{Threshold: threshold, Count: count})
	}
	return specs, nil
}

func runGenerateShares(cmd *cobra.Command, _ []string) error {
	cmdCtx := GetCmdContext(cmd)

	phrase := generateSharesMnemonic
	if phrase == "" {
		var err error
		phrase, err = promptBIP39Mnemonic()
		if err != nil {
			return err
		}
	}

	passphrase, err := promptPassphrase()
	if err != nil {
		return err
	}

	exponent := generateSharesExponent
	if !cmd.Flags().Changed("iteration-exponent") && cmdCtx != nil {
		exponent = cmdCtx.Cfg.GetDefaultIterationExponent()
	}
	if exponent < 0 || exponent > 31 {
		return slip39err.WithDetails(slip39err.ErrInvalidInput, map[string]string{
			"iteration_exponent": fmt.Sprintf("%d", exponent),
		})
	}

	if !generateSharesYes && !promptConfirmation("These shares will be printed to this terminal. Continue?") {
		return slip39err.WithSuggestion(slip39err.ErrGeneral, "aborted by user")
	}

	w := cmd.OutOrStdout()
	qrCfg := output.DefaultQRConfig()

	if generateSharesGroups == "" {
		phrases, err := shareset.GenerateShares(phrase, generateSharesThreshold, generateSharesCount, []byte(passphrase), byte(exponent))
		if err != nil {
			return err
		}
		if err := printSharePhrases(w, phrases, qrCfg); err != nil {
			return err
		}
		output.Successf("%d shares generated, threshold %d", len(phrases), generateSharesThreshold)
		return nil
	}

	groupSpecs, err := parseGroupSpecs(generateSharesGroups)
	if err != nil {
		return err
	}

	groupThreshold := generateSharesGroupThr
	if !cmd.Flags().Changed("group-threshold") && cmdCtx != nil {
		if c, ok := cmdCtx.Cfg.(*config.Config); ok {
			groupThreshold = c.Sharing.GroupThreshold
		}
	}
	if groupThreshold < 1 {
		groupThreshold = len(groupSpecs)
	}

	groups, err := shareset.GenerateGroupShares(phrase, groupThreshold, groupSpecs, []byte(passphrase), byte(exponent))
	if err != nil {
		return err
	}

	total := 0
	for gi, phrases := range groups {
		outln(w, fmt.Sprintf("Group %d of %d:", gi+1, len(groups)))
		if err := printSharePhrases(w, phrases, qrCfg); err != nil {
			return err
		}
		total += len(phrases)
	}

	output.Successf("%d shares generated across %d groups, group threshold %d", total, len(groups), groupThreshold)

	return nil
}

// printSharePhrases writes each share mnemonic (and optionally its QR code)
// to w.
func printSharePhrases(w io.Writer, phrases []string, qrCfg output.QRConfig) error {
	for i, p := range phrases {
		out(w, "Share %d of %d:\n", i+1, len(phrases))
		outln(w, p)
		if generateSharesQR {
			if err := output.RenderQR(w, p, qrCfg); err != nil {
				return err
			}
		}
		outln(w)
	}
	return nil
}
