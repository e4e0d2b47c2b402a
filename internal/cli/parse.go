package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/slip39/internal/output"
	"github.com/mrz1836/slip39/internal/share"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var parseCmd = &cobra.Command{
	Use:   "parse <mnemonic words...>",
	Short: "Decode a SLIP-39 share mnemonic into its header fields",
	Long: `Parse a single SLIP-39 share mnemonic and print its identifier,
iteration exponent, group/member layout and share value length, without
attempting any recovery.

Example:
  slip39 parse duckling enlarge academic academic agency result length solution fridge kidney coal piece deal husband erode duke ajar critical decision keyboard`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(parseCmd)
}

type parsedShareJSON struct {
	Identifier      uint16 `json:"identifier"`
	Exponent        byte   `json:"iteration_exponent"`
	GroupIndex      byte   `json:"group_index"`
	GroupThreshold  byte   `json:"group_threshold"`
	GroupCount      byte   `json:"group_count"`
	MemberIndex     byte   `json:"member_index"`
	MemberThreshold byte   `json:"member_threshold"`
	ValueLength     int    `json:"value_length_bytes"`
}

func runParse(cmd *cobra.Command, args []string) error {
	phrase := strings.Join(args, " ")

	s, err := share.Parse(phrase)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if formatter != nil && formatter.Format() == output.FormatJSON {
		return writeJSON(w, parsedShareJSON{
			Identifier:      s.Identifier,
			Exponent:        s.Exponent,
			GroupIndex:      s.GroupIndex,
			GroupThreshold:  s.GroupThreshold,
			GroupCount:      s.GroupCount,
			MemberIndex:     s.MemberIndex,
			MemberThreshold: s.MemberThreshold,
			ValueLength:     len(s.Value),
		})
	}

	t := output.NewTable("Field", "Value")
	t.AddRow("Identifier", fmt.Sprintf("%d", s.Identifier))
	t.AddRow("Iteration exponent", fmt.Sprintf("%d", s.Exponent))
	t.AddRow("Group index", fmt.Sprintf("%d", s.GroupIndex))
	t.AddRow("Group threshold", fmt.Sprintf("%d", s.GroupThreshold))
	t.AddRow("Group count", fmt.Sprintf("%d", s.GroupCount))
	t.AddRow("Member index", fmt.Sprintf("%d", s.MemberIndex))
	t.AddRow("Member threshold", fmt.Sprintf("%d", s.MemberThreshold))
	t.AddRow("Value length (bytes)", fmt.Sprintf("%d", len(s.Value)))

	return t.Render(w)
}
