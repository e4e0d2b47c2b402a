package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/mnemonic"
	"github.com/mrz1836/slip39/internal/shareset"
)

func TestRunParse_Text(t *testing.T) {
	phrase, err := mnemonic.Generate(12)
	require.NoError(t, err)

	phrases, err := shareset.GenerateShares(phrase, 1, 1, nil, 0)
	require.NoError(t, err)
	require.Len(t, phrases, 1)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err = runParse(cmd, []string{phrases[0]})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Identifier")
	assert.Contains(t, buf.String(), "Group threshold")
	assert.Contains(t, buf.String(), "Value length")
}

func TestRunParse_InvalidMnemonic(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runParse(cmd, []string{"not", "a", "valid", "share"})
	assert.Error(t, err)
}
