// Package mnemonic is the boundary between this library's share-splitting
// core and BIP-39, which is treated as an external collaborator: callers
// pass in or receive a BIP-39 mnemonic, and this package's only job is
// converting it to and from the raw entropy bytes the Feistel/Shamir layers
// operate on.
package mnemonic

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tyler-smith/go-bip39"
)

var (
	// ErrInvalidWordCount indicates the mnemonic must be 12 or 24 words.
	ErrInvalidWordCount = errors.New("mnemonic: word count must be 12 or 24")

	// ErrInvalidMnemonic indicates the mnemonic is not valid BIP-39.
	ErrInvalidMnemonic = errors.New("mnemonic: invalid BIP-39 phrase")

	whitespaceRegex   = regexp.MustCompile(`\s+`)
	numberedListRegex = regexp.MustCompile(`(?m)(?:^|\s)\s*\d+[\.\)\:]\s*`)
	bulletListRegex   = regexp.MustCompile(`(?m)^\s*[-*•]\s*`)
)

// Generate creates a new BIP-39 mnemonic phrase. wordCount must be 12
// (128-bit entropy) or 24 (256-bit entropy) to match the two master secret
// sizes the core splitter supports.
func Generate(wordCount int) (string, error) {
	bitSize, err := bitSizeFor(wordCount)
	if err != nil {
		return "", err
	}

	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func bitSizeFor(wordCount int) (int, error) {
	switch wordCount {
	case 12:
		return 128, nil
	case 24:
		return 256, nil
	default:
		return 0, ErrInvalidWordCount
	}
}

// ToEntropy validates and converts a BIP-39 mnemonic to its underlying
// entropy bytes — the raw master secret the Feistel layer encrypts.
func ToEntropy(phrase string) ([]byte, error) {
	normalized := Normalize(phrase)

	words := strings.Fields(normalized)
	if len(words) != 12 && len(words) != 24 {
		return nil, ErrInvalidMnemonic
	}

	entropy, err := bip39.MnemonicToByteArray(normalized, true)
	if err != nil {
		return nil, ErrInvalidMnemonic
	}
	return entropy, nil
}

// FromEntropy converts raw entropy (16 or 32 bytes) back into its BIP-39
// mnemonic representation.
func FromEntropy(entropy []byte) (string, error) {
	return bip39.NewMnemonic(entropy)
}

// Validate checks that phrase is word-count-correct, every word is in the
// BIP-39 English list, and the embedded checksum matches.
func Validate(phrase string) error {
	if phrase == "" {
		return ErrInvalidMnemonic
	}
	_, err := ToEntropy(phrase)
	return err
}

// Normalize lowercases, strips list/bullet prefixes and commas, and
// collapses whitespace so pasted mnemonics from varied sources compare
// equal.
func Normalize(input string) string {
	input = strings.ToLower(input)
	input = numberedListRegex.ReplaceAllString(input, " ")
	input = bulletListRegex.ReplaceAllString(input, " ")
	input = strings.ReplaceAll(input, ",", " ")
	input = whitespaceRegex.ReplaceAllString(input, " ")
	return strings.TrimSpace(input)
}

// IsValidWord reports whether word is a BIP-39 English word.
func IsValidWord(word string) bool {
	word = strings.ToLower(word)
	for _, w := range bip39.GetWordList() {
		if w == word {
			return true
		}
	}
	return false
}

// MaxTypoDistance is the maximum Levenshtein distance considered a usable
// suggestion.
const MaxTypoDistance = 2

// TypoInfo describes a misspelled mnemonic word and its best correction.
type TypoInfo struct {
	Index      int
	Word       string
	Suggestion string
	Distance   int
}

// SuggestWord finds the closest BIP-39 word to input by Levenshtein
// distance, or "" if nothing is close enough.
func SuggestWord(input string) string {
	input = strings.ToLower(input)
	wordList := bip39.GetWordList()

	minDist := math.MaxInt
	var suggestion string

	for _, word := range wordList {
		dist := levenshtein.ComputeDistance(input, word)
		if dist == 0 {
			return word
		}
		if dist < minDist {
			minDist = dist
			suggestion = word
		}
	}

	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}

// DetectTypos scans phrase for words absent from the BIP-39 list and
// proposes corrections.
func DetectTypos(phrase string) []TypoInfo {
	if phrase == "" {
		return nil
	}

	words := strings.Fields(Normalize(phrase))
	var typos []TypoInfo

	for i, word := range words {
		if IsValidWord(word) {
			continue
		}
		suggestion := SuggestWord(word)
		distance := 0
		if suggestion != "" {
			distance = levenshtein.ComputeDistance(word, suggestion)
		}
		typos = append(typos, TypoInfo{
			Index:      i,
			Word:       word,
			Suggestion: suggestion,
			Distance:   distance,
		})
	}

	return typos
}
