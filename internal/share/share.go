// Package share implements the Share entity: parsing a mnemonic into its
// structured header fields and payload, and serializing a Share back into
// a mnemonic, per the bit layout in internal/bitpack.
package share

import (
	"strconv"
	"strings"

	"github.com/mrz1836/slip39/internal/bitpack"
	"github.com/mrz1836/slip39/internal/mnemonic"
	"github.com/mrz1836/slip39/internal/rs1024"
	"github.com/mrz1836/slip39/internal/wordlist"
	"github.com/mrz1836/slip39/pkg/slip39err"
)

const (
	headerBits         = bitpack.HeaderBits
	checksumSymbols    = 3
	checksumBits       = bitpack.ChecksumBits
	overheadBits       = headerBits + checksumBits
	shortMnemonicWords = 20
	longMnemonicWords  = 33
)

// Share is one parsed mnemonic: the metadata header plus the share value
// it carries.
type Share struct {
	Identifier      uint16
	Exponent        byte
	GroupIndex      byte
	GroupThreshold  byte // real threshold, already +1'd from the encoded field
	GroupCount      byte // real count, already +1'd from the encoded field
	MemberIndex     byte
	MemberThreshold byte // real threshold, already +1'd
	Value           []byte
}

// Parse tokenizes a mnemonic string, verifies its checksum, and unpacks it
// into a Share.
func Parse(phrase string) (*Share, error) {
	words := strings.Fields(mnemonic.Normalize(phrase))

	if len(words) != shortMnemonicWords && len(words) != longMnemonicWords {
		return nil, slip39err.WithDetails(slip39err.ErrInsufficientLength, map[string]string{
			"word_count": strconv.Itoa(len(words)),
		})
	}

	symbols := make([]uint32, len(words))
	for i, w := range words {
		sym, ok := wordlist.ToSymbol(w)
		if !ok {
			return nil, unknownWordError(i, w, words)
		}
		symbols[i] = sym
	}

	if !rs1024.Verify(symbols) {
		return nil, slip39err.ErrInvalidChecksum
	}

	data := symbols[:len(symbols)-checksumSymbols]
	r := bitpack.NewReader(data)

	identifier := uint16(r.ReadBits(15))
	exponent := byte(r.ReadBits(5))
	groupIndex := byte(r.ReadBits(4))
	groupThreshold := byte(r.ReadBits(4)) + 1
	groupCount := byte(r.ReadBits(4)) + 1
	memberIndex := byte(r.ReadBits(4))
	memberThreshold := byte(r.ReadBits(4)) + 1

	payloadBits := r.Remaining()
	n := 16
	if len(words) == longMnemonicWords {
		n = 32
	}
	pad := payloadBits - n*8

	padValue := r.ReadBits(pad)
	if padValue != 0 {
		return nil, slip39err.ErrInvalidPadding
	}

	value := r.ReadBytes(n)

	return &Share{
		Identifier:      identifier,
		Exponent:        exponent,
		GroupIndex:      groupIndex,
		GroupThreshold:  groupThreshold,
		GroupCount:      groupCount,
		MemberIndex:     memberIndex,
		MemberThreshold: memberThreshold,
		Value:           value,
	}, nil
}

// String serializes the Share back into its mnemonic word sequence,
// computing the checksum last.
func (s *Share) String() string {
	w := bitpack.NewWriter()
	w.WriteBits(uint64(s.Identifier), 15)
	w.WriteBits(uint64(s.Exponent), 5)
	w.WriteBits(uint64(s.GroupIndex), 4)
	w.WriteBits(uint64(s.GroupThreshold-1), 4)
	w.WriteBits(uint64(s.GroupCount-1), 4)
	w.WriteBits(uint64(s.MemberIndex), 4)
	w.WriteBits(uint64(s.MemberThreshold-1), 4)

	totalWords := shortMnemonicWords
	if len(s.Value) == 32 {
		totalWords = longMnemonicWords
	}
	payloadBits := totalWords*bitpack.SymbolBits - overheadBits
	pad := payloadBits - len(s.Value)*8

	w.WriteBits(0, pad)
	w.WriteBytes(s.Value)

	data := w.Symbols()
	checksum := rs1024.Checksum(data)

	allSymbols := append(append([]uint32{}, data...), checksum[:]...)

	words := make([]string, len(allSymbols))
	for i, sym := range allSymbols {
		words[i] = wordlist.ToWord(sym)
	}
	return strings.Join(words, " ")
}

func unknownWordError(index int, word string, allWords []string) error {
	suggestion := wordlist.Suggest(word)
	details := map[string]string{
		"index":      strconv.Itoa(index),
		"word":       word,
		"word_count": strconv.Itoa(len(allWords)),
	}
	err := slip39err.WithDetails(slip39err.ErrUnknownWord, details)
	if suggestion != "" {
		err = slip39err.WithSuggestion(err, "did you mean \""+suggestion+"\"?")
	}
	return err
}
