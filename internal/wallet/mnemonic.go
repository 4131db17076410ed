// Package wallet implements BIP-39 mnemonics and BIP-32/BIP-44 HD key
// derivation.
package wallet

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits is the default entropy size (24 words).
const MnemonicEntropyBits = 256

// Entropy bounds shared by GenerateMnemonic and MnemonicFromEntropy.
const (
	MinEntropyBits = 128
	MaxEntropyBits = 256
)

// ValidStrength reports whether bits is a multiple of 32 in [128, 256].
func ValidStrength(bits int) bool {
	return bits >= MinEntropyBits && bits <= MaxEntropyBits && bits%32 == 0
}

// WordCount returns the number of mnemonic words for an entropy strength:
// (bits + bits/32) / 11.
func WordCount(bits int) int {
	return (bits + bits/32) / 11
}

// GenerateMnemonic creates a BIP-39 mnemonic from strengthBits of entropy
// read from crypto/rand. strengthBits must be a multiple of 32 in [128, 256].
func GenerateMnemonic(strengthBits int) (string, error) {
	if !ValidStrength(strengthBits) {
		return "", fmt.Errorf("%w: strength must be a multiple of 32 in [%d, %d], got %d",
			crypto.ErrInvalidParameter, MinEntropyBits, MaxEntropyBits, strengthBits)
	}
	entropy, err := bip39.NewEntropy(strengthBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	defer zero(entropy)
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// MnemonicFromEntropy deterministically maps entropy to a mnemonic. The
// entropy length must be a multiple of 4 bytes in [16, 32].
func MnemonicFromEntropy(entropy []byte) (string, error) {
	if !ValidStrength(len(entropy) * 8) {
		return "", fmt.Errorf("%w: entropy must be a multiple of 4 bytes in [%d, %d], got %d",
			crypto.ErrInvalidParameter, MinEntropyBits/8, MaxEntropyBits/8, len(entropy))
	}
	buf := append([]byte(nil), entropy...)
	defer zero(buf)
	mnemonic, err := bip39.NewMnemonic(buf)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
//
// Words must be separated by exactly one space with no leading or trailing
// whitespace. The seed is derived from the raw string, so any other spacing
// would name a different wallet than the canonical phrase.
func ValidateMnemonic(mnemonic string) bool {
	if mnemonic == "" || mnemonic != strings.Join(strings.Fields(mnemonic), " ") {
		return false
	}
	return bip39.IsMnemonicValid(mnemonic)
}

// EntropyFromMnemonic recovers the entropy bytes of a valid mnemonic.
func EntropyFromMnemonic(mnemonic string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrInvalidInput, err)
	}
	return entropy, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
