package wallet

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSeedFromMnemonic_Vectors(t *testing.T) {
	for _, v := range bip39Vectors {
		t.Run(v.entropy, func(t *testing.T) {
			seed := SeedFromMnemonic(v.mnemonic, "TREZOR")
			if len(seed) != SeedSize {
				t.Fatalf("seed length = %d, want %d", len(seed), SeedSize)
			}
			if hex.EncodeToString(seed) != v.seed {
				t.Errorf("seed = %x, want %s", seed, v.seed)
			}
		})
	}
}

func TestSeedFromMnemonic_PassphraseChanges(t *testing.T) {
	mnemonic := bip39Vectors[0].mnemonic

	seed1 := SeedFromMnemonic(mnemonic, "")
	seed2 := SeedFromMnemonic(mnemonic, "my passphrase")

	if bytes.Equal(seed1, seed2) {
		t.Error("different passphrases should produce different seeds")
	}
}

func TestSeedFromMnemonic_Deterministic(t *testing.T) {
	mnemonic := bip39Vectors[0].mnemonic

	seed1 := SeedFromMnemonic(mnemonic, "test")
	seed2 := SeedFromMnemonic(mnemonic, "test")

	if !bytes.Equal(seed1, seed2) {
		t.Error("same mnemonic + passphrase should produce same seed")
	}
}

func TestSeedFromMnemonic_NonStandardWords(t *testing.T) {
	// Checksum is not enforced; any text stretches to a full seed.
	seed := SeedFromMnemonic("not valid words here", "")
	if len(seed) != SeedSize {
		t.Errorf("seed length = %d, want %d", len(seed), SeedSize)
	}

	empty := SeedFromMnemonic("", "")
	if len(empty) != SeedSize {
		t.Errorf("empty mnemonic seed length = %d, want %d", len(empty), SeedSize)
	}
	if bytes.Equal(seed, empty) {
		t.Error("different mnemonics should produce different seeds")
	}
}

func TestSeedFromMnemonic_PassphraseNotNormalised(t *testing.T) {
	m := bip39Vectors[0].mnemonic
	composed := SeedFromMnemonic(m, "caf\u00e9")    // NFC
	decomposed := SeedFromMnemonic(m, "cafe\u0301") // NFKD
	if bytes.Equal(composed, decomposed) {
		t.Fatal("NFC and NFKD passphrases gave the same seed; input is being normalised")
	}
	if !bytes.Equal(decomposed, SeedFromMnemonic(m, "cafe\u0301")) {
		t.Fatal("seed derivation is not deterministic")
	}
}
