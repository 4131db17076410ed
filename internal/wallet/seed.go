package wallet

import (
	"github.com/tyler-smith/go-bip39"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// SeedFromMnemonic derives a 512-bit seed from a mnemonic and optional
// passphrase using PBKDF2-HMAC-SHA512 (2048 rounds, salt "mnemonic"+passphrase)
// as specified in BIP-39.
//
// The checksum is not checked: callers that accept non-standard word
// sequences rely on this. Use ValidateMnemonic first when that matters.
//
// Neither input is NFKD-normalised; both are hashed as their raw UTF-8
// bytes. ASCII input matches every BIP-39 wallet. A non-ASCII passphrase
// must already be in NFKD form to match wallets that normalise.
func SeedFromMnemonic(mnemonic, passphrase string) []byte {
	return bip39.NewSeed(mnemonic, passphrase)
}
