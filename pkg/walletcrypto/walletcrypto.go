package walletcrypto

import (
	"github.com/Klingon-tech/klingnet-walletcore/internal/wallet"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/base58"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
)

// Failure classes, re-exported for errors.Is checks.
var (
	ErrInvalidKey       = crypto.ErrInvalidKey
	ErrInvalidInput     = crypto.ErrInvalidInput
	ErrInvalidParameter = crypto.ErrInvalidParameter
	ErrDecode           = crypto.ErrDecode
)

// AnySize disables the length constraint of Base58Decode.
const AnySize = base58.AnySize

// clone returns a private copy of b so that nothing below the facade can
// alias caller memory.
func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GetEthereumPublicKey returns the 64-byte uncompressed X‖Y public key of a
// 32-byte private key.
func GetEthereumPublicKey(privateKey []byte) ([]byte, error) {
	k := clone(privateKey)
	defer wipe(k)
	return crypto.EthereumPublicKey(k)
}

// GetBitcoinPublicKey returns the 33-byte compressed public key of a 32-byte
// private key.
func GetBitcoinPublicKey(privateKey []byte) ([]byte, error) {
	k := clone(privateKey)
	defer wipe(k)
	return crypto.BitcoinPublicKey(k)
}

// Sign signs a 32-byte hash and returns the 65-byte R‖S‖V signature.
// Signing is deterministic (RFC 6979) and S is low-half canonical.
func Sign(hash, privateKey []byte) ([]byte, error) {
	k := clone(privateKey)
	defer wipe(k)
	return crypto.Sign(clone(hash), k)
}

// Verify reports whether signature is valid for the 32-byte message hash
// and publicKey. It returns false, never an error, for malformed input.
func Verify(signature, message, publicKey []byte) bool {
	return crypto.Verify(clone(signature), clone(message), clone(publicKey))
}

// RecoverPublicKey returns the 64-byte public key that produced a 65-byte
// signature over hash.
func RecoverPublicKey(hash, signature []byte) ([]byte, error) {
	return crypto.RecoverPublicKey(clone(hash), clone(signature))
}

// Hash computes the Ethereum Keccak-256 hash of data.
func Hash(data []byte) []byte {
	h := crypto.Keccak256(data)
	return h.Bytes()
}

// SHA256SHA256 computes SHA256(SHA256(data)).
func SHA256SHA256(data []byte) []byte {
	h := crypto.DoubleSHA256(data)
	return h.Bytes()
}

// SHA256RIPEMD160 computes RIPEMD160(SHA256(data)).
func SHA256RIPEMD160(data []byte) []byte {
	h := crypto.Hash160(data)
	return h.Bytes()
}

// Namehash computes the EIP-137 ENS node hash of a dot-separated name.
func Namehash(name string) []byte {
	h := crypto.Namehash(name)
	return h.Bytes()
}

// Labelhash computes the Keccak-256 hash of a single ENS label.
func Labelhash(label string) []byte {
	h := crypto.Labelhash(label)
	return h.Bytes()
}

// Base58Encode encodes data as Base58 text.
func Base58Encode(data []byte) string {
	return base58.Encode(data)
}

// Base58Decode decodes Base58 text. Unless expectedSize is AnySize, the
// decoded length must equal expectedSize.
func Base58Decode(text string, expectedSize int) ([]byte, error) {
	return base58.DecodeSize(text, expectedSize)
}

// GenerateMnemonic returns a random mnemonic for strength bits of entropy
// (128, 160, 192, 224 or 256).
func GenerateMnemonic(strength int) (string, error) {
	return wallet.GenerateMnemonic(strength)
}

// GenerateMnemonicFromSeed deterministically maps 16 to 32 bytes (a
// multiple of 4) of entropy to a mnemonic.
func GenerateMnemonicFromSeed(seed []byte) (string, error) {
	s := clone(seed)
	defer wipe(s)
	return wallet.MnemonicFromEntropy(s)
}

// DeriveSeedFromMnemonic stretches a mnemonic and passphrase into a 64-byte
// wallet seed. The mnemonic checksum is not checked.
func DeriveSeedFromMnemonic(mnemonic, passphrase string) []byte {
	return wallet.SeedFromMnemonic(mnemonic, passphrase)
}

// IsValidMnemonic reports whether mnemonic consists of wordlist words with
// a matching checksum.
func IsValidMnemonic(mnemonic string) bool {
	return wallet.ValidateMnemonic(mnemonic)
}
