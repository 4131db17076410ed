// Package crypto provides the hash functions and secp256k1 key, signing and
// verification primitives of the wallet core.
package crypto

import (
	"crypto/sha256"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the Ethereum Keccak-256 hash of data. This is the
// original Keccak padding, not FIPS-202 SHA3-256.
func Keccak256(data ...[]byte) types.Hash {
	var h types.Hash
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// Keccak256Bytes is Keccak256 returning a fresh slice.
func Keccak256Bytes(data ...[]byte) []byte {
	h := Keccak256(data...)
	return h[:]
}

// SHA256 computes a single SHA-256 hash of data.
func SHA256(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// DoubleSHA256 computes SHA256(SHA256(data)), the Bitcoin checksum hash.
func DoubleSHA256(data []byte) types.Hash {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Hash160 computes RIPEMD160(SHA256(data)).
// Used to compress a public key into a Bitcoin address payload.
func Hash160(data []byte) types.Hash160 {
	first := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(first[:])
	var h types.Hash160
	r.Sum(h[:0])
	return h
}
