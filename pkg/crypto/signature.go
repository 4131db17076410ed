package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Signature layout.
const (
	HashSize = 32

	// SignatureSize is R(32) ‖ S(32) ‖ V(1).
	SignatureSize = 65

	// compactHeaderBase is the recovery header offset used by
	// ecdsa.SignCompact for uncompressed keys.
	compactHeaderBase = 27
)

// Signer signs 32-byte hashes with a private key.
type Signer interface {
	// Sign produces a 65-byte R‖S‖V signature over a 32-byte hash.
	Sign(hash []byte) ([]byte, error)
	// PublicKey returns the public key in the given format.
	PublicKey(format PublicKeyFormat) ([]byte, error)
}

// Verifier checks signatures.
type Verifier interface {
	// Verify checks a signature against a hash and public key.
	Verify(signature, hash, publicKey []byte) bool
}

// Sign signs a 32-byte hash with privateKey and returns R‖S‖V.
//
// The nonce is derived deterministically per RFC 6979, so identical inputs
// give identical signatures. S is always in the lower half of the curve
// order. V is the recovery id (0 or 1) that selects the signer's public key
// among the two candidates for R.
func Sign(hash, privateKey []byte) ([]byte, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	return signWithKey(key, hash)
}

func signWithKey(key *secp256k1.PrivateKey, hash []byte) ([]byte, error) {
	if len(hash) != HashSize {
		return nil, fmt.Errorf("%w: hash must be %d bytes, got %d", ErrInvalidInput, HashSize, len(hash))
	}

	// SignCompact returns header ‖ R ‖ S with header = 27 + recovery code.
	compact := ecdsa.SignCompact(key, hash, false)
	code := compact[0] - compactHeaderBase
	if code > 1 {
		// Codes 2 and 3 mean R overflowed the group order, which has
		// probability ~2^-127 and cannot be expressed in V ∈ {0, 1}.
		return nil, fmt.Errorf("%w: unsupported recovery code %d", ErrInvalidInput, code)
	}

	sig := make([]byte, SignatureSize)
	copy(sig, compact[1:])
	sig[64] = code
	return sig, nil
}

// Verify reports whether signature is a valid signature of the 32-byte
// message hash by publicKey. It never fails: malformed signatures, R or S
// outside [1, N-1], high-S (non-canonical) signatures, V outside {0, 1} and
// public keys that are not curve points all yield false.
//
// signature may be 64 bytes (R‖S) or 65 bytes (R‖S‖V). publicKey may be
// 64-byte X‖Y, 65-byte 0x04‖X‖Y or 33-byte compressed.
func Verify(signature, message, publicKey []byte) bool {
	if len(message) != HashSize {
		return false
	}
	r, s, ok := parseRS(signature)
	if !ok {
		return false
	}
	if s.IsOverHalfOrder() {
		return false
	}
	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(message, pub)
}

func parseRS(signature []byte) (r, s secp256k1.ModNScalar, ok bool) {
	switch len(signature) {
	case SignatureSize:
		if signature[64] > 1 {
			return r, s, false
		}
	case SignatureSize - 1:
	default:
		return r, s, false
	}
	if r.SetByteSlice(signature[:32]) || r.IsZero() {
		return r, s, false
	}
	if s.SetByteSlice(signature[32:64]) || s.IsZero() {
		return r, s, false
	}
	return r, s, true
}

// RecoverPublicKey returns the 64-byte X‖Y public key that produced a
// 65-byte R‖S‖V signature over hash.
func RecoverPublicKey(hash, signature []byte) ([]byte, error) {
	if len(hash) != HashSize {
		return nil, fmt.Errorf("%w: hash must be %d bytes, got %d", ErrInvalidInput, HashSize, len(hash))
	}
	if len(signature) != SignatureSize {
		return nil, fmt.Errorf("%w: signature must be %d bytes, got %d", ErrInvalidInput, SignatureSize, len(signature))
	}
	if signature[64] > 1 {
		return nil, fmt.Errorf("%w: recovery id %d", ErrInvalidInput, signature[64])
	}

	compact := make([]byte, SignatureSize)
	compact[0] = compactHeaderBase + signature[64]
	copy(compact[1:], signature[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: recover public key: %v", ErrInvalidInput, err)
	}
	return pub.SerializeUncompressed()[1:], nil
}

// ECDSAVerifier implements the Verifier interface.
type ECDSAVerifier struct{}

// Verify checks a signature against a hash and public key.
func (v ECDSAVerifier) Verify(signature, hash, publicKey []byte) bool {
	return Verify(signature, hash, publicKey)
}
