package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
	"github.com/tyler-smith/go-bip32"
)

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// MinMasterSeedSize is the shortest seed BIP-32 allows (128 bits).
const MinMasterSeedSize = 16

// NewMasterKey creates a master HD key from a 16 to 64 byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) < MinMasterSeedSize || len(seed) > SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d to %d bytes, got %d",
			crypto.ErrInvalidParameter, MinMasterSeedSize, SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: create master key: %v", crypto.ErrInvalidKey, err)
	}
	return &HDKey{key: master}, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("%w: derive child %d: %v", crypto.ErrInvalidKey, index, err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// Derive derives the key at a BIP-44 path.
func (k *HDKey) Derive(path DerivationPath) (*HDKey, error) {
	return k.DerivePath(path.Indices()...)
}

// PrivateKeyBytes returns the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	// bip32 may carry a leading 0x00 pad on private keys.
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		raw = raw[1:]
	}
	out := make([]byte, crypto.PrivateKeySize)
	copy(out[crypto.PrivateKeySize-len(raw):], raw)
	return out
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	pub := k.key.PublicKey()
	return pub.Key
}

// Signer returns a crypto.Signer from this HD key's private key.
// Returns error if this is a public-only key.
func (k *HDKey) Signer() (*crypto.PrivateKey, error) {
	priv := k.PrivateKeyBytes()
	if priv == nil {
		return nil, fmt.Errorf("%w: cannot create signer from public key", crypto.ErrInvalidKey)
	}
	defer zero(priv)
	return crypto.PrivateKeyFromBytes(priv)
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Neuter returns a public-key-only copy (for watch-only wallets).
func (k *HDKey) Neuter() *HDKey {
	return &HDKey{key: k.key.PublicKey()}
}

// String returns the Base58Check extended key (xprv or xpub).
func (k *HDKey) String() string {
	return k.key.String()
}
