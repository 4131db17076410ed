package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Key sizes in bytes.
const (
	PrivateKeySize = 32

	// EthereumPublicKeySize is the uncompressed X‖Y encoding without the
	// 0x04 prefix.
	EthereumPublicKeySize = 64

	// BitcoinPublicKeySize is the compressed encoding with parity prefix.
	BitcoinPublicKeySize = 33

	uncompressedPublicKeySize = 65
)

// PublicKeyFormat selects how a public key point is serialized.
type PublicKeyFormat int

const (
	// FormatEthereum is the 64-byte uncompressed X‖Y encoding.
	FormatEthereum PublicKeyFormat = iota
	// FormatBitcoin is the 33-byte compressed encoding.
	FormatBitcoin
)

// String returns the lowercase name of the format.
func (f PublicKeyFormat) String() string {
	switch f {
	case FormatEthereum:
		return "ethereum"
	case FormatBitcoin:
		return "bitcoin"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParsePublicKeyFormat maps "ethereum" or "bitcoin" to a format.
func ParsePublicKeyFormat(s string) (PublicKeyFormat, error) {
	switch s {
	case "ethereum", "eth":
		return FormatEthereum, nil
	case "bitcoin", "btc":
		return FormatBitcoin, nil
	default:
		return 0, fmt.Errorf("%w: unknown public key format %q", ErrInvalidParameter, s)
	}
}

// ValidatePrivateKey checks that b is a 32-byte scalar in [1, N-1].
func ValidatePrivateKey(b []byte) error {
	_, err := parsePrivateKey(b)
	return err
}

// parsePrivateKey returns a decred private key for b. The caller owns the
// returned key and should Zero it when done.
func parsePrivateKey(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidKey, PrivateKeySize, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		s.Zero()
		return nil, fmt.Errorf("%w: private key is not below the curve order", ErrInvalidKey)
	}
	if s.IsZero() {
		return nil, fmt.Errorf("%w: private key is zero", ErrInvalidKey)
	}
	return secp256k1.NewPrivateKey(&s), nil
}

// PublicKeyFromPrivateKey derives privateKey·G and serializes it in the
// requested format.
func PublicKeyFromPrivateKey(privateKey []byte, format PublicKeyFormat) ([]byte, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	return serializePublicKey(key.PubKey(), format)
}

// EthereumPublicKey returns the 64-byte X‖Y public key for privateKey.
func EthereumPublicKey(privateKey []byte) ([]byte, error) {
	return PublicKeyFromPrivateKey(privateKey, FormatEthereum)
}

// BitcoinPublicKey returns the 33-byte compressed public key for privateKey.
func BitcoinPublicKey(privateKey []byte) ([]byte, error) {
	return PublicKeyFromPrivateKey(privateKey, FormatBitcoin)
}

func serializePublicKey(pub *secp256k1.PublicKey, format PublicKeyFormat) ([]byte, error) {
	switch format {
	case FormatEthereum:
		return pub.SerializeUncompressed()[1:], nil
	case FormatBitcoin:
		return pub.SerializeCompressed(), nil
	default:
		return nil, fmt.Errorf("%w: unknown public key format %d", ErrInvalidParameter, int(format))
	}
}

// ParsePublicKey accepts a 64-byte X‖Y key, a 65-byte 0x04-prefixed key or
// a 33-byte compressed key, and checks that the point is on the curve.
func ParsePublicKey(b []byte) (*secp256k1.PublicKey, error) {
	var raw []byte
	switch len(b) {
	case EthereumPublicKeySize:
		raw = make([]byte, uncompressedPublicKeySize)
		raw[0] = 0x04
		copy(raw[1:], b)
	case uncompressedPublicKeySize, BitcoinPublicKeySize:
		raw = b
	default:
		return nil, fmt.Errorf("%w: public key length %d", ErrInvalidKey, len(b))
	}
	pub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return pub, nil
}

// CompressPublicKey converts any accepted public key encoding to the 33-byte
// compressed form.
func CompressPublicKey(b []byte) ([]byte, error) {
	pub, err := ParsePublicKey(b)
	if err != nil {
		return nil, err
	}
	return pub.SerializeCompressed(), nil
}

// DecompressPublicKey converts any accepted public key encoding to the
// 64-byte X‖Y form.
func DecompressPublicKey(b []byte) ([]byte, error) {
	pub, err := ParsePublicKey(b)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed()[1:], nil
}

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// GenerateKey creates a new random secp256k1 private key from crypto/rand.
func GenerateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret.
// The input slice is not retained.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	key, err := parsePrivateKey(b)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// Sign produces a 65-byte R‖S‖V signature over a 32-byte hash.
func (pk *PrivateKey) Sign(hash []byte) ([]byte, error) {
	return signWithKey(pk.key, hash)
}

// PublicKey returns the public key in the given format.
func (pk *PrivateKey) PublicKey(format PublicKeyFormat) ([]byte, error) {
	return serializePublicKey(pk.key.PubKey(), format)
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}
