package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/base58"
	"github.com/ethereum/go-ethereum/common"
)

// EthereumAddressSize is the length of an Ethereum address in bytes.
const EthereumAddressSize = 20

// BitcoinAddressSize is the length of a Bitcoin address payload
// (public key hash or script hash) in bytes, excluding the prefix.
const BitcoinAddressSize = Hash160Size

// EthereumAddress is the last 20 bytes of keccak256(X‖Y).
type EthereumAddress [EthereumAddressSize]byte

// IsZero returns true if the address is all zeros.
func (a EthereumAddress) IsZero() bool {
	return a == EthereumAddress{}
}

// String returns the EIP-55 checksummed, 0x-prefixed address.
func (a EthereumAddress) String() string {
	return common.Address(a).Hex()
}

// Bytes returns a copy of the address as a byte slice.
func (a EthereumAddress) Bytes() []byte {
	b := make([]byte, EthereumAddressSize)
	copy(b, a[:])
	return b
}

// MarshalJSON encodes the address as an EIP-55 string.
func (a EthereumAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a hex address string.
func (a *EthereumAddress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEthereumAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseEthereumAddress parses a 40-char hex address, with or without 0x.
// Mixed-case input must carry a valid EIP-55 checksum.
func ParseEthereumAddress(s string) (EthereumAddress, error) {
	raw := strip0x(s)
	b, err := hex.DecodeString(raw)
	if err != nil {
		return EthereumAddress{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != EthereumAddressSize {
		return EthereumAddress{}, fmt.Errorf("address must be %d bytes, got %d", EthereumAddressSize, len(b))
	}
	var a EthereumAddress
	copy(a[:], b)
	if isMixedCase(raw) && a.String()[2:] != raw {
		return EthereumAddress{}, fmt.Errorf("address %q fails EIP-55 checksum", s)
	}
	return a, nil
}

// IsValidEthereumAddress reports whether s is a well-formed address whose
// checksum (if mixed-case) is correct.
func IsValidEthereumAddress(s string) bool {
	_, err := ParseEthereumAddress(s)
	return err == nil
}

func isMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}

// BitcoinAddress is a one-byte version prefix followed by a 20-byte hash.
type BitcoinAddress [1 + BitcoinAddressSize]byte

// NewBitcoinAddress builds an address from a prefix and a hash160 payload.
func NewBitcoinAddress(prefix byte, payload Hash160) BitcoinAddress {
	var a BitcoinAddress
	a[0] = prefix
	copy(a[1:], payload[:])
	return a
}

// Prefix returns the version byte.
func (a BitcoinAddress) Prefix() byte {
	return a[0]
}

// Payload returns the 20-byte hash carried by the address.
func (a BitcoinAddress) Payload() Hash160 {
	var h Hash160
	copy(h[:], a[1:])
	return h
}

// String returns the Base58Check encoding of the address.
func (a BitcoinAddress) String() string {
	return base58.CheckEncode(a[1:], a[0])
}

// Bytes returns a copy of the raw 21-byte address.
func (a BitcoinAddress) Bytes() []byte {
	b := make([]byte, len(a))
	copy(b, a[:])
	return b
}

// MarshalJSON encodes the address as a Base58Check string.
func (a BitcoinAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// ParseBitcoinAddress decodes a Base58Check address and checks that its
// prefix is one of the known mainnet or testnet prefixes.
func ParseBitcoinAddress(s string) (BitcoinAddress, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return BitcoinAddress{}, err
	}
	if len(payload) != BitcoinAddressSize {
		return BitcoinAddress{}, fmt.Errorf("address payload must be %d bytes, got %d", BitcoinAddressSize, len(payload))
	}
	if !IsKnownBitcoinPrefix(version) {
		return BitcoinAddress{}, fmt.Errorf("unknown address prefix 0x%02x", version)
	}
	var a BitcoinAddress
	a[0] = version
	copy(a[1:], payload)
	return a, nil
}

// IsValidBitcoinAddress reports whether s parses as a Bitcoin address.
func IsValidBitcoinAddress(s string) bool {
	_, err := ParseBitcoinAddress(s)
	return err == nil
}
