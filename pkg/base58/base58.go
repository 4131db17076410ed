// Package base58 encodes and decodes the Bitcoin Base58 alphabet, with and
// without the Base58Check checksum.
package base58

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	mrbase58 "github.com/mr-tron/base58"
)

// ErrDecode is returned when text cannot be decoded under the alphabet,
// length or checksum constraint.
var ErrDecode = errors.New("base58 decode error")

// AnySize disables the length check in DecodeSize.
const AnySize = -1

// Encode returns the Base58 text for data. Each leading zero byte becomes a
// leading '1'. Encoding an empty slice yields "".
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return mrbase58.Encode(data)
}

// Decode parses Base58 text of any decoded length. "" decodes to an empty
// slice.
func Decode(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	b, err := mrbase58.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}

// DecodeSize parses Base58 text and requires the result to be exactly
// expectedSize bytes. Pass AnySize to accept any length.
func DecodeSize(text string, expectedSize int) ([]byte, error) {
	b, err := Decode(text)
	if err != nil {
		return nil, err
	}
	if expectedSize != AnySize && len(b) != expectedSize {
		return nil, fmt.Errorf("%w: decoded %d bytes, expected %d", ErrDecode, len(b), expectedSize)
	}
	return b, nil
}

// CheckEncode prepends version to payload, appends the first four bytes of
// sha256(sha256(version‖payload)) and Base58-encodes the result.
func CheckEncode(payload []byte, version byte) string {
	return base58.CheckEncode(payload, version)
}

// CheckDecode reverses CheckEncode, verifying the checksum.
func CheckDecode(text string) (payload []byte, version byte, err error) {
	payload, version, err = base58.CheckDecode(text)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return payload, version, nil
}
