package crypto

import (
	"errors"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/base58"
)

// Failure classes. Every error returned by this module wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	// ErrInvalidKey marks a private key that is not a scalar in [1, N-1]
	// or a public key that is not a point on the curve.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidInput marks a hash or message of the wrong length.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParameter marks a numeric parameter outside its range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDecode marks text that fails to decode.
	ErrDecode = base58.ErrDecode
)
