package wallet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
	"github.com/tyler-smith/go-bip32"
)

// ErrInvalidPath is returned for malformed derivation path strings.
var ErrInvalidPath = errors.New("invalid derivation path")

// BIP-44 derivation path constants.
// Full path: m/44'/CoinType'/account'/change/index
const (
	// PurposeBIP44 is the BIP-44 purpose field (unhardened value).
	PurposeBIP44 = 44

	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

// PathIndex is one level of a derivation path.
type PathIndex struct {
	Value    uint32
	Hardened bool
}

// Derivation returns the index as passed to BIP-32 child derivation.
func (i PathIndex) Derivation() uint32 {
	if i.Hardened {
		return i.Value + bip32.FirstHardenedChild
	}
	return i.Value
}

// String returns the index, suffixed with ' when hardened.
func (i PathIndex) String() string {
	if i.Hardened {
		return strconv.FormatUint(uint64(i.Value), 10) + "'"
	}
	return strconv.FormatUint(uint64(i.Value), 10)
}

// DerivationPath is a BIP-44 path m/purpose'/coin'/account'/change/address.
type DerivationPath struct {
	indices [5]PathIndex
}

// NewDerivationPath builds a BIP-44 path. Purpose, coin type and account are
// hardened; change and address are not.
func NewDerivationPath(purpose, coinType, account, change, address uint32) DerivationPath {
	return DerivationPath{indices: [5]PathIndex{
		{Value: purpose, Hardened: true},
		{Value: coinType, Hardened: true},
		{Value: account, Hardened: true},
		{Value: change},
		{Value: address},
	}}
}

// CoinPath returns m/44'/coin'/0'/0/index for coin.
func CoinPath(coin types.Coin, index uint32) DerivationPath {
	return NewDerivationPath(PurposeBIP44, coin.CoinType, 0, ChangeExternal, index)
}

// ParseDerivationPath parses strings like "m/44'/60'/0'/0/0". Both ' and h
// mark hardened indices. Exactly five levels are required.
func ParseDerivationPath(s string) (DerivationPath, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return DerivationPath{}, fmt.Errorf("%w: %q must start with m/", ErrInvalidPath, s)
	}
	parts = parts[1:]
	if len(parts) != 5 {
		return DerivationPath{}, fmt.Errorf("%w: %q has %d levels, want 5", ErrInvalidPath, s, len(parts))
	}

	var p DerivationPath
	for i, part := range parts {
		hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") || strings.HasSuffix(part, "H")
		if hardened {
			part = part[:len(part)-1]
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil || v >= uint64(bip32.FirstHardenedChild) {
			return DerivationPath{}, fmt.Errorf("%w: bad index %q in %q", ErrInvalidPath, parts[i], s)
		}
		p.indices[i] = PathIndex{Value: uint32(v), Hardened: hardened}
	}
	return p, nil
}

// Purpose returns the purpose level value.
func (p DerivationPath) Purpose() uint32 { return p.indices[0].Value }

// CoinType returns the coin type level value.
func (p DerivationPath) CoinType() uint32 { return p.indices[1].Value }

// Account returns the account level value.
func (p DerivationPath) Account() uint32 { return p.indices[2].Value }

// Change returns the change level value.
func (p DerivationPath) Change() uint32 { return p.indices[3].Value }

// Address returns the address level value.
func (p DerivationPath) Address() uint32 { return p.indices[4].Value }

// WithAddress returns a copy of p with the address index replaced. The
// address level keeps its hardening.
func (p DerivationPath) WithAddress(index uint32) DerivationPath {
	p.indices[4].Value = index
	return p
}

// Indices returns the BIP-32 child indices, hardened bit applied.
func (p DerivationPath) Indices() []uint32 {
	out := make([]uint32, len(p.indices))
	for i, idx := range p.indices {
		out[i] = idx.Derivation()
	}
	return out
}

// String returns the path in m/44'/60'/0'/0/0 form.
func (p DerivationPath) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, idx := range p.indices {
		sb.WriteByte('/')
		sb.WriteString(idx.String())
	}
	return sb.String()
}
