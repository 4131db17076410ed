package crypto

import (
	"strings"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
)

// Namehash computes the EIP-137 ENS node of a dot-separated name:
// namehash("") is 32 zero bytes and
// namehash(label.rest) = keccak256(namehash(rest) ‖ keccak256(label)).
//
// Empty labels (as in "a..b" or a trailing dot) are skipped. The name is
// hashed as given; callers must apply UTS-46 normalisation first.
func Namehash(name string) types.Hash {
	var node types.Hash
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i] == "" {
			continue
		}
		label := Labelhash(labels[i])
		node = Keccak256(node[:], label[:])
	}
	return node
}

// Labelhash computes the Keccak-256 hash of a single ENS label.
func Labelhash(label string) types.Hash {
	return Keccak256([]byte(label))
}
