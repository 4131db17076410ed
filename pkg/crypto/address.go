package crypto

import (
	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
)

// PubkeyToEthereumAddress derives an Ethereum address from a public key in
// any accepted encoding. Address = Keccak256(X‖Y)[12:].
func PubkeyToEthereumAddress(publicKey []byte) (types.EthereumAddress, error) {
	raw, err := DecompressPublicKey(publicKey)
	if err != nil {
		return types.EthereumAddress{}, err
	}
	h := Keccak256(raw)
	var addr types.EthereumAddress
	copy(addr[:], h[types.HashSize-types.EthereumAddressSize:])
	return addr, nil
}

// PubkeyToBitcoinAddress derives a Bitcoin address with the given version
// prefix from a public key. The key is hashed exactly as given, so a
// compressed and an uncompressed key yield different addresses.
func PubkeyToBitcoinAddress(publicKey []byte, prefix byte) (types.BitcoinAddress, error) {
	if _, err := ParsePublicKey(publicKey); err != nil {
		return types.BitcoinAddress{}, err
	}
	serialized := publicKey
	if len(publicKey) == EthereumPublicKeySize {
		serialized = append([]byte{0x04}, publicKey...)
	}
	return types.NewBitcoinAddress(prefix, Hash160(serialized)), nil
}
