package walletcrypto

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-walletcore/internal/wallet"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
)

// EthereumAddress returns the EIP-55 address of a private key.
func EthereumAddress(privateKey []byte) (string, error) {
	pub, err := GetEthereumPublicKey(privateKey)
	if err != nil {
		return "", err
	}
	addr, err := crypto.PubkeyToEthereumAddress(pub)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

// BitcoinAddress returns the Base58Check address of a private key's
// compressed public key under the given version prefix.
func BitcoinAddress(privateKey []byte, prefix byte) (string, error) {
	pub, err := GetBitcoinPublicKey(privateKey)
	if err != nil {
		return "", err
	}
	addr, err := crypto.PubkeyToBitcoinAddress(pub, prefix)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

// IsValidEthereumAddress reports whether s is a hex address with a correct
// EIP-55 checksum (or no checksum, if single-case).
func IsValidEthereumAddress(s string) bool {
	return types.IsValidEthereumAddress(s)
}

// IsValidBitcoinAddress reports whether s is a Base58Check address with a
// known mainnet or testnet prefix.
func IsValidBitcoinAddress(s string) bool {
	return types.IsValidBitcoinAddress(s)
}

// DeriveKey derives the private key at a BIP-32 path string such as
// "m/44'/60'/0'/0/0" from a mnemonic and passphrase.
func DeriveKey(mnemonic, passphrase, path string) ([]byte, error) {
	p, err := wallet.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	w := wallet.NewHDWallet(mnemonic, passphrase)
	defer w.Zero()
	return w.KeyAt(p)
}
