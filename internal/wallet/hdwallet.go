package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
)

// HDWallet derives account keys from a mnemonic-derived seed.
//
// Unlike the rest of the package, HDWallet holds secret material. Call Zero
// when done with it.
type HDWallet struct {
	seed []byte
}

// NewHDWallet derives the seed of mnemonic and passphrase. The mnemonic is
// not validated (see SeedFromMnemonic).
func NewHDWallet(mnemonic, passphrase string) *HDWallet {
	return &HDWallet{seed: SeedFromMnemonic(mnemonic, passphrase)}
}

// NewHDWalletFromSeed wraps a copy of a 64-byte seed.
func NewHDWalletFromSeed(seed []byte) (*HDWallet, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", crypto.ErrInvalidParameter, SeedSize, len(seed))
	}
	return &HDWallet{seed: append([]byte(nil), seed...)}, nil
}

// Seed returns a copy of the wallet seed.
func (w *HDWallet) Seed() []byte {
	return append([]byte(nil), w.seed...)
}

// KeyAt returns the 32-byte private key at path.
func (w *HDWallet) KeyAt(path DerivationPath) ([]byte, error) {
	master, err := NewMasterKey(w.seed)
	if err != nil {
		return nil, err
	}
	child, err := master.Derive(path)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", path, err)
	}
	return child.PrivateKeyBytes(), nil
}

// KeyForCoin returns the private key at m/44'/coin'/0'/0/index.
func (w *HDWallet) KeyForCoin(coin types.Coin, index uint32) ([]byte, error) {
	return w.KeyAt(CoinPath(coin, index))
}

// PublicKeyForCoin returns the public key at m/44'/coin'/0'/0/index in the
// format the coin's blockchain uses.
func (w *HDWallet) PublicKeyForCoin(coin types.Coin, index uint32) ([]byte, error) {
	priv, err := w.KeyForCoin(coin, index)
	if err != nil {
		return nil, err
	}
	defer zero(priv)
	return crypto.PublicKeyFromPrivateKey(priv, FormatFor(coin))
}

// Zero erases the seed.
func (w *HDWallet) Zero() {
	zero(w.seed)
}

// FormatFor returns the public key format used by coin's blockchain.
func FormatFor(coin types.Coin) crypto.PublicKeyFormat {
	if coin.Blockchain.Type == types.BlockchainBitcoin {
		return crypto.FormatBitcoin
	}
	return crypto.FormatEthereum
}
