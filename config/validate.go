package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-walletcore/internal/log"
	"github.com/Klingon-tech/klingnet-walletcore/internal/wallet"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
)

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Network != Mainnet && cfg.Network != Testnet {
		return fmt.Errorf("network must be %q or %q", Mainnet, Testnet)
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	if !wallet.ValidStrength(cfg.Mnemonic.Strength) {
		return fmt.Errorf("mnemonic.strength must be a multiple of 32 in [%d, %d], got %d",
			wallet.MinEntropyBits, wallet.MaxEntropyBits, cfg.Mnemonic.Strength)
	}
	if _, err := wallet.ParseDerivationPath(cfg.HD.Path); err != nil {
		return fmt.Errorf("hd.path: %w", err)
	}
	if _, err := types.CoinByName(cfg.HD.Coin); err != nil {
		return fmt.Errorf("hd.coin: %w", err)
	}
	return nil
}
