// Package config handles configuration of the wallet core command-line tools.
//
// Settings come from three layers, later layers winning:
//   - Built-in defaults for the selected network
//   - A key = value config file
//   - Command-line flags
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
)

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// Config holds the tool configuration.
type Config struct {
	// Core
	Network NetworkType `conf:"network"`
	DataDir string      `conf:"datadir"`

	// Logging
	Log LogConfig

	// Mnemonic generation
	Mnemonic MnemonicConfig

	// HD derivation defaults
	HD HDConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// MnemonicConfig holds mnemonic generation settings.
type MnemonicConfig struct {
	// Strength is the entropy size in bits (128 to 256, multiple of 32).
	Strength int `conf:"mnemonic.strength"`
}

// HDConfig holds the defaults used by key derivation commands.
type HDConfig struct {
	Path string `conf:"hd.path"` // BIP-44 path, e.g. m/44'/60'/0'/0/0
	Coin string `conf:"hd.coin"` // Coin name, e.g. ethereum
}

// BitcoinParams returns the Bitcoin address prefixes of the network.
func (c *Config) BitcoinParams() types.BitcoinParams {
	if c.Network == Testnet {
		return types.BitcoinTestNet
	}
	return types.BitcoinMainNet
}

// Coin returns the configured HD coin.
func (c *Config) Coin() (types.Coin, error) {
	return types.CoinByName(c.HD.Coin)
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet-walletcore
//	macOS:   ~/Library/Application Support/KlingnetWalletCore
//	Windows: %APPDATA%\KlingnetWalletCore
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-walletcore"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetWalletCore")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetWalletCore")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetWalletCore")
	default:
		return filepath.Join(home, ".klingnet-walletcore")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "walletcore.conf")
}
