package config

// DefaultMainnet returns the default configuration for mainnet.
func DefaultMainnet() *Config {
	return &Config{
		Network: Mainnet,
		DataDir: DefaultDataDir(),
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Mnemonic: MnemonicConfig{
			Strength: 256,
		},
		HD: HDConfig{
			Path: "m/44'/60'/0'/0/0",
			Coin: "ethereum",
		},
	}
}

// DefaultTestnet returns the default configuration for testnet.
// Testnet coins all use BIP-44 coin type 1.
func DefaultTestnet() *Config {
	cfg := DefaultMainnet()
	cfg.Network = Testnet
	cfg.HD.Path = "m/44'/1'/0'/0/0"
	cfg.HD.Coin = "ethereum-testnet"
	return cfg
}

// Default returns the default configuration for the given network.
func Default(network NetworkType) *Config {
	switch network {
	case Testnet:
		return DefaultTestnet()
	default:
		return DefaultMainnet()
	}
}
