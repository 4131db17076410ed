package types

import "fmt"

// BlockchainType selects the key and address conventions of a chain.
type BlockchainType int

const (
	// BlockchainBitcoin uses compressed public keys and Base58Check addresses.
	BlockchainBitcoin BlockchainType = iota
	// BlockchainEthereum uses uncompressed public keys and Keccak addresses.
	BlockchainEthereum
)

// String returns the lowercase name of the blockchain type.
func (t BlockchainType) String() string {
	switch t {
	case BlockchainBitcoin:
		return "bitcoin"
	case BlockchainEthereum:
		return "ethereum"
	default:
		return fmt.Sprintf("blockchain(%d)", int(t))
	}
}

// Blockchain identifies a chain by ID and type.
type Blockchain struct {
	ChainID int
	Type    BlockchainType
}

// Known blockchains.
var (
	Bitcoin                = Blockchain{ChainID: 0, Type: BlockchainBitcoin}
	Ethereum               = Blockchain{ChainID: 1, Type: BlockchainEthereum}
	Ropsten                = Blockchain{ChainID: 3, Type: BlockchainEthereum}
	Rinkeby                = Blockchain{ChainID: 4, Type: BlockchainEthereum}
	EOSClassic             = Blockchain{ChainID: 20, Type: BlockchainEthereum}
	Kovan                  = Blockchain{ChainID: 42, Type: BlockchainEthereum}
	GoChain                = Blockchain{ChainID: 60, Type: BlockchainEthereum}
	EthereumClassic        = Blockchain{ChainID: 61, Type: BlockchainEthereum}
	EthereumClassicTestnet = Blockchain{ChainID: 62, Type: BlockchainEthereum}
)

// Coin is a BIP-44 coin type bound to a blockchain.
type Coin struct {
	Name       string
	CoinType   uint32
	Blockchain Blockchain
}

// Known coins.
var (
	CoinBitcoin         = Coin{Name: "bitcoin", CoinType: 0, Blockchain: Bitcoin}
	CoinBitcoinTestnet  = Coin{Name: "bitcoin-testnet", CoinType: 1, Blockchain: Bitcoin}
	CoinEthereum        = Coin{Name: "ethereum", CoinType: 60, Blockchain: Ethereum}
	CoinEthereumTestnet = Coin{Name: "ethereum-testnet", CoinType: 1, Blockchain: Ropsten}
	CoinEthereumClassic = Coin{Name: "ethereum-classic", CoinType: 61, Blockchain: EthereumClassic}
	CoinPOA             = Coin{Name: "poa", CoinType: 178, Blockchain: Ethereum}
	CoinCallisto        = Coin{Name: "callisto", CoinType: 820, Blockchain: Ethereum}
	CoinGoChain         = Coin{Name: "gochain", CoinType: 6060, Blockchain: Ethereum}
)

var coinsByName = map[string]Coin{}

func init() {
	for _, c := range []Coin{
		CoinBitcoin, CoinBitcoinTestnet, CoinEthereum, CoinEthereumTestnet,
		CoinEthereumClassic, CoinPOA, CoinCallisto, CoinGoChain,
	} {
		coinsByName[c.Name] = c
	}
}

// CoinByName looks up a known coin by its name (e.g. "ethereum").
func CoinByName(name string) (Coin, error) {
	c, ok := coinsByName[name]
	if !ok {
		return Coin{}, fmt.Errorf("unknown coin %q", name)
	}
	return c, nil
}

// BitcoinParams holds the version bytes of a Bitcoin network.
type BitcoinParams struct {
	Name             string
	PubKeyHashPrefix byte
	ScriptHashPrefix byte
	PrivateKeyPrefix byte
}

// Bitcoin network parameters.
var (
	BitcoinMainNet = BitcoinParams{
		Name:             "mainnet",
		PubKeyHashPrefix: 0x00,
		ScriptHashPrefix: 0x05,
		PrivateKeyPrefix: 0x80,
	}
	BitcoinTestNet = BitcoinParams{
		Name:             "testnet",
		PubKeyHashPrefix: 0x6f,
		ScriptHashPrefix: 0xc4,
		PrivateKeyPrefix: 0xef,
	}
)

// IsKnownBitcoinPrefix reports whether b is a P2PKH or P2SH prefix of
// mainnet or testnet.
func IsKnownBitcoinPrefix(b byte) bool {
	switch b {
	case BitcoinMainNet.PubKeyHashPrefix, BitcoinMainNet.ScriptHashPrefix,
		BitcoinTestNet.PubKeyHashPrefix, BitcoinTestNet.ScriptHashPrefix:
		return true
	}
	return false
}
