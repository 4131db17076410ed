// derive_key.go prints the public keys and addresses for a hex-encoded
// private key file.
// Usage: go run scripts/derive_key.go <keyfile> [testnet]
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_key <keyfile> [testnet]")
		os.Exit(1)
	}
	params := types.BitcoinMainNet
	if len(os.Args) > 2 && os.Args[2] == "testnet" {
		params = types.BitcoinTestNet
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	keyHex := strings.TrimPrefix(strings.TrimSpace(string(data)), "0x")
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	key, err := crypto.PrivateKeyFromBytes(keyBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer key.Zero()

	ethPub, err := key.PublicKey(crypto.FormatEthereum)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	btcPub, err := key.PublicKey(crypto.FormatBitcoin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ethAddr, err := crypto.PubkeyToEthereumAddress(ethPub)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	btcAddr, err := crypto.PubkeyToBitcoinAddress(btcPub, params.PubKeyHashPrefix)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("eth_pubkey=%s\n", hex.EncodeToString(ethPub))
	fmt.Printf("eth_address=%s\n", ethAddr.String())
	fmt.Printf("btc_pubkey=%s\n", hex.EncodeToString(btcPub))
	fmt.Printf("btc_address=%s\n", btcAddr.String())
}
