package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-walletcore/config"
	"github.com/Klingon-tech/klingnet-walletcore/internal/log"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/walletcrypto"
)

// ── pubkey ──────────────────────────────────────────────────────────────

func cmdPubkey(args []string) {
	fs := flag.NewFlagSet("pubkey", flag.ExitOnError)
	keyHex := fs.String("key", "", "Private key (hex); prompted if omitted")
	format := fs.String("format", "ethereum", "Public key format: ethereum or bitcoin")
	parseFlags(fs, args)

	f, err := crypto.ParsePublicKeyFormat(*format)
	if err != nil {
		fatal("%v", err)
	}
	key := privateKeyArg(*keyHex)
	defer zero(key)

	var pub []byte
	switch f {
	case crypto.FormatBitcoin:
		pub, err = walletcrypto.GetBitcoinPublicKey(key)
	default:
		pub, err = walletcrypto.GetEthereumPublicKey(key)
	}
	if err != nil {
		fatal("derive public key: %v", err)
	}
	fmt.Println(hex.EncodeToString(pub))
}

// ── address ─────────────────────────────────────────────────────────────

func cmdAddress(args []string, cfg *config.Config) {
	if len(args) > 0 && args[0] == "validate" {
		cmdAddressValidate(args[1:])
		return
	}

	fs := flag.NewFlagSet("address", flag.ExitOnError)
	keyHex := fs.String("key", "", "Private key (hex); prompted if omitted")
	coin := fs.String("coin", "ethereum", "Address type: ethereum or bitcoin")
	parseFlags(fs, args)

	f, err := crypto.ParsePublicKeyFormat(*coin)
	if err != nil {
		fatal("%v", err)
	}
	key := privateKeyArg(*keyHex)
	defer zero(key)

	var addr string
	switch f {
	case crypto.FormatBitcoin:
		params := cfg.BitcoinParams()
		addr, err = walletcrypto.BitcoinAddress(key, params.PubKeyHashPrefix)
	default:
		addr, err = walletcrypto.EthereumAddress(key)
	}
	if err != nil {
		fatal("derive address: %v", err)
	}
	fmt.Println(addr)
}

func cmdAddressValidate(args []string) {
	if len(args) != 1 {
		fatal("Usage: walletcore-cli address validate <address>")
	}
	addr := args[0]
	switch {
	case walletcrypto.IsValidEthereumAddress(addr):
		fmt.Println("valid ethereum address")
	case walletcrypto.IsValidBitcoinAddress(addr):
		fmt.Println("valid bitcoin address")
	default:
		fmt.Println("invalid address")
		os.Exit(1)
	}
}

// ── sign / verify / recover ─────────────────────────────────────────────

func cmdSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	keyHex := fs.String("key", "", "Private key (hex); prompted if omitted")
	hashHex := fs.String("hash", "", "32-byte hash to sign (hex)")
	message := fs.String("message", "", "Message to sign (Keccak-256 hashed)")
	parseFlags(fs, args)

	hash := hashArg("sign", *hashHex, *message)
	key := privateKeyArg(*keyHex)
	defer zero(key)

	done := log.Benchmark("sign")
	sig, err := walletcrypto.Sign(hash, key)
	done()
	if err != nil {
		fatal("sign: %v", err)
	}
	log.Keys.Debug().Uint8("v", sig[64]).Msg("Signed hash")

	fmt.Println(hex.EncodeToString(sig))
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	sigHex := fs.String("sig", "", "Signature (hex, 64 or 65 bytes)")
	pubHex := fs.String("pubkey", "", "Public key (hex, 33, 64 or 65 bytes)")
	hashHex := fs.String("hash", "", "32-byte signed hash (hex)")
	message := fs.String("message", "", "Signed message (Keccak-256 hashed)")
	parseFlags(fs, args)

	if *sigHex == "" || *pubHex == "" {
		fatal("Usage: walletcore-cli verify --sig <hex> --pubkey <hex> (--hash <hex> | --message <text>)")
	}
	hash := hashArg("verify", *hashHex, *message)
	sig := hexArg("signature", *sigHex)
	pub := hexArg("public key", *pubHex)

	if !walletcrypto.Verify(sig, hash, pub) {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
}

func cmdRecover(args []string) {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	sigHex := fs.String("sig", "", "Signature (hex, 65 bytes)")
	hashHex := fs.String("hash", "", "32-byte signed hash (hex)")
	message := fs.String("message", "", "Signed message (Keccak-256 hashed)")
	format := fs.String("format", "ethereum", "Output format: ethereum or bitcoin")
	parseFlags(fs, args)

	if *sigHex == "" {
		fatal("Usage: walletcore-cli recover --sig <hex> (--hash <hex> | --message <text>)")
	}
	f, err := crypto.ParsePublicKeyFormat(*format)
	if err != nil {
		fatal("%v", err)
	}
	hash := hashArg("recover", *hashHex, *message)
	sig := hexArg("signature", *sigHex)

	pub, err := walletcrypto.RecoverPublicKey(hash, sig)
	if err != nil {
		fatal("recover: %v", err)
	}
	if f == crypto.FormatBitcoin {
		if pub, err = crypto.CompressPublicKey(pub); err != nil {
			fatal("compress: %v", err)
		}
	}
	fmt.Println(hex.EncodeToString(pub))
}

// ── Argument helpers ────────────────────────────────────────────────────

// privateKeyArg decodes a hex private key, prompting for it when empty.
func privateKeyArg(keyHex string) []byte {
	if keyHex == "" {
		keyHex = readSecret("Enter private key (hex): ")
	}
	return hexArg("private key", keyHex)
}

// hashArg returns the hash given in hex, or the Keccak-256 of message.
func hashArg(cmd, hashHex, message string) []byte {
	switch {
	case hashHex != "" && message != "":
		fatal("%s: use either --hash or --message, not both", cmd)
	case hashHex != "":
		return hexArg("hash", hashHex)
	case message != "":
		return walletcrypto.Hash([]byte(message))
	}
	fatal("%s: --hash or --message is required", cmd)
	return nil
}

func hexArg(name, s string) []byte {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		fatal("invalid %s hex: %v", name, err)
	}
	return b
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
