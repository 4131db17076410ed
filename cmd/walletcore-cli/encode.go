package main

import (
	"encoding/hex"
	"flag"
	"fmt"

	"github.com/Klingon-tech/klingnet-walletcore/config"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/base58"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/walletcrypto"
)

// ── hash ────────────────────────────────────────────────────────────────

func cmdHash(args []string) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	alg := fs.String("alg", "keccak256", "Algorithm: keccak256, sha256d, hash160, namehash or labelhash")
	hexData := fs.String("hex", "", "Input bytes (hex) instead of text")
	parseFlags(fs, args)

	var data []byte
	switch {
	case *hexData != "":
		data = hexArg("input", *hexData)
	case fs.NArg() == 1:
		data = []byte(fs.Arg(0))
	default:
		fatal("Usage: walletcore-cli hash [--alg keccak256|sha256d|hash160|namehash|labelhash] (--hex <hex> | <text>)")
	}

	var digest []byte
	switch *alg {
	case "keccak256", "keccak":
		digest = walletcrypto.Hash(data)
	case "sha256d", "sha256sha256":
		digest = walletcrypto.SHA256SHA256(data)
	case "hash160", "sha256ripemd160":
		digest = walletcrypto.SHA256RIPEMD160(data)
	case "namehash":
		digest = walletcrypto.Namehash(string(data))
	case "labelhash":
		digest = walletcrypto.Labelhash(string(data))
	default:
		fatal("unknown hash algorithm: %s", *alg)
	}
	fmt.Println(hex.EncodeToString(digest))
}

// ── base58 ──────────────────────────────────────────────────────────────

func cmdBase58(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fatal("Usage: walletcore-cli base58 <encode|decode|check-encode|check-decode> [flags]")
	}

	switch args[0] {
	case "encode":
		cmdBase58Encode(args[1:])
	case "decode":
		cmdBase58Decode(args[1:])
	case "check-encode":
		cmdBase58CheckEncode(args[1:], cfg)
	case "check-decode":
		cmdBase58CheckDecode(args[1:])
	default:
		fatal("Unknown base58 command: %s\nUsage: walletcore-cli base58 <encode|decode|check-encode|check-decode> [flags]", args[0])
	}
}

func cmdBase58Encode(args []string) {
	if len(args) != 1 {
		fatal("Usage: walletcore-cli base58 encode <hex>")
	}
	fmt.Println(walletcrypto.Base58Encode(hexArg("input", args[0])))
}

func cmdBase58Decode(args []string) {
	fs := flag.NewFlagSet("base58 decode", flag.ExitOnError)
	size := fs.Int("size", walletcrypto.AnySize, "Required decoded length in bytes (-1 for any)")
	parseFlags(fs, args)

	if fs.NArg() != 1 {
		fatal("Usage: walletcore-cli base58 decode [--size <n>] <text>")
	}
	data, err := walletcrypto.Base58Decode(fs.Arg(0), *size)
	if err != nil {
		fatal("decode: %v", err)
	}
	fmt.Println(hex.EncodeToString(data))
}

func cmdBase58CheckEncode(args []string, cfg *config.Config) {
	params := cfg.BitcoinParams()
	fs := flag.NewFlagSet("base58 check-encode", flag.ExitOnError)
	ver := fs.Uint("version", uint(params.PubKeyHashPrefix), "Version byte")
	parseFlags(fs, args)

	if fs.NArg() != 1 {
		fatal("Usage: walletcore-cli base58 check-encode [--version <n>] <hex>")
	}
	if *ver > 0xff {
		fatal("version must fit in one byte, got %d", *ver)
	}
	fmt.Println(base58.CheckEncode(hexArg("input", fs.Arg(0)), byte(*ver)))
}

func cmdBase58CheckDecode(args []string) {
	if len(args) != 1 {
		fatal("Usage: walletcore-cli base58 check-decode <text>")
	}
	payload, ver, err := base58.CheckDecode(args[0])
	if err != nil {
		fatal("decode: %v", err)
	}
	fmt.Printf("Version: 0x%02x\n", ver)
	fmt.Printf("Payload: %s\n", hex.EncodeToString(payload))
}
