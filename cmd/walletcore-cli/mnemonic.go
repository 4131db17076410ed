package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/Klingon-tech/klingnet-walletcore/config"
	"github.com/Klingon-tech/klingnet-walletcore/internal/log"
	"github.com/Klingon-tech/klingnet-walletcore/internal/wallet"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/types"
	"github.com/Klingon-tech/klingnet-walletcore/pkg/walletcrypto"
)

// maxDeriveCount caps the number of addresses one derive call prints.
const maxDeriveCount = 1000

// ── mnemonic ────────────────────────────────────────────────────────────

func cmdMnemonic(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fatal("Usage: walletcore-cli mnemonic <new|from-entropy|seed|validate> [flags]")
	}

	switch args[0] {
	case "new":
		cmdMnemonicNew(args[1:], cfg)
	case "from-entropy":
		cmdMnemonicFromEntropy(args[1:])
	case "seed":
		cmdMnemonicSeed(args[1:])
	case "validate":
		cmdMnemonicValidate()
	default:
		fatal("Unknown mnemonic command: %s\nUsage: walletcore-cli mnemonic <new|from-entropy|seed|validate> [flags]", args[0])
	}
}

func cmdMnemonicNew(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("mnemonic new", flag.ExitOnError)
	strength := fs.Int("strength", cfg.Mnemonic.Strength, "Entropy bits: 128, 160, 192, 224 or 256")
	parseFlags(fs, args)

	mnemonic, err := walletcrypto.GenerateMnemonic(*strength)
	if err != nil {
		fatal("generate mnemonic: %v", err)
	}
	log.Mnemonic.Debug().
		Int("strength", *strength).
		Int("words", wallet.WordCount(*strength)).
		Msg("Generated mnemonic")

	fmt.Println("Mnemonic (write this down!):")
	fmt.Printf("  %s\n", mnemonic)
}

func cmdMnemonicFromEntropy(args []string) {
	if len(args) != 1 {
		fatal("Usage: walletcore-cli mnemonic from-entropy <hex>")
	}
	entropy := hexArg("entropy", args[0])
	defer zero(entropy)

	mnemonic, err := walletcrypto.GenerateMnemonicFromSeed(entropy)
	if err != nil {
		fatal("mnemonic from entropy: %v", err)
	}
	fmt.Println(mnemonic)
}

func cmdMnemonicSeed(args []string) {
	fs := flag.NewFlagSet("mnemonic seed", flag.ExitOnError)
	askPass := fs.Bool("passphrase", false, "Prompt for a BIP-39 passphrase")
	parseFlags(fs, args)

	mnemonic := readSecret("Enter mnemonic: ")
	if !walletcrypto.IsValidMnemonic(mnemonic) {
		log.Mnemonic.Warn().Msg("Mnemonic checksum is invalid, deriving seed anyway")
	}
	passphrase := ""
	if *askPass {
		passphrase = readSecret("Enter passphrase: ")
	}

	done := log.Benchmark("seed")
	seed := walletcrypto.DeriveSeedFromMnemonic(mnemonic, passphrase)
	done()
	defer zero(seed)

	fmt.Println(hex.EncodeToString(seed))
}

func cmdMnemonicValidate() {
	mnemonic := readSecret("Enter mnemonic: ")
	if !walletcrypto.IsValidMnemonic(mnemonic) {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
}

// ── derive ──────────────────────────────────────────────────────────────

// derived is one row of derive output.
type derived struct {
	path    wallet.DerivationPath
	pubkey  []byte
	address string
	err     error
}

func cmdDerive(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	pathStr := fs.String("path", cfg.HD.Path, "BIP-44 derivation path of the first key")
	coinName := fs.String("coin", cfg.HD.Coin, "Coin (selects the address format)")
	count := fs.Int("count", 1, "Number of consecutive address indices to derive")
	askPass := fs.Bool("passphrase", false, "Prompt for a BIP-39 passphrase")
	showKey := fs.Bool("show-private", false, "Also print private keys")
	parseFlags(fs, args)

	if *count < 1 || *count > maxDeriveCount {
		fatal("--count must be in [1, %d]", maxDeriveCount)
	}
	base, err := wallet.ParseDerivationPath(*pathStr)
	if err != nil {
		fatal("%v", err)
	}
	if uint64(base.Address())+uint64(*count) > 1<<31 {
		fatal("--count runs past the last non-hardened index")
	}
	coin, err := types.CoinByName(*coinName)
	if err != nil {
		fatal("%v", err)
	}

	mnemonic := readSecret("Enter mnemonic: ")
	if !walletcrypto.IsValidMnemonic(mnemonic) {
		fatal("invalid mnemonic")
	}
	passphrase := ""
	if *askPass {
		passphrase = readSecret("Enter passphrase: ")
	}

	done := log.Benchmark("seed")
	w := wallet.NewHDWallet(mnemonic, passphrase)
	done()
	defer w.Zero()

	prefix := cfg.BitcoinParams().PubKeyHashPrefix
	results := make([]derived, *count)
	privs := make([][]byte, *count)

	// Each index is independent, so derive them in parallel.
	var wg sync.WaitGroup
	for i := 0; i < *count; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := base.WithAddress(base.Address() + uint32(i))
			results[i].path = p
			key, err := w.KeyAt(p)
			if err != nil {
				results[i].err = err
				return
			}
			privs[i] = key
			results[i].pubkey, results[i].address, results[i].err = describeKey(key, coin, prefix)
		}(i)
	}
	wg.Wait()

	log.HD.Debug().
		Str("coin", coin.Name).
		Str("path", base.String()).
		Int("count", *count).
		Msg("Derived keys")

	for i, r := range results {
		if r.err != nil {
			fatal("derive %s: %v", r.path, r.err)
		}
		fmt.Printf("%s  %s\n", r.path, r.address)
		fmt.Printf("  Public key:  %s\n", hex.EncodeToString(r.pubkey))
		if *showKey {
			fmt.Printf("  Private key: %s\n", hex.EncodeToString(privs[i]))
		}
		zero(privs[i])
	}
}

// describeKey returns the public key and address of key in the conventions
// of coin's blockchain.
func describeKey(key []byte, coin types.Coin, prefix byte) ([]byte, string, error) {
	if wallet.FormatFor(coin) == crypto.FormatBitcoin {
		pub, err := walletcrypto.GetBitcoinPublicKey(key)
		if err != nil {
			return nil, "", err
		}
		addr, err := walletcrypto.BitcoinAddress(key, prefix)
		return pub, addr, err
	}
	pub, err := walletcrypto.GetEthereumPublicKey(key)
	if err != nil {
		return nil, "", err
	}
	addr, err := walletcrypto.EthereumAddress(key)
	return pub, addr, err
}
