// walletcore-cli is a command-line front-end for the wallet crypto core.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/Klingon-tech/klingnet-walletcore/config"
	"github.com/Klingon-tech/klingnet-walletcore/internal/log"
	"golang.org/x/term"
)

const version = "0.1.0"

func main() {
	flags, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		usage()
		os.Exit(1)
	}
	if flags.Help {
		usage()
		return
	}
	if flags.Version {
		fmt.Printf("walletcore-cli version %s\n", version)
		return
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fatal("%v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}
	netLogger := log.WithNetwork(string(cfg.Network))
	netLogger.Debug().
		Str("config", cfg.ConfigFile()).
		Str("hd_path", cfg.HD.Path).
		Str("hd_coin", cfg.HD.Coin).
		Msg("Configuration loaded")

	args := flags.Args
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "pubkey":
		cmdPubkey(cmdArgs)
	case "address":
		cmdAddress(cmdArgs, cfg)
	case "sign":
		cmdSign(cmdArgs)
	case "verify":
		cmdVerify(cmdArgs)
	case "recover":
		cmdRecover(cmdArgs)
	case "hash":
		cmdHash(cmdArgs)
	case "base58":
		cmdBase58(cmdArgs, cfg)
	case "mnemonic":
		cmdMnemonic(cmdArgs, cfg)
	case "derive":
		cmdDerive(cmdArgs, cfg)
	case "config":
		cmdConfig(cmdArgs, cfg)
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: walletcore-cli [global flags] <command> [flags]

Global flags:
  --network <net>     mainnet (default) or testnet
  --testnet           Shorthand for --network=testnet
  --datadir <path>    Data directory (default: ~/.klingnet-walletcore)
  --config, -c <path> Config file (default: <datadir>/walletcore.conf)
  --log-level <lvl>   debug, info (default), warn, error
  --log-file <path>   Also write JSON logs to a file
  --log-json          Log as JSON instead of colored text
  --version           Show version information

Keys and signatures (private keys are prompted for when --key is omitted):
  pubkey [--key <hex>] [--format ethereum|bitcoin]
                                  Derive a public key
  address [--key <hex>] [--coin ethereum|bitcoin]
                                  Derive an Ethereum or Bitcoin address
  address validate <address>      Check an address and its checksum
  sign [--key <hex>] (--hash <hex> | --message <text>)
                                  Sign a 32-byte hash (or Keccak of a message)
  verify --sig <hex> --pubkey <hex> (--hash <hex> | --message <text>)
                                  Verify a signature
  recover --sig <hex> (--hash <hex> | --message <text>)
                                  Recover the signer's public key

Hashing and encoding:
  hash [--alg keccak256|sha256d|hash160|namehash|labelhash] (--hex <hex> | <text>)
                                  Hash data (namehash: EIP-137 ENS node of a name)
  base58 encode <hex>             Base58-encode bytes
  base58 decode [--size <n>] <text>
                                  Base58-decode text, optionally of a fixed size
  base58 check-encode [--version <n>] <hex>
                                  Base58Check-encode bytes
  base58 check-decode <text>      Base58Check-decode text

Mnemonics and HD keys:
  mnemonic new [--strength <bits>]
                                  Generate a new mnemonic
  mnemonic from-entropy <hex>     Deterministic mnemonic for 16-32 bytes
  mnemonic seed [--passphrase]    Derive the 64-byte seed (mnemonic prompted)
  mnemonic validate               Check a mnemonic (prompted)
  derive [--path <path>] [--coin <name>] [--count <n>] [--passphrase]
                                  Derive keys and addresses (mnemonic prompted)

  config init                     Write a default config file
`)
}

// ── config ──────────────────────────────────────────────────────────────

func cmdConfig(args []string, cfg *config.Config) {
	if len(args) < 1 || args[0] != "init" {
		fatal("Usage: walletcore-cli config init")
	}
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		fatal("create data dir: %v", err)
	}
	path := cfg.ConfigFile()
	if err := config.WriteDefaultConfig(path, cfg.Network); err != nil {
		if errors.Is(err, os.ErrExist) {
			fatal("config file already exists: %s", path)
		}
		fatal("write config: %v", err)
	}
	fmt.Printf("Config written: %s\n", path)
}

// ── Input helpers ───────────────────────────────────────────────────────

// readPassword prompts on stderr and reads a line without echo.
func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

var stdin = bufio.NewReader(os.Stdin)

// readSecret reads a secret with hidden input, or from stdin when it is not
// a terminal so that secrets can be piped in.
func readSecret(prompt string) string {
	if !term.IsTerminal(int(syscall.Stdin)) {
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			fatal("read input: %v", err)
		}
		return strings.TrimSpace(line)
	}
	b, err := readPassword(prompt)
	if err != nil {
		fatal("read input: %v", err)
	}
	return strings.TrimSpace(string(b))
}

// parseFlags parses subcommand flags, exiting on error.
func parseFlags(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
