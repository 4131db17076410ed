package wallet

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/Klingon-tech/klingnet-walletcore/pkg/crypto"
	"github.com/tyler-smith/go-bip32"
)

// testSeed returns a deterministic seed for testing.
// Uses the BIP-39 test vector: "abandon" x11 + "about" with passphrase "TREZOR".
func testSeed(t *testing.T) []byte {
	t.Helper()
	return SeedFromMnemonic(bip39Vectors[0].mnemonic, "TREZOR")
}

func TestNewMasterKey(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}

	if !master.IsPrivate() {
		t.Error("master key should be private")
	}

	if master.Depth() != 0 {
		t.Errorf("master key depth = %d, want 0", master.Depth())
	}

	priv := master.PrivateKeyBytes()
	if len(priv) != 32 {
		t.Errorf("private key length = %d, want 32", len(priv))
	}

	pub := master.PublicKeyBytes()
	if len(pub) != 33 {
		t.Errorf("public key length = %d, want 33", len(pub))
	}
}

func TestNewMasterKey_BIP32Vector1(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}

	const wantMaster = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	if got := master.String(); got != wantMaster {
		t.Errorf("master = %s, want %s", got, wantMaster)
	}

	const wantMasterPub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	if got := master.Neuter().String(); got != wantMasterPub {
		t.Errorf("master pub = %s, want %s", got, wantMasterPub)
	}

	child, err := master.DeriveChild(bip32.FirstHardenedChild)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	const wantChild = "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
	if got := child.String(); got != wantChild {
		t.Errorf("m/0H = %s, want %s", got, wantChild)
	}
}

func TestNewMasterKey_InvalidSeedLength(t *testing.T) {
	tests := []struct {
		name string
		seed []byte
	}{
		{"empty", []byte{}},
		{"too short", make([]byte, 15)},
		{"too long", make([]byte, 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMasterKey(tt.seed)
			if !errors.Is(err, crypto.ErrInvalidParameter) {
				t.Errorf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestNewMasterKey_Deterministic(t *testing.T) {
	seed := testSeed(t)

	m1, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	m2, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}

	if !bytes.Equal(m1.PrivateKeyBytes(), m2.PrivateKeyBytes()) {
		t.Error("same seed should produce same master key")
	}
}

func TestHDKey_PublicKeyMatchesCrypto(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	child, err := master.Derive(CoinPath(coinEthereum(), 0))
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}

	want, err := crypto.BitcoinPublicKey(child.PrivateKeyBytes())
	if err != nil {
		t.Fatalf("BitcoinPublicKey() error: %v", err)
	}
	if !bytes.Equal(child.PublicKeyBytes(), want) {
		t.Error("HD public key should equal the compressed key derived from its private key")
	}
	if child.Depth() != 5 {
		t.Errorf("depth = %d, want 5", child.Depth())
	}
}

func TestHDKey_Neuter(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	pub := master.Neuter()

	if pub.IsPrivate() {
		t.Error("neutered key should not be private")
	}
	if pub.PrivateKeyBytes() != nil {
		t.Error("neutered key should have no private bytes")
	}
	if !bytes.Equal(pub.PublicKeyBytes(), master.PublicKeyBytes()) {
		t.Error("neutered key should keep the public key")
	}
	if _, err := pub.Signer(); !errors.Is(err, crypto.ErrInvalidKey) {
		t.Errorf("Signer() on public key error = %v, want ErrInvalidKey", err)
	}

	// Public derivation of non-hardened children matches private derivation.
	privChild, err := master.DeriveChild(7)
	if err != nil {
		t.Fatalf("DeriveChild() error: %v", err)
	}
	pubChild, err := pub.DeriveChild(7)
	if err != nil {
		t.Fatalf("DeriveChild() on public key error: %v", err)
	}
	if !bytes.Equal(privChild.PublicKeyBytes(), pubChild.PublicKeyBytes()) {
		t.Error("public and private derivation should agree on non-hardened children")
	}
}

func TestHDKey_Signer(t *testing.T) {
	master, err := NewMasterKey(testSeed(t))
	if err != nil {
		t.Fatalf("NewMasterKey() error: %v", err)
	}
	signer, err := master.Signer()
	if err != nil {
		t.Fatalf("Signer() error: %v", err)
	}

	hash := crypto.Keccak256([]byte("hd signer"))
	sig, err := signer.Sign(hash[:])
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if !crypto.Verify(sig, hash[:], master.PublicKeyBytes()) {
		t.Error("signature from HD key should verify with its public key")
	}
}
