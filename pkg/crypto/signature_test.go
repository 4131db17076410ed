package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Private key and address from go-ethereum's crypto tests.
const (
	testPrivHex = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"
	testAddrHex = "970e8128ab834e8eac17ab8e3812f010678cf791"
)

func signTestHash(t *testing.T, msg string) (hash, priv, pub, sig []byte) {
	t.Helper()
	priv = mustHex(t, testPrivHex)
	h := Keccak256([]byte(msg))
	hash = h[:]
	var err error
	sig, err = Sign(hash, priv)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	pub, err = EthereumPublicKey(priv)
	if err != nil {
		t.Fatalf("EthereumPublicKey() error: %v", err)
	}
	return hash, priv, pub, sig
}

func TestSign_Verify(t *testing.T) {
	hash, _, pub, sig := signTestHash(t, "test message")

	if len(sig) != SignatureSize {
		t.Fatalf("signature length = %d, want %d", len(sig), SignatureSize)
	}
	if sig[64] > 1 {
		t.Errorf("V = %d, want 0 or 1", sig[64])
	}
	if !Verify(sig, hash, pub) {
		t.Error("signature should verify against the correct key and hash")
	}
	if !Verify(sig[:64], hash, pub) {
		t.Error("64-byte R‖S signature should verify")
	}

	compressed, err := CompressPublicKey(pub)
	if err != nil {
		t.Fatalf("CompressPublicKey() error: %v", err)
	}
	if !Verify(sig, hash, compressed) {
		t.Error("signature should verify against the compressed key")
	}
}

func TestSign_Deterministic(t *testing.T) {
	hash, priv, _, sig1 := signTestHash(t, "deterministic test")
	sig2, err := Sign(hash, priv)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if !bytes.Equal(sig1, sig2) {
		t.Error("RFC 6979 signatures should be deterministic")
	}
}

func TestSign_LowS(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}
	for i := 0; i < 32; i++ {
		h := Keccak256([]byte{byte(i)})
		sig, err := key.Sign(h[:])
		if err != nil {
			t.Fatalf("Sign() error: %v", err)
		}
		var s secp256k1.ModNScalar
		s.SetByteSlice(sig[32:64])
		if s.IsOverHalfOrder() {
			t.Fatalf("signature %d has high S", i)
		}
	}
}

func TestSign_MatchesGoEthereum(t *testing.T) {
	hash, priv, _, sig := signTestHash(t, "cross check")

	ecdsaKey, err := ethcrypto.ToECDSA(priv)
	if err != nil {
		t.Fatalf("ToECDSA() error: %v", err)
	}
	want, err := ethcrypto.Sign(hash, ecdsaKey)
	if err != nil {
		t.Fatalf("go-ethereum Sign() error: %v", err)
	}
	if !bytes.Equal(sig, want) {
		t.Errorf("Sign() = %x, go-ethereum = %x", sig, want)
	}

	recovered, err := ethcrypto.SigToPub(hash, sig)
	if err != nil {
		t.Fatalf("SigToPub() error: %v", err)
	}
	if got := ethcrypto.PubkeyToAddress(*recovered); !bytes.Equal(got[:], mustHex(t, testAddrHex)) {
		t.Errorf("recovered address = %x, want %s", got, testAddrHex)
	}
}

func TestSign_ZeroHash(t *testing.T) {
	priv := mustHex(t, testPrivHex)
	hash := make([]byte, HashSize)
	sig, err := Sign(hash, priv)
	if err != nil {
		t.Fatalf("Sign() on zero hash error: %v", err)
	}
	pub, _ := EthereumPublicKey(priv)
	if !Verify(sig, hash, pub) {
		t.Error("signature over zero hash should verify")
	}
}

func TestSign_InvalidHashLength(t *testing.T) {
	priv := mustHex(t, testPrivHex)
	for _, n := range []int{0, 20, 31, 33, 64} {
		_, err := Sign(make([]byte, n), priv)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Sign() with %d-byte hash error = %v, want ErrInvalidInput", n, err)
		}
	}
}

func TestSign_InvalidKey(t *testing.T) {
	hash := Keccak256([]byte("x"))
	_, err := Sign(hash[:], make([]byte, 32))
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Sign() with zero key error = %v, want ErrInvalidKey", err)
	}
}

func TestVerify_BitFlips(t *testing.T) {
	hash, _, pub, sig := signTestHash(t, "bit flips")

	for i := 0; i < 64*8; i++ {
		corrupted := append([]byte(nil), sig...)
		corrupted[i/8] ^= 1 << (i % 8)
		if Verify(corrupted, hash, pub) {
			t.Fatalf("signature with bit %d flipped should not verify", i)
		}
	}

	for i := 0; i < HashSize*8; i++ {
		corrupted := append([]byte(nil), hash...)
		corrupted[i/8] ^= 1 << (i % 8)
		if Verify(sig, corrupted, pub) {
			t.Fatalf("message with bit %d flipped should not verify", i)
		}
	}
}

func TestVerify_HighSRejected(t *testing.T) {
	hash, _, pub, sig := signTestHash(t, "malleability")

	var s secp256k1.ModNScalar
	s.SetByteSlice(sig[32:64])
	s.Negate()
	high := append([]byte(nil), sig...)
	sBytes := s.Bytes()
	copy(high[32:64], sBytes[:])
	high[64] ^= 1

	if Verify(high, hash, pub) {
		t.Error("high-S signature should be rejected")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	hash, _, _, sig := signTestHash(t, "message")
	other, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}
	otherPub, _ := other.PublicKey(FormatEthereum)
	if Verify(sig, hash, otherPub) {
		t.Error("signature should not verify with wrong public key")
	}
}

func TestVerify_InvalidInputs(t *testing.T) {
	hash, _, pub, sig := signTestHash(t, "invalid inputs")
	badV := append([]byte(nil), sig...)
	badV[64] = 27
	zeroR := append([]byte(nil), sig...)
	copy(zeroR[:32], make([]byte, 32))
	overS := append([]byte(nil), sig...)
	copy(overS[32:64], bytes.Repeat([]byte{0xff}, 32))

	tests := []struct {
		name      string
		signature []byte
		hash      []byte
		publicKey []byte
	}{
		{"nil signature", nil, hash, pub},
		{"short signature", sig[:10], hash, pub},
		{"long signature", append(sig, 0), hash, pub},
		{"bad V", badV, hash, pub},
		{"zero R", zeroR, hash, pub},
		{"S above order", overS, hash, pub},
		{"nil hash", sig, nil, pub},
		{"short hash", sig, hash[:20], pub},
		{"nil public key", sig, hash, nil},
		{"garbage public key", sig, hash, []byte("bad")},
		{"off-curve public key", sig, hash, append(append([]byte(nil), pub[:63]...), pub[63]^1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Verify(tt.signature, tt.hash, tt.publicKey) {
				t.Error("should return false for invalid inputs")
			}
		})
	}
}

func TestRecoverPublicKey(t *testing.T) {
	hash, _, pub, sig := signTestHash(t, "recover")
	got, err := RecoverPublicKey(hash, sig)
	if err != nil {
		t.Fatalf("RecoverPublicKey() error: %v", err)
	}
	if !bytes.Equal(got, pub) {
		t.Errorf("RecoverPublicKey() = %x, want %x", got, pub)
	}

	flipped := append([]byte(nil), sig...)
	flipped[64] ^= 1
	other, err := RecoverPublicKey(hash, flipped)
	if err == nil && bytes.Equal(other, pub) {
		t.Error("the other recovery id should not yield the signer's key")
	}

	if _, err := RecoverPublicKey(hash, sig[:64]); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("64-byte signature error = %v, want ErrInvalidInput", err)
	}
}

func TestPrivateKey_SignerInterface(t *testing.T) {
	var s Signer
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}
	s = key

	hash := Keccak256([]byte("signer interface test"))
	sig, err := s.Sign(hash[:])
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	pub, err := s.PublicKey(FormatBitcoin)
	if err != nil {
		t.Fatalf("PublicKey() error: %v", err)
	}

	var v Verifier = ECDSAVerifier{}
	if !v.Verify(sig, hash[:], pub) {
		t.Error("ECDSAVerifier should verify valid signature")
	}
}
