package types

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"
)

func TestEthereumAddress_EIP55(t *testing.T) {
	// Checksummed vectors from EIP-55.
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}

	for _, v := range vectors {
		t.Run(v, func(t *testing.T) {
			a, err := ParseEthereumAddress(strings.ToLower(v))
			if err != nil {
				t.Fatalf("ParseEthereumAddress() error: %v", err)
			}
			if a.String() != v {
				t.Errorf("String() = %s, want %s", a.String(), v)
			}
			if !IsValidEthereumAddress(v) {
				t.Error("checksummed address should be valid")
			}
		})
	}
}

func TestParseEthereumAddress_BadChecksum(t *testing.T) {
	// Flip the case of one letter in a valid checksummed address.
	bad := "0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	if IsValidEthereumAddress(bad) {
		t.Error("address with broken checksum should be invalid")
	}
}

func TestParseEthereumAddress_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"short", "0x1234"},
		{"not hex", "0x" + strings.Repeat("g", 40)},
		{"too long", "0x" + strings.Repeat("a", 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEthereumAddress(tt.in); err == nil {
				t.Errorf("ParseEthereumAddress(%q) should fail", tt.in)
			}
		})
	}
}

func TestEthereumAddress_JSON(t *testing.T) {
	a, err := ParseEthereumAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	if err != nil {
		t.Fatalf("ParseEthereumAddress() error: %v", err)
	}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"` {
		t.Errorf("MarshalJSON = %s", data)
	}
	var got EthereumAddress
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got != a {
		t.Error("JSON roundtrip mismatch")
	}
}

func mustHash160(t *testing.T, s string) Hash160 {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != Hash160Size {
		t.Fatalf("bad hash160 hex %q", s)
	}
	var h Hash160
	copy(h[:], b)
	return h
}

func TestBitcoinAddress_String(t *testing.T) {
	// hash160 of the compressed public key for private key 1.
	h := mustHash160(t, "751e76e8199196d454941c45d1b3a323f1433bd6")

	a := NewBitcoinAddress(BitcoinMainNet.PubKeyHashPrefix, h)
	if got, want := a.String(), "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if a.Prefix() != 0x00 {
		t.Errorf("Prefix() = %x, want 00", a.Prefix())
	}
	if a.Payload() != h {
		t.Error("Payload() mismatch")
	}

	p2sh := NewBitcoinAddress(BitcoinMainNet.ScriptHashPrefix, h)
	if !strings.HasPrefix(p2sh.String(), "3") {
		t.Errorf("P2SH address should start with 3, got %s", p2sh.String())
	}

	testnet := NewBitcoinAddress(BitcoinTestNet.PubKeyHashPrefix, h)
	if s := testnet.String(); s[0] != 'm' && s[0] != 'n' {
		t.Errorf("testnet P2PKH address should start with m or n, got %s", s)
	}
}

func TestParseBitcoinAddress_Roundtrip(t *testing.T) {
	h := mustHash160(t, "751e76e8199196d454941c45d1b3a323f1433bd6")
	for _, prefix := range []byte{0x00, 0x05, 0x6f, 0xc4} {
		a := NewBitcoinAddress(prefix, h)
		got, err := ParseBitcoinAddress(a.String())
		if err != nil {
			t.Fatalf("ParseBitcoinAddress(%s) error: %v", a, err)
		}
		if got != a {
			t.Errorf("roundtrip mismatch for prefix %02x", prefix)
		}
	}
}

func TestParseBitcoinAddress_Invalid(t *testing.T) {
	h := mustHash160(t, "751e76e8199196d454941c45d1b3a323f1433bd6")
	valid := NewBitcoinAddress(0x00, h).String()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"bad checksum", valid[:len(valid)-1] + "j"},
		{"bad alphabet", "0OIl" + valid[4:]},
		{"unknown prefix", NewBitcoinAddress(0x30, h).String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsValidBitcoinAddress(tt.in) {
				t.Errorf("IsValidBitcoinAddress(%q) = true, want false", tt.in)
			}
		})
	}
}

func TestCoinByName(t *testing.T) {
	c, err := CoinByName("ethereum")
	if err != nil {
		t.Fatalf("CoinByName() error: %v", err)
	}
	if c.CoinType != 60 || c.Blockchain.Type != BlockchainEthereum {
		t.Errorf("unexpected coin %+v", c)
	}
	if _, err := CoinByName("dogecoin"); err == nil {
		t.Error("unknown coin should fail")
	}
	if BlockchainBitcoin.String() != "bitcoin" {
		t.Errorf("BlockchainBitcoin.String() = %s", BlockchainBitcoin)
	}
}
