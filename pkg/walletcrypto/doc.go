// Package walletcrypto is the single entry surface of the wallet crypto
// core. It exposes the key, signature, hash, Base58 and mnemonic operations
// as flat functions.
//
// Every function is a pure function of its arguments (mnemonic generation
// additionally reads crypto/rand). Arguments are never modified and never
// retained after return, and every returned slice is freshly allocated and
// owned by the caller. All functions are safe for concurrent use without
// synchronization; callers may run the CPU-heavy ones (key derivation,
// PBKDF2 seed stretching) on worker goroutines as they see fit.
//
// Failures wrap one of ErrInvalidKey, ErrInvalidInput, ErrInvalidParameter
// or ErrDecode. Verify, IsValidMnemonic and the address validators report
// invalid input as false instead of failing.
package walletcrypto
