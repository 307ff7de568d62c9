// Package crypto implements the primitives behind cryptokit: the secure
// random source, constant-time hex and base64 codecs, AEAD sealing of
// envelopes, key parsing and derivation, and buffer wiping.
//
// # Envelope
//
// Every encrypted token is, before encoding:
//
//	nonce (24 bytes) || ciphertext || tag (16 bytes)
//
// There is no version byte and no algorithm identifier. The nonce is always
// drawn from the random source inside [Seal]; no function accepts a caller
// nonce, so a (key, nonce) pair cannot be reused through this package.
//
// # Algorithms
//
//   - XSalsa20-Poly1305 (NaCl secretbox): the default, compatible with
//     libsodium crypto_secretbox.
//   - XChaCha20-Poly1305: the IETF AEAD with an extended nonce.
//
// # Failure Semantics
//
// [Open] reports every authentication or structural failure as
// [ErrDecryptionFailed]. Distinguishing a short envelope from a tag mismatch
// would hand an attacker a decryption oracle.
//
// [ErrEntropyUnavailable] means crypto/rand failed. It is never retried.
//
// # Memory Hygiene
//
// Parsed keys, nonces, raw envelopes and other intermediates are passed to
// [Wipe] via defer, so they are zeroed on every return path. Buffers owned by
// the caller are never modified.
package crypto
