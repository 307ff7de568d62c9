// Package cryptokit provides authenticated symmetric encryption, secure
// random values and key handling for storing small secrets as
// self-contained tokens.
//
// Basic usage:
//
//	key, err := cryptokit.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := cryptokit.Encrypt([]byte("secret"), key, cryptokit.FormatHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := cryptokit.Decrypt(token, key, cryptokit.FormatHex)
//	if errors.Is(err, cryptokit.ErrDecryptionFailed) {
//	    // wrong key, wrong format, or the token was modified
//	}
//
// A token is nonce (24 bytes) || ciphertext || tag (16 bytes), encoded as
// binary, base64 or hex. It does not record the key, format or algorithm;
// callers keep those consistent between Encrypt and Decrypt.
//
// Keys are 32 bytes exchanged as 64 hex characters. Nonces are always
// generated internally and never accepted from callers. Intermediate
// buffers holding keys, nonces and envelopes are zeroed before every
// function returns, including on error.
//
// Random strings:
//
//	password, err := cryptokit.RandomString(20, cryptokit.DefaultKeyspace)
//
// All functions are safe for concurrent use.
package cryptokit
