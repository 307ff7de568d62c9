package cryptokit

import "github.com/vaultsandbox/cryptokit/internal/crypto"

// SaltSize is the size of salts returned by GenerateSalt.
const SaltSize = crypto.SaltSize

// GenerateKey returns a new random encryption key as 64 lowercase hex
// characters. The key is not stored anywhere; keeping it is up to the
// caller.
func GenerateKey() (string, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", wrapError("generate key", err)
	}
	return key, nil
}

// DeriveKey derives an independent subkey of masterKeyHex for the context
// info using HKDF-SHA-512. The same master key and info always produce the
// same subkey; different info strings produce unrelated subkeys.
func DeriveKey(masterKeyHex, info string) (string, error) {
	key, err := crypto.DeriveSubkey(masterKeyHex, []byte(info))
	if err != nil {
		return "", wrapError("derive key", err)
	}
	return key, nil
}

// GenerateSalt returns a random salt for KeyFromPassphrase.
func GenerateSalt() ([]byte, error) {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, wrapError("generate salt", err)
	}
	return salt, nil
}

// KeyFromPassphrase stretches a passphrase into an encryption key with
// Argon2id. The salt must be at least SaltSize bytes; store it alongside
// the tokens, it is needed to derive the same key again.
func KeyFromPassphrase(passphrase string, salt []byte) (string, error) {
	key, err := crypto.PassphraseKey(passphrase, salt)
	if err != nil {
		return "", wrapError("key from passphrase", err)
	}
	return key, nil
}
