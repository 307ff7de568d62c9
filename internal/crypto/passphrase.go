package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// GenerateSalt returns SaltSize random bytes for passphrase derivation.
func GenerateSalt() ([]byte, error) {
	return Bytes(SaltSize)
}

// PassphraseKey stretches a passphrase into a hex key with Argon2id.
// The salt must be at least SaltSize bytes and should come from
// GenerateSalt; it is not secret and has to be stored next to the token.
func PassphraseKey(passphrase string, salt []byte) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}
	if len(salt) < SaltSize {
		return "", fmt.Errorf("%w: got %d, want at least %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	secret := []byte(passphrase)
	defer Wipe(secret)

	key := argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, KeySize)
	defer Wipe(key)

	return FormatKey((*[KeySize]byte)(key)), nil
}
