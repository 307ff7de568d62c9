package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key using HKDF-SHA-512.
//
// Parameters:
//   - secret: the input key material
//   - salt: optional salt value; if empty, a zero-filled salt is used
//   - info: context string for domain separation
//   - length: desired output length in bytes
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		Wipe(key)
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// DeriveSubkey derives a KeySize subkey of the hex master key for the given
// context, returned in hex. The same (master, info) pair always yields the
// same subkey.
func DeriveSubkey(masterHex string, info []byte) (string, error) {
	master, err := ParseKey(masterHex)
	if err != nil {
		return "", err
	}
	defer Wipe(master[:])

	sub, err := DeriveKey(master[:], nil, info, KeySize)
	if err != nil {
		return "", err
	}
	defer Wipe(sub)

	return FormatKey((*[KeySize]byte)(sub)), nil
}
