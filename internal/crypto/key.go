package crypto

import "fmt"

// ParseKey decodes a hex key. The caller owns the returned array and must
// Wipe it when done.
func ParseKey(keyHex string) (*[KeySize]byte, error) {
	if len(keyHex) != KeySize*2 {
		return nil, fmt.Errorf("%w: got %d hex characters, want %d", ErrInvalidKeySize, len(keyHex), KeySize*2)
	}

	src := []byte(keyHex)
	defer Wipe(src)

	key := new([KeySize]byte)
	if err := decodeHexInto(key[:], src); err != nil {
		return nil, err
	}
	return key, nil
}

// FormatKey renders a key as lowercase hex.
func FormatKey(key *[KeySize]byte) string {
	dst := EncodeHex(key[:])
	defer Wipe(dst)
	return string(dst)
}

// GenerateKey returns a new random key in hex form.
func GenerateKey() (string, error) {
	key := new([KeySize]byte)
	defer Wipe(key[:])

	if err := Read(key[:]); err != nil {
		return "", err
	}
	return FormatKey(key), nil
}
