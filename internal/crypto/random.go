package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// randReader overrides crypto/rand when set. Only tests set it.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// Read fills b from the secure random source.
func Read(b []byte) error {
	if _, err := io.ReadFull(reader(), b); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return nil
}

// Bytes returns n bytes from the secure random source. n may not exceed
// MaxRandomLength.
func Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if n > MaxRandomLength {
		return nil, fmt.Errorf("%w: %d > %d", ErrLengthTooLarge, n, MaxRandomLength)
	}

	b := make([]byte, n)
	if err := Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Index returns a uniformly distributed integer in [0, bound).
//
// Draws are 64-bit. Values below 2^64 mod bound are rejected and redrawn, so
// the accepted range is an exact multiple of bound and the final reduction is
// unbiased.
func Index(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBound, bound)
	}

	n := uint64(bound)
	threshold := -n % n

	var buf [8]byte
	defer Wipe(buf[:])

	for {
		if err := Read(buf[:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v >= threshold {
			return int(v % n), nil
		}
	}
}

// String returns length bytes, each picked uniformly from keyspace. length
// may not exceed MaxRandomLength.
func String(length int, keyspace string) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	if length > MaxRandomLength {
		return "", fmt.Errorf("%w: %d > %d", ErrLengthTooLarge, length, MaxRandomLength)
	}
	if len(keyspace) == 0 {
		return "", ErrEmptyKeyspace
	}

	out := make([]byte, length)
	defer Wipe(out)

	for i := range out {
		idx, err := Index(len(keyspace))
		if err != nil {
			return "", err
		}
		out[i] = keyspace[idx]
	}

	return string(out), nil
}
