package crypto

import "fmt"

// The hex and base64 codecs below never branch on, or index tables with,
// the value of a data byte. Keys and envelopes pass through them, so the
// conversions are done with arithmetic masks instead of encoding/hex and
// encoding/base64, which use lookup tables.

// EncodeHex returns the lowercase hexadecimal encoding of src.
func EncodeHex(src []byte) []byte {
	dst := make([]byte, len(src)*2)
	for i, b := range src {
		dst[i*2] = hexDigit(b >> 4)
		dst[i*2+1] = hexDigit(b & 0x0f)
	}
	return dst
}

// DecodeHex decodes src, accepting upper and lower case digits.
func DecodeHex(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("%w: odd hex length %d", ErrInvalidEncoding, len(src))
	}

	dst := make([]byte, len(src)/2)
	if err := decodeHexInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// decodeHexInto decodes src into dst, which must be len(src)/2 bytes.
// On error dst is zeroed.
func decodeHexInto(dst, src []byte) error {
	var bad byte
	for i := range dst {
		hi, badHi := hexValue(src[i*2])
		lo, badLo := hexValue(src[i*2+1])
		dst[i] = hi<<4 | lo
		bad |= badHi | badLo
	}

	if bad != 0 {
		Wipe(dst)
		return fmt.Errorf("%w: invalid hex character", ErrInvalidEncoding)
	}
	return nil
}

// hexDigit maps 0..15 to '0'..'9', 'a'..'f'.
func hexDigit(n byte) byte {
	c := uint32(n)
	// For c < 10 the mask adds 0xd9, which wraps 'a'-10+c to '0'+c.
	return byte(87 + c + (((c - 10) >> 8) & ^uint32(38)))
}

// hexValue maps a hex digit to 0..15. bad is 0xff when c is not a hex digit
// and 0 otherwise.
func hexValue(c byte) (v byte, bad byte) {
	num := uint32(c ^ '0')
	numMask := byte((num - 10) >> 8)

	alpha := uint32(byte((uint32(c) &^ 0x20) - 55))
	alphaMask := byte(((alpha - 10) ^ (alpha - 16)) >> 8)

	v = (numMask & byte(num)) | (alphaMask & byte(alpha))
	bad = ^(numMask | alphaMask)
	return v, bad
}
