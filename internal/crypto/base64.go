package crypto

import "fmt"

// Standard base64 (RFC 4648 §4) with padding, in constant time with respect
// to the data bytes. Only this one variant is supported.

// EncodeBase64 returns the padded standard base64 encoding of src.
func EncodeBase64(src []byte) []byte {
	dst := make([]byte, (len(src)+2)/3*4)

	di, si := 0, 0
	for ; si+3 <= len(src); si += 3 {
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8 | uint32(src[si+2])
		dst[di] = base64Char(v >> 18 & 0x3f)
		dst[di+1] = base64Char(v >> 12 & 0x3f)
		dst[di+2] = base64Char(v >> 6 & 0x3f)
		dst[di+3] = base64Char(v & 0x3f)
		di += 4
	}

	switch len(src) - si {
	case 1:
		v := uint32(src[si]) << 16
		dst[di] = base64Char(v >> 18 & 0x3f)
		dst[di+1] = base64Char(v >> 12 & 0x3f)
		dst[di+2] = '='
		dst[di+3] = '='
	case 2:
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8
		dst[di] = base64Char(v >> 18 & 0x3f)
		dst[di+1] = base64Char(v >> 12 & 0x3f)
		dst[di+2] = base64Char(v >> 6 & 0x3f)
		dst[di+3] = '='
	}

	return dst
}

// DecodeBase64 decodes padded standard base64. It rejects a length that is
// not a multiple of four, characters outside the alphabet, padding anywhere
// but the end, and non-zero bits left over before the padding.
func DecodeBase64(src []byte) ([]byte, error) {
	if len(src)%4 != 0 {
		return nil, fmt.Errorf("%w: base64 length %d is not a multiple of 4", ErrInvalidEncoding, len(src))
	}
	if len(src) == 0 {
		return []byte{}, nil
	}

	pad := 0
	if src[len(src)-1] == '=' {
		pad++
		if src[len(src)-2] == '=' {
			pad++
		}
	}

	dst := make([]byte, len(src)/4*3-pad)

	var bad uint32
	di := 0
	for si := 0; si < len(src); si += 4 {
		last := si+4 == len(src)

		var v uint32
		for j := 0; j < 4; j++ {
			v <<= 6
			if last && j >= 4-pad {
				continue
			}
			s := base64Value(uint32(src[si+j]))
			bad |= ctEq(s, 0xff)
			v |= s & 0x3f
		}

		if !last || pad == 0 {
			dst[di] = byte(v >> 16)
			dst[di+1] = byte(v >> 8)
			dst[di+2] = byte(v)
			di += 3
			continue
		}

		dst[di] = byte(v >> 16)
		if pad == 1 {
			dst[di+1] = byte(v >> 8)
			bad |= ctEq(v&0xff, 0) ^ 0xff
		} else {
			bad |= ctEq(v>>8&0xff, 0) ^ 0xff
		}
	}

	if bad != 0 {
		Wipe(dst)
		return nil, fmt.Errorf("%w: malformed base64", ErrInvalidEncoding)
	}
	return dst, nil
}

// base64Char maps a 6-bit value to its alphabet character.
func base64Char(x uint32) byte {
	return byte((ctLt(x, 26) & (x + 'A')) |
		(ctGe(x, 26) & ctLt(x, 52) & (x + ('a' - 26))) |
		(ctGe(x, 52) & ctLt(x, 62) & (x - (52 - '0'))) |
		(ctEq(x, 62) & '+') |
		(ctEq(x, 63) & '/'))
}

// base64Value maps an alphabet character to its 6-bit value, or 0xff when c
// is not in the alphabet.
func base64Value(c uint32) uint32 {
	x := (ctGe(c, 'A') & ctLe(c, 'Z') & (c - 'A')) |
		(ctGe(c, 'a') & ctLe(c, 'z') & (c - ('a' - 26))) |
		(ctGe(c, '0') & ctLe(c, '9') & (c + (52 - '0'))) |
		(ctEq(c, '+') & 62) |
		(ctEq(c, '/') & 63)
	return x | (ctEq(x, 0) & (ctEq(c, 'A') ^ 0xff))
}

// Branch-free byte comparisons. Operands must be below 256; results are
// 0xff for true and 0 for false.

func ctEq(x, y uint32) uint32 { return (((0 - (x ^ y)) >> 8) & 0xff) ^ 0xff }
func ctGt(x, y uint32) uint32 { return ((y - x) >> 8) & 0xff }
func ctGe(x, y uint32) uint32 { return ctGt(y, x) ^ 0xff }
func ctLt(x, y uint32) uint32 { return ctGt(y, x) }
func ctLe(x, y uint32) uint32 { return ctGe(y, x) }
