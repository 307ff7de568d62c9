package crypto

import (
	"fmt"
	"strings"
)

// Format selects the wire representation of an envelope.
type Format uint8

const (
	// FormatBinary leaves the envelope as raw bytes.
	FormatBinary Format = iota
	// FormatBase64 encodes the envelope as padded standard base64.
	FormatBase64
	// FormatHex encodes the envelope as lowercase hexadecimal.
	FormatHex
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatBase64:
		return "base64"
	case FormatHex:
		return "hex"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Valid reports whether f is one of the defined formats.
func (f Format) Valid() bool {
	return f <= FormatHex
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin", "raw":
		return FormatBinary, nil
	case "base64", "b64":
		return FormatBase64, nil
	case "hex", "hexadecimal":
		return FormatHex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode renders data in format f. The result never aliases data.
func Encode(data []byte, f Format) ([]byte, error) {
	switch f {
	case FormatBinary:
		return append([]byte{}, data...), nil
	case FormatBase64:
		return EncodeBase64(data), nil
	case FormatHex:
		return EncodeHex(data), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
}

// Decode parses data in format f. The result never aliases data.
func Decode(data []byte, f Format) ([]byte, error) {
	switch f {
	case FormatBinary:
		return append([]byte{}, data...), nil
	case FormatBase64:
		return DecodeBase64(data)
	case FormatHex:
		return DecodeHex(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
}
