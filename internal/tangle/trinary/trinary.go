// Package trinary implements the tryte alphabet and balanced-ternary integer codec used by tangle transactions.
package trinary

import (
	"errors"
	"fmt"
	"strings"
)

// Trytes is a string over the alphabet 9A-Z, each character encoding three balanced trits.
type Trytes string

const (
	// Alphabet lists trytes in order of their value 0..13, -13..-1.
	Alphabet = "9ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// HashTrytes is the length of hashes, addresses and bundle hashes.
	HashTrytes = 81
	// AddressWithChecksumTrytes is an address followed by its 9-tryte checksum.
	AddressWithChecksumTrytes = 90
	// TagTrytes is the length of tag fields.
	TagTrytes = 27
	// TransactionTrytes is the canonical size of an encoded transaction.
	TransactionTrytes = 2673

	radix       = 27
	maxTryte    = 13
	int64Trytes = 13
)

var (
	// NullHash is the all-9 hash, also used as the empty address.
	NullHash = Trytes(strings.Repeat("9", HashTrytes))
	// NullTransaction is the all-9 transaction a node returns for unknown hashes.
	NullTransaction = Trytes(strings.Repeat("9", TransactionTrytes))

	// ErrInvalidTrytes is returned for strings outside the tryte alphabet.
	ErrInvalidTrytes = errors.New("invalid trytes")
)

// Valid reports whether s is non-empty and consists of tryte characters only.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if tryteValue(s[i]) == invalidTryte {
			return false
		}
	}
	return true
}

// ValidHash reports whether s is a well-formed 81-tryte hash.
func ValidHash(s string) bool {
	return len(s) == HashTrytes && Valid(s)
}

// Pad right-pads t with 9s up to n trytes. Longer input is returned unchanged.
func Pad(t Trytes, n int) Trytes {
	if len(t) >= n {
		return t
	}
	return t + Trytes(strings.Repeat("9", n-len(t)))
}

// IsNull reports whether t consists solely of 9s (or is empty).
func IsNull(t Trytes) bool {
	return strings.Trim(string(t), "9") == ""
}

// ToInt64 decodes little-endian balanced-ternary trytes into an integer.
// Only the first 13 trytes may be non-zero, which bounds the result to int64.
func ToInt64(t Trytes) (int64, error) {
	var (
		value int64
		power int64 = 1
	)
	for i := 0; i < len(t); i++ {
		v := tryteValue(t[i])
		if v == invalidTryte {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidTrytes, t[i], i)
		}
		if i >= int64Trytes {
			if v != 0 {
				return 0, fmt.Errorf("trytes %q overflow int64", t)
			}
			continue
		}
		value += int64(v) * power
		power *= radix
	}
	return value, nil
}

// FromInt64 encodes v as exactly n little-endian balanced-ternary trytes.
func FromInt64(v int64, n int) (Trytes, error) {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		r := v % radix
		switch {
		case r > maxTryte:
			r -= radix
		case r < -maxTryte:
			r += radix
		}
		v = (v - r) / radix
		out[i] = tryteChar(int8(r))
	}
	if v != 0 {
		return "", fmt.Errorf("value does not fit in %d trytes", n)
	}
	return Trytes(out), nil
}

const invalidTryte int8 = -128

func tryteValue(c byte) int8 {
	switch {
	case c == '9':
		return 0
	case c >= 'A' && c <= 'M':
		return int8(c-'A') + 1
	case c >= 'N' && c <= 'Z':
		return int8(c-'N') - maxTryte
	default:
		return invalidTryte
	}
}

func tryteChar(v int8) byte {
	if v < 0 {
		v += radix
	}
	return Alphabet[v]
}
