// Package base32 converts 128-bit values to and from the 26 character
// Crockford base32 form used by ULIDs.
//
// The 128 bits are split into 26 groups of 5 bits, most significant group
// first. 26*5 is 130, so the first character only carries 3 significant
// bits and is always in the range 0..7. Symbols are assigned in increasing
// numeric order, so byte-wise comparison of two encoded strings gives the
// same result as comparing the underlying integers.
package base32

import (
	"encoding/binary"

	"golang.org/x/xerrors"
)

const (
	Alphabet      = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	EncodedLength = 26
)

const invalid = 0xFF

var (
	ErrInvalidLength    = xerrors.New("invalid length")
	ErrInvalidCharacter = xerrors.New("invalid character")
	ErrOverflow         = xerrors.New("value overflows 128 bits")
)

var decodeTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}

	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		t[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			t[c+('a'-'A')] = byte(i)
		}
	}

	return t
}()

func Encode(v [16]byte) string {
	return string(AppendEncode(make([]byte, 0, EncodedLength), v))
}

// AppendEncode appends the 26 character form of v to dst.
func AppendEncode(dst []byte, v [16]byte) []byte {
	hi := binary.BigEndian.Uint64(v[:8])
	lo := binary.BigEndian.Uint64(v[8:])

	for i := 0; i < EncodedLength; i++ {
		dst = append(dst, Alphabet[group(hi, lo, uint(125-5*i))])
	}

	return dst
}

// group returns the 5 bits of hi:lo whose lowest bit is at position s.
func group(hi, lo uint64, s uint) byte {
	var v uint64
	switch {
	case s >= 64:
		v = hi >> (s - 64)
	case s+5 <= 64:
		v = lo >> s
	default:
		v = lo>>s | hi<<(64-s)
	}

	return byte(v & 0x1F)
}

func Decode(s string) ([16]byte, error) {
	var v [16]byte
	if len(s) != EncodedLength {
		return v, xerrors.Errorf("expected %d characters, not %d: %w", EncodedLength, len(s), ErrInvalidLength)
	}

	var hi, lo uint64
	for i := 0; i < len(s); i++ {
		d := decodeTable[s[i]]
		if d == invalid {
			return v, xerrors.Errorf("%q at %d: %w", s[i], i, ErrInvalidCharacter)
		}

		if i == 0 && d > 7 {
			return v, xerrors.Errorf("leading %q: %w", s[i], ErrOverflow)
		}

		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(d)
	}

	binary.BigEndian.PutUint64(v[:8], hi)
	binary.BigEndian.PutUint64(v[8:], lo)

	return v, nil
}

func Valid(s string) bool {
	_, err := Decode(s)

	return err == nil
}
