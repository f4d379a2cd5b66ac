// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers.
//
// A ULID is 16 bytes, big-endian: a 48 bit millisecond timestamp followed by
// 80 bits of randomness. Its string form is 26 characters of Crockford
// base32; the first 10 characters carry the timestamp and the last 16 the
// randomness. Comparing two ULIDs with Compare gives the same order as
// comparing their strings.
//
// Two generation policies are provided. Random draws fresh entropy for every
// id. Monotonic increments the previous randomness when called again within
// the same millisecond, so ids from one Monotonic are strictly increasing
// inside a millisecond.
//
//	g := ulid.NewMonotonic(nil, nil)
//	id, err := g.Generate()
//	fmt.Println(id) // 01ARYZ6S41TSV4RRFFQ69G5FAV
package ulid

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"time"

	"golang.org/x/xerrors"

	"github.com/spikeekips/ulidgen/base32"
)

const (
	TimeLength    = 6
	EntropyLength = 10
	// MaxTime is the largest timestamp a ULID can hold, 2^48-1 ms; some
	// time in the year 10889.
	MaxTime int64 = 1<<48 - 1
)

type ULID [16]byte

// New builds a ULID from a millisecond timestamp and exactly 10 bytes of
// randomness.
func New(ms int64, entropy []byte) (ULID, error) {
	var id ULID
	if ms < 0 || ms > MaxTime {
		return id, xerrors.Errorf("timestamp, %d: %w", ms, ErrTimestampOutOfRange)
	}

	if len(entropy) != EntropyLength {
		return id, xerrors.Errorf("got %d bytes: %w", len(entropy), ErrRandomnessLength)
	}

	id.setTime(ms)
	copy(id[TimeLength:], entropy)

	return id, nil
}

func MustNew(ms int64, entropy []byte) ULID {
	id, err := New(ms, entropy)
	if err != nil {
		panic(err)
	}

	return id
}

func Parse(s string) (ULID, error) {
	b, err := base32.Decode(s)
	switch {
	case err == nil:
		return ULID(b), nil
	case xerrors.Is(err, base32.ErrOverflow):
		return ULID{}, xerrors.Errorf("failed to parse %q, %v: %w", s, err, ErrTimestampOutOfRange)
	default:
		return ULID{}, xerrors.Errorf("failed to parse %q: %w", s, err)
	}
}

func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return id
}

// Timestamp converts t to milliseconds since the Unix epoch.
func Timestamp(t time.Time) int64 {
	return t.UnixMilli()
}

// EncodeTime returns the 10 character timestamp prefix for ms.
func EncodeTime(ms int64) (string, error) {
	var id ULID
	if ms < 0 || ms > MaxTime {
		return "", xerrors.Errorf("timestamp, %d: %w", ms, ErrTimestampOutOfRange)
	}
	id.setTime(ms)

	return id.String()[:10], nil
}

// FromBigInt interprets i as an unsigned 128 bit integer.
func FromBigInt(i *big.Int) (ULID, error) {
	var id ULID
	if i == nil {
		return id, xerrors.Errorf("nil integer: %w", ErrValueOutOfRange)
	} else if i.Sign() < 0 || i.BitLen() > 128 {
		return id, xerrors.Errorf("%s: %w", i.String(), ErrValueOutOfRange)
	}

	i.FillBytes(id[:])

	return id, nil
}

func (id ULID) String() string {
	return base32.Encode(id)
}

func (id ULID) Time() int64 {
	var b [8]byte
	copy(b[2:], id[:TimeLength])

	return int64(binary.BigEndian.Uint64(b[:]))
}

func (id ULID) Timestamp() time.Time {
	return time.UnixMilli(id.Time())
}

func (id ULID) Entropy() []byte {
	e := make([]byte, EntropyLength)
	copy(e, id[TimeLength:])

	return e
}

func (id ULID) Bytes() []byte {
	b := make([]byte, len(id))
	copy(b, id[:])

	return b
}

func (id ULID) IsZero() bool {
	return id == ULID{}
}

// Compare returns -1, 0 or 1. The result matches comparing the strings of
// both ids.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ULID) BigInt() *big.Int {
	return new(big.Int).SetBytes(id[:])
}

// Randomness returns the 80 bit random component as an integer.
func (id ULID) Randomness() *big.Int {
	return new(big.Int).SetBytes(id[TimeLength:])
}

func (id ULID) MarshalText() ([]byte, error) {
	return base32.AppendEncode(make([]byte, 0, base32.EncodedLength), id), nil
}

func (id *ULID) UnmarshalText(b []byte) error {
	i, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = i

	return nil
}

func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

func (id *ULID) UnmarshalBinary(b []byte) error {
	if len(b) != len(id) {
		return xerrors.Errorf("expected %d bytes, not %d: %w", len(id), len(b), ErrInvalidLength)
	}
	copy(id[:], b)

	return nil
}

func (id *ULID) setTime(ms int64) {
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
}
