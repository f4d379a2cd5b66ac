package ulid

import (
	"golang.org/x/xerrors"

	"github.com/spikeekips/ulidgen/base32"
)

var (
	ErrInvalidLength       = base32.ErrInvalidLength
	ErrInvalidCharacter    = base32.ErrInvalidCharacter
	ErrTimestampOutOfRange = xerrors.New("timestamp out of range")
	ErrRandomnessLength    = xerrors.New("randomness must be 10 bytes")
	ErrMonotonicOverflow   = xerrors.New("monotonic entropy overflow")
	ErrValueOutOfRange     = xerrors.New("value out of 128 bit range")
)
