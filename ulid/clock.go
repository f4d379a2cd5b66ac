package ulid

import (
	"time"

	"golang.org/x/xerrors"
)

// Clock returns the current time in milliseconds since the Unix epoch.
type Clock func() int64

func SystemClock() int64 {
	return Timestamp(time.Now())
}

// Seeded returns a Clock that always reports ms. Generators built with it
// produce ids sharing the same 10 character timestamp prefix.
func Seeded(ms int64) (Clock, error) {
	if ms < 0 || ms > MaxTime {
		return nil, xerrors.Errorf("seed, %d: %w", ms, ErrTimestampOutOfRange)
	}

	return func() int64 { return ms }, nil
}
