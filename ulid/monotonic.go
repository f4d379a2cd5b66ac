package ulid

import (
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// Monotonic produces strictly increasing ids within a millisecond. When the
// clock reports the same millisecond as the previous call, the previous
// randomness is incremented by one instead of drawing new entropy. When the
// increment would overflow 80 bits, Generate returns ErrMonotonicOverflow
// until the millisecond changes.
//
// If the clock moves backward, the id is built with fresh entropy for the
// earlier millisecond. Ordering then holds only within each millisecond, not
// across the whole sequence.
//
// Monotonic is not safe for concurrent use. Confine it to one goroutine or
// wrap it with NewLocked.
type Monotonic struct {
	log         zerolog.Logger
	clock       Clock
	entropy     io.Reader
	tracking    bool
	lastTime    int64
	lastEntropy [EntropyLength]byte
}

// NewMonotonic returns a Monotonic generator. A nil clock reads the wall
// clock and a nil entropy uses crypto/rand.
func NewMonotonic(clock Clock, entropy io.Reader) *Monotonic {
	if clock == nil {
		clock = SystemClock
	}

	if entropy == nil {
		entropy = DefaultEntropy()
	}

	return &Monotonic{
		log:     zerolog.Nop(),
		clock:   clock,
		entropy: entropy,
	}
}

func (g *Monotonic) SetLogger(l zerolog.Logger) *Monotonic {
	g.log = l.With().Str("module", "monotonic-generator").Logger()

	return g
}

func (g *Monotonic) Generate() (ULID, error) {
	ms := g.clock()
	if ms < 0 || ms > MaxTime {
		return ULID{}, xerrors.Errorf("timestamp, %d: %w", ms, ErrTimestampOutOfRange)
	}

	switch {
	case g.tracking && ms == g.lastTime:
		e := g.lastEntropy
		if !increment(e[:]) {
			g.log.Debug().Int64("time", ms).Msg("entropy exhausted within millisecond")

			return ULID{}, xerrors.Errorf("at %d: %w", ms, ErrMonotonicOverflow)
		}
		g.lastEntropy = e
	default:
		if g.tracking && ms < g.lastTime {
			g.log.Debug().Int64("time", ms).Int64("last_time", g.lastTime).Msg("clock moved backward")
		}

		var e [EntropyLength]byte
		if err := readEntropy(g.entropy, e[:]); err != nil {
			return ULID{}, err
		}

		g.lastEntropy = e
		g.lastTime = ms
		g.tracking = true
	}

	return New(g.lastTime, g.lastEntropy[:])
}

// increment adds one to b as a big-endian unsigned integer. It returns
// false, leaving b untouched, when every bit is already set.
func increment(b []byte) bool {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0xFF {
			b[i]++
			for j := i + 1; j < len(b); j++ {
				b[j] = 0
			}

			return true
		}
	}

	return false
}
