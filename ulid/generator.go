package ulid

import (
	"io"
	"sync"

	"golang.org/x/xerrors"
)

type Generator interface {
	Generate() (ULID, error)
}

// Random draws fresh entropy for every id. It keeps no state between calls
// and is safe for concurrent use as long as its entropy reader is.
type Random struct {
	clock   Clock
	entropy io.Reader
}

// NewRandom returns a Random generator. A nil clock reads the wall clock and
// a nil entropy uses crypto/rand.
func NewRandom(clock Clock, entropy io.Reader) *Random {
	if clock == nil {
		clock = SystemClock
	}

	if entropy == nil {
		entropy = DefaultEntropy()
	}

	return &Random{clock: clock, entropy: entropy}
}

func (g *Random) Generate() (ULID, error) {
	ms := g.clock()

	var e [EntropyLength]byte
	if err := readEntropy(g.entropy, e[:]); err != nil {
		return ULID{}, err
	}

	return New(ms, e[:])
}

// Locked serializes calls to the wrapped Generator.
type Locked struct {
	sync.Mutex
	g Generator
}

func NewLocked(g Generator) *Locked {
	return &Locked{g: g}
}

func (g *Locked) Generate() (ULID, error) {
	g.Lock()
	defer g.Unlock()

	return g.g.Generate()
}

func readEntropy(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		return xerrors.Errorf("failed to read entropy: %w", err)
	}

	return nil
}
