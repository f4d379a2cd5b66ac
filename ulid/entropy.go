package ulid

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/xerrors"
)

const ChaChaSeedLength = chacha20.KeySize

func DefaultEntropy() io.Reader {
	return rand.Reader
}

// ChaChaEntropy is a deterministic entropy stream: two readers built from
// the same seed return the same bytes. It is not safe for concurrent use;
// wrap it with NewLockedEntropy when shared.
type ChaChaEntropy struct {
	c *chacha20.Cipher
}

func NewChaChaEntropy(seed []byte) (*ChaChaEntropy, error) {
	if len(seed) != ChaChaSeedLength {
		return nil, xerrors.Errorf("chacha seed must be %d bytes, not %d", ChaChaSeedLength, len(seed))
	}

	c, err := chacha20.NewUnauthenticatedCipher(seed, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, xerrors.Errorf("failed to create chacha cipher: %w", err)
	}

	return &ChaChaEntropy{c: c}, nil
}

func (e *ChaChaEntropy) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	e.c.XORKeyStream(p, p)

	return len(p), nil
}

type LockedEntropy struct {
	sync.Mutex
	r io.Reader
}

func NewLockedEntropy(r io.Reader) *LockedEntropy {
	return &LockedEntropy{r: r}
}

func (e *LockedEntropy) Read(p []byte) (int, error) {
	e.Lock()
	defer e.Unlock()

	return e.r.Read(p)
}
