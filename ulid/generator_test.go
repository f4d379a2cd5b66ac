package ulid

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testRandom struct {
	suite.Suite
}

func (t *testRandom) TestGenerate() {
	g := NewRandom(nil, nil)

	seen := map[ULID]struct{}{}
	for i := 0; i < 1000; i++ {
		id, err := g.Generate()
		t.NoError(err)
		t.Equal(26, len(id.String()))

		_, found := seen[id]
		t.False(found, "duplicated, %s", id)
		seen[id] = struct{}{}
	}
}

func (t *testRandom) TestSeeded() {
	clock, err := Seeded(1469918176385)
	t.NoError(err)

	g := NewRandom(clock, nil)

	var prev ULID
	for i := 0; i < 10; i++ {
		id, err := g.Generate()
		t.NoError(err)
		t.Equal("01ARYZ6S41", id.String()[:10])
		t.NotEqual(prev, id)
		prev = id
	}
}

func (t *testRandom) TestSeedOutOfRange() {
	for _, ms := range []int64{-1, MaxTime + 1} {
		clock, err := Seeded(ms)
		t.True(xerrors.Is(err, ErrTimestampOutOfRange), "%d: %v", ms, err)
		t.Nil(clock)
	}
}

func (t *testRandom) TestUsesEntropy() {
	clock, _ := Seeded(42)
	e := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	id, err := NewRandom(clock, bytes.NewReader(e)).Generate()
	t.NoError(err)
	t.Equal(int64(42), id.Time())
	t.Equal(e, id.Entropy())
}

func (t *testRandom) TestEntropyFailure() {
	clock, _ := Seeded(42)

	_, err := NewRandom(clock, bytes.NewReader(nil)).Generate()
	t.True(xerrors.Is(err, io.EOF), "%v", err)
}

func (t *testRandom) TestClockOutOfRange() {
	_, err := NewRandom(func() int64 { return -1 }, nil).Generate()
	t.True(xerrors.Is(err, ErrTimestampOutOfRange))
}

func (t *testRandom) TestGeneratorInterface() {
	clock, _ := Seeded(7)

	for _, g := range []Generator{
		NewRandom(clock, nil),
		NewMonotonic(clock, nil),
		NewLocked(NewMonotonic(clock, nil)),
	} {
		id, err := g.Generate()
		t.NoError(err)
		t.Equal(int64(7), id.Time())
	}
}

func (t *testRandom) TestConcurrent() {
	const goroutines = 50
	const perGoroutine = 100

	for _, g := range []Generator{
		NewRandom(nil, nil),
		NewLocked(NewMonotonic(nil, nil)),
	} {
		results := make(chan ULID, goroutines*perGoroutine)

		var wg sync.WaitGroup
		wg.Add(goroutines)
		for i := 0; i < goroutines; i++ {
			go func() {
				defer wg.Done()

				for j := 0; j < perGoroutine; j++ {
					id, err := g.Generate()
					if err != nil {
						continue
					}
					results <- id
				}
			}()
		}
		wg.Wait()
		close(results)

		seen := map[ULID]struct{}{}
		for id := range results {
			_, found := seen[id]
			t.False(found, "duplicated, %s", id)
			seen[id] = struct{}{}
		}
		t.Equal(goroutines*perGoroutine, len(seen))
	}
}

func TestRandom(t *testing.T) {
	suite.Run(t, new(testRandom))
}
