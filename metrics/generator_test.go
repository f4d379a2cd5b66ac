package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/spikeekips/ulidgen/ulid"
)

type testGenerator struct {
	suite.Suite
}

func (t *testGenerator) TestCounts() {
	reg := prometheus.NewRegistry()

	clock, err := ulid.Seeded(1469918176385)
	t.NoError(err)

	ones := bytes.Repeat([]byte{0xFF}, ulid.EntropyLength)
	g, err := NewGenerator(ulid.NewMonotonic(clock, bytes.NewReader(ones)), "monotonic", reg)
	t.NoError(err)

	_, err = g.Generate()
	t.NoError(err)

	for i := 0; i < 2; i++ {
		_, err = g.Generate()
		t.True(xerrors.Is(err, ulid.ErrMonotonicOverflow))
	}

	t.Equal(float64(1), testutil.ToFloat64(g.Counter(ResultOK)))
	t.Equal(float64(2), testutil.ToFloat64(g.Counter(ResultOverflow)))
	t.Equal(float64(0), testutil.ToFloat64(g.Counter(ResultError)))
}

func (t *testGenerator) TestSharedRegistry() {
	reg := prometheus.NewRegistry()

	a, err := NewGenerator(ulid.NewRandom(nil, nil), "random", reg)
	t.NoError(err)
	b, err := NewGenerator(ulid.NewMonotonic(nil, nil), "monotonic", reg)
	t.NoError(err)

	for i := 0; i < 3; i++ {
		_, err = a.Generate()
		t.NoError(err)
	}
	_, err = b.Generate()
	t.NoError(err)

	t.Equal(float64(3), testutil.ToFloat64(a.Counter(ResultOK)))
	t.Equal(float64(1), testutil.ToFloat64(b.Counter(ResultOK)))
}

func (t *testGenerator) TestResult() {
	cases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", expected: ResultOK},
		{name: "overflow", err: xerrors.Errorf("at 1: %w", ulid.ErrMonotonicOverflow), expected: ResultOverflow},
		{name: "timestamp", err: ulid.ErrTimestampOutOfRange, expected: ResultTimestamp},
		{name: "other", err: xerrors.Errorf("failed to read entropy"), expected: ResultError},
	}

	for i, c := range cases {
		i := i
		c := c
		t.Run(
			c.name,
			func() {
				t.Equal(c.expected, result(c.err), "%d: %s", i, c.name)
			},
		)
	}
}

func TestGenerator(t *testing.T) {
	suite.Run(t, new(testGenerator))
}
