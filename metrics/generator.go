// Package metrics instruments ulid generators with Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/xerrors"

	"github.com/spikeekips/ulidgen/ulid"
)

const (
	ResultOK        = "ok"
	ResultOverflow  = "overflow"
	ResultTimestamp = "timestamp_out_of_range"
	ResultError     = "error"
)

type Generator struct {
	g         ulid.Generator
	policy    string
	generated *prometheus.CounterVec
}

// NewGenerator wraps g and registers its counter on reg. policy labels the
// counter, so several generators can share one registry.
func NewGenerator(g ulid.Generator, policy string, reg prometheus.Registerer) (*Generator, error) {
	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ulid",
		Name:      "generated_total",
		Help:      "Number of Generate calls, by generation policy and result.",
	}, []string{"policy", "result"})

	if err := reg.Register(generated); err != nil {
		are := prometheus.AlreadyRegisteredError{}
		if !xerrors.As(err, &are) {
			return nil, xerrors.Errorf("failed to register ulid counter: %w", err)
		}

		i, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, xerrors.Errorf("ulid counter already registered with different type, %T", are.ExistingCollector)
		}
		generated = i
	}

	return &Generator{g: g, policy: policy, generated: generated}, nil
}

func (g *Generator) Generate() (ulid.ULID, error) {
	id, err := g.g.Generate()
	g.generated.WithLabelValues(g.policy, result(err)).Inc()

	return id, err
}

func (g *Generator) Counter(result string) prometheus.Counter {
	return g.generated.WithLabelValues(g.policy, result)
}

func result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case xerrors.Is(err, ulid.ErrMonotonicOverflow):
		return ResultOverflow
	case xerrors.Is(err, ulid.ErrTimestampOutOfRange):
		return ResultTimestamp
	default:
		return ResultError
	}
}
