package cmds

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/spikeekips/ulidgen/config"
	"github.com/spikeekips/ulidgen/ulid"
)

func newGenerator(de config.DesignGenerator, log zerolog.Logger) (ulid.Generator, error) {
	clock := ulid.Clock(ulid.SystemClock)
	if de.Seed != nil {
		i, err := ulid.Seeded(*de.Seed)
		if err != nil {
			return nil, err
		}
		clock = i
	}

	var entropy io.Reader
	switch de.Entropy.Source {
	case config.EntropyChaCha:
		i, err := ulid.NewChaChaEntropy(de.Entropy.Seed)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create chacha entropy")
		}
		entropy = i
	default:
		entropy = ulid.DefaultEntropy()
	}

	if de.Monotonic {
		return ulid.NewMonotonic(clock, entropy).SetLogger(log), nil
	}

	return ulid.NewRandom(clock, entropy), nil
}

func formatID(id ulid.ULID, design config.Design) string {
	switch {
	case design.Format == config.FormatUUID:
		return id.UUID().String()
	case design.Lower:
		return strings.ToLower(id.String())
	default:
		return id.String()
	}
}
