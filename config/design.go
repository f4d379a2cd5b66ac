package config

import (
	"encoding/hex"
	"strings"

	"golang.org/x/xerrors"

	"github.com/spikeekips/ulidgen/ulid"
)

const (
	FormatULID = "ulid"
	FormatUUID = "uuid"
)

const (
	EntropyCrypto = "crypto"
	EntropyChaCha = "chacha"
)

var defaultCount uint = 1

type Design struct {
	Count     uint
	Format    string
	Lower     bool
	Generator DesignGenerator
}

func (de *Design) IsValid([]byte) error {
	if de.Count < 1 {
		de.Count = defaultCount
	}

	switch de.Format = strings.ToLower(strings.TrimSpace(de.Format)); de.Format {
	case "":
		de.Format = FormatULID
	case FormatULID:
	case FormatUUID:
		if de.Lower {
			return xerrors.Errorf("lower is only for ulid format")
		}
	default:
		return xerrors.Errorf("unknown format, %q", de.Format)
	}

	return de.Generator.IsValid(nil)
}

type DesignGenerator struct {
	Monotonic bool
	Seed      *int64 // fixed millisecond timestamp; nil means system clock
	Entropy   DesignEntropy
}

func (de *DesignGenerator) IsValid([]byte) error {
	if de.Seed != nil {
		if *de.Seed < 0 || *de.Seed > ulid.MaxTime {
			return xerrors.Errorf("seed out of range, %d: %w", *de.Seed, ulid.ErrTimestampOutOfRange)
		}
	}

	return de.Entropy.IsValid(nil)
}

// Policy names the generation policy; it labels metrics and log entries.
func (de DesignGenerator) Policy() string {
	if de.Monotonic {
		return "monotonic"
	}

	return "random"
}

type DesignEntropy struct {
	Source     string
	SeedString string
	Seed       []byte `json:"-"`
}

func (de *DesignEntropy) IsValid([]byte) error {
	switch de.Source = strings.ToLower(strings.TrimSpace(de.Source)); de.Source {
	case "":
		de.Source = EntropyCrypto
	case EntropyCrypto, EntropyChaCha:
	default:
		return xerrors.Errorf("unknown entropy source, %q", de.Source)
	}

	if de.Source == EntropyCrypto {
		if len(de.SeedString) > 0 {
			return xerrors.Errorf("entropy seed given for crypto source")
		}

		return nil
	}

	if len(de.SeedString) < 1 {
		return xerrors.Errorf("empty entropy seed for chacha source")
	}

	b, err := hex.DecodeString(de.SeedString)
	if err != nil {
		return xerrors.Errorf("invalid entropy seed: %w", err)
	} else if len(b) != ulid.ChaChaSeedLength {
		return xerrors.Errorf("entropy seed should be %d bytes, not %d", ulid.ChaChaSeedLength, len(b))
	}
	de.Seed = b

	return nil
}
