package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type DesignYAML struct {
	Count     *uint
	Format    *string
	Lower     *bool
	Generator *DesignGeneratorYAML
}

// LoadDesignYAML reads the design file at path. An empty path gives an empty
// design, so every value falls back to its default.
func LoadDesignYAML(fs afero.Fs, path string) (DesignYAML, error) {
	var de DesignYAML
	if len(strings.TrimSpace(path)) < 1 {
		return de, nil
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return de, errors.Wrap(err, "failed to read design file")
	}

	if err := yaml.Unmarshal(b, &de); err != nil {
		return de, errors.Wrapf(err, "failed to parse design file, %q", path)
	}

	return de, nil
}

func (de DesignYAML) Merge() (Design, error) {
	design := Design{}

	if de.Count != nil {
		design.Count = *de.Count
	}

	if de.Format != nil {
		design.Format = *de.Format
	}

	if de.Lower != nil {
		design.Lower = *de.Lower
	}

	if de.Generator != nil {
		d, err := de.Generator.Merge()
		if err != nil {
			return design, err
		}
		design.Generator = d
	}

	return design, nil
}

// Override returns a copy of de where every value set in o replaces the one
// in de.
func (de DesignYAML) Override(o DesignYAML) DesignYAML {
	n := de

	if o.Count != nil {
		n.Count = o.Count
	}

	if o.Format != nil {
		n.Format = o.Format
	}

	if o.Lower != nil {
		n.Lower = o.Lower
	}

	if o.Generator != nil {
		var g DesignGeneratorYAML
		if de.Generator != nil {
			g = *de.Generator
		}

		g = g.Override(*o.Generator)
		n.Generator = &g
	}

	return n
}

type DesignGeneratorYAML struct {
	Monotonic *bool
	Seed      *int64
	Entropy   *DesignEntropyYAML
}

func (de DesignGeneratorYAML) Merge() (DesignGenerator, error) {
	design := DesignGenerator{}

	if de.Monotonic != nil {
		design.Monotonic = *de.Monotonic
	}

	if de.Seed != nil {
		i := *de.Seed
		design.Seed = &i
	}

	if de.Entropy != nil {
		d, err := de.Entropy.Merge()
		if err != nil {
			return design, err
		}
		design.Entropy = d
	}

	return design, nil
}

func (de DesignGeneratorYAML) Override(o DesignGeneratorYAML) DesignGeneratorYAML {
	n := de

	if o.Monotonic != nil {
		n.Monotonic = o.Monotonic
	}

	if o.Seed != nil {
		n.Seed = o.Seed
	}

	if o.Entropy != nil {
		var e DesignEntropyYAML
		if de.Entropy != nil {
			e = *de.Entropy
		}

		if o.Entropy.Source != nil {
			e.Source = o.Entropy.Source
		}

		if o.Entropy.Seed != nil {
			e.Seed = o.Entropy.Seed
		}
		n.Entropy = &e
	}

	return n
}

type DesignEntropyYAML struct {
	Source *string
	Seed   *string
}

func (de DesignEntropyYAML) Merge() (DesignEntropy, error) {
	design := DesignEntropy{}

	if de.Source != nil {
		design.Source = strings.TrimSpace(*de.Source)
	}

	if de.Seed != nil {
		design.SeedString = strings.TrimSpace(*de.Seed)
	}

	return design, nil
}
