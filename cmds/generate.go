package cmds

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/spikeekips/ulidgen/config"
	"github.com/spikeekips/ulidgen/metrics"
)

type GenerateCommand struct {
	*LogFlags
	Design      string `arg:"" optional:"" name:"design" help:"generator design file"`
	Count       uint   `name:"count" short:"n" help:"number of ids to generate"`
	Monotonic   bool   `name:"monotonic" help:"ids in the same millisecond increase monotonically"`
	NoMonotonic bool   `name:"no-monotonic" help:"disable monotonic generation set in design file"`
	Seed        string `name:"seed" help:"fixed timestamp in milliseconds"`
	EntropySeed string `name:"entropy-seed" help:"hex encoded 32 bytes seed; ids come from a chacha20 stream"`
	Format      string `name:"format" help:"output format {ulid uuid}"`
	Lower       bool   `name:"lower" help:"print ulid in lowercase"`
	NoLower     bool   `name:"no-lower" help:"disable lowercase set in design file"`
	log         zerolog.Logger
	fs          afero.Fs
	out         io.Writer
	errOut      io.Writer
}

func NewGenerateCommand() GenerateCommand {
	return GenerateCommand{
		LogFlags: &LogFlags{},
		log:      zerolog.Nop(),
		fs:       afero.NewOsFs(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

func (cmd *GenerateCommand) Run(version Version) error {
	i, err := SetupLoggingFromFlags(cmd.LogFlags, cmd.errOut)
	if err != nil {
		return err
	}
	cmd.log = i.With().Str("module", "command-generate").Logger()

	_, _ = maxprocs.Set(maxprocs.Logger(func(f string, s ...interface{}) {
		cmd.log.Debug().Msgf(f, s...)
	}))

	if err := version.IsValid(nil); err != nil {
		return err
	}

	cmd.log.Debug().Str("version", version.String()).Interface("flags", cmd).Msg("flags parsed")

	design, err := cmd.loadDesign()
	if err != nil {
		return err
	}

	cmd.log.Debug().Interface("design", design).Msg("design loaded")

	return cmd.generate(design)
}

func (cmd *GenerateCommand) loadDesign() (config.Design, error) {
	dy, err := config.LoadDesignYAML(cmd.fs, cmd.Design)
	if err != nil {
		return config.Design{}, err
	}

	o, err := cmd.flagsDesign()
	if err != nil {
		return config.Design{}, err
	}

	design, err := dy.Override(o).Merge()
	if err != nil {
		return design, err
	}

	if err := design.IsValid(nil); err != nil {
		return design, errors.Wrap(err, "invalid design")
	}

	return design, nil
}

// flagsDesign collects the flags given in command line; they override the
// design file.
func (cmd *GenerateCommand) flagsDesign() (config.DesignYAML, error) {
	var de config.DesignYAML
	if cmd.Count > 0 {
		i := cmd.Count
		de.Count = &i
	}

	if s := strings.TrimSpace(cmd.Format); len(s) > 0 {
		de.Format = &s
	}

	switch {
	case cmd.Lower && cmd.NoLower:
		return de, errors.Errorf("both --lower and --no-lower given")
	case cmd.Lower, cmd.NoLower:
		b := cmd.Lower
		de.Lower = &b
	}

	var g config.DesignGeneratorYAML
	var hasGenerator bool
	switch {
	case cmd.Monotonic && cmd.NoMonotonic:
		return de, errors.Errorf("both --monotonic and --no-monotonic given")
	case cmd.Monotonic, cmd.NoMonotonic:
		b := cmd.Monotonic
		g.Monotonic = &b
		hasGenerator = true
	}

	if s := strings.TrimSpace(cmd.Seed); len(s) > 0 {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return de, errors.Wrapf(err, "invalid seed, %q", cmd.Seed)
		}
		g.Seed = &i
		hasGenerator = true
	}

	if s := strings.TrimSpace(cmd.EntropySeed); len(s) > 0 {
		source := config.EntropyChaCha
		g.Entropy = &config.DesignEntropyYAML{Source: &source, Seed: &s}
		hasGenerator = true
	}

	if hasGenerator {
		de.Generator = &g
	}

	return de, nil
}

func (cmd *GenerateCommand) generate(design config.Design) error {
	policy := design.Generator.Policy()

	i, err := newGenerator(design.Generator, cmd.log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	g, err := metrics.NewGenerator(i, policy, reg)
	if err != nil {
		return err
	}

	defer cmd.logMetrics(reg)

	cmd.log.Debug().Str("policy", policy).Uint("count", design.Count).Msg("trying to generate")

	for j := uint(0); j < design.Count; j++ {
		id, err := g.Generate()
		if err != nil {
			return errors.Wrapf(err, "failed to generate id at %d", j)
		}

		if _, err := fmt.Fprintln(cmd.out, formatID(id, design)); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *GenerateCommand) logMetrics(reg prometheus.Gatherer) {
	mfs, err := reg.Gather()
	if err != nil {
		cmd.log.Error().Err(err).Msg("failed to gather metrics")

		return
	}

	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			e := cmd.log.Info().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				e = e.Str(lp.GetName(), lp.GetValue())
			}

			e.Float64("value", m.GetCounter().GetValue()).Msg("generated")
		}
	}
}
