package cmds

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/spikeekips/ulidgen/ulid"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

type DecodeCommand struct {
	IDs    []string `arg:"" name:"ulid" help:"ulid strings"`
	Layout bool     `name:"layout" help:"print binary layout"`
	out    io.Writer
}

func NewDecodeCommand() DecodeCommand {
	return DecodeCommand{out: os.Stdout}
}

func (cmd *DecodeCommand) Run() error {
	for _, s := range cmd.IDs {
		id, err := ulid.Parse(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrapf(err, "invalid ulid, %q", s)
		}

		if _, err := fmt.Fprintf(cmd.out, "%s\n  time: %s (%d)\n  randomness: %s\n",
			id,
			id.Timestamp().UTC().Format(timeFormat),
			id.Time(),
			id.Randomness().String(),
		); err != nil {
			return err
		}

		if cmd.Layout {
			if err := id.Layout(cmd.out); err != nil {
				return err
			}
		}
	}

	return nil
}
