package cmds

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/spikeekips/ulidgen/ulid"
)

type EncodeCommand struct {
	Value     string `arg:"" name:"value" help:"unsigned 128 bit integer, decimal or 0x prefixed hex"`
	Timestamp bool   `name:"timestamp" help:"encode value as milliseconds into the 10 characters timestamp"`
	out       io.Writer
}

func NewEncodeCommand() EncodeCommand {
	return EncodeCommand{out: os.Stdout}
}

func (cmd *EncodeCommand) Run() error {
	s := strings.TrimSpace(cmd.Value)

	var encoded string
	if cmd.Timestamp {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid timestamp, %q", cmd.Value)
		}

		i, err := ulid.EncodeTime(ms)
		if err != nil {
			return err
		}
		encoded = i
	} else {
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return xerrors.Errorf("invalid integer, %q", cmd.Value)
		}

		id, err := ulid.FromBigInt(n)
		if err != nil {
			return err
		}
		encoded = id.String()
	}

	_, err := fmt.Fprintln(cmd.out, encoded)

	return err
}
