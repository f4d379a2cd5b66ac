package cmds

import (
	"regexp"

	"golang.org/x/xerrors"
)

var reVersion = regexp.MustCompile(`^v\d+\.\d+\.\d+(\-[0-9A-Za-z\.\-]+)?(\+[0-9A-Za-z\.\-]+)?$`)

type Version string

func (v Version) String() string {
	return string(v)
}

func (v Version) IsValid([]byte) error {
	if !reVersion.MatchString(string(v)) {
		return xerrors.Errorf("invalid version, %q", string(v))
	}

	return nil
}
