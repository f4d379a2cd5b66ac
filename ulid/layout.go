package ulid

import (
	"fmt"
	"io"
	"strings"
)

var layoutBorder = strings.Repeat("+-", 32) + "+"

// Layout writes the binary layout of id, 32 bits per row:
//
//	time high 32 | time low 16, random 16 | random 32 | random 32
func (id ULID) Layout(w io.Writer) error {
	var sb strings.Builder
	for i := range id {
		_, _ = fmt.Fprintf(&sb, "%08b", id[i])
	}
	bits := sb.String()
	t, r := bits[:48], bits[48:]

	pad := strings.Repeat(" ", 16)
	half := strings.Repeat(" ", 8)

	rows := []string{
		layoutBorder,
		"|" + pad + t[:32] + pad[1:] + "|",
		layoutBorder,
		"|" + half + t[32:] + half[1:] + "|" + half + r[:16] + half[1:] + "|",
		layoutBorder,
		"|" + pad + r[16:48] + pad[1:] + "|",
		layoutBorder,
		"|" + pad + r[48:] + pad[1:] + "|",
		layoutBorder,
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}

	return nil
}
