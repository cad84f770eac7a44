// Package trace renders the round-by-round record of an AES encryption as a text table.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbw3/aes"
)

const hexWidth = 2 * aes.BlockSize

// Write prints one line per round to w: the round number, the round key, the state after MixColumns (blank for rounds
// 0 and 10), and the state after the round key is added. States are printed in block order.
func Write(w io.Writer, t *aes.Trace) error {
	rule := strings.Repeat("-", hexWidth)
	if _, err := fmt.Fprintf(w, "%5s  %-*s  %-*s  %s\n%s  %s  %s  %s\n",
		"Round", hexWidth, "Round Key", hexWidth, "Mixed", "Result",
		strings.Repeat("-", 5), rule, rule, rule); err != nil {
		return err
	}

	for i := range aes.Rounds + 1 {
		if _, err := io.WriteString(w, Line(t.Round(i))); err != nil {
			return err
		}
	}

	return nil
}

// Line formats a single round as it appears in the table, including the trailing newline.
func Line(rt aes.RoundTrace) string {
	mixed := ""
	if rt.HasMixed {
		mixed = rt.Mixed.String()
	}
	return fmt.Sprintf("%5d  %s  %-*s  %s\n", rt.Index, rt.Key, hexWidth, mixed, rt.Result)
}
