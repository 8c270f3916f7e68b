package print

import (
	"io"
	"text/tabwriter"
)

func NewTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)
}
