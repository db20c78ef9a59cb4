package cli

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// Printer writes command results as text tables or, with --json, as indented JSON.
type Printer struct {
	w    io.Writer
	json bool
}

func NewPrinter(w io.Writer, asJSON bool) *Printer {
	return &Printer{w: w, json: asJSON}
}

func (p *Printer) JSON() bool {
	return p.json
}

// Print writes v as JSON, or calls text with a tab aligned writer.
func (p *Printer) Print(v any, text func(w io.Writer)) error {
	if p.json {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

// Line prints a plain message. It is skipped in JSON mode.
func (p *Printer) Line(format string, args ...any) {
	if p.json {
		return
	}
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Row writes tab separated columns.
func Row(w io.Writer, columns ...any) {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = fmt.Sprint(c)
	}
	_, _ = fmt.Fprintln(w, strings.Join(parts, "\t"))
}

func Bytes(n uint64) string {
	return humanize.IBytes(n)
}

func Duration(d time.Duration) string {
	if d <= 0 {
		return "expired"
	}
	return humanize.RelTime(time.Now(), time.Now().Add(d), "left", "ago")
}

func Deref[T any](v *T) any {
	if v == nil {
		return "-"
	}
	return *v
}

func Count(n uint64) string {
	return humanize.Comma(int64(n))
}
