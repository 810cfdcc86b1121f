// Package report prints perft results to a terminal.
package report

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/uttt-perft/pkg/perft"
)

type Reporter struct {
	out        *termenv.Output
	cumulative bool
	total      uint64
}

// Create a reporter writing to w, color profile is detected from w
// unless given as an option
func NewReporter(w io.Writer, opts ...termenv.OutputOption) *Reporter {
	return &Reporter{out: termenv.NewOutput(w, opts...)}
}

// Enable the cumulative column, 'base' is the total of every depth
// below the first reported one
func (r *Reporter) SetCumulative(base uint64) {
	r.cumulative = true
	r.total = base
}

func (r *Reporter) label(s string) termenv.Style {
	return r.out.String(s).Faint()
}

func (r *Reporter) value(format string, a ...any) termenv.Style {
	return r.out.String(fmt.Sprintf(format, a...)).Bold()
}

// Print the position the counts start from
func (r *Reporter) Position(notation string) {
	fmt.Fprintf(r.out, "%s %s\n", r.label("position"), r.out.String(notation).Foreground(r.out.Color("6")))
}

// Print a finished count, one line per depth
func (r *Reporter) Result(res perft.Result) {
	fmt.Fprintf(r.out, "%s %s  %s %s  %s %s  %s %s",
		r.label("depth"), r.value("%2d", res.Depth),
		r.label("count"), r.out.String(fmt.Sprintf("%12d", res.Nodes)).Bold().Foreground(r.out.Color("2")),
		r.label("time"), r.value("%6d ms", res.TimeMs),
		r.label("nps"), r.value("%11d", res.Nps),
	)

	if r.cumulative {
		// The empty sequence isn't a node of the tree
		if res.Depth > 0 {
			r.total += res.Nodes
		}
		fmt.Fprintf(r.out, "  %s %s", r.label("total"), r.value("%12d", r.total))
	}
	fmt.Fprintln(r.out)
}

// Print a stopped count with the nodes counted so far
func (r *Reporter) Stopped(res perft.Result, err error) {
	fmt.Fprintf(r.out, "%s %s  %s %s  %s %s\n",
		r.label("depth"), r.value("%2d", res.Depth),
		r.out.String("stopped").Bold().Foreground(r.out.Color("1")),
		r.value("%s", res.StopReason),
		r.label("partial"), r.value("%d", res.Nodes),
	)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", r.label("error"), err)
	}
}

// Print the per-move subtree counts, followed by their sum
func (r *Reporter) Divide(entries []perft.DivideEntry) {
	var sum uint64
	for _, e := range entries {
		fmt.Fprintf(r.out, "%s: %d\n", r.out.String(e.Move.String()).Foreground(r.out.Color("3")), e.Nodes)
		sum += e.Nodes
	}
	fmt.Fprintf(r.out, "%s %s  %s %s\n",
		r.label("moves"), r.value("%d", len(entries)),
		r.label("nodes"), r.value("%d", sum),
	)
}
