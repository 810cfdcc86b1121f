package report

import (
	"fmt"

	"github.com/IlikeChooros/uttt-perft/pkg/perft"
)

// Listener redrawing a single progress line while a count runs, the line
// is cleared once the count ends
func (r *Reporter) Progress(interval int) perft.StatsListener {
	listener := perft.NewStatsListener()
	listener.
		OnSubtree(func(stats perft.ListenerStats) {
			r.out.ClearLine()
			fmt.Fprintf(r.out, "\r%s %d/%d  %s %d  %s %d",
				r.label("subtrees"), stats.Done, stats.Subtrees,
				r.label("nodes"), stats.Nodes,
				r.label("nps"), stats.Nps,
			)
		}).
		SetSubtreeInterval(interval).
		OnStop(func(perft.ListenerStats) {
			r.out.ClearLine()
			fmt.Fprint(r.out, "\r")
		})
	return listener
}
