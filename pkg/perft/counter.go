package perft

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/uttt-perft/pkg/uttt"
)

// Deepest count where no sub-board can be won or filled on the way, above it
// the counter still runs but ignores finished sub-boards and games
const MaxSupportedDepth = 10

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime             // Time limit reached
)

func (sr StopReason) String() string {
	switch sr {
	case StopNone:
		return "None"
	case StopInterrupt:
		return "Interrupt"
	case StopMovetime:
		return "Movetime"
	}
	return fmt.Sprintf("StopReason(%d)", int(sr))
}

// Result of a single count
type Result struct {
	Depth      int
	Nodes      uint64
	TimeMs     int
	Nps        uint64
	Subtrees   int
	StopReason StopReason
}

func (r Result) String() string {
	return fmt.Sprintf("depth %d nodes %d time %d nps %d subtrees %d",
		r.Depth, r.Nodes, r.TimeMs, r.Nps, r.Subtrees)
}

// Runs counts split across worker goroutines. The tree is expanded up to
// Limits.SplitDepth plies, and each state there is counted as an independent
// subtree, the partial counts are summed. Stop signals and the context are
// checked between subtrees, never inside one.
type Counter struct {
	limits   *Limits
	Timer    *_Timer
	listener StatsListener
	log      zerolog.Logger
	stop     atomic.Bool
	reason   StopReason
}

func NewCounter() *Counter {
	return &Counter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		log:    zerolog.Nop(),
	}
}

func (c *Counter) SetLimits(limits *Limits) {
	c.limits = limits
}

func (c *Counter) Limits() *Limits {
	return c.limits
}

func (c *Counter) SetListener(listener StatsListener) {
	c.listener = listener
}

func (c *Counter) SetLogger(log zerolog.Logger) {
	c.log = log
}

// Set the stop signal, remaining subtrees are skipped if set to true
func (c *Counter) SetStop(v bool) {
	c.stop.Store(v)
}

// Get the reason why the last count was stopped
func (c *Counter) StopReason() StopReason {
	return c.reason
}

// Count Limits.Depth plies below the state. On a stop, the result holds the
// nodes of the subtrees finished so far and the error wraps ErrStopped or
// the context's error.
func (c *Counter) Run(ctx context.Context, state uttt.State) (Result, error) {
	depth := c.limits.Depth
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if depth > MaxSupportedDepth {
		c.log.Warn().
			Int("depth", depth).
			Int("max", MaxSupportedDepth).
			Msg("depth beyond supported range, finished sub-boards are not detected")
	}

	c.stop.Store(false)
	c.reason = StopNone
	c.Timer.Reset()

	if c.limits.Movetime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.limits.Movetime)*time.Millisecond)
		defer cancel()
	}

	// Leave at least one ply to every subtree
	split := max(min(c.limits.SplitDepth, depth-1), 0)
	jobs := Frontier(state, split)
	threads := max(c.limits.NThreads, 1)

	c.log.Debug().
		Int("depth", depth).
		Int("split", split).
		Int("subtrees", len(jobs)).
		Int("threads", threads).
		Msg("counting")

	var (
		nodes atomic.Uint64
		done  int
		mu    sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for _, job := range jobs {
		if c.interrupted(gctx) != nil {
			break
		}

		g.Go(func() error {
			if err := c.interrupted(gctx); err != nil {
				return err
			}
			total := nodes.Add(CountFrom(job, depth-split))

			mu.Lock()
			done++
			c.listener.invokeSubtree(c.stats(depth, done, len(jobs), total))
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err == nil && done < len(jobs) {
		// Jobs skipped by the loop above never reported an error
		if err = c.interrupted(ctx); err == nil {
			err = ErrStopped
		}
	}

	c.reason = toStopReason(err)
	stats := c.stats(depth, done, len(jobs), nodes.Load())
	stats.StopReason = c.reason
	c.listener.invokeStop(stats)

	result := Result{
		Depth:      depth,
		Nodes:      stats.Nodes,
		TimeMs:     stats.TimeMs,
		Nps:        stats.Nps,
		Subtrees:   len(jobs),
		StopReason: c.reason,
	}

	if err != nil {
		c.log.Info().
			Int("depth", depth).
			Int("done", done).
			Int("subtrees", len(jobs)).
			Stringer("reason", c.reason).
			Msg("count stopped")
		return result, fmt.Errorf("perft depth %d: %w", depth, err)
	}

	c.log.Debug().
		Int("depth", depth).
		Uint64("nodes", result.Nodes).
		Int("time_ms", result.TimeMs).
		Uint64("nps", result.Nps).
		Msg("count finished")
	return result, nil
}

func (c *Counter) interrupted(ctx context.Context) error {
	if c.stop.Load() {
		return ErrStopped
	}
	return ctx.Err()
}

func (c *Counter) stats(depth, done, subtrees int, nodes uint64) ListenerStats {
	ms := c.Timer.Deltatime()
	return ListenerStats{
		Depth:    depth,
		Done:     done,
		Subtrees: subtrees,
		Nodes:    nodes,
		TimeMs:   ms,
		Nps:      nodes * 1000 / uint64(ms),
	}
}

func toStopReason(err error) StopReason {
	switch {
	case err == nil:
		return StopNone
	case errors.Is(err, context.DeadlineExceeded):
		return StopMovetime
	default:
		return StopInterrupt
	}
}
