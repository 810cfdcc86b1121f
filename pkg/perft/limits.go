package perft

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Depth      int
	NThreads   int
	SplitDepth int
	Movetime   int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultDepthLimit    int = 5
	DefaultSplitDepth    int = 2
	DefaultMovetimeLimit int = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:      DefaultDepthLimit,
		NThreads:   1,
		SplitDepth: DefaultSplitDepth,
		Movetime:   DefaultMovetimeLimit,
	}
}

// Set the number of plies to count
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	return l
}

func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}

// Set the number of plies expanded up front, every state at that ply
// becomes an independent job. 0 counts the whole tree as one job.
func (l *Limits) SetSplitDepth(split int) *Limits {
	l.SplitDepth = max(split, 0)
	return l
}

// Set the maximum time for the count in milliseconds, negative means no limit
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}
