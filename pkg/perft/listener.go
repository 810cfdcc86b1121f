package perft

// Progress of a running count
type ListenerStats struct {
	Depth      int
	Done       int // finished subtrees
	Subtrees   int // total number of subtrees
	Nodes      uint64
	TimeMs     int
	Nps        uint64
	StopReason StopReason
}

// Listener function callback, will receive current count statistics
type ListenerFunc func(ListenerStats)

type StatsListener struct {
	// called after every finished subtree
	onSubtree ListenerFunc
	nSubtrees int // call 'onSubtree' every N subtrees

	// called once the count ends, either finished or stopped
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nSubtrees: 1}
}

// Attach new on subtree finished callback. Workers call it one at a time,
// so no need for synchronization in the callback
func (listener *StatsListener) OnSubtree(onSubtree ListenerFunc) *StatsListener {
	listener.onSubtree = onSubtree
	return listener
}

func (listener *StatsListener) SetSubtreeInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nSubtrees = n
	return listener
}

// Attach 'on count end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeSubtree(stats ListenerStats) {
	if listener.onSubtree == nil {
		return
	}
	if stats.Done%max(listener.nSubtrees, 1) == 0 || stats.Done == stats.Subtrees {
		listener.onSubtree(stats)
	}
}

func (listener *StatsListener) invokeStop(stats ListenerStats) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}
