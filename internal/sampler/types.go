package sampler

// CPUCounters is one reading of the aggregate CPU tick counters.
type CPUCounters struct {
	User   uint64
	Nice   uint64
	System uint64
	Idle   uint64
}

// MemInfo is one reading of the memory counters, in kilobytes.
type MemInfo struct {
	Total   uint64
	Free    uint64
	Buffers uint64
	Cached  uint64
}

// State is the previous CPU reading. The zero value is the startup state.
type State struct {
	PrevUser   uint64
	PrevNice   uint64
	PrevSystem uint64
	PrevIdle   uint64
}

// stateFrom records c as the reading the next sample is measured against.
func stateFrom(c CPUCounters) State {
	return State{
		PrevUser:   c.User,
		PrevNice:   c.Nice,
		PrevSystem: c.System,
		PrevIdle:   c.Idle,
	}
}
