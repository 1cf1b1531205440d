package sampler

// SampleCPU returns the busy percentage between prev and cur, and the state
// for the next call.
//
// busy = Δuser + Δnice + Δsystem and total = busy + Δidle. A counter that went
// backwards (reset) contributes nothing rather than a negative delta. With no
// elapsed ticks the result is 0. The returned state always records cur, even
// when the result was clamped.
//
// On the first call prev is the zero State, so the result is the busy share
// of all ticks since boot.
func SampleCPU(prev State, cur CPUCounters) (float64, State) {
	busy := delta(cur.User, prev.PrevUser) +
		delta(cur.Nice, prev.PrevNice) +
		delta(cur.System, prev.PrevSystem)
	total := busy + delta(cur.Idle, prev.PrevIdle)

	next := stateFrom(cur)
	if total == 0 {
		return 0, next
	}
	return clampPercent(100 * float64(busy) / float64(total)), next
}

// delta returns cur-prev, or 0 when the counter went backwards.
func delta(cur, prev uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

// clampPercent pins p to [0, 100].
func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
