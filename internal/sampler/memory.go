package sampler

// MemoryPercent returns used memory as a percentage of total, where
// used = total - free - buffers - cached. Zero total gives 0. Readings that
// would make used negative clamp to 0.
func MemoryPercent(m MemInfo) float64 {
	if m.Total == 0 {
		return 0
	}
	used := float64(m.Total) - float64(m.Free) - float64(m.Buffers) - float64(m.Cached)
	return clampPercent(100 * used / float64(m.Total))
}
