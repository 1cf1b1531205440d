package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryPercent(t *testing.T) {
	tests := []struct {
		name string
		info MemInfo
		want float64
	}{
		{
			name: "typical",
			info: MemInfo{Total: 1000, Free: 400, Buffers: 100, Cached: 100},
			want: 40,
		},
		{
			name: "everything free",
			info: MemInfo{Total: 8000, Free: 8000},
			want: 0,
		},
		{
			name: "nothing free",
			info: MemInfo{Total: 8000},
			want: 100,
		},
		{
			name: "zero total",
			info: MemInfo{Free: 10, Buffers: 10, Cached: 10},
			want: 0,
		},
		{
			name: "inconsistent reading clamps to zero",
			info: MemInfo{Total: 1000, Free: 900, Buffers: 100, Cached: 100},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MemoryPercent(tt.info), 0.0001)
		})
	}
}
