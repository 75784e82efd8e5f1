package config

import (
	"runtime"
	"testing"

	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(options.Program{}))
	assert.NotNil(t, CreateLogger(options.Program{Flags: options.Flags{Debug: true, Quiet: true}}))
}

func TestWorkers(t *testing.T) {
	tests := []struct {
		name     string
		workers  int
		expected int
	}{
		{"explicit", 4, 4},
		{"single", 1, 1},
		{"auto", 0, runtime.NumCPU()},
		{"negative is auto", -2, runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{Flags: options.Flags{Workers: tt.workers}}
			assert.Equal(t, tt.expected, Workers(opts))
		})
	}
}
