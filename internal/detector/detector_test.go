package detector

import (
	"testing"

	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/r4300disasm/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		regionOpt  string
		inputFile  string
		wantRegion rom.Region
	}{
		{
			name:       "explicit raw region",
			regionOpt:  "raw",
			inputFile:  "game.z64",
			wantRegion: rom.RegionRaw,
		},
		{
			name:       "explicit boot code with header",
			regionOpt:  "bootcode-header",
			inputFile:  "pifdata.bin",
			wantRegion: rom.RegionBootCodeWithHeader,
		},
		{
			name:       "detect from .z64 extension",
			inputFile:  "Star Fox 64 (USA).z64",
			wantRegion: rom.RegionBootCode,
		},
		{
			name:       "detect from upper case .V64 extension",
			inputFile:  "GAME.V64",
			wantRegion: rom.RegionBootCode,
		},
		{
			name:       "detect from .n64 extension",
			inputFile:  "game.n64",
			wantRegion: rom.RegionBootCode,
		},
		{
			name:       "pif rom dump",
			inputFile:  "pifdata.bin",
			wantRegion: rom.RegionRaw,
		},
		{
			name:       "unknown extension defaults to raw",
			inputFile:  "firmware",
			wantRegion: rom.RegionRaw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile},
				Flags:      options.Flags{Region: tt.regionOpt},
			}
			assert.Equal(t, tt.wantRegion, d.Detect(opts))
		})
	}
}
