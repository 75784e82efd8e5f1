// Package detector handles input region detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/r4300disasm/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles region detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new region detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the region to disassemble. An explicitly specified
// region takes precedence, otherwise it is derived from the input filename
// extension.
func (d *Detector) Detect(opts options.Program) rom.Region {
	region, err := rom.RegionFromString(opts.Region)
	if err == nil {
		return region
	}

	region = d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected region",
		log.String("region", region.String()),
		log.String("file", opts.Input))
	return region
}

// detectFromFile determines the region based on the file extension.
func (d *Detector) detectFromFile(filename string) rom.Region {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".z64", ".v64", ".n64":
		return rom.RegionBootCode
	default:
		// PIF ROM dumps and other firmware blobs have no header
		return rom.RegionRaw
	}
}
