// Package loader handles input file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/r4300disasm/internal/r4300i"
	"github.com/retroenv/r4300disasm/internal/rom"
)

// Input is the part of an input file selected for disassembly.
type Input struct {
	Name   string
	Region rom.Region
	Header *rom.Header   // only set for cartridge regions
	Order  rom.ByteOrder // OrderUnknown for unrecognized cartridges, which are read as big-endian
	Data   []byte        // big-endian region bytes
	Words  []uint32      // instruction words of Data
	Base   uint32        // address of the first byte of Data
}

// Loader handles loading input files from disk.
type Loader struct{}

// New creates a new input loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file and extracts the region to disassemble.
// Cartridge regions require a valid header and get normalized to big-endian
// byte order, raw regions are used as they are.
func (l *Loader) Load(opts options.Program, region rom.Region) (*Input, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	input, err := l.LoadBuffer(data, region)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", opts.Input, err)
	}

	input.Name = opts.Input
	if opts.HasBase {
		input.Base = opts.BaseAddress
	}
	return input, nil
}

// LoadBuffer extracts the region from an in memory image.
func (l *Loader) LoadBuffer(data []byte, region rom.Region) (*Input, error) {
	input := &Input{
		Region: region,
		Base:   region.Base(),
	}

	var img *rom.Image
	if region.IsCartridge() {
		var err error
		img, err = rom.Load(data)
		if err != nil {
			return nil, fmt.Errorf("loading cartridge image: %w", err)
		}
		input.Header = &img.Header
		input.Order = img.Order
		data = img.Data
	}

	regionData, err := region.Slice(data)
	if err != nil {
		return nil, fmt.Errorf("extracting region: %w", err)
	}
	input.Data = regionData

	if img != nil && region == rom.RegionBootCode {
		input.Words, err = img.BootCode()
		if err != nil {
			return nil, fmt.Errorf("extracting boot code: %w", err)
		}
	} else {
		input.Words = r4300i.BytesToWords(regionData)
	}
	return input, nil
}
