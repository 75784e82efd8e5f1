package rom

import (
	"errors"
	"fmt"
	"strings"
)

// BootCodeEnd is the end offset of the IPL3 boot code in a cartridge image.
const BootCodeEnd = 0x1000

// BootCodeWords is the number of instruction words of the IPL3 boot code.
const BootCodeWords = (BootCodeEnd - HeaderSize) / 4

// ErrShortImage is returned when an image ends before the requested region.
var ErrShortImage = errors.New("image too short for region")

// Region selects the part of an input file to disassemble.
type Region string

// Supported regions.
const (
	RegionBootCode           Region = "bootcode"        // IPL3 without the header
	RegionBootCodeWithHeader Region = "bootcode-header" // header and IPL3
	RegionRaw                Region = "raw"             // whole file, for example a PIF ROM dump
)

// Regions returns all supported regions.
func Regions() []Region {
	return []Region{RegionBootCode, RegionBootCodeWithHeader, RegionRaw}
}

// RegionFromString returns the region matching the name, ignoring case.
func RegionFromString(s string) (Region, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Regions() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unsupported region '%s'", s)
}

func (r Region) String() string {
	return string(r)
}

// IsCartridge returns whether the region requires a cartridge image with header.
func (r Region) IsCartridge() bool {
	return r == RegionBootCode || r == RegionBootCodeWithHeader
}

// Base returns the default address of the first byte of the region.
func (r Region) Base() uint32 {
	if r == RegionBootCode {
		return HeaderSize
	}
	return 0
}

// Slice returns the region of the data.
func (r Region) Slice(data []byte) ([]byte, error) {
	var start, end int
	switch r {
	case RegionBootCode:
		start, end = HeaderSize, BootCodeEnd
	case RegionBootCodeWithHeader:
		start, end = 0, BootCodeEnd
	case RegionRaw:
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported region '%s'", r)
	}

	if len(data) < end {
		return nil, fmt.Errorf("%w %s: %d bytes, need %d", ErrShortImage, r, len(data), end)
	}
	return data[start:end], nil
}
