// Package rom handles Nintendo 64 cartridge images: the 64 byte header,
// byte order normalization and the boot code regions.
package rom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// HeaderSize is the size of the cartridge header in bytes.
const HeaderSize = 0x40

// ErrShortHeader is returned when the data is too short to contain a header.
var ErrShortHeader = errors.New("data too short for cartridge header")

// Header is the cartridge header at the start of every N64 ROM image.
// All fields are stored big-endian.
type Header struct {
	PIRegisters    uint32
	ClockRate      uint32
	EntryPC        uint32
	Release        uint32
	CRC1           uint32
	CRC2           uint32
	Reserved0      uint64
	ImageName      [20]byte
	Reserved1      uint32
	ManufacturerID uint32
	CartridgeID    uint16
	CountryCode    uint16
}

// Summary is a printable view of the header.
type Summary struct {
	Name           string `yaml:"name"`
	EntryPC        string `yaml:"entry_pc"`
	CRC1           string `yaml:"crc1"`
	CRC2           string `yaml:"crc2"`
	ClockRate      string `yaml:"clock_rate"`
	Release        string `yaml:"release"`
	ManufacturerID string `yaml:"manufacturer_id"`
	CartridgeID    string `yaml:"cartridge_id"`
	CountryCode    string `yaml:"country_code"`
}

// ParseHeader parses the header from the start of a big-endian image.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}

	h := Header{
		PIRegisters:    binary.BigEndian.Uint32(data[0x00:]),
		ClockRate:      binary.BigEndian.Uint32(data[0x04:]),
		EntryPC:        binary.BigEndian.Uint32(data[0x08:]),
		Release:        binary.BigEndian.Uint32(data[0x0c:]),
		CRC1:           binary.BigEndian.Uint32(data[0x10:]),
		CRC2:           binary.BigEndian.Uint32(data[0x14:]),
		Reserved0:      binary.BigEndian.Uint64(data[0x18:]),
		Reserved1:      binary.BigEndian.Uint32(data[0x34:]),
		ManufacturerID: binary.BigEndian.Uint32(data[0x38:]),
		CartridgeID:    binary.BigEndian.Uint16(data[0x3c:]),
		CountryCode:    binary.BigEndian.Uint16(data[0x3e:]),
	}
	copy(h.ImageName[:], data[0x20:0x34])
	return h, nil
}

// Bytes encodes the header into its 64 byte big-endian form.
func (h Header) Bytes() []byte {
	data := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(data[0x00:], h.PIRegisters)
	binary.BigEndian.PutUint32(data[0x04:], h.ClockRate)
	binary.BigEndian.PutUint32(data[0x08:], h.EntryPC)
	binary.BigEndian.PutUint32(data[0x0c:], h.Release)
	binary.BigEndian.PutUint32(data[0x10:], h.CRC1)
	binary.BigEndian.PutUint32(data[0x14:], h.CRC2)
	binary.BigEndian.PutUint64(data[0x18:], h.Reserved0)
	copy(data[0x20:0x34], h.ImageName[:])
	binary.BigEndian.PutUint32(data[0x34:], h.Reserved1)
	binary.BigEndian.PutUint32(data[0x38:], h.ManufacturerID)
	binary.BigEndian.PutUint16(data[0x3c:], h.CartridgeID)
	binary.BigEndian.PutUint16(data[0x3e:], h.CountryCode)
	return data
}

// Name returns the image name without the space and NUL padding.
func (h Header) Name() string {
	return strings.TrimRight(string(h.ImageName[:]), " \x00")
}

// Summary returns a printable view of the header.
func (h Header) Summary() Summary {
	return Summary{
		Name:           h.Name(),
		EntryPC:        fmt.Sprintf("0x%08X", h.EntryPC),
		CRC1:           fmt.Sprintf("0x%08X", h.CRC1),
		CRC2:           fmt.Sprintf("0x%08X", h.CRC2),
		ClockRate:      fmt.Sprintf("0x%08X", h.ClockRate),
		Release:        fmt.Sprintf("0x%08X", h.Release),
		ManufacturerID: fmt.Sprintf("0x%08X", h.ManufacturerID),
		CartridgeID:    fmt.Sprintf("0x%04X", h.CartridgeID),
		CountryCode:    fmt.Sprintf("0x%04X", h.CountryCode),
	}
}
