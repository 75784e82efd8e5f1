package rom

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnknownByteOrder is returned when the image does not start with a known
// PI register word in any of the dump byte orders.
var ErrUnknownByteOrder = errors.New("unknown image byte order")

// ByteOrder is the byte layout of a dumped cartridge image.
type ByteOrder int

// Dump byte orders, named after the file extensions commonly used for them.
const (
	OrderUnknown      ByteOrder = iota
	OrderBigEndian              // .z64, native
	OrderByteSwapped            // .v64, 16 bit words swapped
	OrderLittleEndian           // .n64, 32 bit words reversed
)

// piRegisterMagic is the first header word of virtually every cartridge.
const piRegisterMagic = 0x80371240

var byteOrderNames = map[ByteOrder]string{
	OrderUnknown:      "unknown",
	OrderBigEndian:    "z64",
	OrderByteSwapped:  "v64",
	OrderLittleEndian: "n64",
}

func (o ByteOrder) String() string {
	return byteOrderNames[o]
}

// DetectByteOrder detects the byte order from the first header word.
func DetectByteOrder(data []byte) ByteOrder {
	if len(data) < 4 {
		return OrderUnknown
	}

	switch binary.BigEndian.Uint32(data) {
	case piRegisterMagic:
		return OrderBigEndian
	case 0x37804012:
		return OrderByteSwapped
	case 0x40123780:
		return OrderLittleEndian
	default:
		return OrderUnknown
	}
}

// Normalize returns a big-endian copy of the image. Images in an unknown
// byte order are returned unchanged together with ErrUnknownByteOrder.
func Normalize(data []byte) ([]byte, ByteOrder, error) {
	order := DetectByteOrder(data)
	out := make([]byte, len(data))
	copy(out, data)

	switch order {
	case OrderBigEndian:
	case OrderByteSwapped:
		for i := 0; i+1 < len(out); i += 2 {
			out[i], out[i+1] = out[i+1], out[i]
		}
	case OrderLittleEndian:
		for i := 0; i+3 < len(out); i += 4 {
			out[i], out[i+1], out[i+2], out[i+3] = out[i+3], out[i+2], out[i+1], out[i]
		}
	default:
		return out, order, fmt.Errorf("%w: first word %x", ErrUnknownByteOrder, data[:min(4, len(data))])
	}
	return out, order, nil
}
