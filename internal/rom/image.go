package rom

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Image is a cartridge image normalized to big-endian byte order.
type Image struct {
	Header Header
	Order  ByteOrder // byte order of the original dump
	Data   []byte
}

// Load normalizes the image byte order and parses the header. Images with
// an unrecognized first header word, for example some homebrew and
// development cartridges, are used as big-endian with Order set to
// OrderUnknown.
func Load(data []byte) (*Image, error) {
	normalized, order, err := Normalize(data)
	if err != nil && !errors.Is(err, ErrUnknownByteOrder) {
		return nil, fmt.Errorf("normalizing image: %w", err)
	}

	header, err := ParseHeader(normalized)
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}

	return &Image{
		Header: header,
		Order:  order,
		Data:   normalized,
	}, nil
}

// BootCode returns the IPL3 boot code as instruction words.
func (img *Image) BootCode() ([]uint32, error) {
	data, err := RegionBootCode.Slice(img.Data)
	if err != nil {
		return nil, err
	}

	words := make([]uint32, BootCodeWords)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(data[i*4:])
	}
	return words, nil
}
