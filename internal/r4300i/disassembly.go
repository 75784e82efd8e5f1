package r4300i

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"slices"

	"golang.org/x/sync/errgroup"
)

// WordSize is the size of an instruction word in bytes.
const WordSize = 4

// parallelChunkSize is the number of words decoded by a single goroutine.
const parallelChunkSize = 1024

// Disassembly is the decoded form of a sequence of instruction words.
// Instructions[i] is always the decoding of Words[i].
type Disassembly struct {
	Words        []uint32
	Instructions []Instruction
}

// FromBytes decodes a big-endian byte buffer. A trailing partial word is
// dropped.
func FromBytes(data []byte) *Disassembly {
	return FromWords(BytesToWords(data))
}

// FromWords decodes a sequence of words.
func FromWords(words []uint32) *Disassembly {
	dis := &Disassembly{
		Words:        slices.Clone(words),
		Instructions: make([]Instruction, len(words)),
	}
	for i, w := range dis.Words {
		dis.Instructions[i] = Decode(w)
	}
	return dis
}

// FromWordsParallel decodes a sequence of words using up to the given number
// of goroutines. The result is identical to FromWords, an error is only
// returned if the context gets cancelled.
func FromWordsParallel(ctx context.Context, words []uint32, workers int) (*Disassembly, error) {
	dis := &Disassembly{
		Words:        slices.Clone(words),
		Instructions: make([]Instruction, len(words)),
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))

	for start := 0; start < len(dis.Words); start += parallelChunkSize {
		end := min(start+parallelChunkSize, len(dis.Words))
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				dis.Instructions[i] = Decode(dis.Words[i])
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("decoding words: %w", err)
	}
	return dis, nil
}

// BytesToWords converts a big-endian byte buffer to words, dropping a
// trailing partial word.
func BytesToWords(data []byte) []uint32 {
	words := make([]uint32, len(data)/WordSize)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(data[i*WordSize:])
	}
	return words
}

// Len returns the number of decoded instructions.
func (d *Disassembly) Len() int {
	return len(d.Instructions)
}

// Equal returns whether both disassemblies were decoded from the same words.
func (d *Disassembly) Equal(other *Disassembly) bool {
	if d == nil || other == nil {
		return d == other
	}
	return slices.Equal(d.Words, other.Words)
}

// Address returns the address of the instruction at the given index.
func Address(index int, base uint32) uint32 {
	return base + uint32(index)*WordSize
}

// Line returns the listing line of the instruction at the given index,
// prefixed by its address.
func (d *Disassembly) Line(index int, base uint32) string {
	return fmt.Sprintf("[0x%08X]%s", Address(index, base), d.Instructions[index])
}

// WriteListing writes one listing line per instruction to the writer.
func (d *Disassembly) WriteListing(w io.Writer, base uint32) error {
	for i := range d.Instructions {
		if _, err := fmt.Fprintln(w, d.Line(i, base)); err != nil {
			return fmt.Errorf("writing line %d: %w", i, err)
		}
	}
	return nil
}

// Counts is a classification summary of a disassembly.
type Counts struct {
	Words       int `yaml:"words"`
	Unknown     int `yaml:"unknown"`
	Branches    int `yaml:"branches"`
	Likely      int `yaml:"likely"`
	Traps       int `yaml:"traps"`
	Loads       int `yaml:"loads"`
	Stores      int `yaml:"stores"`
	Coprocessor int `yaml:"coprocessor"`
}

// Counts classifies all decoded instructions.
func (d *Disassembly) Counts() Counts {
	c := Counts{Words: len(d.Instructions)}
	for _, ins := range d.Instructions {
		op := ins.Op
		if op == Unknown {
			c.Unknown++
		}
		if op.IsBranch() {
			c.Branches++
		}
		if op.IsLikely() {
			c.Likely++
		}
		if op.IsTrap() {
			c.Traps++
		}
		if op.IsLoad() {
			c.Loads++
		}
		if op.IsStore() {
			c.Stores++
		}
		if op.IsCoprocessor() {
			c.Coprocessor++
		}
	}
	return c
}
