// Package writer implements the listing output of a disassembly.
package writer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/retroenv/r4300disasm/internal/r4300i"
)

// Options of the writer.
type Options struct {
	Base  uint32 // address of the first instruction
	Color bool   // highlight unknown words and branches
}

// Writer writes a disassembly listing, one instruction per line.
type Writer struct {
	options Options
	writer  io.Writer

	unknown *color.Color
	branch  *color.Color
}

// New creates a new listing writer.
func New(writer io.Writer, options Options) *Writer {
	w := &Writer{
		options: options,
		writer:  writer,
		unknown: color.New(color.FgRed),
		branch:  color.New(color.FgCyan),
	}
	if options.Color {
		// forced, also when not writing to a terminal
		w.unknown.EnableColor()
		w.branch.EnableColor()
	} else {
		w.unknown.DisableColor()
		w.branch.DisableColor()
	}
	return w
}

// Write writes all instructions of the disassembly.
func (w *Writer) Write(dis *r4300i.Disassembly) error {
	if !w.options.Color {
		if err := dis.WriteListing(w.writer, w.options.Base); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		return nil
	}

	for i, ins := range dis.Instructions {
		line := dis.Line(i, w.options.Base)

		switch {
		case ins.Op == r4300i.Unknown:
			line = w.unknown.Sprint(line)
		case ins.Op.IsBranch():
			line = w.branch.Sprint(line)
		}

		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing line for address 0x%08X: %w", r4300i.Address(i, w.options.Base), err)
		}
	}
	return nil
}
