package r4300i

import (
	"fmt"
	"strings"
)

// MaxOperands is the highest number of operands of any instruction.
const MaxOperands = 4

// Instruction is a decoded instruction word. Operand slots are filled from
// the front, unused slots are empty.
type Instruction struct {
	Raw      uint32
	Op       Operation
	Operands [MaxOperands]Operand
}

func newInstruction(raw uint32, op Operation, operands ...Operand) Instruction {
	ins := Instruction{
		Raw: raw,
		Op:  op,
	}
	copy(ins.Operands[:], operands)
	return ins
}

// NumOperands returns the number of used operand slots.
func (i Instruction) NumOperands() int {
	n := 0
	for _, op := range i.Operands {
		if !op.IsEmpty() {
			n++
		}
	}
	return n
}

// Args returns the used operands in order.
func (i Instruction) Args() []Operand {
	args := make([]Operand, 0, MaxOperands)
	for _, op := range i.Operands {
		if !op.IsEmpty() {
			args = append(args, op)
		}
	}
	return args
}

// String returns the canonical text form of the instruction. The mnemonic is
// always followed by a space, also when the instruction has no operands.
func (i Instruction) String() string {
	var args strings.Builder
	for _, op := range i.Operands {
		if op.IsEmpty() {
			continue
		}
		if args.Len() > 0 {
			args.WriteString(", ")
		}
		args.WriteString(op.String())
	}
	return fmt.Sprintf("[0x%08X][%s %s]", i.Raw, i.Op, args.String())
}
