package r4300i

import "fmt"

// OperandKind identifies the type of value stored in an Operand.
type OperandKind uint8

// Operand kinds. OperandNone marks an empty operand slot.
const (
	OperandNone OperandKind = iota
	OperandRegister
	OperandCp0Register
	OperandImmediate8
	OperandImmediate16
	OperandImmediate32
)

const registerMask = 0x1f

var registerNames = [32]string{
	"zr", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

var cp0RegisterNames = [32]string{
	"Index", "Random", "EntryLo0", "EntryLo1", "Context", "PageMask", "Wired", "Unused7",
	"BadVAddr", "Count", "EntryHi", "Compare", "SR", "Cause", "EPC", "PRId",
	"Config", "LLAddr", "WatchLo", "WatchHi", "XContext", "Unused21", "Unused22", "Unused23",
	"Unused24", "Unused25", "PErr", "Unused27", "TagLo", "TagHi", "ErrorEPC", "Unused31",
}

// Operand is a single instruction operand. The zero value is an empty slot.
type Operand struct {
	Kind  OperandKind
	Value uint32
}

// Register returns a general purpose register operand.
func Register(index uint32) Operand {
	return Operand{Kind: OperandRegister, Value: index & registerMask}
}

// Cp0Register returns a coprocessor 0 register operand.
func Cp0Register(index uint32) Operand {
	return Operand{Kind: OperandCp0Register, Value: index & registerMask}
}

// Immediate8 returns an 8 bit literal operand.
func Immediate8(value uint8) Operand {
	return Operand{Kind: OperandImmediate8, Value: uint32(value)}
}

// Immediate16 returns a 16 bit literal operand.
func Immediate16(value uint16) Operand {
	return Operand{Kind: OperandImmediate16, Value: uint32(value)}
}

// Immediate32 returns a 32 bit literal operand.
func Immediate32(value uint32) Operand {
	return Operand{Kind: OperandImmediate32, Value: value}
}

// IsEmpty returns whether the operand slot is unused.
func (o Operand) IsEmpty() bool {
	return o.Kind == OperandNone
}

// String returns the canonical text of the operand.
func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return registerNames[o.Value&registerMask]
	case OperandCp0Register:
		return cp0RegisterNames[o.Value&registerMask]
	case OperandImmediate8:
		return fmt.Sprintf("0x%02X", uint8(o.Value))
	case OperandImmediate16:
		return fmt.Sprintf("0x%04X", uint16(o.Value))
	case OperandImmediate32:
		return fmt.Sprintf("0x%08X", o.Value)
	default:
		return ""
	}
}
