// Package r4300i decodes MIPS R4300i machine words into instructions.
//
// # Instruction Set
//
// The R4300i is the CPU of the Nintendo 64. It implements MIPS III with the
// coprocessor 0 system control registers and TLB management instructions:
//   - All instructions are 4 bytes (32 bits), stored big-endian
//   - 32 general purpose registers, named by the ABI convention (zr, at, v0, ...)
//   - 32 coprocessor 0 registers (Index, Random, EntryLo0, ...)
//   - 64-bit variants of arithmetic, shift and load/store instructions
//
// # Decoding
//
// Decode is a pure function of a single word and never fails. Bit patterns
// that are not part of the supported instruction set decode to Unknown with
// no operands, keeping the raw word. The zero word decodes to NOP even though
// it is also a valid encoding of SLL zr, zr, 0.
//
// # Text Form
//
// Every instruction renders as
//
//	[0x8C820000][LW v0, a0, 0x0000]
//
// with the raw word first, followed by the mnemonic and its operands. Operand
// order follows assembler convention and not the bit field order, for example
// three register ALU instructions list rd, rt, rs.
//
// # Usage Example
//
//	dis := r4300i.FromBytes(bootCode)
//	for i := range dis.Instructions {
//		fmt.Println(dis.Line(i, 0x40))
//	}
package r4300i
