package r4300i

// Word is a raw 32 bit instruction word with accessors for the fixed
// position bit fields.
type Word uint32

// Op returns the primary opcode in bits [31:26].
func (w Word) Op() uint32 {
	return uint32(w) >> 26
}

// Rs returns the register index in bits [25:21].
func (w Word) Rs() uint32 {
	return (uint32(w) >> 21) & 0x1f
}

// Rt returns the register index in bits [20:16].
func (w Word) Rt() uint32 {
	return (uint32(w) >> 16) & 0x1f
}

// Rd returns the register index in bits [15:11].
func (w Word) Rd() uint32 {
	return (uint32(w) >> 11) & 0x1f
}

// Sa returns the shift amount in bits [10:6].
func (w Word) Sa() uint8 {
	return uint8((uint32(w) >> 6) & 0x1f)
}

// Funct returns the function field in bits [5:0].
func (w Word) Funct() uint32 {
	return uint32(w) & 0x3f
}

// Imm returns the unsigned immediate in bits [15:0].
func (w Word) Imm() uint16 {
	return uint16(w)
}

// Target returns the jump target in bits [25:0].
func (w Word) Target() uint32 {
	return uint32(w) & 0x3ffffff
}

// CopSelect returns the coprocessor number encoded in the low two bits of
// the primary opcode.
func (w Word) CopSelect() uint32 {
	return w.Op() & 0x3
}

// CopPayload returns the coprocessor operation payload in bits [24:0].
func (w Word) CopPayload() uint32 {
	return uint32(w) & 0x1ffffff
}
