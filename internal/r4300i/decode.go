package r4300i

// decoder builds the instruction for a word whose opcode fields already
// selected the table entry.
type decoder func(w Word) Instruction

// primaryOps is indexed by the primary opcode in bits [31:26].
var primaryOps = [64]decoder{
	0x00: decodeSpecial,
	0x01: decodeRegImm,
	0x02: jump(J),
	0x03: jump(JAL),
	0x04: branchRegReg(BEQ),
	0x05: branchRegReg(BNE),
	0x06: branchReg(BLEZ),
	0x07: branchReg(BGTZ),
	0x08: aluImm(ADDI),
	0x09: aluImm(ADDIU),
	0x0A: aluImm(SLTI),
	0x0B: aluImm(SLTIU),
	0x0C: aluImm(ANDI),
	0x0D: aluImm(ORI),
	0x0E: aluImm(XORI),
	0x0F: decodeLui,

	0x10: decodeCop,
	0x11: decodeCop,
	0x12: decodeCop,
	0x13: decodeCop,

	0x14: branchRegReg(BEQL),
	0x15: branchRegReg(BNEL),
	0x16: branchReg(BLEZL),
	0x17: branchReg(BGTZL),
	0x18: aluImm(DADDI),
	0x19: aluImm(DADDIU),
	0x1A: loadStore(LDL),
	0x1B: loadStore(LDR),

	0x20: loadStore(LB),
	0x21: loadStore(LH),
	0x22: loadStore(LWL),
	0x23: loadStore(LW),
	0x24: loadStore(LBU),
	0x25: loadStore(LHU),
	0x26: loadStore(LWR),
	0x27: loadStore(LWU),
	0x28: loadStore(SB),
	0x29: loadStore(SH),
	0x2A: loadStore(SWL),
	0x2B: loadStore(SW),
	0x2C: loadStore(SDL),
	0x2D: loadStore(SDR),
	0x2E: loadStore(SWR),
	0x2F: noOperands(CACHE),

	0x30: loadStore(LL),
	0x31: loadStore(LWCz),
	0x32: loadStore(LWCz),
	0x34: loadStore(LLD),
	0x35: loadStore(LDCz),
	0x36: loadStore(LDCz),
	0x37: loadStore(LD),

	0x38: loadStore(SC),
	0x39: loadStore(SWCz),
	0x3A: loadStore(SWCz),
	0x3B: loadStore(SCD),
	0x3C: loadStore(SDCz),
	0x3D: loadStore(SDCz),
	0x3F: loadStore(SD),
}

// specialOps is indexed by the function field of primary opcode 0x00.
var specialOps = [64]decoder{
	0x00: shiftImm(SLL),
	0x02: shiftImm(SRL),
	0x03: shiftImm(SRA),
	0x04: shiftReg(SLLV),
	0x06: shiftReg(SRLV),
	0x07: shiftReg(SRAV),
	0x08: jumpReg(JR),
	0x09: jumpReg(JALR),
	0x0C: noOperands(SYSCALL),
	0x0D: noOperands(BREAK),
	0x0F: noOperands(SYNC),

	0x10: moveFrom(MFHI),
	0x11: moveTo(MTHI),
	0x12: moveFrom(MFLO),
	0x13: moveTo(MTLO),
	0x14: shiftReg(DSLLV),
	0x16: shiftReg(DSRLV),
	0x17: shiftReg(DSRAV),
	0x18: regPair(MULT),
	0x19: regPair(MULTU),
	0x1A: regPair(DIV),
	0x1B: regPair(DIVU),
	0x1C: regPair(DMULT),
	0x1D: regPair(DMULTU),
	0x1E: regPair(DDIV),
	0x1F: regPair(DDIVU),

	0x20: aluReg(ADD),
	0x21: aluReg(ADDU),
	0x22: aluReg(SUB),
	0x23: aluReg(SUBU),
	0x24: aluReg(AND),
	0x25: aluReg(OR),
	0x26: aluReg(XOR),
	0x27: aluReg(NOR),
	0x2A: aluReg(SLT),
	0x2B: aluReg(SLTU),
	0x2C: aluReg(DADD),
	0x2D: aluReg(DADDU),
	0x2E: aluReg(DSUB),
	0x2F: aluReg(DSUBU),

	0x30: regPair(TGE),
	0x31: regPair(TGEU),
	0x32: regPair(TLT),
	0x33: regPair(TLTU),
	0x34: regPair(TEQ),
	0x36: regPair(TNE),

	0x38: shiftImm(DSLL),
	0x3A: shiftImm(DSRL),
	0x3B: shiftImm(DSRA),
	0x3C: shiftImm(DSLL32),
	0x3E: shiftImm(DSRL32),
	0x3F: shiftImm(DSRA32),
}

// regImmOps is indexed by the rt field of primary opcode 0x01.
var regImmOps = [32]decoder{
	0x00: branchReg(BLTZ),
	0x01: branchReg(BGEZ),
	0x02: branchReg(BLTZL),
	0x03: branchReg(BGEZL),

	0x08: branchReg(TGEI),
	0x09: branchReg(TGEIU),
	0x0A: branchReg(TLTI),
	0x0B: branchReg(TLTIU),
	0x0C: branchReg(TEQI),
	0x0E: branchReg(TNEI),

	0x10: branchReg(BLTZAL),
	0x11: branchReg(BGEZAL),
	0x12: branchReg(BLTZALL),
	0x13: branchReg(BGEZALL),
}

// copBranchOps is indexed by the rt field of the BCz sub opcode.
var copBranchOps = [4]Operation{
	0x00: BCzF,
	0x01: BCzFL,
	0x02: BCzT,
	0x03: BCzTL,
}

// tlbOps maps the function field of the COP0 CO sub opcode 0x10 to the TLB
// and exception return instructions.
var tlbOps = map[uint32]Operation{
	0x01: TLBR,
	0x02: TLBWI,
	0x06: TLBWR,
	0x08: TLBP,
	0x18: ERET,
}

// Decode decodes a single instruction word. It never fails, words that do
// not encode a supported instruction decode to Unknown without operands.
func Decode(raw uint32) Instruction {
	if raw == 0 {
		return newInstruction(raw, NOP)
	}

	w := Word(raw)
	if dec := primaryOps[w.Op()]; dec != nil {
		return dec(w)
	}
	return unknown(w)
}

func unknown(w Word) Instruction {
	return newInstruction(uint32(w), Unknown)
}

func decodeSpecial(w Word) Instruction {
	if dec := specialOps[w.Funct()]; dec != nil {
		return dec(w)
	}
	return unknown(w)
}

func decodeRegImm(w Word) Instruction {
	if dec := regImmOps[w.Rt()]; dec != nil {
		return dec(w)
	}
	return unknown(w)
}

// decodeCop handles the primary opcodes 0x10 to 0x13. The rs field selects
// the sub opcode, the low two bits of the primary opcode the coprocessor.
func decodeCop(w Word) Instruction {
	raw := uint32(w)
	cop0 := w.CopSelect() == 0

	switch sub := w.Rs(); {
	case sub == 0x00 && cop0:
		return newInstruction(raw, MFC0, Register(w.Rt()), Cp0Register(w.Rd()))
	case sub == 0x00:
		return newInstruction(raw, MFCz, Register(w.Rt()), Register(w.Rd()))
	case sub == 0x01 && cop0:
		return newInstruction(raw, DMFC0, Register(w.Rt()), Cp0Register(w.Rd()))
	case sub == 0x02:
		return newInstruction(raw, CFCz, Register(w.Rt()), Register(w.Rd()))
	case sub == 0x04 && cop0:
		return newInstruction(raw, MTC0, Register(w.Rt()), Cp0Register(w.Rd()))
	case sub == 0x04:
		return newInstruction(raw, MTCz, Register(w.Rt()), Register(w.Rd()))
	case sub == 0x05 && cop0:
		return newInstruction(raw, DMTC0, Register(w.Rt()), Cp0Register(w.Rd()))
	case sub == 0x06:
		return newInstruction(raw, CTCz, Register(w.Rt()), Register(w.Rd()))
	case sub == 0x08:
		if rt := w.Rt(); rt < uint32(len(copBranchOps)) {
			return newInstruction(raw, copBranchOps[rt], Immediate16(w.Imm()))
		}
		return unknown(w)
	case sub >= 0x10:
		if op, ok := tlbOps[w.Funct()]; ok && sub == 0x10 {
			return newInstruction(raw, op)
		}
		return newInstruction(raw, COPz, Immediate32(w.CopPayload()))
	default:
		return unknown(w)
	}
}

func decodeLui(w Word) Instruction {
	return newInstruction(uint32(w), LUI, Register(w.Rt()), Immediate16(w.Imm()))
}

// jumpReg decodes JR and JALR, only the target register is kept.
func jumpReg(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rs()))
	}
}

func noOperands(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op)
	}
}

// jump decodes J and JAL, the operand is the 26 bit target field.
func jump(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Immediate32(w.Target()))
	}
}

// aluReg decodes three register instructions as rd, rt, rs.
func aluReg(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rd()), Register(w.Rt()), Register(w.Rs()))
	}
}

// aluImm decodes immediate arithmetic instructions as rt, rs, immediate.
func aluImm(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rt()), Register(w.Rs()), Immediate16(w.Imm()))
	}
}

// loadStore decodes memory access instructions as rt, base, offset.
func loadStore(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rt()), Register(w.Rs()), Immediate16(w.Imm()))
	}
}

func branchRegReg(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rs()), Register(w.Rt()), Immediate16(w.Imm()))
	}
}

// branchReg decodes single register branches and the REGIMM traps as rs, immediate.
func branchReg(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rs()), Immediate16(w.Imm()))
	}
}

func shiftImm(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rd()), Register(w.Rt()), Immediate8(w.Sa()))
	}
}

func shiftReg(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rd()), Register(w.Rt()), Register(w.Rs()))
	}
}

// regPair decodes multiply, divide and register trap instructions, which
// have no destination register.
func regPair(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rs()), Register(w.Rt()))
	}
}

func moveFrom(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rd()))
	}
}

func moveTo(op Operation) decoder {
	return func(w Word) Instruction {
		return newInstruction(uint32(w), op, Register(w.Rs()))
	}
}
