package r4300i

// Operation identifies the decoded instruction.
type Operation uint8

// Operations of the R4300i instruction set. Mnemonics containing a lower
// case z apply to any coprocessor, the coprocessor number is not modelled.
const (
	Unknown Operation = iota
	NOP

	ADD
	ADDI
	ADDIU
	ADDU
	AND
	ANDI

	BCzF
	BCzFL
	BCzT
	BCzTL

	BEQ
	BEQL
	BGEZ
	BGEZAL
	BGEZALL
	BGEZL
	BGTZ
	BGTZL
	BLEZ
	BLEZL
	BLTZ
	BLTZAL
	BLTZALL
	BLTZL
	BNE
	BNEL

	BREAK
	CACHE

	CFCz
	COPz
	CTCz

	DADD
	DADDI
	DADDIU
	DADDU
	DDIV
	DDIVU
	DIV
	DIVU

	DMFC0
	DMTC0
	DMULT
	DMULTU

	DSLL
	DSLLV
	DSLL32
	DSRA
	DSRAV
	DSRA32
	DSRL
	DSRLV
	DSRL32
	DSUB
	DSUBU

	ERET
	J
	JAL
	JALR
	JR

	LB
	LBU
	LD
	LDCz
	LDL
	LDR
	LH
	LHU
	LL
	LLD
	LUI
	LW
	LWCz
	LWL
	LWR
	LWU

	MFC0
	MFCz
	MFHI
	MFLO
	MTC0
	MTCz
	MTHI
	MTLO

	MULT
	MULTU

	NOR
	OR
	ORI

	SB
	SC
	SCD
	SD
	SDCz
	SDL
	SDR
	SH

	SLL
	SLLV
	SLT
	SLTI
	SLTIU
	SLTU
	SRA
	SRAV
	SRL
	SRLV

	SUB
	SUBU

	SW
	SWCz
	SWL
	SWR

	SYNC
	SYSCALL

	TEQ
	TEQI
	TGE
	TGEI
	TGEIU
	TGEU

	TLBP
	TLBR
	TLBWI
	TLBWR

	TLT
	TLTI
	TLTIU
	TLTU
	TNE
	TNEI

	XOR
	XORI

	operationCount
)

var operationNames = [operationCount]string{
	Unknown: "Unknown",
	NOP:     "NOP",

	ADD:   "ADD",
	ADDI:  "ADDI",
	ADDIU: "ADDIU",
	ADDU:  "ADDU",
	AND:   "AND",
	ANDI:  "ANDI",

	BCzF:  "BCzF",
	BCzFL: "BCzFL",
	BCzT:  "BCzT",
	BCzTL: "BCzTL",

	BEQ:     "BEQ",
	BEQL:    "BEQL",
	BGEZ:    "BGEZ",
	BGEZAL:  "BGEZAL",
	BGEZALL: "BGEZALL",
	BGEZL:   "BGEZL",
	BGTZ:    "BGTZ",
	BGTZL:   "BGTZL",
	BLEZ:    "BLEZ",
	BLEZL:   "BLEZL",
	BLTZ:    "BLTZ",
	BLTZAL:  "BLTZAL",
	BLTZALL: "BLTZALL",
	BLTZL:   "BLTZL",
	BNE:     "BNE",
	BNEL:    "BNEL",

	BREAK: "BREAK",
	CACHE: "CACHE",

	CFCz: "CFCz",
	COPz: "COPz",
	CTCz: "CTCz",

	DADD:   "DADD",
	DADDI:  "DADDI",
	DADDIU: "DADDIU",
	DADDU:  "DADDU",
	DDIV:   "DDIV",
	DDIVU:  "DDIVU",
	DIV:    "DIV",
	DIVU:   "DIVU",

	DMFC0:  "DMFC0",
	DMTC0:  "DMTC0",
	DMULT:  "DMULT",
	DMULTU: "DMULTU",

	DSLL:   "DSLL",
	DSLLV:  "DSLLV",
	DSLL32: "DSLL32",
	DSRA:   "DSRA",
	DSRAV:  "DSRAV",
	DSRA32: "DSRA32",
	DSRL:   "DSRL",
	DSRLV:  "DSRLV",
	DSRL32: "DSRL32",
	DSUB:   "DSUB",
	DSUBU:  "DSUBU",

	ERET: "ERET",
	J:    "J",
	JAL:  "JAL",
	JALR: "JALR",
	JR:   "JR",

	LB:   "LB",
	LBU:  "LBU",
	LD:   "LD",
	LDCz: "LDCz",
	LDL:  "LDL",
	LDR:  "LDR",
	LH:   "LH",
	LHU:  "LHU",
	LL:   "LL",
	LLD:  "LLD",
	LUI:  "LUI",
	LW:   "LW",
	LWCz: "LWCz",
	LWL:  "LWL",
	LWR:  "LWR",
	LWU:  "LWU",

	MFC0: "MFC0",
	MFCz: "MFCz",
	MFHI: "MFHI",
	MFLO: "MFLO",
	MTC0: "MTC0",
	MTCz: "MTCz",
	MTHI: "MTHI",
	MTLO: "MTLO",

	MULT:  "MULT",
	MULTU: "MULTU",

	NOR: "NOR",
	OR:  "OR",
	ORI: "ORI",

	SB:   "SB",
	SC:   "SC",
	SCD:  "SCD",
	SD:   "SD",
	SDCz: "SDCz",
	SDL:  "SDL",
	SDR:  "SDR",
	SH:   "SH",

	SLL:   "SLL",
	SLLV:  "SLLV",
	SLT:   "SLT",
	SLTI:  "SLTI",
	SLTIU: "SLTIU",
	SLTU:  "SLTU",
	SRA:   "SRA",
	SRAV:  "SRAV",
	SRL:   "SRL",
	SRLV:  "SRLV",

	SUB:  "SUB",
	SUBU: "SUBU",

	SW:   "SW",
	SWCz: "SWCz",
	SWL:  "SWL",
	SWR:  "SWR",

	SYNC:    "SYNC",
	SYSCALL: "SYSCALL",

	TEQ:   "TEQ",
	TEQI:  "TEQI",
	TGE:   "TGE",
	TGEI:  "TGEI",
	TGEIU: "TGEIU",
	TGEU:  "TGEU",

	TLBP:  "TLBP",
	TLBR:  "TLBR",
	TLBWI: "TLBWI",
	TLBWR: "TLBWR",

	TLT:   "TLT",
	TLTI:  "TLTI",
	TLTIU: "TLTIU",
	TLTU:  "TLTU",
	TNE:   "TNE",
	TNEI:  "TNEI",

	XOR:  "XOR",
	XORI: "XORI",
}

// String returns the mnemonic of the operation.
func (op Operation) String() string {
	if op >= operationCount {
		return operationNames[Unknown]
	}
	return operationNames[op]
}

// Operations returns all defined operations in declaration order.
func Operations() []Operation {
	ops := make([]Operation, 0, operationCount)
	for op := range operationCount {
		ops = append(ops, op)
	}
	return ops
}

// IsBranch returns true for conditional branches, jumps and jump-and-link
// instructions.
func (op Operation) IsBranch() bool {
	switch op {
	case BCzF, BCzFL, BCzT, BCzTL,
		BEQ, BEQL, BNE, BNEL,
		BGEZ, BGEZAL, BGEZALL, BGEZL,
		BGTZ, BGTZL, BLEZ, BLEZL,
		BLTZ, BLTZAL, BLTZALL, BLTZL,
		J, JAL, JALR, JR:
		return true
	default:
		return false
	}
}

// IsLikely returns true for branch-likely instructions, which nullify the
// delay slot when the branch is not taken.
func (op Operation) IsLikely() bool {
	switch op {
	case BCzFL, BCzTL, BEQL, BNEL, BGEZALL, BGEZL, BGTZL, BLEZL, BLTZALL, BLTZL:
		return true
	default:
		return false
	}
}

// IsTrap returns true for conditional trap instructions.
func (op Operation) IsTrap() bool {
	switch op {
	case TEQ, TEQI, TGE, TGEI, TGEIU, TGEU, TLT, TLTI, TLTIU, TLTU, TNE, TNEI:
		return true
	default:
		return false
	}
}

// IsLoad returns true for instructions that read memory.
func (op Operation) IsLoad() bool {
	switch op {
	case LB, LBU, LD, LDCz, LDL, LDR, LH, LHU, LL, LLD, LW, LWCz, LWL, LWR, LWU:
		return true
	default:
		return false
	}
}

// IsStore returns true for instructions that write memory.
func (op Operation) IsStore() bool {
	switch op {
	case SB, SC, SCD, SD, SDCz, SDL, SDR, SH, SW, SWCz, SWL, SWR:
		return true
	default:
		return false
	}
}

// IsCoprocessor returns true for coprocessor moves, branches and operations.
func (op Operation) IsCoprocessor() bool {
	switch op {
	case BCzF, BCzFL, BCzT, BCzTL, CFCz, COPz, CTCz,
		DMFC0, DMTC0, MFC0, MFCz, MTC0, MTCz,
		LDCz, LWCz, SDCz, SWCz,
		TLBP, TLBR, TLBWI, TLBWR, ERET:
		return true
	default:
		return false
	}
}
