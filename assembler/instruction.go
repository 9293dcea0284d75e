package assembler

import "strings"

// InstKind tags the Instruction variant.
type InstKind int

const (
	IAddSub InstKind = iota
	IAddSubA
	IAddSubQ
	IAddSubX
	IBcd
	IBitManip
	IBranch
	IDbcc
	IScc
	IImmediates
	IJump
	IMove
	IMoveA
	IMoveQ
	IMovem
	IMovep
	IOrAnd
	IRotation
	IMulDiv
	INoOperands
	ILea
	IChk
	IExg
	ITst
	IExt
	ISwap
	IUnlk
	ILink
	ITrap
	ITas
	IStop
	IPea
	ICmp
	ICmpa
	ICmpm
	INbcd
	IEor
	IBkpt
	IRtd
	IMoveC // M68010 control-register move
	IMisc1 // CLR/NEG/NEGX/NOT: single EA operand, direct base-template family
)

// Misc1Op names the four single-EA families sharing one bit-layout shape.
type Misc1Op int

const (
	Misc1Clr Misc1Op = iota
	Misc1Neg
	Misc1NegX
	Misc1Not
)

// BitOp names the four BTST/BCHG/BCLR/BSET variants.
type BitOp int

const (
	BTst BitOp = iota
	BChg
	BClr
	BSet
)

// RotKind/RotDir pick among ASL/ASR/LSL/LSR/ROL/ROR/ROXL/ROXR.
type RotKind int

const (
	RotAS RotKind = iota
	RotLS
	RotRO
	RotROX
)

type RotDir int

const (
	RotLeft RotDir = iota
	RotRight
)

// Instruction is the tagged variant holding everything a per-family
// encoder needs: the family discriminant plus its family-specific fields.
type Instruction struct {
	Kind InstKind

	IsSub      bool // AddSub/AddSubA/AddSubQ/AddSubX
	BitOp      BitOp
	Cond       int // Branch/Dbcc/Scc: 0..15
	ImmKind    int // Immediates: 0=ORI,1=ANDI,2=SUBI,3=ADDI,5=EORI,6=CMPI
	IsJmp      bool // Jump: false=JSR, true=JMP
	IsSbcd     bool // Bcd: false=ABCD, true=SBCD
	IsAnd      bool // OrAnd: false=OR, true=AND
	Rot        RotKind
	RotDir     RotDir
	Signed     bool // MulDiv
	IsDiv      bool // MulDiv
	Word       uint16 // NoOperands
	Misc1      Misc1Op
	Mnemonic   string
}

// Immediate-family operation indices, matching bits 11:9 of the opcode
// word (0000 xxx0 ...) of ORI/ANDI/SUBI/ADDI/EORI/CMPI; index 4 is reserved (static
// bit operations live there instead) and never produced by this catalog.
const (
	immORI  = 0
	immANDI = 1
	immSUBI = 2
	immADDI = 3
	immEORI = 5
	immCMPI = 6
)

// condNames maps the suffix used by Bcc/DBcc/Scc mnemonics to the 4-bit
// 68k condition code field.
var condNames = map[string]int{
	"t": 0, "f": 1, "hi": 2, "ls": 3, "cc": 4, "hs": 4, "cs": 5, "lo": 5,
	"ne": 6, "eq": 7, "vc": 8, "vs": 9, "pl": 10, "mi": 11, "ge": 12, "lt": 13,
	"gt": 14, "le": 15,
}

// plainCatalog holds every mnemonic that is not a member of the Bcc/DBcc/Scc
// condition families (those are matched structurally in lookupInstruction).
var plainCatalog = buildPlainCatalog()

func buildPlainCatalog() map[string]Instruction {
	m := map[string]Instruction{}
	add := func(name string, in Instruction) { in.Mnemonic = name; m[name] = in }

	add("add", Instruction{Kind: IAddSub, IsSub: false})
	add("sub", Instruction{Kind: IAddSub, IsSub: true})
	add("adda", Instruction{Kind: IAddSubA, IsSub: false})
	add("suba", Instruction{Kind: IAddSubA, IsSub: true})
	add("addq", Instruction{Kind: IAddSubQ, IsSub: false})
	add("subq", Instruction{Kind: IAddSubQ, IsSub: true})
	add("addx", Instruction{Kind: IAddSubX, IsSub: false})
	add("subx", Instruction{Kind: IAddSubX, IsSub: true})
	add("addi", Instruction{Kind: IImmediates, ImmKind: immADDI})
	add("subi", Instruction{Kind: IImmediates, ImmKind: immSUBI})
	add("andi", Instruction{Kind: IImmediates, ImmKind: immANDI})
	add("ori", Instruction{Kind: IImmediates, ImmKind: immORI})
	add("eori", Instruction{Kind: IImmediates, ImmKind: immEORI})
	add("cmpi", Instruction{Kind: IImmediates, ImmKind: immCMPI})

	add("and", Instruction{Kind: IOrAnd, IsAnd: true})
	add("or", Instruction{Kind: IOrAnd, IsAnd: false})
	add("eor", Instruction{Kind: IEor})

	add("abcd", Instruction{Kind: IBcd, IsSbcd: false})
	add("sbcd", Instruction{Kind: IBcd, IsSbcd: true})
	add("nbcd", Instruction{Kind: INbcd})

	add("btst", Instruction{Kind: IBitManip, BitOp: BTst})
	add("bchg", Instruction{Kind: IBitManip, BitOp: BChg})
	add("bclr", Instruction{Kind: IBitManip, BitOp: BClr})
	add("bset", Instruction{Kind: IBitManip, BitOp: BSet})

	add("asl", Instruction{Kind: IRotation, Rot: RotAS, RotDir: RotLeft})
	add("asr", Instruction{Kind: IRotation, Rot: RotAS, RotDir: RotRight})
	add("lsl", Instruction{Kind: IRotation, Rot: RotLS, RotDir: RotLeft})
	add("lsr", Instruction{Kind: IRotation, Rot: RotLS, RotDir: RotRight})
	add("rol", Instruction{Kind: IRotation, Rot: RotRO, RotDir: RotLeft})
	add("ror", Instruction{Kind: IRotation, Rot: RotRO, RotDir: RotRight})
	add("roxl", Instruction{Kind: IRotation, Rot: RotROX, RotDir: RotLeft})
	add("roxr", Instruction{Kind: IRotation, Rot: RotROX, RotDir: RotRight})

	add("muls", Instruction{Kind: IMulDiv, Signed: true, IsDiv: false})
	add("mulu", Instruction{Kind: IMulDiv, Signed: false, IsDiv: false})
	add("divs", Instruction{Kind: IMulDiv, Signed: true, IsDiv: true})
	add("divu", Instruction{Kind: IMulDiv, Signed: false, IsDiv: true})

	add("move", Instruction{Kind: IMove})
	add("movea", Instruction{Kind: IMoveA})
	add("moveq", Instruction{Kind: IMoveQ})
	add("movem", Instruction{Kind: IMovem})
	add("movep", Instruction{Kind: IMovep})
	add("movec", Instruction{Kind: IMoveC})

	add("lea", Instruction{Kind: ILea})
	add("pea", Instruction{Kind: IPea})
	add("chk", Instruction{Kind: IChk})
	add("exg", Instruction{Kind: IExg})
	add("tst", Instruction{Kind: ITst})
	add("ext", Instruction{Kind: IExt})
	add("swap", Instruction{Kind: ISwap})
	add("unlk", Instruction{Kind: IUnlk})
	add("link", Instruction{Kind: ILink})
	add("tas", Instruction{Kind: ITas})
	add("cmp", Instruction{Kind: ICmp})
	add("cmpa", Instruction{Kind: ICmpa})
	add("cmpm", Instruction{Kind: ICmpm})
	add("rtd", Instruction{Kind: IRtd})
	add("bkpt", Instruction{Kind: IBkpt})

	add("jmp", Instruction{Kind: IJump, IsJmp: true})
	add("jsr", Instruction{Kind: IJump, IsJmp: false})

	add("trap", Instruction{Kind: ITrap})
	add("trapv", Instruction{Kind: INoOperands, Word: 0b0100111001110110})
	add("stop", Instruction{Kind: IStop})
	add("rte", Instruction{Kind: INoOperands, Word: 0b0100111001110011})
	add("rtr", Instruction{Kind: INoOperands, Word: 0b0100111001110111})
	add("rts", Instruction{Kind: INoOperands, Word: 0b0100111001110101})
	add("nop", Instruction{Kind: INoOperands, Word: 0b0100111001110001})
	add("reset", Instruction{Kind: INoOperands, Word: 0b0100111001110000})
	add("illegal", Instruction{Kind: INoOperands, Word: 0b0100101011111100})
	add("clr", Instruction{Kind: IMisc1, Misc1: Misc1Clr})
	add("neg", Instruction{Kind: IMisc1, Misc1: Misc1Neg})
	add("negx", Instruction{Kind: IMisc1, Misc1: Misc1NegX})
	add("not", Instruction{Kind: IMisc1, Misc1: Misc1Not})

	return m
}

// lookupInstruction resolves a lowercased mnemonic to an Instruction,
// matching the structural Bcc/DBcc/Scc condition families before falling
// back to the plain catalog.
func lookupInstruction(mnemonic string) (Instruction, bool) {
	m := strings.ToLower(mnemonic)

	if m == "bra" {
		return Instruction{Kind: IBranch, Cond: 0, Mnemonic: m}, true
	}
	if m == "bsr" {
		return Instruction{Kind: IBranch, Cond: 1, Mnemonic: m}, true
	}
	if suffix, ok := strings.CutPrefix(m, "b"); ok {
		if cond, ok := condNames[suffix]; ok && suffix != "t" && suffix != "f" {
			return Instruction{Kind: IBranch, Cond: cond, Mnemonic: m}, true
		}
	}
	if suffix, ok := strings.CutPrefix(m, "db"); ok {
		if cond, ok := condNames[suffix]; ok {
			return Instruction{Kind: IDbcc, Cond: cond, Mnemonic: m}, true
		}
	}
	if suffix, ok := strings.CutPrefix(m, "s"); ok {
		if cond, ok := condNames[suffix]; ok {
			return Instruction{Kind: IScc, Cond: cond, Mnemonic: m}, true
		}
	}

	if in, ok := plainCatalog[m]; ok {
		return in, true
	}
	return Instruction{}, false
}
