package assembler

// Decoded is one fully classified instruction or data directive awaiting
// the second pass.
type Decoded struct {
	Inst       Instruction
	IsData     bool
	DataWidth  int // data directive element width in bytes: 1, 2, 3, 4, or 8
	DataValues []Value

	Size       Size
	Operands   [2]AddressingMode
	SourceLine int
	Location   uint32
}

// CPU selects the target 68k variant; M68010 unlocks ControlReg operands
// and MOVEC.
type CPU int

const (
	M68000 CPU = iota
	M68010
)

// Logger is the minimal structured-logging surface the assembler accepts.
// *logrus.Logger and *logrus.Entry both satisfy it, but the assembler
// package never imports logrus directly — this package has no ambient
// dependency; only the CLI collaborator wires logrus in (see cmd/m68kasm).
type Logger interface {
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}

// Assembler holds the process-local state: the decoded
// instruction list, the growing output word stream, the location counter,
// the label/define tables, and the last non-local label for local-label
// scoping.
type Assembler struct {
	decoded []*Decoded
	output  []uint16

	location  uint32
	line      int
	labels    map[string]uint32
	defines   map[string]uint64
	lastLabel string

	cpu CPU
	log Logger
}

// Option configures an Assembler at construction time.
type Option func(*Assembler)

// WithCPU selects the target 68k variant. Defaults to M68000.
func WithCPU(c CPU) Option {
	return func(a *Assembler) { a.cpu = c }
}

// WithLogger attaches a debug-level trace sink (e.g. a *logrus.Entry). The
// assembler never logs above Debug; outcomes are always reported through
// Assemble's error return.
func WithLogger(l Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.log = l
		}
	}
}

// New creates a fresh Assembler instance.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		labels:  make(map[string]uint32),
		defines: make(map[string]uint64),
		log:     noopLogger{},
	}
	for _, o := range opts {
		o(a)
	}
	return a
}
