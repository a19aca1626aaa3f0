package asm

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"

	"hackasm/asm/symboltable"
)

var (
	ErrMalformedInstruction = errors.New("malformed instruction")
	ErrUnresolvedSymbol     = errors.New("unresolved symbol")
	ErrNumericOverflow      = errors.New("numeric literal exceeds 15 bits")
)

const (
	firstVariableAddress = 16
	maxAddress           = 32767
)

// Config selects the assembler's optional strict behaviors. The zero value
// matches the reference toolchain: numeric overflow clamps to 0 and a line
// with a trailing comment is dropped whole.
type Config struct {
	Strict       bool
	TrimComments bool
}

// Assembler runs the three-pass pipeline over one source program: label
// resolution, variable allocation, code generation. The symbol table grows
// during the first two passes and is read-only during the third. An
// Assembler serves a single run.
type Assembler struct {
	cfg     Config
	st      *symboltable.SymbolTable
	program []Instruction
}

func NewAssembler(cfg Config) *Assembler {
	return &Assembler{cfg: cfg, st: symboltable.NewSymbolTable()}
}

// Assemble parses the source, resolves symbols and writes one 16-character
// binary word per instruction to w. On error no further words are written;
// callers deciding to keep or discard partial output own that policy.
func (a *Assembler) Assemble(r io.Reader, w io.Writer) error {
	program, err := Parse(r, a.cfg.TrimComments)
	if err != nil {
		return err
	}
	a.program = program
	glog.V(1).Infof("parsed %d instructions", len(program))

	a.resolveLabels()
	if err := a.allocateVariables(); err != nil {
		return err
	}
	return a.generateCode(w)
}

// Program returns the classified instruction list of the last Assemble call.
func (a *Assembler) Program() []Instruction {
	return a.program
}

// Symbols returns a snapshot of the symbol table bindings.
func (a *Assembler) Symbols() map[string]int {
	return a.st.Entries()
}

// resolveLabels binds each label to the index of the next real instruction.
// Labels consume no address themselves.
func (a *Assembler) resolveLabels() {
	address := 0
	for _, ins := range a.program {
		if ins.Kind != LInstruction {
			address++
			continue
		}
		glog.V(2).Infof("label %s -> %d", ins.Symbol, address)
		a.st.AddEntry(ins.Symbol, address)
	}
	glog.V(1).Infof("pass 1 done, %d symbols", a.st.Len())
}

// allocateVariables binds the remaining A-instruction symbols in source
// order. Numeric symbols bind to their literal value; fresh variables take
// consecutive addresses from 16 up. Bindings made in pass 1 (and the
// predefined symbols) win over anything seen here.
func (a *Assembler) allocateVariables() error {
	address := firstVariableAddress
	for _, ins := range a.program {
		if ins.Kind != AInstruction || a.st.Contains(ins.Symbol) {
			continue
		}
		if allDigits(ins.Symbol) {
			value, ok := literalValue(ins.Symbol)
			if !ok {
				if a.cfg.Strict {
					return fmt.Errorf("%w: @%s", ErrNumericOverflow, ins.Symbol)
				}
				glog.V(1).Infof("literal @%s overflows, clamping to 0", ins.Symbol)
				value = 0
			}
			a.st.AddEntry(ins.Symbol, value)
			continue
		}
		glog.V(2).Infof("variable %s -> %d", ins.Symbol, address)
		a.st.AddEntry(ins.Symbol, address)
		address++
	}
	glog.V(1).Infof("pass 2 done, %d symbols", a.st.Len())
	return nil
}

func (a *Assembler) generateCode(w io.Writer) error {
	words := 0
	for _, ins := range a.program {
		switch ins.Kind {
		case AInstruction:
			address, ok := a.st.GetAddress(ins.Symbol)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnresolvedSymbol, ins.Symbol)
			}
			if _, err := fmt.Fprintf(w, "%016b\n", address); err != nil {
				return err
			}
			words++
		case CInstruction:
			word, err := encodeCompute(ins)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, word+"\n"); err != nil {
				return err
			}
			words++
		}
	}
	glog.V(1).Infof("pass 3 done, %d words emitted", words)
	return nil
}

func encodeCompute(ins Instruction) (string, error) {
	comp, ok := compBits(ins.Comp)
	if !ok {
		return "", fmt.Errorf("%w: unknown comp %q in %q", ErrMalformedInstruction, ins.Comp, ins.Text)
	}
	dest, ok := destBits(ins.Dest)
	if !ok {
		return "", fmt.Errorf("%w: unknown dest %q in %q", ErrMalformedInstruction, ins.Dest, ins.Text)
	}
	jump, ok := jumpBits(ins.Jump)
	if !ok {
		return "", fmt.Errorf("%w: unknown jump %q in %q", ErrMalformedInstruction, ins.Jump, ins.Text)
	}
	return "111" + comp + dest + jump, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// literalValue evaluates an all-digit symbol. ok is false when the value
// does not fit in 15 bits.
func literalValue(s string) (int, bool) {
	if len(s) > 5 {
		return 0, false
	}
	value := 0
	for i := 0; i < len(s); i++ {
		value = value*10 + int(s[i]-'0')
		if value > maxAddress {
			return 0, false
		}
	}
	return value, true
}
