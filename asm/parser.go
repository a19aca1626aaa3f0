package asm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

type commandType int

const (
	AInstruction commandType = iota
	CInstruction
	LInstruction
)

// Instruction is one classified source line. Symbol is set for A- and
// L-instructions, Dest/Comp/Jump for C-instructions ("null" marks an absent
// dest or jump). Text keeps the stripped source line for error reporting.
type Instruction struct {
	Kind   commandType
	Symbol string
	Dest   string
	Comp   string
	Jump   string
	Text   string
}

const commentMarker = "//"

// Parse reads the whole source and classifies every line into an in-memory
// instruction list. The three assembly passes then traverse that list instead
// of re-reading the source.
//
// By default a line containing the comment marker anywhere is dropped whole,
// matching the reference toolchain, so an instruction with a trailing
// same-line comment is lost. With trimComments the line is truncated at the
// marker instead and the prefix is classified normally.
func Parse(r io.Reader, trimComments bool) ([]Instruction, error) {
	var program []Instruction
	s := bufio.NewScanner(r)
	for s.Scan() {
		ins, ok := classify(s.Text(), trimComments)
		if !ok {
			continue
		}
		program = append(program, ins)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return program, nil
}

func classify(line string, trimComments bool) (Instruction, bool) {
	line = stripSpace(line)
	if i := strings.Index(line, commentMarker); i >= 0 {
		if !trimComments {
			return Instruction{}, false
		}
		line = line[:i]
	}
	if line == "" {
		return Instruction{}, false
	}

	if i := strings.IndexByte(line, '@'); i >= 0 {
		return Instruction{Kind: AInstruction, Symbol: line[i+1:], Text: line}, true
	}

	lparen := strings.IndexByte(line, '(')
	rparen := strings.IndexByte(line, ')')
	if lparen >= 0 && rparen > lparen {
		return Instruction{Kind: LInstruction, Symbol: line[lparen+1 : rparen], Text: line}, true
	}

	ins := Instruction{Kind: CInstruction, Dest: "null", Jump: "null", Text: line}
	rest := line
	if dest, comp, found := strings.Cut(rest, "="); found {
		ins.Dest = dest
		rest = comp
	}
	if comp, jump, found := strings.Cut(rest, ";"); found {
		ins.Comp = comp
		ins.Jump = jump
	} else {
		ins.Comp = rest
	}
	return ins, true
}

// stripSpace removes every whitespace rune, including whitespace embedded in
// the middle of a token.
func stripSpace(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}
