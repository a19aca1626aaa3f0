package asm

import "strings"

// compTable holds the 6-bit ALU function codes keyed by the A-register
// spelling of each computation. M-register spellings share the same function
// bits and are distinguished only by the a-bit prefix.
var compTable = map[string]string{
	"0":   "101010",
	"1":   "111111",
	"-1":  "111010",
	"D":   "001100",
	"A":   "110000",
	"!D":  "001101",
	"!A":  "110001",
	"-D":  "001111",
	"-A":  "110011",
	"D+1": "011111",
	"A+1": "110111",
	"D-1": "001110",
	"A-1": "110010",
	"D+A": "000010",
	"D-A": "010011",
	"A-D": "000111",
	"D&A": "000000",
	"D|A": "010101",
}

var jumpTable = map[string]string{
	"null": "000",
	"JGT":  "001",
	"JEQ":  "010",
	"JGE":  "011",
	"JLT":  "100",
	"JNE":  "101",
	"JLE":  "110",
	"JMP":  "111",
}

// destBits encodes a dest mnemonic as its 3-bit field. The mnemonic is
// treated as a set of target registers, so every ordering of the same
// registers ("MD", "DM") yields the same code. A repeated or unknown
// register fails the lookup.
func destBits(mnemonic string) (string, bool) {
	if mnemonic == "null" {
		return "000", true
	}
	var d byte
	for i := 0; i < len(mnemonic); i++ {
		var bit byte
		switch mnemonic[i] {
		case 'A':
			bit = 4
		case 'D':
			bit = 2
		case 'M':
			bit = 1
		default:
			return "", false
		}
		if d&bit != 0 {
			return "", false
		}
		d |= bit
	}
	if d == 0 {
		return "", false
	}
	bits := []byte{'0', '0', '0'}
	if d&4 != 0 {
		bits[0] = '1'
	}
	if d&2 != 0 {
		bits[1] = '1'
	}
	if d&1 != 0 {
		bits[2] = '1'
	}
	return string(bits), true
}

// compBits encodes a comp mnemonic as its 7-bit field: the a-bit followed by
// the 6-bit function code. A mnemonic referencing M selects a=1 and shares
// function bits with its A-register spelling.
func compBits(mnemonic string) (string, bool) {
	a := "0"
	if strings.ContainsRune(mnemonic, 'M') {
		a = "1"
		mnemonic = strings.ReplaceAll(mnemonic, "M", "A")
	}
	fn, ok := compTable[mnemonic]
	if !ok {
		return "", false
	}
	return a + fn, true
}

func jumpBits(mnemonic string) (string, bool) {
	bits, ok := jumpTable[mnemonic]
	return bits, ok
}
