package symboltable

import "strconv"

// SymbolTable maps symbol names to 15-bit addresses. Predefined symbols are
// seeded at construction; user symbols are added during the label and
// variable passes. Bindings are first-writer-wins: once a name is bound it
// keeps its address for the rest of the run.
type SymbolTable struct {
	entries map[string]int
}

func NewSymbolTable() *SymbolTable {
	entries := map[string]int{
		"SP":     0,
		"LCL":    1,
		"ARG":    2,
		"THIS":   3,
		"THAT":   4,
		"SCREEN": 16384,
		"KBD":    24576,
	}
	for i := 0; i <= 15; i++ {
		entries["R"+strconv.Itoa(i)] = i
	}
	return &SymbolTable{entries: entries}
}

func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.entries[name]
	return ok
}

func (st *SymbolTable) GetAddress(name string) (int, bool) {
	addr, ok := st.entries[name]
	return addr, ok
}

// AddEntry binds name to address unless name is already bound.
func (st *SymbolTable) AddEntry(name string, address int) {
	if _, ok := st.entries[name]; ok {
		return
	}
	st.entries[name] = address
}

func (st *SymbolTable) Len() int {
	return len(st.entries)
}

// Entries returns a copy of the current bindings.
func (st *SymbolTable) Entries() map[string]int {
	entries := make(map[string]int, len(st.entries))
	for name, addr := range st.entries {
		entries[name] = addr
	}
	return entries
}
