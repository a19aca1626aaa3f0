package symboltable

import "testing"

func TestPredefinedSymbols(t *testing.T) {
	st := NewSymbolTable()
	want := map[string]int{
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"R0": 0, "R1": 1, "R9": 9, "R10": 10, "R15": 15,
		"SCREEN": 16384, "KBD": 24576,
	}
	for name, addr := range want {
		got, ok := st.GetAddress(name)
		if !ok {
			t.Errorf("GetAddress(%q) not found", name)
			continue
		}
		if got != addr {
			t.Errorf("GetAddress(%q) = %d, want %d", name, got, addr)
		}
	}
	if st.Len() != 23 {
		t.Errorf("Len() = %d, want 23", st.Len())
	}
}

func TestAddEntry(t *testing.T) {
	st := NewSymbolTable()
	if st.Contains("LOOP") {
		t.Fatal("Contains(LOOP) = true before AddEntry")
	}
	st.AddEntry("LOOP", 7)
	if got, _ := st.GetAddress("LOOP"); got != 7 {
		t.Errorf("GetAddress(LOOP) = %d, want 7", got)
	}
}

func TestFirstWriterWins(t *testing.T) {
	st := NewSymbolTable()
	st.AddEntry("x", 16)
	st.AddEntry("x", 99)
	if got, _ := st.GetAddress("x"); got != 16 {
		t.Errorf("GetAddress(x) = %d, want 16 after rebind attempt", got)
	}

	// Predefined symbols are immune as well.
	st.AddEntry("SCREEN", 5)
	if got, _ := st.GetAddress("SCREEN"); got != 16384 {
		t.Errorf("GetAddress(SCREEN) = %d, want 16384", got)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	st := NewSymbolTable()
	entries := st.Entries()
	entries["KBD"] = 0
	if got, _ := st.GetAddress("KBD"); got != 24576 {
		t.Errorf("mutating Entries() snapshot changed the table: KBD = %d", got)
	}
}
