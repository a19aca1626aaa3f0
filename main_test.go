package main

import "testing"

func TestOutputPath(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{[]string{"prog.asm", "out.hack"}, "out.hack", false},
		{[]string{"prog.asm"}, "prog.hack", false},
		{[]string{"dir/Pong.asm"}, "dir/Pong.hack", false},
		{[]string{"prog.txt"}, "", true},
	}
	for _, tt := range tests {
		got, err := outputPath(tt.args)
		if tt.wantErr {
			if err == nil {
				t.Errorf("outputPath(%v) = %q, want error", tt.args, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("outputPath(%v) failed: %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("outputPath(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
