package main

import (
	"bufio"
	goflag "flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"hackasm/asm"
)

var (
	strict       bool
	trimComments bool
	dump         bool
)

var rootCmd = &cobra.Command{
	Use:   "hackasm <source.asm> [out.hack]",
	Short: "Assembler for the Hack computer",
	Long: `Hackasm translates Hack assembly into 16-bit machine words, one
word per output line, ready to load into the Hack CPU's instruction memory.

The assembler makes three passes over the program: the first binds each
label to the address of the instruction that follows it, the second assigns
RAM addresses to variables in order of first use starting at 16, and the
third encodes every instruction. When the output path is omitted it is
derived from the source path by replacing the .asm suffix with .hack.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&strict, "strict", false,
		"reject numeric literals over 32767 instead of clamping to 0")
	rootCmd.Flags().BoolVar(&trimComments, "trim-comments", false,
		"truncate a line at // instead of dropping the whole line")
	rootCmd.Flags().BoolVar(&dump, "dump", false,
		"pretty-print the parsed program and symbol table to stderr")
	rootCmd.Flags().AddGoFlagSet(goflag.CommandLine)
}

func main() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hackasm: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// glog checks the standard flag package's parsed state; the flags
	// themselves were already bound through cobra.
	goflag.CommandLine.Parse(nil)

	srcPath := args[0]
	outPath, err := outputPath(args)
	if err != nil {
		return err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	// Assemble into a temporary file and rename on success, so a failed run
	// never leaves a partial output file behind.
	tmp, err := os.CreateTemp(filepath.Dir(outPath), filepath.Base(outPath)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	a := asm.NewAssembler(asm.Config{Strict: strict, TrimComments: trimComments})
	w := bufio.NewWriter(tmp)
	if err := a.Assemble(src, w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return err
	}
	tmp = nil

	if dump {
		pp.Fprintf(os.Stderr, "program: %v\n", a.Program())
		pp.Fprintf(os.Stderr, "symbols: %v\n", a.Symbols())
	}
	return nil
}

func outputPath(args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}
	name, found := strings.CutSuffix(args[0], ".asm")
	if !found {
		return "", fmt.Errorf("cannot derive output path: %q does not end in .asm", args[0])
	}
	return name + ".hack", nil
}
