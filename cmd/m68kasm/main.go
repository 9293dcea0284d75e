package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/duskforge/m68kasm/assembler"
)

var (
	cpuFlag     string
	outFlag     string
	verboseFlag bool
)

func main() {
	root := &cobra.Command{
		Use:   "m68kasm <sourcefile>",
		Short: "Two-pass assembler for the Motorola 68000/68010 instruction set",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().StringVar(&cpuFlag, "cpu", "68000", "target CPU: 68000 or 68010")
	root.Flags().StringVar(&outFlag, "out", "", "output file (default: input path with .bin extension)")
	root.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug-level logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	cpu, err := parseCPU(cpuFlag)
	if err != nil {
		return err
	}

	inputFile := args[0]
	outputFile := outFlag
	if outputFile == "" {
		outputFile = replaceExt(inputFile, ".bin")
	}

	src, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	asm := assembler.New(assembler.WithCPU(cpu), assembler.WithLogger(log))
	code, err := asm.Assemble(string(src), 0)
	if err != nil {
		return fmt.Errorf("assembly failed: %w", err)
	}

	if err := os.WriteFile(outputFile, code, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	log.Infof("wrote %d bytes to %s", len(code), outputFile)
	return nil
}

func parseCPU(s string) (assembler.CPU, error) {
	switch s {
	case "68000":
		return assembler.M68000, nil
	case "68010":
		return assembler.M68010, nil
	default:
		return 0, fmt.Errorf("unknown --cpu %q: want 68000 or 68010", s)
	}
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
