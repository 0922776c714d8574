package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	in := flag.String("in", "bands.yaml", "Band table YAML")
	out := flag.String("out", "bands_gen.go", "Output Go file")
	flag.Parse()

	if err := run(*in, *out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	table, err := LoadBandTable(in)
	if err != nil {
		return fmt.Errorf("loading %s: %w", in, err)
	}
	code, err := GenerateBands(table)
	if err != nil {
		return err
	}
	if err := writeFormatted(out, code); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("  generated %s\n", out)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Keep the raw output for debugging the template.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
