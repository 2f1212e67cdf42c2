package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cssel/cssel/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "compile":
		compileCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "cssel CLI\n\nUsage:\n  cssel compile [-f def.yaml|def.json] [-format yaml|json]\n\nNotes:\n  - Reads the definition from stdin when -f is omitted or set to \"-\".\n  - The format is inferred from the file extension; -format overrides it (stdin defaults to yaml).")
}

func compileCmd(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	var file string
	var format string
	fs.StringVar(&file, "f", "-", "definition file, or - for stdin")
	fs.StringVar(&format, "format", "", "definition format: yaml or json")
	_ = fs.Parse(args)

	data, err := readInput(file)
	if err != nil {
		fatalf("reading definition: %v", err)
	}
	if format == "" {
		format = inferFormat(file)
	}

	var sel string
	switch format {
	case "yaml":
		sel, err = codec.CompileYAML(data)
	case "json":
		sel, err = codec.CompileJSON(data)
	default:
		fatalf("unknown format %q (want yaml or json)", format)
	}
	if err != nil {
		fatalf("compile: %v", err)
	}
	fmt.Println(sel)
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func inferFormat(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
