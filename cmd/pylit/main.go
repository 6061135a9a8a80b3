// pylit - Python literal codec CLI
//
// Usage:
//
//	pylit fmt [file]        Pretty-print a literal document
//	pylit compact [file]    Reformat a literal document compactly
//	pylit check [file]      Validate a literal document
//	pylit to-json [file]    Convert literal text to JSON
//	pylit from-json [file]  Convert JSON to literal text
//	pylit version           Print version info
//
// If no file is given, reads from stdin. Files ending in .gz are read
// and written through gzip. Documents holding floats reformat with
// check/to-json only: the encoder refuses to serialize floats.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/pflag"

	"github.com/Neumenon/pylit/pylit"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	if cmd == "version" {
		fmt.Printf("pylit %s\n", version)
		return
	}

	flags := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	outPath := flags.StringP("output", "o", "", "write to file instead of stdout (.gz compresses)")
	pretty := flags.BoolP("pretty", "p", false, "pretty-print from-json output")
	if err := flags.Parse(os.Args[2:]); err != nil {
		fatal("parse flags: %v", err)
	}

	data := readInput(flags.Arg(0))
	out, finish := openOutput(*outPath)

	switch cmd {
	case "fmt":
		cmdReformat(data, out, true)
	case "compact":
		cmdReformat(data, out, false)
	case "check":
		cmdCheck(data)
	case "to-json":
		cmdToJSON(data, out)
	case "from-json":
		cmdFromJSON(data, out, *pretty)
	default:
		fmt.Fprintf(os.Stderr, "pylit: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	finish()
}

func cmdReformat(data []byte, out io.Writer, pretty bool) {
	v, err := pylit.Parse(data)
	if err != nil {
		fatal("parse: %v", err)
	}
	var opts []pylit.EncoderOption
	if pretty {
		opts = append(opts, pylit.Pretty())
	}
	e := pylit.NewEncoder(out, opts...)
	if err := e.Emit(v); err != nil {
		fatal("emit: %v", err)
	}
	fmt.Fprintln(out)
}

func cmdCheck(data []byte) {
	if _, err := pylit.Parse(data); err != nil {
		fatal("invalid: %v", err)
	}
	fmt.Fprintln(os.Stderr, "ok")
}

func cmdToJSON(data []byte, out io.Writer) {
	v, err := pylit.Parse(data)
	if err != nil {
		fatal("parse: %v", err)
	}
	j, err := pylit.ToJSON(v)
	if err != nil {
		fatal("to json: %v", err)
	}
	out.Write(j)
	fmt.Fprintln(out)
}

func cmdFromJSON(data []byte, out io.Writer, pretty bool) {
	v, err := pylit.FromJSON(data)
	if err != nil {
		fatal("parse json: %v", err)
	}
	var lit []byte
	if pretty {
		lit, err = pylit.MarshalPretty(v)
	} else {
		lit, err = pylit.Marshal(v)
	}
	if err != nil {
		fatal("emit: %v", err)
	}
	out.Write(lit)
	fmt.Fprintln(out)
}

// readInput slurps the file argument, or stdin when it is empty or "-".
// A .gz suffix selects transparent decompression.
func readInput(path string) []byte {
	var in io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		in = f
		if strings.HasSuffix(path, ".gz") {
			gz, err := gzip.NewReader(f)
			if err != nil {
				fatal("open gzip: %v", err)
			}
			defer gz.Close()
			in = gz
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		fatal("read input: %v", err)
	}
	return data
}

// openOutput returns the sink for the converted document plus a cleanup
// to run after writing. Empty path means stdout; a .gz suffix compresses.
func openOutput(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		fatal("create file: %v", err)
	}
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		return gz, func() {
			if err := gz.Close(); err != nil {
				fatal("close gzip: %v", err)
			}
			if err := f.Close(); err != nil {
				fatal("close file: %v", err)
			}
		}
	}
	return f, func() {
		if err := f.Close(); err != nil {
			fatal("close file: %v", err)
		}
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "pylit: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `pylit - Python literal codec

Usage:
  pylit fmt [file]        Pretty-print a literal document
  pylit compact [file]    Reformat a literal document compactly
  pylit check [file]      Validate a literal document
  pylit to-json [file]    Convert literal text to JSON
  pylit from-json [file]  Convert JSON to literal text
  pylit version           Print version info

Flags:
  -o, --output FILE   Write to FILE instead of stdout (.gz compresses)
  -p, --pretty        Pretty-print from-json output

If no file is given, input is read from stdin. Files ending in .gz are
read through gzip.
`)
}
