// Command conslist applies list operations to lists of integers read as YAML
// or JSON.
//
// Usage:
//
//	conslist [flags] op [file]
//
// The input is read from file, or from stdin when file is omitted. Most
// operations take a sequence of integers, such as "[1, 2, 3]"; flatten takes a
// sequence of such sequences. Operations that combine two lists read the
// second one from the file given by -with. Run "conslist -help" for the
// supported flags and operations.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"src.elv.sh/conslist/pkg/logutil"
)

var logger = logutil.GetLogger("[conslist] ")

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

type flags struct {
	Log, With string
	N         int
	JSON      bool
	Help      bool
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("conslist", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.With, "with", "", "file containing the second list for binary operations")
	fs.IntVar(&f.N, "n", 0, "number of elements for take and drop")
	fs.BoolVar(&f.JSON, "json", false, "write the result as JSON")
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: conslist [flags] op [file]")
	fmt.Fprintln(out, "Supported operations:")
	for _, name := range opNames() {
		fmt.Fprintf(out, "  %-8s %s\n", name, ops[name].desc)
	}
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// run runs the command and returns the exit status.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	f := &flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(stderr, "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(stderr, err)
		}
		usage(stderr, fs)
		return 2
	}
	if f.Help {
		usage(stdout, fs)
		return 0
	}
	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(stderr, err)
		}
		defer logutil.SetOutput(io.Discard)
	}

	err := evaluate(stdin, stdout, f, fs.Args())
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, err)
	var bu badUsageError
	if errors.As(err, &bu) {
		usage(stderr, fs)
		return 2
	}
	return 1
}

func evaluate(stdin io.Reader, stdout io.Writer, f *flags, args []string) error {
	if len(args) == 0 {
		return badUsage("missing operation")
	}
	if len(args) > 2 {
		return badUsage("too many arguments")
	}
	o, ok := ops[args[0]]
	if !ok {
		return badUsage(fmt.Sprintf("unknown operation %q", args[0]))
	}
	if o.binary && f.With == "" {
		return badUsage(fmt.Sprintf("operation %s requires -with", args[0]))
	}

	var src []byte
	var err error
	if len(args) == 2 {
		src, err = os.ReadFile(args[1])
	} else {
		if isTerminal(stdin) {
			return badUsage("no input file given and stdin is a terminal")
		}
		src, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	in := &input{src: src, n: f.N}
	if o.binary {
		if in.with, err = os.ReadFile(f.With); err != nil {
			return fmt.Errorf("read -with: %w", err)
		}
	}
	logger.Printf("running %s on %d bytes of input", args[0], len(src))
	result, err := o.run(in)
	if err != nil {
		return err
	}
	logger.Printf("result: %v", result)

	if f.JSON {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintf(stdout, "%s\n", data)
		return err
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}

func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type badUsageError struct{ msg string }

func badUsage(msg string) error { return badUsageError{msg} }

func (e badUsageError) Error() string { return e.msg }
