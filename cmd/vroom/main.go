package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/vroomlang/vroom/internal/interpreter"
	"github.com/vroomlang/vroom/internal/syntax"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(64)
	}
	switch args[0] {
	case "run":
		os.Exit(runCommand(args[1:]))
	case "repl":
		if err := runREPL(); err != nil {
			log.WithField("err", err.Error()).Error("repl failed")
			os.Exit(70)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		printUsage()
		os.Exit(64)
	}
}

func runCommand(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	trace := fs.Bool("trace", false, "log each method resolution step")
	if err := fs.Parse(args); err != nil {
		return 64
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "vroom run: script path required")
		return 64
	}
	if *trace {
		log.SetLevel(log.DebugLevel)
	}

	path := fs.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		log.WithFields(log.Fields{"path": path}).Error(err)
		return 66
	}
	if err := runSource(string(source), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitStatus(err)
	}
	return 0
}

// compile runs the scan, parse and check phases.
func compile(source string) ([]syntax.Stmt, error) {
	scanner := syntax.NewScanner(source)
	tokens := scanner.ScanTokens()
	if err := scanner.GetError(); err != nil {
		return nil, err
	}
	parser := syntax.NewParser(tokens)
	stmts := parser.Parse()
	if err := parser.GetError(); err != nil {
		return nil, err
	}
	checker := interpreter.NewChecker()
	checker.Check(stmts)
	if err := checker.GetError(); err != nil {
		return nil, err
	}
	return stmts, nil
}

func runSource(source string, out io.Writer) error {
	stmts, err := compile(source)
	if err != nil {
		return &compileError{err: err}
	}
	interp := interpreter.NewInterpreter(out)
	return interp.Interpret(stmts)
}

type compileError struct {
	err error
}

func (e *compileError) Error() string {
	return e.err.Error()
}

func (e *compileError) Unwrap() error {
	return e.err
}

// sysexits-style: 65 for bad source, 70 for failures at run time
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var cErr *compileError
	if errors.As(err, &cErr) {
		return 65
	}
	return 70
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-trace] <script>")
	fmt.Fprintln(os.Stderr, "    execute a script file")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    start an interactive session")
	fmt.Fprintln(os.Stderr, "  help")
	fmt.Fprintln(os.Stderr, "    show this message")
}
