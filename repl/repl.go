// Package repl drives the read-eval-print loop: read a line, hand it to
// parse.Interpreter, render a poly.Polynomial result through resolve's
// solution text or any other Value via its own String, and map a thrown
// *cerr.Error to its exact user-facing prefix. The loop shape — print a
// prompt when interactive, report a failed line and move on, keep going
// until EOF — is grounded on ivy's run.Run/run.eval pair; logrus replaces
// silent debug-tag checks with structured, leveled diagnostics.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"computor.dev/computor/cerr"
	"computor.dev/computor/config"
	"computor.dev/computor/parse"
	"computor.dev/computor/poly"
	"computor.dev/computor/resolve"
)

// REPL bundles an Interpreter with its Config, a History ring, and a
// logger that it writes to at Debug level only; whether those entries
// appear depends on the logger's level, not on conf.Debug.
type REPL struct {
	interp  *parse.Interpreter
	conf    *config.Config
	history History
	log     *logrus.Logger
}

// New builds a REPL bound to conf (nil is fine; Config is nil-safe) and a
// fresh in-memory History.
func New(conf *config.Config) *REPL {
	return &REPL{
		interp:  parse.NewInterpreter(conf),
		conf:    conf,
		history: NewRing(defaultHistorySize),
		log:     logrus.StandardLogger(),
	}
}

// Run reads lines from in until EOF or a read error, printing results
// and formatted errors alike to conf.Output(). interactive controls
// whether the prompt and the trailing "Bye!" banner are shown. The
// return value reports whether input was exhausted cleanly.
func (r *REPL) Run(in io.Reader, interactive bool) bool {
	scanner := bufio.NewScanner(in)
	writer := r.conf.Output()
	for {
		if interactive {
			fmt.Fprint(writer, r.conf.Prompt())
		}
		if !scanner.Scan() {
			if interactive {
				fmt.Fprintln(writer, "Bye!")
			}
			return scanner.Err() == nil
		}
		line := scanner.Text()
		if interactive && strings.TrimSpace(line) == "" {
			continue
		}
		r.history.Add(line)
		r.evalLine(line, writer)
	}
}

// evalLine parses and prints one line, recovering any *cerr.Error so a
// single bad line never aborts the loop.
func (r *REPL) evalLine(line string, writer io.Writer) {
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(*cerr.Error)
			if !ok {
				panic(p)
			}
			fmt.Fprintln(writer, Format(e))
		}
	}()
	result, err := r.interp.Parse(line)
	if err != nil {
		r.log.WithField("line", line).Debug("parse failed")
		fmt.Fprintln(writer, Format(err))
		return
	}
	if result == nil {
		return
	}
	fmt.Fprintln(writer, r.render(result))
}

// render prints a poly.Polynomial through the resolver's solution text
// and anything else (a plain number, from an
// expression with no "=") through its own String.
func (r *REPL) render(v parse.Value) string {
	if p, ok := v.(poly.Polynomial); ok {
		return resolve.SolutionText(p, r.conf)
	}
	return fmt.Sprint(v)
}

// Format maps a parse error to the user-facing prefix assigned to its
// Kind. A non-*cerr.Error is rendered as-is, since Parse only ever
// returns cerr errors or nil.
func Format(err error) string {
	e, ok := err.(*cerr.Error)
	if !ok {
		return err.Error()
	}
	switch e.Kind {
	case cerr.Syntax:
		return "You have an error in your syntax: " + e.Detail
	case cerr.UnexpectedEnd:
		return "Could not parse: unexpected end of expression."
	case cerr.UnsupportedOperation:
		return "Could not compute: unsupported operation"
	case cerr.Resolve, cerr.Math, cerr.DivisionByZero:
		return "Could not compute: " + e.Detail
	default:
		return e.Detail
	}
}
