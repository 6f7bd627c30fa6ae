// Command computor is the interactive math-equation interpreter: given
// an expression (or equation) per line, it lexes, parses/evaluates, and
// — for an equation — prints the reduced form, its degree, and its
// closed-form solution. Flags are parsed with cobra rather than the
// standard flag package.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"computor.dev/computor/config"
	"computor.dev/computor/repl"
)

var (
	promptFlag = "> "
	debugFlag  []string
	epsilon    float64
)

func main() {
	root := &cobra.Command{
		Use:   "computor [expression]",
		Short: "computor solves linear and quadratic equations",
		Long: "computor lexes, parses, and evaluates math expressions, reducing any\n" +
			"equation to its canonical form and printing its closed-form solution.\n" +
			"With no expression argument, it reads lines interactively from stdin.",
		RunE: run,
	}
	root.Flags().StringVar(&promptFlag, "prompt", promptFlag, "interactive prompt string")
	root.Flags().StringSliceVar(&debugFlag, "debug", nil, "enable a debug tag (repeatable)")
	root.Flags().Float64Var(&epsilon, "epsilon", 0, "override the rounding/convergence tolerance (0 = default)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	conf := &config.Config{}
	conf.SetPrompt(promptFlag)
	for _, tag := range debugFlag {
		conf.SetDebug(tag, true)
	}
	if epsilon != 0 {
		conf.SetEpsilon(epsilon)
	}

	if len(debugFlag) > 0 {
		logrus.SetLevel(logrus.DebugLevel)
	}

	r := repl.New(conf)

	if len(args) > 0 {
		expr := strings.Join(args, " ")
		r.Run(strings.NewReader(expr), false)
		return nil
	}

	r.Run(os.Stdin, true)
	return nil
}
