// Command regcore is the CLI adapter over the regcore pipeline: it
// compiles a pattern, prints the AST/NFA/DFA summary lines spec §6
// mandates, and optionally reports whether a given input string is
// accepted. It is an external collaborator of the core per spec §1
// (CLI argument handling is explicitly out of the algorithmic core's
// scope); everything here is presentation, driven by cobra for
// argument parsing and gologger for the verbose diagnostic channel,
// kept separate from the plain stdout output the contract requires.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/regviz/regcore"
	"github.com/regviz/regcore/simulate"
)

var verbose bool

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// cobra has already printed usage; nothing left to report.
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regcore <pattern> [input]",
		Short: "Compile a regcore pattern and report its AST/NFA/DFA",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runCompile,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline stage as it runs")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	if verbose {
		gologger.Info().Msgf("lexing and parsing pattern %q", pattern)
	}

	art, err := regcore.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build error: %s\n", err)
		os.Exit(1)
	}

	if verbose {
		gologger.Info().Msgf("building NFA via Thompson construction")
	}
	n := art.NFA()

	if verbose {
		gologger.Info().Msgf("determinizing NFA via subset construction")
	}
	d := art.DFA()

	fmt.Printf("Pattern: %s\n", pattern)
	fmt.Printf("AST: %s\n", art.AST().String())
	fmt.Printf("NFA: states=%d start=%d accepts=%d edges=%d\n",
		n.NumStates(), n.Start(), 1, len(n.Edges()))
	fmt.Printf("DFA: states=%d start=0 accepts=%d alphabet=%s\n",
		d.NumStates(), len(d.Accepting()), formatAlphabet(d.Alphabet()))

	if len(args) == 2 {
		input := args[1]
		fmt.Printf("Input: %q\n", input)

		nfaOk, nfaErr := simulate.Accept(n, input)
		if nfaErr != nil {
			nfaOk = false
		}
		fmt.Printf("NFA accepts: %t\n", nfaOk)

		dfaOk, dfaErr := simulate.AcceptDFA(d, input)
		if dfaErr != nil {
			dfaOk = false
		}
		fmt.Printf("DFA accepts: %t\n", dfaOk)
	}

	return nil
}

func formatAlphabet(alphabet []rune) string {
	s := "["
	for i, c := range alphabet {
		if i > 0 {
			s += " "
		}
		s += string(c)
	}
	return s + "]"
}
