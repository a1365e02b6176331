package main

import (
	"io"
	"os"

	"wuerfel/internal/errors"
	"wuerfel/internal/log"
)

// Entry point for the application
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and maps the outcome to an exit status.
// Help goes to errOut; out carries the console dialogue.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		args = []string{"--help"} // help the user out
	}

	a := &app{in: in, out: out, args: args}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(errOut)
	rootCmd.SetErr(io.Discard)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errSilentExit) {
			return 0
		}
		log.Errorf("%v", err)
		return 1
	}
	return 0
}
