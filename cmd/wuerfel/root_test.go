package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunHelp(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}, {"--help"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(args, strings.NewReader(""), &out, &errOut)
			assert.Equal(t, 0, code)
			assert.Empty(t, out.String())

			output := errOut.String()
			assert.Contains(t, output, "wuerfel")
			assert.Contains(t, output, "-c, --text")
			assert.Contains(t, output, "-t, --tui")
			assert.Contains(t, output, "Available dice: D4, D6, D10, D20")
		})
	}
}

func TestRunUnrecognizedArgumentsExitSilently(t *testing.T) {
	for _, args := range [][]string{{"--bogus"}, {"-x"}, {"roll"}, {"-c", "extra"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(args, strings.NewReader("D6\nn\n"), &out, &errOut)
			assert.Equal(t, 0, code)
			assert.Empty(t, out.String())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestRunTextMode(t *testing.T) {
	for _, flag := range []string{"-c", "--text"} {
		t.Run(flag, func(t *testing.T) {
			var out bytes.Buffer
			code := run([]string{flag}, strings.NewReader("D6\nn\n"), &out, io.Discard)
			assert.Equal(t, 0, code)

			output := out.String()
			assert.Contains(t, output, "Currently available dice: D4, D6, D10, D20")
			assert.Contains(t, output, "Found die: D6")
			assert.Contains(t, output, "You rolled a: ")
		})
	}
}

func TestRunTextModeInputFailure(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--text"}, strings.NewReader(""), &out, io.Discard)
	assert.Equal(t, 1, code)
}

func TestFrontEndSelection(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		useText bool
		useTUI  bool
		want    frontEnd
	}{
		{"none", []string{}, false, false, frontEndNone},
		{"text only", []string{"-c"}, true, false, frontEndText},
		{"tui only", []string{"--tui"}, false, true, frontEndTUI},
		{"text first", []string{"--text", "-t"}, true, true, frontEndText},
		{"tui first", []string{"-t", "-c"}, true, true, frontEndTUI},
		{"combined tui first", []string{"-tc"}, true, true, frontEndTUI},
		{"combined text first", []string{"-ct"}, true, true, frontEndText},
		{"long after short", []string{"-t", "--text"}, true, true, frontEndTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &app{args: tt.args}
			assert.Equal(t, tt.want, a.frontEnd(tt.useText, tt.useTUI))
		})
	}
}
