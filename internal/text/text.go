// Package text implements the line based console front end: pick a die by
// name, then roll it until the user answers no.
package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"wuerfel/internal/dice"
	"wuerfel/internal/errors"
	"wuerfel/internal/log"
	"wuerfel/internal/random"
)

// Console protocol lines.
const (
	MsgAvailable   = "Currently available dice: %s"
	MsgNone        = "None"
	MsgEnterName   = "Please enter the name of the die you want to use."
	MsgNoMatch     = "Your input matched with none of the existing dice. Please try again!"
	MsgFound       = "Found die: %s"
	MsgSelected    = "You selected: %s"
	MsgThrowing    = "Throwing the die!"
	MsgRolled      = "You rolled a: %d"
	MsgRollAgain   = "Do you want to roll again?(y/n)"
	MsgAnswerYesNo = "Please answer with y or n!"
)

// Session is one run of the console front end.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	registry *dice.Registry
	roller   random.Roller
}

// NewSession wires a session to its input, output and dice.
func NewSession(in io.Reader, out io.Writer, registry *dice.Registry, roller random.Roller) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		registry: registry,
		roller:   roller,
	}
}

// Run is shorthand for NewSession(...).Run().
func Run(in io.Reader, out io.Writer, registry *dice.Registry, roller random.Roller) error {
	return NewSession(in, out, registry, roller).Run()
}

// Run shows the dice, asks for one by name and rolls it until the user
// declines. Only input failures are returned.
func (s *Session) Run() error {
	summary, ok := s.registry.Summary()
	if !ok {
		summary = MsgNone
	}
	s.printf(MsgAvailable, summary)
	if !ok {
		log.Warnf("no dice configured, nothing to roll")
		return nil
	}

	die, err := s.chooseDie()
	if err != nil {
		return err
	}
	s.printf(MsgSelected, strings.TrimRight(die.String(), "\n"))
	s.printf(MsgThrowing)

	r, err := die.Range()
	if err != nil {
		return err
	}
	for {
		s.printf(MsgRolled, s.roller.Roll(r))
		again, err := s.rollAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) chooseDie() (*dice.Die, error) {
	s.printf(MsgEnterName)
	for {
		line, err := s.readLine()
		if err != nil {
			return nil, err
		}
		if d, ok := s.registry.FindByName(line); ok {
			s.printf(MsgFound, d.Name())
			return d, nil
		}
		log.Debug("die name mismatch", errors.NewInputError("no die with that name", line, errors.InputMismatch, nil))
		s.printf(MsgNoMatch)
	}
}

func (s *Session) rollAgain() (bool, error) {
	s.printf(MsgRollAgain)
	for {
		line, err := s.readLine()
		if err != nil {
			return false, err
		}
		again, err := ParseYesNo(line)
		if err == nil {
			return again, nil
		}
		log.Debug("roll again answer mismatch", err)
		s.printf(MsgAnswerYesNo)
	}
}

// ParseYesNo accepts y or n in either case. Anything else is an
// InputMismatch error.
func ParseYesNo(answer string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	}
	return false, errors.NewInputError("expected y or n", answer, errors.InputMismatch, nil)
}

// readLine returns the next line without surrounding whitespace. A final
// line without newline is still returned; end of input after that is an
// IOError.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", errors.NewIOError("failed reading from input", err)
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}
