package main

import (
	"io"
	"strings"

	"wuerfel/internal/config"
	"wuerfel/internal/controller"
	"wuerfel/internal/dice"
	"wuerfel/internal/errors"
	"wuerfel/internal/log"
	"wuerfel/internal/random"
	"wuerfel/internal/text"
	"wuerfel/internal/tui"

	"github.com/spf13/cobra"
)

// errSilentExit ends the program without output, for unrecognized arguments
var errSilentExit = errors.New("unrecognized argument")

type frontEnd int

const (
	frontEndNone frontEnd = iota
	frontEndText
	frontEndTUI
)

// app carries the process streams and raw arguments into the command
type app struct {
	in   io.Reader
	out  io.Writer
	args []string
}

// newRootCmd creates the root command
func newRootCmd(a *app) *cobra.Command {
	var useText, useTUI bool

	rootCmd := &cobra.Command{
		Use:   "wuerfel",
		Short: "Roll dice in the terminal",
		Long:  longDescription(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errSilentExit
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch a.frontEnd(useText, useTUI) {
			case frontEndText:
				return runText(a)
			case frontEndTUI:
				return runTUI()
			default:
				return cmd.Help()
			}
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(*cobra.Command, error) error {
		return errSilentExit
	})

	rootCmd.Flags().BoolVarP(&useText, "text", "c", false, "use raw text output")
	rootCmd.Flags().BoolVarP(&useTUI, "tui", "t", false, "use tui output")

	return rootCmd
}

func longDescription() string {
	desc := "wuerfel lets you pick a die and roll it, either through a simple\ntext dialogue or an interactive terminal UI."
	if cfg, err := config.Load(); err == nil && len(cfg.Dice) > 0 {
		desc += "\n\nAvailable dice: " + strings.Join(cfg.Names(), ", ")
	}
	return desc
}

// frontEnd picks the front end named first on the command line
func (a *app) frontEnd(useText, useTUI bool) frontEnd {
	if useText != useTUI {
		if useText {
			return frontEndText
		}
		return frontEndTUI
	}
	if !useText {
		return frontEndNone
	}
	for _, arg := range a.args {
		switch {
		case arg == "--":
			return frontEndText
		case arg == "--text":
			return frontEndText
		case arg == "--tui":
			return frontEndTUI
		case strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--"):
			// shorthands may be combined, e.g. -tc
			for _, r := range arg[1:] {
				switch r {
				case 'c':
					return frontEndText
				case 't':
					return frontEndTUI
				}
			}
		}
	}
	return frontEndText
}

// setup builds the shared dice registry and seeds the generator
func setup() (*config.Config, *dice.Registry, *random.Source, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	reg, err := dice.BuildRegistry(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	src, err := random.NewFromEntropy()
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debugf("seeded generator with %d", src.Seed())
	return cfg, reg, src, nil
}

func runText(a *app) error {
	_, reg, src, err := setup()
	if err != nil {
		return err
	}
	return text.Run(a.in, a.out, reg, src)
}

func runTUI() error {
	cfg, reg, src, err := setup()
	if err != nil {
		return err
	}
	return tui.Run(controller.New(reg, src), cfg.Theme)
}
