package common

import "wuerfel/internal/dice"

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Dice() []*dice.Die
	Selected() (index int, ok bool)
	LastRoll() (value int, ok bool)
	HelpView() string
	Status() string
	Width() int
}
