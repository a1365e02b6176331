package testutils

import (
	"testing"

	"wuerfel/internal/dice"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// DefaultRegistry builds the shipped D4, D6, D10, D20 registry
func DefaultRegistry(t *testing.T) *dice.Registry {
	t.Helper()
	reg, err := dice.DefaultRegistry()
	require.NoError(t, err)
	return reg
}

// NewDie creates a die carrying faces lo..hi inserted in ascending order
func NewDie(t *testing.T, name string, lo, hi int) *dice.Die {
	t.Helper()
	d := dice.NewDie(name)
	for n := lo; n <= hi; n++ {
		face, err := dice.LookupFace(n)
		require.NoError(t, err)
		require.NoError(t, d.InsertFace(face, n-lo))
	}
	return d
}

// RegistryOf builds a registry holding the given dice in order
func RegistryOf(dies ...*dice.Die) *dice.Registry {
	reg := dice.NewRegistry()
	for _, d := range dies {
		reg.AddDie(d)
	}
	return reg
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	return ansi.Strip(str)
}
