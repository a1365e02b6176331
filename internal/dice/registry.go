package dice

import (
	"slices"
	"strings"

	"wuerfel/internal/config"
	"wuerfel/internal/errors"
	"wuerfel/internal/log"
)

const summarySeparator = ", "

// Registry is the ordered collection of dice configured for a session.
// Insertion order is display and navigation order.
type Registry struct {
	dice []*Die
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddDie appends d. The registry owns d from now on.
func (r *Registry) AddDie(d *Die) {
	if !d.Ordered() {
		log.With(log.F("die", d.Name())).Warn("faces are not in ascending order, roll range will be wrong")
	}
	r.dice = append(r.dice, d)
}

// Dice returns the dice in registry order.
func (r *Registry) Dice() []*Die {
	return slices.Clone(r.dice)
}

// Len returns the number of dice.
func (r *Registry) Len() int { return len(r.dice) }

// At returns the die at index i.
func (r *Registry) At(i int) (*Die, bool) {
	if i < 0 || i >= len(r.dice) {
		return nil, false
	}
	return r.dice[i], true
}

// FindByName returns the first die whose name equals name exactly.
func (r *Registry) FindByName(name string) (*Die, bool) {
	for _, d := range r.dice {
		if d.name == name {
			return d, true
		}
	}
	return nil, false
}

// Summary joins the die names with ", ". ok is false for an empty registry.
func (r *Registry) Summary() (summary string, ok bool) {
	if len(r.dice) == 0 {
		return "", false
	}
	names := make([]string, len(r.dice))
	for i, d := range r.dice {
		names[i] = d.name
	}
	return strings.Join(names, summarySeparator), true
}

func (r *Registry) String() string {
	if len(r.dice) == 0 {
		return "No dices configured!\n"
	}
	var sb strings.Builder
	sb.WriteString("Outputting all currently configured dices.\n")
	for _, d := range r.dice {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// BuildRegistry creates one die per catalog entry, carrying the faces
// First..Last in ascending order.
func BuildRegistry(cfg *config.Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := NewRegistry()
	for _, spec := range cfg.Dice {
		d := NewDie(spec.Name)
		for n := spec.First; n <= spec.Last; n++ {
			face, err := LookupFace(n)
			if err != nil {
				return nil, errors.Wrapf(err, "configuring die %s", spec.Name)
			}
			d.AddFace(face)
		}
		reg.AddDie(d)
		log.Debugf("registered die %s with range %v", spec.Name, Range{Lo: spec.First, Hi: spec.Last + 1})
	}
	return reg, nil
}

// DefaultRegistry builds the dice shipped with the binary: D4, D6, D10 and D20.
func DefaultRegistry() (*Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return BuildRegistry(cfg)
}
