package dice

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"wuerfel/internal/errors"
)

// Range is a half-open integer interval [Lo, Hi).
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of integers in the range.
func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// Empty reports whether the range holds no integers.
func (r Range) Empty() bool { return r.Len() == 0 }

// Contains reports whether n lies in [Lo, Hi).
func (r Range) Contains(n int) bool { return n >= r.Lo && n < r.Hi }

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

// Die is a named, ordered sequence of catalog faces.
type Die struct {
	name  string
	faces []Face
}

// NewDie creates a die without faces.
func NewDie(name string) *Die {
	return &Die{name: name}
}

// Name returns the die's name.
func (d *Die) Name() string { return d.name }

// Faces returns a copy of the configured faces in insertion order.
func (d *Die) Faces() []Face {
	return slices.Clone(d.faces)
}

// Len returns the number of configured faces.
func (d *Die) Len() int { return len(d.faces) }

// InsertFace inserts face at position. The die does not re-sort: callers
// must insert in ascending face order or Range will be wrong.
func (d *Die) InsertFace(face Face, position int) error {
	if position < 0 || position > len(d.faces) {
		return errors.NewDieError(fmt.Sprintf("insert position %d out of range 0..%d", position, len(d.faces)), d.name, errors.InvalidInput, nil)
	}
	d.faces = slices.Insert(d.faces, position, face)
	return nil
}

// AddFace inserts face at the position that keeps the faces ascending.
func (d *Die) AddFace(face Face) {
	i := sort.Search(len(d.faces), func(i int) bool {
		return d.faces[i].number > face.number
	})
	d.faces = slices.Insert(d.faces, i, face)
}

// Ordered reports whether the faces ascend by number.
func (d *Die) Ordered() bool {
	return sort.SliceIsSorted(d.faces, func(i, j int) bool {
		return d.faces[i].number < d.faces[j].number
	})
}

// Range returns [first face, last face + 1).
func (d *Die) Range() (Range, error) {
	if len(d.faces) == 0 {
		return Range{}, errors.NewDieError("die should be configured", d.name, errors.UnconfiguredDie, nil)
	}
	return Range{
		Lo: d.faces[0].number,
		Hi: d.faces[len(d.faces)-1].number + 1,
	}, nil
}

func (d *Die) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", d.name)
	for _, f := range d.faces {
		sb.WriteString(f.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
