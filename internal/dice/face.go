// Package dice models dice as ordered sequences of catalog faces and keeps
// the registry of dice available in a session.
package dice

import (
	"fmt"
	"strconv"

	"wuerfel/internal/errors"
)

// MaxFaceNumber is the highest face number in the catalog.
const MaxFaceNumber = 20

// Face is one named value a die can show. The only Face values that exist
// are the catalog entries; the zero value is not a valid face.
type Face struct {
	name   string
	number int
}

// catalog is indexed by face number.
var catalog = [MaxFaceNumber + 1]Face{
	{"Zero", 0},
	{"One", 1},
	{"Two", 2},
	{"Three", 3},
	{"Four", 4},
	{"Five", 5},
	{"Six", 6},
	{"Seven", 7},
	{"Eight", 8},
	{"Nine", 9},
	{"Ten", 10},
	{"Eleven", 11},
	{"Twelve", 12},
	{"Thirteen", 13},
	{"Fourteen", 14},
	{"Fifteen", 15},
	{"Sixteen", 16},
	{"Seventeen", 17},
	{"Eighteen", 18},
	{"Nineteen", 19},
	{"Twenty", 20},
}

// Name returns the display name, e.g. "Six".
func (f Face) Name() string { return f.name }

// Number returns the numeric value of the face.
func (f Face) Number() int { return f.number }

func (f Face) String() string {
	return fmt.Sprintf("Symbol: %s, Number: %d", f.name, f.number)
}

// Faces returns a copy of the whole catalog in ascending order.
func Faces() []Face {
	out := make([]Face, len(catalog))
	copy(out, catalog[:])
	return out
}

// LookupFace returns the catalog face with the given number.
func LookupFace(number int) (Face, error) {
	if number < 0 || number > MaxFaceNumber {
		return Face{}, errors.NewConfigurationError("face number outside catalog", strconv.Itoa(number), errors.InvalidFace, nil)
	}
	return catalog[number], nil
}

// MustLookupFace is like LookupFace but panics when number is not in the
// catalog.
func MustLookupFace(number int) Face {
	f, err := LookupFace(number)
	if err != nil {
		panic(err)
	}
	return f
}
