package components

import (
	"strings"

	"wuerfel/internal/dice"
	"wuerfel/internal/tui/styles"
)

const noDice = "None"

// DiceList renders the registry summary with the selected die highlighted
type DiceList struct {
	dice     []*dice.Die
	selected int
	hasSel   bool
	styles   styles.Styles
}

func NewDiceList(st styles.Styles) *DiceList {
	return &DiceList{styles: st}
}

func (dl *DiceList) SetDice(d []*dice.Die) {
	dl.dice = d
}

// SetSelected marks index as selected; ok false clears the selection
func (dl *DiceList) SetSelected(index int, ok bool) {
	dl.selected = index
	dl.hasSel = ok
}

func (dl *DiceList) View() string {
	if len(dl.dice) == 0 {
		return dl.styles.Summary.Render(noDice)
	}

	parts := make([]string, len(dl.dice))
	for i, d := range dl.dice {
		if dl.hasSel && i == dl.selected {
			parts[i] = dl.styles.Selected.Render(d.Name())
		} else {
			parts[i] = dl.styles.Summary.Render(d.Name())
		}
	}
	return strings.Join(parts, dl.styles.Summary.Render(", "))
}
