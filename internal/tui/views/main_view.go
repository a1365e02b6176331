package views

import (
	"strconv"

	"wuerfel/internal/tui/common"
	"wuerfel/internal/tui/components"
	"wuerfel/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// AppTitle is shown centered at the top of the panel
const AppTitle = " wuerfel App "

// RenderMainView draws the bordered panel: title, dice summary, the
// selected die, the last roll and the key help footer.
func RenderMainView(m common.ModelReader, st styles.Styles) string {
	var lines []string

	lines = append(lines, st.Title.Render(AppTitle), "")
	lines = append(lines, RenderBody(m, st)...)

	if m.Status() != "" {
		status := components.NewStatusBar(st.Error)
		status.SetText(m.Status())
		lines = append(lines, "", status.View())
	}

	lines = append(lines, "", m.HelpView())

	app := st.App
	if w := m.Width(); w > 0 {
		// border takes one column on each side
		app = app.Width(w - 2)
	}
	return app.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// RenderBody returns the body lines of the panel
func RenderBody(m common.ModelReader, st styles.Styles) []string {
	list := components.NewDiceList(st)
	list.SetDice(m.Dice())
	list.SetSelected(m.Selected())

	body := []string{"Dice: " + list.View()}

	if idx, ok := m.Selected(); ok {
		if dice := m.Dice(); idx < len(dice) {
			body = append(body, "Currently selected die: "+dice[idx].Name())
		}
	}
	if roll, ok := m.LastRoll(); ok {
		body = append(body, "Current roll: "+strconv.Itoa(roll))
	}
	return body
}
