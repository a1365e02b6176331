package tui

import (
	"wuerfel/internal/config"
	"wuerfel/internal/controller"
	"wuerfel/internal/dice"
	"wuerfel/internal/log"
	"wuerfel/internal/tui/styles"
	"wuerfel/internal/tui/views"
	"wuerfel/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	ctrl   *controller.Controller
	keys   types.KeyMap
	help   help.Model
	styles styles.Styles

	width     int
	statusMsg string
	quitting  bool
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

func New(ctrl *controller.Controller, theme config.Theme) *Model {
	st := styles.New(theme)

	h := help.New()
	h.ShortSeparator = " "
	h.Styles.ShortKey = st.Key
	h.Styles.ShortDesc = st.Help
	h.Styles.ShortSeparator = st.Help

	return &Model{
		ctrl:   ctrl,
		keys:   types.DefaultKeyMap(),
		help:   h,
		styles: st,
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return views.RenderMainView(m, m.styles)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Previous):
		m.ctrl.SelectPrevious()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.SelectNext()
	case key.Matches(msg, m.keys.Roll):
		m.statusMsg = ""
		if err := m.ctrl.Roll(); err != nil {
			log.Errorf("roll failed: %v", err)
			m.statusMsg = err.Error()
		}
	}

	_, selected := m.ctrl.Selected()
	m.keys.Roll.SetEnabled(selected)
	return m, nil
}

// Getters used by the views

func (m *Model) Dice() []*dice.Die {
	return m.ctrl.Registry().Dice()
}

func (m *Model) Selected() (int, bool) {
	return m.ctrl.Selected()
}

func (m *Model) LastRoll() (int, bool) {
	return m.ctrl.LastRoll()
}

func (m *Model) HelpView() string {
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m *Model) Status() string {
	return m.statusMsg
}

func (m *Model) Width() int {
	return m.width
}

// Quitting reports whether a quit key was pressed
func (m *Model) Quitting() bool {
	return m.quitting
}
