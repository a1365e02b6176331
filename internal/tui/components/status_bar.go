package components

import (
	"github.com/charmbracelet/lipgloss"
)

type StatusBar struct {
	text  string
	style lipgloss.Style
}

func NewStatusBar(style lipgloss.Style) *StatusBar {
	return &StatusBar{style: style}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	return s.style.Render(s.text)
}
