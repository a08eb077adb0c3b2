package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var pagerBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// ShowDiff displays a diff to the user. Short diffs print inline; long
// diffs open a full-screen scrollable viewport when stdout is a terminal.
func ShowDiff(path, diff string) error {
	lineCount := strings.Count(diff, "\n")
	if lineCount <= 20 || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(diff)
		return nil
	}

	model := newDiffPagerModel(path, diff)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to show diff: %w", err)
	}
	return nil
}

// diffPagerModel is the BubbleTea model for scrolling through a long diff
type diffPagerModel struct {
	path     string
	diff     string
	viewport viewport.Model
	ready    bool
}

func newDiffPagerModel(path, diff string) diffPagerModel {
	return diffPagerModel{
		path: path,
		diff: diff,
	}
}

func (m diffPagerModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input and window sizing
func (m diffPagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			m.viewport.ScrollUp(1)

		case "down", "j":
			m.viewport.ScrollDown(1)

		case "pgup", "b":
			m.viewport.PageUp()

		case "pgdown", "f", "space":
			m.viewport.PageDown()
		}

	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 1
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m diffPagerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	title := fmt.Sprintf("─ Pending edits: %s ", m.path)
	padding := strings.Repeat("─", max(0, m.viewport.Width-len(title)))
	b.WriteString(pagerBorderStyle.Render(title+padding) + "\n")

	b.WriteString(m.viewport.View() + "\n")

	footer := " [↑/↓] Scroll    [q] Quit "
	padding = strings.Repeat("─", max(0, m.viewport.Width-len(footer)))
	b.WriteString(pagerBorderStyle.Render(footer + padding))

	return b.String()
}
