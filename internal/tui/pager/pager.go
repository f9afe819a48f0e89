// Package pager displays long output in a scrollable terminal view.
package pager

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/leefowlercu/noots/internal/tui/styles"
)

// Pager shows content through a bubbletea viewport when out is a terminal,
// and writes it through unchanged otherwise.
type Pager struct {
	in    io.Reader
	out   io.Writer
	title string
}

// New creates a pager reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer, title string) *Pager {
	return &Pager{in: in, out: out, title: title}
}

// Page displays content and blocks until the user quits the view.
func (p *Pager) Page(content string) error {
	if !IsTerminal(p.out) {
		slog.Debug("pager output is not a terminal; writing directly")
		_, err := io.WriteString(p.out, content)
		return err
	}

	program := tea.NewProgram(
		NewModel(p.title, content),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run pager; %w", err)
	}
	return nil
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Model is the bubbletea model behind the pager.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewModel creates a pager model; the viewport is sized on the first WindowSizeMsg.
func NewModel(title, content string) Model {
	return Model{title: title, content: content}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles quit keys, resizes and scrolling.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		height := max(msg.Height-chrome, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the header, the visible window of content and the footer.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m Model) headerView() string {
	return styles.Title.Render(m.title)
}

func (m Model) footerView() string {
	percent := 100.0
	if m.ready {
		percent = m.viewport.ScrollPercent() * 100
	}
	help := styles.HelpText.Render("↑/↓ scroll • q quit")
	return strings.TrimSpace(fmt.Sprintf("%s  %3.f%%", help, percent))
}
