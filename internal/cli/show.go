package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framechart/pkg/figfile"
	"github.com/matzehuels/framechart/pkg/figure"
	"github.com/matzehuels/framechart/pkg/render/term"
)

// showCommand creates the show command, an interactive terminal preview.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Preview a figure document in the terminal",
		Long: `Preview a figure document in the terminal using braille dots.

The figure is refitted to the terminal size on every resize. Press r to
reload the document from disk and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0])
		},
	}
}

func runShow(ctx context.Context, path string) error {
	m, err := newViewer(path)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// viewer is the bubbletea model for the show command.
type viewer struct {
	path   string
	fig    *figure.Figure
	width  int
	height int
	frame  string
	status string
}

func newViewer(path string) (viewer, error) {
	fig, err := loadFigure(path)
	if err != nil {
		return viewer{}, err
	}
	return viewer{path: path, fig: fig, status: path}, nil
}

func loadFigure(path string) (*figure.Figure, error) {
	doc, err := figfile.Load(path)
	if err != nil {
		return nil, err
	}
	if err := doc.Inline(); err != nil {
		return nil, err
	}
	return doc.Figure()
}

func (m viewer) Init() tea.Cmd { return nil }

func (m viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.redraw()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			fig, err := loadFigure(m.path)
			if err != nil {
				m.status = "reload failed: " + err.Error()
				return m, nil
			}
			m.fig = fig
			m.status = "reloaded " + m.path
			m.redraw()
		}
	}
	return m, nil
}

// redraw fits the figure to the terminal area above the status line. One
// cell holds 2x4 pixels.
func (m *viewer) redraw() {
	cols, rows := m.width, m.height-1
	if cols <= 0 || rows <= 0 {
		m.frame = ""
		return
	}
	l, err := m.fig.Resized(cols*2, rows*4).Fit()
	if err != nil {
		m.frame = ""
		m.status = "fit failed: " + err.Error()
		return
	}
	p := term.New(cols, rows)
	l.Draw(p)
	m.frame = p.Styled()
}

var styleStatusBar = lipgloss.NewStyle().Foreground(colorGray)

func (m viewer) View() string {
	if m.width == 0 {
		return "loading..."
	}
	status := fmt.Sprintf("%s  %dx%d  r reload  q quit", m.status, m.width, m.height)
	if len(status) > m.width {
		status = status[:m.width]
	}
	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteString("\n")
	b.WriteString(styleStatusBar.Render(status))
	return b.String()
}
