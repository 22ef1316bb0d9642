// Package tui implements the live style preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/statestyle/internal/logging"
	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/opencode-ai/statestyle/internal/theme"
	"github.com/opencode-ai/statestyle/internal/tui/components"
	"github.com/opencode-ai/statestyle/internal/tui/styles"
	"github.com/opencode-ai/statestyle/internal/widgets"
	"github.com/rs/zerolog"
)

// Config configures the preview.
type Config struct {
	Sheet   *theme.Sheet
	Exclude style.StateSet
}

// Run launches the preview program.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

const (
	minWidth  = 60
	minHeight = 15
)

// exclusionCycle is the order the x key walks through.
var exclusionCycle = []style.StateSet{
	0,
	style.NewStateSet(style.Highlighted),
	style.NewStateSet(style.Selected),
	style.NewStateSet(style.Disabled),
	style.NewStateSet(style.Focused),
}

type model struct {
	width       int
	height      int
	styles      styles.Styles
	customizers theme.Customizers
	widgets     []widgets.Widget
	cursor      int
	exclude     style.StateSet
	logger      zerolog.Logger
}

func newModel(cfg Config) (model, error) {
	if cfg.Sheet == nil {
		return model{}, fmt.Errorf("style sheet is required")
	}
	m := model{
		styles:      styles.BuildStyles(cfg.Sheet.Theme),
		customizers: cfg.Sheet.Bind(),
		widgets:     sampleWidgets(),
		exclude:     cfg.Exclude,
		logger:      logging.Component("tui"),
	}
	m.moveCursor(0)
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.moveCursor(-1)
		case "right", "l", "tab":
			m.moveCursor(1)
		case "p", " ":
			m.toggle(style.Highlighted)
		case "s":
			m.toggle(style.Selected)
		case "d":
			m.toggle(style.Disabled)
		case "x":
			m.exclude = nextExclusion(m.exclude)
			m.refresh()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	cards := make([]string, 0, len(m.widgets))
	for i, w := range m.widgets {
		cards = append(cards, components.RenderWidgetCard(m.styles, components.WidgetCard{
			Widget:  w,
			Exclude: m.exclude,
			Focused: i == m.cursor,
		}))
	}

	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("statestyle preview (%s)", m.styles.Theme.Name)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.styles.Text.Render(fmt.Sprintf("Selected: %s", components.CardTitle(m.current().Caption()))),
		m.styles.Muted.Render(fmt.Sprintf("Treat as normal: %s", m.exclude)),
		"",
		m.styles.Muted.Render("Shortcuts: h/l move | p press | s select | d disable | x exclusions | q quit"),
	}
	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m *model) current() widgets.Widget {
	return m.widgets[m.cursor]
}

// moveCursor shifts the cursor and hands focus to the widget under it.
func (m *model) moveCursor(delta int) {
	n := len(m.widgets)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	for i, w := range m.widgets {
		if f, ok := w.(interface{ SetFocused(bool) }); ok {
			f.SetFocused(i == m.cursor)
		}
	}
	m.refresh()
}

// toggle flips one flag of the widget under the cursor. Widgets that cannot
// report the state are left alone.
func (m *model) toggle(state style.State) {
	w := m.current()
	flags := style.ReadFlags(w)
	switch state {
	case style.Highlighted:
		if h, ok := w.(interface{ SetHighlighted(bool) }); ok {
			h.SetHighlighted(!flags.Highlighted)
		}
	case style.Selected:
		if s, ok := w.(interface{ SetSelected(bool) }); ok {
			s.SetSelected(!flags.Selected)
		}
	case style.Disabled:
		if e, ok := w.(interface{ SetEnabled(bool) }); ok {
			e.SetEnabled(!flags.Enabled)
		}
	}
	m.logger.Debug().
		Str("widget", w.WidgetID().String()).
		Str("kind", w.Kind()).
		Stringer("toggled", state).
		Msg("state changed")
	m.refresh()
}

// refresh re-runs every customizer against live widget state.
func (m *model) refresh() {
	for _, w := range m.widgets {
		m.customizers.Customize(w, m.exclude)
	}
}

func nextExclusion(current style.StateSet) style.StateSet {
	for i, set := range exclusionCycle {
		if set == current {
			return exclusionCycle[(i+1)%len(exclusionCycle)]
		}
	}
	return exclusionCycle[0]
}
