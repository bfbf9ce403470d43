package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huepick/internal/clip"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
	"github.com/alexisbeaulieu97/huepick/pkg/colorpicker"
)

// Rows above the widget: the title and a blank line.
const headerRows = 2

// CopyFunc places text on a clipboard.
type CopyFunc func(text string) (clip.Result, error)

// Options configures the host model.
type Options struct {
	Title  string
	Logger *logger.Logger
	Copy   CopyFunc
}

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	hex    string
	result clip.Result
	err    error
}

// Model hosts a single color widget full screen.
type Model struct {
	widget Widget
	title  string
	log    *logger.Logger
	copy   CopyFunc
	keys   keyMap
	help   help.Model

	width  int
	height int

	last      colorpicker.Color
	status    string
	statusErr bool
	finished  bool
	cancelled bool
}

// NewModel wraps widget, giving it keyboard focus.
func NewModel(widget Widget, opts Options) Model {
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clip.WriteAll
	}
	title := opts.Title
	if title == "" {
		title = "huepick"
	}
	widget, _ = widget.Focus()

	return Model{
		widget: widget,
		title:  title,
		log:    opts.Logger,
		copy:   copyFn,
		keys:   defaultKeyMap(),
		help:   help.New(),
		last:   widget.Color(),
	}
}

// Init starts the program.
func (m Model) Init() tea.Cmd {
	m.log.DebugFields("widget started", map[string]any{"title": m.title, "hex": m.last.Hex()})
	return nil
}

// Color returns the color the widget currently shows.
func (m Model) Color() colorpicker.Color {
	return m.widget.Color()
}

// Result returns the selected color and whether the user accepted it.
func (m Model) Result() (colorpicker.Color, bool) {
	return m.widget.Color(), m.finished && !m.cancelled
}

// IsFinished reports whether the user left the program.
func (m Model) IsFinished() bool {
	return m.finished
}

// offset is where the widget's top-left cell is drawn.
func (m Model) offset() (int, int) {
	x := 0
	if m.width > 0 {
		x = max((m.width-m.widget.Width())/2, 0)
	}
	return x, headerRows
}
