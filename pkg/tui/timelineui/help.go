package timelineui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

var helpText = strings.TrimSpace(`
planner timeline

  d / w / m / y   switch between day, week, month and year views
  + / -           move the day view a year forward or back
  t               jump the status line to today's unit
  up/down, j/k    select a lane
  r               refresh from the store
  ?               toggle this help
  q, esc, ctrl+c  quit

Drag a task bar with the mouse and release it where it should start.
The task keeps its duration and snaps to the nearest unit; drops past
the right edge clamp so the task stays inside the window. Red bars
overlap another task assigned to the same developer.
`)

// helpOverlay renders the key reference inside a bordered viewport.
type helpOverlay struct {
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
}

func newHelpOverlay(width, height int) *helpOverlay {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	h := &helpOverlay{
		viewport: vp,
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	h.SetSize(width, height)
	return h
}

// Update forwards scrolling to the viewport.
func (h *helpOverlay) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := h.viewport.Update(msg)
	h.viewport = vp
	return cmd
}

func (h *helpOverlay) View() string {
	return h.frame.Width(h.width).Height(h.height).Render(h.viewport.View())
}

func (h *helpOverlay) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if h.width == width && h.height == height {
		return
	}

	h.width = width
	h.height = height

	innerWidth := max(width-h.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-h.frame.GetVerticalFrameSize(), 1)

	h.viewport.SetWidth(innerWidth)
	h.viewport.SetHeight(innerHeight)
	h.viewport.SetContent(helpText)
	h.viewport.SetYOffset(0)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
