// Package timelineui hosts the Bubble Tea timeline screen: an axis of
// calendar units with one lane per task bar. Dragging a bar with the mouse
// produces the drop geometry the scheduling core turns into new dates.
package timelineui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/schedule"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/team"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline/drag"
)

const laneWidth = 22 // label column; the axis starts after it

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	ghostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

// lane is one renderable row: a task bar in its developer's section.
type lane struct {
	developer team.Developer
	task      *task.Task
}

type Model struct {
	svc *schedule.Service
	ctx context.Context

	lanes    []lane
	selected int

	// drag state; draggingID is empty when no drag is in flight.
	draggingID string
	hoverX     int
	preview    drag.Preview
	previewOK  bool

	status string
	help   *helpOverlay

	termWidth  int
	termHeight int
}

// New creates the timeline model backed by the Service.
func New(svc *schedule.Service) Model {
	return Model{
		svc: svc,
		ctx: context.Background(),
	}
}

// messages
type errMsg struct{ err error }
type refreshedMsg struct{}
type storeChangedMsg struct{ ok bool }

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.Refresh(m.ctx); err != nil {
			return errMsg{err}
		}
		return refreshedMsg{}
	}
}

// listen re-arms on every store event so bursts of writes keep flowing in.
func listen(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		_, ok := <-ch
		return storeChangedMsg{ok: ok}
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refresh()}
	if ch, err := m.svc.Watch(m.ctx); err == nil {
		cmds = append(cmds, listen(ch))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.help != nil {
			m.help.SetSize(msg.Width-4, msg.Height-4)
		}

	case errMsg:
		m.status = "ERR: " + msg.err.Error()

	case refreshedMsg:
		m.rebuildLanes()

	case storeChangedMsg:
		if !msg.ok {
			return m, nil
		}
		var cmd tea.Cmd
		if ch, err := m.svc.Watch(m.ctx); err == nil {
			cmd = listen(ch)
		}
		return m, tea.Batch(m.refresh(), cmd)

	case tea.KeyPressMsg:
		if m.help != nil {
			switch msg.String() {
			case "?", "q", "esc":
				m.help = nil
				return m, nil
			}
			cmd := m.help.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		if m.help != nil {
			return m, m.help.Update(msg)
		}

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.beginDrag(mouse.X, mouse.Y)
		}

	case tea.MouseMotionMsg:
		if m.draggingID != "" {
			mouse := msg.Mouse()
			m.hoverX = mouse.X
			m.updatePreview()
		}

	case tea.MouseReleaseMsg:
		if m.draggingID != "" {
			mouse := msg.Mouse()
			return m, m.completeDrag(mouse.X)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return *m, tea.Quit
	case "?":
		m.help = newHelpOverlay(m.termWidth-4, m.termHeight-4)
	case "r":
		return *m, m.refresh()
	case "d":
		m.svc.SetView(timeline.ViewDay)
	case "w":
		m.svc.SetView(timeline.ViewWeek)
	case "m":
		m.svc.SetView(timeline.ViewMonth)
	case "y":
		m.svc.SetView(timeline.ViewYear)
	case "+", "=":
		m.svc.SetYear(m.svc.Year() + 1)
	case "-":
		m.svc.SetYear(m.svc.Year() - 1)
	case "t":
		if idx, ok := m.svc.ScrollToToday(); ok {
			m.status = fmt.Sprintf("today at unit %d", idx)
		} else {
			m.status = "today is not in the visible window"
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.lanes)-1 {
			m.selected++
		}
	}
	return *m, nil
}

func (m *Model) rebuildLanes() {
	m.lanes = m.lanes[:0]
	byDev := map[string][]*task.Task{}
	for _, t := range m.svc.Tasks() {
		byDev[t.AssignedDeveloperID] = append(byDev[t.AssignedDeveloperID], t)
	}
	for _, d := range m.svc.Developers() {
		for _, t := range byDev[d.ID] {
			m.lanes = append(m.lanes, lane{developer: d, task: t})
		}
		delete(byDev, d.ID)
	}
	for _, t := range byDev[""] {
		m.lanes = append(m.lanes, lane{task: t})
	}
	if m.selected >= len(m.lanes) {
		m.selected = 0
	}
}

// axisWidth is the width of the unit strip, the drop container.
func (m Model) axisWidth() int {
	w := m.termWidth - laneWidth
	if w < 1 {
		return 0
	}
	return w
}

// axisRows returns the terminal rows occupied by lanes: header and axis
// take the first two rows.
func (m Model) laneAt(y int) (lane, bool) {
	row := y - 2
	if row < 0 || row >= len(m.lanes) {
		return lane{}, false
	}
	return m.lanes[row], true
}

func (m *Model) beginDrag(x, y int) {
	ln, ok := m.laneAt(y)
	if !ok || x < laneWidth {
		return
	}
	m.draggingID = ln.task.ID
	m.selected = y - 2
	m.hoverX = x
	m.updatePreview()
}

// updatePreview recomputes the drag ghost for the current hover position.
// Advisory only; the real mapping happens on release.
func (m *Model) updatePreview() {
	m.previewOK = false
	t := m.taskByID(m.draggingID)
	if t == nil {
		return
	}
	geom := m.geometryAt(m.hoverX)
	f, ok := geom.Fraction()
	if !ok {
		return
	}
	m.preview, m.previewOK = drag.PreviewAt(t, f, m.svc.Range(), m.svc.View())
}

func (m *Model) completeDrag(x int) tea.Cmd {
	id := m.draggingID
	m.draggingID = ""
	m.previewOK = false

	geom := m.geometryAt(x)
	return func() tea.Msg {
		_, ok, err := m.svc.Reschedule(m.ctx, id, geom)
		if err != nil {
			return errMsg{err}
		}
		if !ok {
			// Unusable geometry is a silent no-op; just repaint.
			return refreshedMsg{}
		}
		return refreshedMsg{}
	}
}

// geometryAt converts a terminal column into the drop sample handed to the
// scheduling core: the axis region is the container.
func (m Model) geometryAt(x int) drag.DropGeometry {
	return drag.DropGeometry{
		PointerX:       float64(x),
		ContainerLeft:  laneWidth,
		ContainerWidth: float64(m.axisWidth()),
	}
}

func (m Model) taskByID(id string) *task.Task {
	for _, ln := range m.lanes {
		if ln.task.ID == id {
			return ln.task
		}
	}
	return nil
}

func (m Model) View() string {
	if m.termWidth == 0 {
		return "loading..."
	}
	if m.help != nil {
		return m.help.View()
	}

	rng := m.svc.Range()
	out := headerStyle.Render(fmt.Sprintf("%-*s", laneWidth, header(m.svc))) +
		faintStyle.Render(fmt.Sprintf("%s → %s", rng.View.Format(rng.Start), rng.View.Format(rng.End))) + "\n"
	out += m.viewAxis(rng) + "\n"

	for i, ln := range m.lanes {
		out += m.viewLane(rng, i, ln) + "\n"
	}

	out += statusStyle.Render(m.viewStatus())
	return out
}

func header(svc *schedule.Service) string {
	if svc.View() == timeline.ViewDay {
		return fmt.Sprintf("%s %d", svc.View(), svc.Year())
	}
	return string(svc.View())
}

func (m Model) viewAxis(rng timeline.Range) string {
	cells := make([]string, 0, m.axisWidth())
	for i := 0; i < m.axisWidth(); i++ {
		u, ok := m.unitForColumn(rng, i)
		switch {
		case !ok:
			cells = append(cells, " ")
		case u == rng.TodayIndex:
			cells = append(cells, todayStyle.Render("┬"))
		default:
			cells = append(cells, faintStyle.Render("·"))
		}
	}
	pad := fmt.Sprintf("%-*s", laneWidth, "")
	return pad + joined(cells)
}

func (m Model) viewLane(rng timeline.Range, idx int, ln lane) string {
	label := "(unassigned)"
	if ln.developer.ID != "" {
		label = ln.developer.Name
	}
	label = fmt.Sprintf("%-*s", laneWidth, truncate(label+" "+ln.task.Title, laneWidth-1))
	if idx == m.selected {
		label = selectedStyle.Render(label)
	}

	_, inConflict := m.svc.ConflictFor(ln.task.ID)
	style := barStyle
	if inConflict {
		style = conflictStyle
	}

	cells := make([]string, 0, m.axisWidth())
	for col := 0; col < m.axisWidth(); col++ {
		u, ok := m.unitForColumn(rng, col)
		if !ok {
			cells = append(cells, " ")
			continue
		}
		switch {
		case m.previewOK && m.draggingID == ln.task.ID &&
			u >= m.preview.Offset && u < m.preview.Offset+m.preview.Span:
			cells = append(cells, ghostStyle.Render("▒"))
		case unitInTask(rng, u, ln.task):
			cells = append(cells, style.Render("█"))
		default:
			cells = append(cells, faintStyle.Render("·"))
		}
	}
	return label + joined(cells)
}

// unitForColumn maps a terminal column of the axis region onto a unit
// index, compressing the window into the available width.
func (m Model) unitForColumn(rng timeline.Range, col int) (int, bool) {
	w := m.axisWidth()
	if w <= 0 || rng.Len() == 0 {
		return 0, false
	}
	u := col * rng.Len() / w
	if u >= rng.Len() {
		return 0, false
	}
	return u, true
}

func unitInTask(rng timeline.Range, unit int, t *task.Task) bool {
	u := rng.Units[unit]
	view := rng.View
	return !view.Truncate(t.Start.Time).After(u) && !view.Truncate(t.End.Time).Before(u)
}

func (m Model) viewStatus() string {
	s := "q quit · ? help · d/w/m/y view · +/- year · t today · drag a bar to reschedule"
	if n := len(m.svc.Conflicts()); n > 0 {
		s = fmt.Sprintf("%d conflict(s) · %s", n, s)
	}
	if m.status != "" {
		s = m.status + " · " + s
	}
	return s
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func joined(cells []string) string {
	out := ""
	for _, c := range cells {
		out += c
	}
	return out
}

// Run launches the timeline UI.
func Run(svc *schedule.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
