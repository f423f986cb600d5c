// Package tui implements the interactive task browser shown when
// task-cli is started without arguments.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rougho/task-tracker/internal/task"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FAFAF")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	statusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87AF87"))

	statusErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AF5F5F"))

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFAF5F"))
)

// Model is the Bubble Tea model for the task browser. It reads and
// writes through the same store the CLI commands use.
type Model struct {
	store   *task.Store
	table   table.Model
	visible []task.Task
	filter  *task.Status
	confirm bool
	status  string
	failed  bool
}

// Run starts the browser.
func Run(st *task.Store) error {
	p := tea.NewProgram(NewModel(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// NewModel creates a browser model over the given store.
func NewModel(st *task.Store) Model {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Task", Width: 40},
		{Title: "Status", Width: 12},
		{Title: "Created At", Width: 19},
		{Title: "Updated At", Width: 19},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("#5FAFAF"))
	styles.Selected = styles.Selected.Bold(true).Foreground(lipgloss.Color("#5FAFAF"))
	t.SetStyles(styles)

	m := Model{store: st, table: t}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - 8; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm {
			return m.updateConfirm(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "f":
			m.cycleFilter()
			return m, nil
		case "d":
			return m.mark(task.StatusDone), nil
		case "p":
			return m.mark(task.StatusInProgress), nil
		case "t":
			return m.mark(task.StatusTodo), nil
		case "x":
			if _, ok := m.selected(); ok {
				m.confirm = true
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm = false

	if msg.String() != "y" {
		m.setStatus("Delete cancelled.", false)
		return m, nil
	}

	t, ok := m.selected()
	if !ok {
		return m, nil
	}

	removed, err := m.store.Delete(t.Index)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.refresh()
	m.setStatus(fmt.Sprintf("Deleted task: %s", removed.Description), false)
	return m, nil
}

func (m Model) mark(status task.Status) Model {
	t, ok := m.selected()
	if !ok {
		return m
	}

	updated, err := m.store.SetStatus(t.Index, status)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}

	m.refresh()
	m.setStatus(fmt.Sprintf("Task %d marked as %s", updated.Index, updated.Status), false)
	return m
}

// selected returns the task under the cursor in the current view.
func (m Model) selected() (task.Task, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.visible) {
		return task.Task{}, false
	}
	return m.visible[cursor], true
}

func (m *Model) cycleFilter() {
	statuses := task.Statuses()

	switch {
	case m.filter == nil:
		m.filter = &statuses[0]
	case *m.filter == statuses[len(statuses)-1]:
		m.filter = nil
	default:
		for i := range statuses {
			if statuses[i] == *m.filter {
				m.filter = &statuses[i+1]
				break
			}
		}
	}

	m.refresh()
	m.table.SetCursor(0)
}

// refresh rebuilds the table rows from the store.
func (m *Model) refresh() {
	m.visible = m.store.List(m.filter)

	rows := make([]table.Row, len(m.visible))
	for i, t := range m.visible {
		rows[i] = table.Row{
			strconv.Itoa(t.Index),
			t.Description,
			string(t.Status),
			t.CreatedAt.String(),
			t.UpdatedAt.String(),
		}
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *Model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

// View implements tea.Model.
func (m Model) View() string {
	title := "All Tasks"
	if m.filter != nil {
		title = fmt.Sprintf("Tasks: %s", *m.filter)
	}

	view := titleStyle.Render(title) + "\n" + m.table.View() + "\n"

	switch {
	case m.confirm:
		t, _ := m.selected()
		view += confirmStyle.Render(fmt.Sprintf("Delete task %d (%s)? This cannot be undone. [y/N]", t.Index, t.Description))
	case m.status != "" && m.failed:
		view += statusErrStyle.Render(m.status)
	case m.status != "":
		view += statusOKStyle.Render(m.status)
	}

	view += "\n" + helpStyle.Render("↑/↓ move · f filter · d done · p in-progress · t todo · x delete · q quit")
	return view
}
