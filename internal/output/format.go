package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rougho/task-tracker/internal/task"
)

// Table writes tasks as a bordered table with a title. The ID column
// shows the user-visible index, which is what every mutating command
// accepts.
func Table(w io.Writer, tasks []task.Task, title string) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, WarnStyle.Render("There is no task to display"))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case row%2 == 1:
				return AltRowStyle
			default:
				return RowStyle
			}
		}).
		Headers("ID", "Task", "Status", "Created At", "Updated At")

	for _, tk := range tasks {
		t.Row(
			strconv.Itoa(tk.Index),
			tk.Description,
			string(tk.Status),
			tk.CreatedAt.String(),
			tk.UpdatedAt.String(),
		)
	}

	if title != "" {
		fmt.Fprintln(w, TitleStyle.Render(title))
	}
	fmt.Fprintln(w, t)
}

// Added writes the confirmation line for a new task.
func Added(w io.Writer, t task.Task) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("Added task %d: %s (%s)", t.Index, t.Description, t.Status)))
}

// Updated writes the confirmation line for an updated task.
func Updated(w io.Writer, t task.Task) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("Updated task %d: %s (%s)", t.Index, t.Description, t.Status)))
}

// Marked writes the confirmation line for a status change.
func Marked(w io.Writer, t task.Task) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("Task %d marked as %s: %s", t.Index, t.Status, t.Description)))
}

// Deleted writes the confirmation line for a removed task.
func Deleted(w io.Writer, t task.Task) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("Deleted task: %s", t.Description)))
}

// Cancelled writes the notice for an aborted delete.
func Cancelled(w io.Writer) {
	fmt.Fprintln(w, WarnStyle.Render("Delete cancelled."))
}
