package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rougho/task-tracker/internal/task"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func seedModel(t *testing.T, descriptions ...string) (Model, *task.Store) {
	t.Helper()

	st := task.NewStore(filepath.Join(t.TempDir(), "tasks.json"))
	for _, d := range descriptions {
		if _, err := st.Add(d, ""); err != nil {
			t.Fatalf("seed Add(%q) failed: %v", d, err)
		}
	}

	return NewModel(st), st
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestBrowserView(t *testing.T) {
	m, _ := seedModel(t, "Buy groceries", "Walk the dog")
	view := m.View()

	for _, want := range []string{"All Tasks", "Buy groceries", "Walk the dog", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBrowserMark(t *testing.T) {
	m, st := seedModel(t, "Buy groceries")

	m = update(t, m, keyMsg('d'))

	got, _ := st.Get(1)
	if got.Status != task.StatusDone {
		t.Errorf("status: got %q, want done", got.Status)
	}
	if !strings.Contains(m.View(), "marked as done") {
		t.Errorf("view missing status line:\n%s", m.View())
	}

	m = update(t, m, keyMsg('p'))
	if got, _ = st.Get(1); got.Status != task.StatusInProgress {
		t.Errorf("status: got %q, want in-progress", got.Status)
	}

	m = update(t, m, keyMsg('t'))
	if got, _ = st.Get(1); got.Status != task.StatusTodo {
		t.Errorf("status: got %q, want todo", got.Status)
	}
	_ = m
}

func TestBrowserFilterCycle(t *testing.T) {
	m, st := seedModel(t, "first", "second")
	if _, err := st.SetStatus(2, task.StatusDone); err != nil {
		t.Fatal(err)
	}
	m.refresh()

	// all -> todo -> in-progress -> done -> all
	m = update(t, m, keyMsg('f'))
	if m.filter == nil || *m.filter != task.StatusTodo {
		t.Fatalf("filter: got %v, want todo", m.filter)
	}
	if len(m.visible) != 1 || m.visible[0].Description != "first" {
		t.Errorf("todo view: %v", m.visible)
	}

	m = update(t, m, keyMsg('f'))
	if m.filter == nil || *m.filter != task.StatusInProgress {
		t.Fatalf("filter: got %v, want in-progress", m.filter)
	}
	if len(m.visible) != 0 {
		t.Errorf("in-progress view should be empty: %v", m.visible)
	}

	m = update(t, m, keyMsg('f'))
	if m.filter == nil || *m.filter != task.StatusDone {
		t.Fatalf("filter: got %v, want done", m.filter)
	}

	m = update(t, m, keyMsg('f'))
	if m.filter != nil {
		t.Fatalf("filter: got %v, want nil", m.filter)
	}
	if len(m.visible) != 2 {
		t.Errorf("all view: got %d tasks, want 2", len(m.visible))
	}
}

func TestBrowserDelete(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		m, st := seedModel(t, "first", "second")

		m = update(t, m, keyMsg('x'))
		if !m.confirm {
			t.Fatal("expected pending confirmation")
		}
		if !strings.Contains(m.View(), "[y/N]") {
			t.Errorf("view missing confirm prompt:\n%s", m.View())
		}

		m = update(t, m, keyMsg('y'))
		if m.confirm {
			t.Error("confirmation should be cleared")
		}
		if st.Len() != 1 {
			t.Errorf("store length: got %d, want 1", st.Len())
		}
		if got, _ := st.Get(1); got.Description != "second" || got.Index != 1 {
			t.Errorf("remaining task: %+v", got)
		}
	})

	t.Run("any other key cancels", func(t *testing.T) {
		m, st := seedModel(t, "first")

		m = update(t, m, keyMsg('x'))
		m = update(t, m, keyMsg('n'))

		if st.Len() != 1 {
			t.Error("cancelled delete removed the task")
		}
		if !strings.Contains(m.View(), "Delete cancelled.") {
			t.Errorf("view missing cancel notice:\n%s", m.View())
		}
	})

	t.Run("empty store ignores delete key", func(t *testing.T) {
		m, _ := seedModel(t)

		m = update(t, m, keyMsg('x'))
		if m.confirm {
			t.Error("confirmation pending with no tasks")
		}
	})
}

func TestBrowserQuit(t *testing.T) {
	m, _ := seedModel(t, "first")

	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected a quit message")
	}
}
