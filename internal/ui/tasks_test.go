package ui

import (
	"strings"
	"testing"
	"time"

	"unidash/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func loadTaskPane(t *testing.T, p *TaskPane) {
	t.Helper()
	data, err := p.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	p.Update(dashboardLoadedMsg{data: data})
}

func TestTaskPane_ViewEmpty(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	p := NewTaskPane(st, createTestStyles())
	p.SetSize(50, 20)
	p.SetFocused(true)

	view := p.View()
	if !strings.Contains(view, "TASKS") {
		t.Errorf("expected pane title, got:\n%s", view)
	}
	if !strings.Contains(view, "No tasks yet") {
		t.Errorf("expected empty prompt, got:\n%s", view)
	}
}

func TestTaskPane_ViewListsTasks(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	st.AddTask("Ship release", store.PriorityHigh, st.Now())
	st.AddTask("Water plants", store.PriorityLow, st.Now())
	st.MarkTaskDone(1)

	p := NewTaskPane(st, createTestStyles())
	p.SetSize(50, 20)
	p.SetFocused(true)
	loadTaskPane(t, p)

	view := p.View()
	if !strings.Contains(view, "Ship release") {
		t.Errorf("expected first task, got:\n%s", view)
	}
	if !strings.Contains(view, "Water plants") {
		t.Errorf("expected second task, got:\n%s", view)
	}
	if !strings.Contains(view, "1/2 complete") {
		t.Errorf("expected stats line, got:\n%s", view)
	}
}

func TestTaskPane_CursorNavigation(t *testing.T) {
	st := createTestStore(t)
	st.AddTask("one", store.PriorityLow, st.Now())
	st.AddTask("two", store.PriorityLow, st.Now())
	st.AddTask("three", store.PriorityLow, st.Now())

	p := NewTaskPane(st, createTestStyles())
	p.SetFocused(true)
	loadTaskPane(t, p)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}

	p.Update(down)
	p.Update(down)
	if p.cursor != 2 {
		t.Errorf("cursor = %d after 2x down, want 2", p.cursor)
	}

	// Clamped at bottom
	p.Update(down)
	if p.cursor != 2 {
		t.Errorf("cursor = %d past end, want 2", p.cursor)
	}

	p.Update(up)
	if p.cursor != 1 {
		t.Errorf("cursor = %d after up, want 1", p.cursor)
	}

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if p.cursor != 0 {
		t.Errorf("cursor = %d after top, want 0", p.cursor)
	}

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if p.cursor != 2 {
		t.Errorf("cursor = %d after bottom, want 2", p.cursor)
	}
}

func TestTaskPane_AddFlow(t *testing.T) {
	st := createTestStore(t)
	p := NewTaskPane(st, createTestStyles())
	p.SetFocused(true)
	loadTaskPane(t, p)

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if !p.IsAdding() {
		t.Fatal("expected add mode after 'a'")
	}

	for _, r := range "Buy milk" {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected add command on enter")
	}

	msg, ok := cmd().(taskAddedMsg)
	if !ok {
		t.Fatalf("command result = %T, want taskAddedMsg", cmd())
	}
	if msg.err != nil {
		t.Fatalf("add error = %v", msg.err)
	}
	if msg.task.Name != "Buy milk" {
		t.Errorf("task name = %q, want %q", msg.task.Name, "Buy milk")
	}
	if p.IsAdding() {
		t.Error("expected add mode to end after enter")
	}
}

func TestTaskPane_AddCancel(t *testing.T) {
	st := createTestStore(t)
	p := NewTaskPane(st, createTestStyles())
	p.SetFocused(true)

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	p.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if p.IsAdding() {
		t.Error("expected add mode to end after esc")
	}

	data, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(data.Tasks) != 0 {
		t.Errorf("task count after cancel = %d, want 0", len(data.Tasks))
	}
}

func TestTaskPane_ToggleCommand(t *testing.T) {
	st := createTestStore(t)
	st.AddTask("Flip me", store.PriorityLow, st.Now())

	p := NewTaskPane(st, createTestStyles())
	p.SetFocused(true)
	loadTaskPane(t, p)

	cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	msg, ok := cmd().(taskToggledMsg)
	if !ok {
		t.Fatalf("command result = %T, want taskToggledMsg", cmd())
	}
	if msg.err != nil {
		t.Fatalf("toggle error = %v", msg.err)
	}
	if !msg.completed {
		t.Error("expected task to be completed")
	}

	data, _ := st.Load()
	if data.Tasks[0].Status != store.StatusCompleted {
		t.Errorf("status = %q, want %q", data.Tasks[0].Status, store.StatusCompleted)
	}
}

func TestTaskPane_SelectedTask(t *testing.T) {
	st := createTestStore(t)
	st.AddTask("first", store.PriorityLow, st.Now())
	st.AddTask("second", store.PriorityLow, st.Now())

	p := NewTaskPane(st, createTestStyles())
	loadTaskPane(t, p)

	if got := p.SelectedTask(); got == nil || got.Name != "first" {
		t.Errorf("SelectedTask() = %v, want first", got)
	}

	p.cursor = 5
	if got := p.SelectedTask(); got != nil {
		t.Errorf("SelectedTask() out of range = %v, want nil", got)
	}
}

func TestTaskPane_Stats(t *testing.T) {
	st := createTestStore(t)
	st.AddTask("a", store.PriorityLow, st.Now())
	st.AddTask("b", store.PriorityLow, st.Now())
	st.AddTask("c", store.PriorityLow, st.Now())
	st.MarkTaskDone(0)
	st.MarkTaskDone(2)

	p := NewTaskPane(st, createTestStyles())
	loadTaskPane(t, p)

	done, total := p.Stats()
	if done != 2 || total != 3 {
		t.Errorf("Stats() = (%d, %d), want (2, 3)", done, total)
	}
}

func TestTaskPane_FormatDueDate(t *testing.T) {
	setupTest(t)
	st := createTestStore(t)
	p := NewTaskPane(st, createTestStyles())

	day := 24 * time.Hour
	today := time.Now()

	tests := []struct {
		name string
		due  string
		want string
	}{
		{"invalid", "not-a-date", ""},
		{"empty", "", ""},
		{"overdue", today.Add(-3 * day).Format("2006-01-02"), "!"},
		{"today", today.Format("2006-01-02"), "T"},
		{"tomorrow", today.Add(1 * day).Format("2006-01-02"), "+1"},
		{"this week", today.Add(4 * day).Format("2006-01-02"), "4d"},
		{"weeks out", today.Add(20 * day).Format("2006-01-02"), "2w"},
		{"far future", today.Add(90 * day).Format("2006-01-02"), ">1m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.formatDueDate(tc.due); got != tc.want {
				t.Errorf("formatDueDate(%q) = %q, want %q", tc.due, got, tc.want)
			}
		})
	}
}
