// Package ui provides terminal user interface components for the dashboard.
// This file contains tea.Cmd factories that wrap store operations. These
// commands run I/O operations asynchronously to keep the Bubble Tea event
// loop responsive. Each command returns a corresponding message type defined
// in messages.go.
package ui

import (
	"time"

	"unidash/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// loadDashboardCmd returns a command that loads the full dashboard state.
func loadDashboardCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		data, err := st.Load()
		return dashboardLoadedMsg{data: data, err: err}
	}
}

// =============================================================================
// Task Commands
// =============================================================================

// addTaskCmd returns a command that creates a new task.
func addTaskCmd(st *store.Store, name string, priority store.Priority, due time.Time) tea.Cmd {
	return func() tea.Msg {
		task, err := st.AddTask(name, priority, due)
		return taskAddedMsg{task: task, err: err}
	}
}

// toggleTaskCmd returns a command that flips a task between pending and
// completed. The task is looked up by id so the toggle works even if the
// list shifted under the cursor.
func toggleTaskCmd(st *store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		var name string
		var done bool
		if data, err := st.Load(); err == nil {
			for _, t := range data.Tasks {
				if t.ID == id {
					name = t.Name
					done = t.Done()
					break
				}
			}
		}

		var err error
		if done {
			err = st.ReopenTaskByID(id)
		} else {
			err = st.CompleteTaskByID(id)
		}
		return taskToggledMsg{id: id, name: name, completed: !done, err: err}
	}
}

// deleteTaskCmd returns a command that removes a task.
func deleteTaskCmd(st *store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		var name string
		if data, err := st.Load(); err == nil {
			for _, t := range data.Tasks {
				if t.ID == id {
					name = t.Name
					break
				}
			}
		}

		err := st.DeleteTaskByID(id)
		return taskDeletedMsg{id: id, name: name, err: err}
	}
}

// =============================================================================
// Note Commands
// =============================================================================

// addNoteCmd returns a command that creates a new note.
func addNoteCmd(st *store.Store, title, content string) tea.Cmd {
	return func() tea.Msg {
		note, err := st.AddNote(title, content)
		return noteAddedMsg{note: note, err: err}
	}
}

// deleteNoteCmd returns a command that removes a note.
func deleteNoteCmd(st *store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		var title string
		if data, err := st.Load(); err == nil {
			for _, n := range data.Notes {
				if n.ID == id {
					title = n.Title
					break
				}
			}
		}

		err := st.DeleteNoteByID(id)
		return noteDeletedMsg{id: id, title: title, err: err}
	}
}

// =============================================================================
// Habit Commands
// =============================================================================

// addHabitCmd returns a command that creates a new habit.
func addHabitCmd(st *store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		habit, err := st.AddHabit(name)
		return habitAddedMsg{habit: habit, err: err}
	}
}

// markHabitCmd returns a command that marks a habit done for today.
func markHabitCmd(st *store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		var name string
		if data, err := st.Load(); err == nil {
			for _, h := range data.Habits {
				if h.ID == id {
					name = h.Name
					break
				}
			}
		}

		err := st.MarkHabitTodayByID(id)
		return habitMarkedMsg{id: id, name: name, err: err}
	}
}

// =============================================================================
// Mood Commands
// =============================================================================

// logMoodCmd returns a command that appends a mood entry for today.
func logMoodCmd(st *store.Store, label store.Mood) tea.Cmd {
	return func() tea.Msg {
		entry, err := st.LogMood(label)
		return moodLoggedMsg{entry: entry, err: err}
	}
}

// =============================================================================
// Reset Commands
// =============================================================================

// resetAllCmd returns a command that clears all dashboard data.
func resetAllCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		err := st.ResetAll()
		return resetDoneMsg{err: err}
	}
}
