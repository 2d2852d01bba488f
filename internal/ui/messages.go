// Package ui provides terminal user interface components for the dashboard.
// This file defines message types for async I/O operations using the Bubble Tea
// command pattern. All store operations should return these messages to keep
// the event loop non-blocking.
package ui

import (
	"unidash/internal/store"
)

// dashboardLoadedMsg is sent when the dashboard data is (re)loaded from disk.
// Every mutation is followed by a reload, so this is the single message that
// refreshes all panes.
type dashboardLoadedMsg struct {
	data *store.Data
	err  error
}

// =============================================================================
// Task Messages
// =============================================================================

// taskAddedMsg is sent when a new task is created.
type taskAddedMsg struct {
	task *store.Task
	err  error
}

// taskToggledMsg is sent when a task's status flips between pending and
// completed.
type taskToggledMsg struct {
	id        string
	name      string
	completed bool // New state
	err       error
}

// taskDeletedMsg is sent when a task is removed.
type taskDeletedMsg struct {
	id   string
	name string
	err  error
}

// =============================================================================
// Note Messages
// =============================================================================

// noteAddedMsg is sent when a new note is created.
type noteAddedMsg struct {
	note *store.Note
	err  error
}

// noteDeletedMsg is sent when a note is removed.
type noteDeletedMsg struct {
	id    string
	title string
	err   error
}

// =============================================================================
// Habit Messages
// =============================================================================

// habitAddedMsg is sent when a new habit is created.
type habitAddedMsg struct {
	habit *store.Habit
	err   error
}

// habitMarkedMsg is sent when a habit is marked done for today.
type habitMarkedMsg struct {
	id   string
	name string
	err  error
}

// =============================================================================
// Mood Messages
// =============================================================================

// moodLoggedMsg is sent when a mood entry is appended to the log.
type moodLoggedMsg struct {
	entry *store.MoodEntry
	err   error
}

// =============================================================================
// Reset Messages
// =============================================================================

// resetDoneMsg is sent when all data has been cleared.
type resetDoneMsg struct {
	err error
}
