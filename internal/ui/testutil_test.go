package ui

import (
	"testing"

	"unidash/internal/config"
	"unidash/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors to ensure consistent output across environments.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStore creates a Store instance with a temporary directory.
func createTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return st
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// loadInto pushes the store's current data into the app's panes the way
// the running program would after a dashboardLoadedMsg.
func loadInto(t *testing.T, app *App) {
	t.Helper()
	data, err := app.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	app.Update(dashboardLoadedMsg{data: data})
}
