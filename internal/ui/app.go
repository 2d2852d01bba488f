// Package ui provides terminal user interface components for the dashboard.
// This file contains the main App model which coordinates all panes and
// routes messages using the Bubble Tea architecture.
package ui

import (
	"fmt"
	"strings"
	"time"

	"unidash/internal/config"
	"unidash/internal/reports"
	"unidash/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PaneID identifies each pane in the application.
type PaneID int

const (
	PaneTasks PaneID = iota
	PaneNotes
	PaneHabits
	PaneMood
)

// LayoutMode determines how panes are arranged based on terminal width.
type LayoutMode int

const (
	// LayoutWide shows all four panes side-by-side.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows only the focused pane with a tab bar.
	LayoutNarrow
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys                  *config.KeysConfig
	ConfirmDeletions      bool
	ShowOnboarding        bool
	NarrowLayoutThreshold int
}

// App is the main application model that coordinates all panes.
type App struct {
	store       *store.Store
	styles      *Styles
	config      *AppConfig
	taskPane    *TaskPane
	notesPane   *NotesPane
	habitsPane  *HabitsPane
	moodPane    *MoodPane
	helpOverlay *HelpOverlay
	confirm     *confirmState
	data        *store.Data
	activePane  PaneID
	layoutMode  LayoutMode
	showHelp    bool
	showWelcome bool
	width       int
	height      int
	status      string
	statusErr   bool
	statusUntil time.Time
	quitting    bool

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap

	// Pane positions for mouse click detection (x coordinates)
	tasksPaneStart  int
	tasksPaneEnd    int
	notesPaneStart  int
	notesPaneEnd    int
	habitsPaneStart int
	habitsPaneEnd   int
	moodPaneStart   int
	moodPaneEnd     int
	contentTop      int // Y coordinate where content starts
}

type confirmState struct {
	title string
	body  string
	cmd   tea.Cmd
}

// NewApp creates a new application. Data loading is deferred to Init()
// to keep the constructor non-blocking.
func NewApp(st *store.Store, styles *Styles, cfg *AppConfig) *App {
	// Use default config if nil
	if cfg == nil {
		cfg = &AppConfig{
			Keys:                  &config.KeysConfig{},
			ConfirmDeletions:      true,
			ShowOnboarding:        true,
			NarrowLayoutThreshold: 100,
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}

	// Create panes with config-aware key bindings
	taskPane := NewTaskPaneWithKeys(st, styles, cfg.Keys)
	notesPane := NewNotesPaneWithKeys(st, styles, cfg.Keys)
	habitsPane := NewHabitsPaneWithKeys(st, styles, cfg.Keys)
	moodPane := NewMoodPaneWithKeys(st, styles, cfg.Keys)
	helpOverlay := NewHelpOverlay(styles)

	// Determine if we should show welcome screen
	showWelcome := cfg.ShowOnboarding && isFirstRun(st)

	app := &App{
		store:       st,
		styles:      styles,
		config:      cfg,
		taskPane:    taskPane,
		notesPane:   notesPane,
		habitsPane:  habitsPane,
		moodPane:    moodPane,
		helpOverlay: helpOverlay,
		activePane:  PaneTasks,
		showHelp:    false,
		showWelcome: showWelcome,
		keys:        NewGlobalKeyMap(cfg.Keys),
		helpKeys:    DefaultHelpKeyMap(),
	}

	// Set initial focus
	taskPane.SetFocused(true)
	notesPane.SetFocused(false)
	habitsPane.SetFocused(false)
	moodPane.SetFocused(false)

	return app
}

// isFirstRun checks if this appears to be the first time running the app.
// We detect this by checking whether the data file holds anything yet.
func isFirstRun(st *store.Store) bool {
	data, err := st.Load()
	if err != nil {
		return false
	}
	return len(data.Tasks) == 0 &&
		len(data.Notes) == 0 &&
		len(data.Habits) == 0 &&
		len(data.MoodLog) == 0
}

// tickMsg is sent periodically for time updates.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the app and loads the dashboard asynchronously.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		loadDashboardCmd(a.store),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Route async messages first (before key handling). Every mutation is
	// followed by a full reload so all panes stay consistent with disk.
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.err != nil {
			a.SetStatus("Load: "+msg.err.Error(), true)
		} else {
			a.data = msg.data
		}
		cmds = append(cmds,
			a.taskPane.Update(msg),
			a.notesPane.Update(msg),
			a.habitsPane.Update(msg),
			a.moodPane.Update(msg),
		)
		return a, tea.Batch(cmds...)

	case taskAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add task: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus("Added task: "+msg.task.Name, false)
		return a, loadDashboardCmd(a.store)

	case taskToggledMsg:
		if msg.err != nil {
			a.SetStatus("Toggle task: "+msg.err.Error(), true)
			return a, nil
		}
		if msg.completed {
			a.SetStatus("Completed: "+msg.name, false)
		} else {
			a.SetStatus("Reopened: "+msg.name, false)
		}
		return a, loadDashboardCmd(a.store)

	case taskDeletedMsg:
		if msg.err != nil {
			a.SetStatus("Delete task: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus("Deleted task: "+msg.name, false)
		return a, loadDashboardCmd(a.store)

	case noteAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add note: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus("Added note: "+msg.note.Title, false)
		return a, loadDashboardCmd(a.store)

	case noteDeletedMsg:
		if msg.err != nil {
			a.SetStatus("Delete note: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus("Deleted note: "+msg.title, false)
		return a, loadDashboardCmd(a.store)

	case habitAddedMsg:
		if msg.err != nil {
			a.SetStatus("Add habit: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus("Added habit: "+msg.habit.Name, false)
		return a, loadDashboardCmd(a.store)

	case habitMarkedMsg:
		if msg.err != nil {
			a.SetStatus("Mark habit: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus("Marked today: "+msg.name, false)
		return a, loadDashboardCmd(a.store)

	case moodLoggedMsg:
		if msg.err != nil {
			a.SetStatus("Log mood: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus(fmt.Sprintf("Logged mood: %s", msg.entry.Mood), false)
		return a, loadDashboardCmd(a.store)

	case resetDoneMsg:
		if msg.err != nil {
			a.SetStatus("Reset: "+msg.err.Error(), true)
			return a, nil
		}
		a.SetStatus("All data cleared", false)
		return a, loadDashboardCmd(a.store)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.showWelcome {
			a.showWelcome = false
			return a, nil
		}

		if a.confirm != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				cmd := a.confirm.cmd
				a.confirm = nil
				return a, cmd
			case "n", "N", "esc":
				a.confirm = nil
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
				return a, nil
			}
			return a, nil
		}

		// Check if any pane is in input mode
		inInputMode := a.taskPane.IsAdding() || a.notesPane.IsAdding() || a.habitsPane.IsAdding()

		if !inInputMode {
			// Confirm deletions (tasks/notes) if enabled.
			if a.config.ConfirmDeletions {
				switch a.activePane {
				case PaneTasks:
					if key.Matches(msg, a.taskPane.keys.Delete) {
						task := a.taskPane.SelectedTask()
						if task == nil {
							a.SetStatus("No task selected", true)
							return a, nil
						}
						a.confirm = &confirmState{
							title: "Delete task?",
							body:  truncateText(task.Name, 60),
							cmd:   deleteTaskCmd(a.store, task.ID),
						}
						return a, nil
					}
				case PaneNotes:
					if key.Matches(msg, a.notesPane.keys.Delete) {
						note := a.notesPane.SelectedNote()
						if note == nil {
							a.SetStatus("No note selected", true)
							return a, nil
						}
						a.confirm = &confirmState{
							title: "Delete note?",
							body:  truncateText(note.Title, 60),
							cmd:   deleteNoteCmd(a.store, note.ID),
						}
						return a, nil
					}
				}
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.NextPane):
				a.switchPane()
				return a, nil

			case key.Matches(msg, a.keys.Pane1):
				a.setActivePane(PaneTasks)
				return a, nil

			case key.Matches(msg, a.keys.Pane2):
				a.setActivePane(PaneNotes)
				return a, nil

			case key.Matches(msg, a.keys.Pane3):
				a.setActivePane(PaneHabits)
				return a, nil

			case key.Matches(msg, a.keys.Pane4):
				a.setActivePane(PaneMood)
				return a, nil

			case key.Matches(msg, a.keys.Reset):
				a.confirm = &confirmState{
					title: "Reset all data?",
					body:  "Every task, note, habit and mood entry will be removed.",
					cmd:   resetAllCmd(a.store),
				}
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.MouseMsg:
		if a.showWelcome {
			if msg.Action == tea.MouseActionPress {
				a.showWelcome = false
			}
			return a, nil
		}

		if a.confirm != nil {
			if msg.Action == tea.MouseActionPress {
				a.confirm = nil
				a.SetStatus("Canceled", false)
			}
			return a, nil
		}

		// Ignore mouse events when help overlay is shown
		if a.showHelp {
			// Any click closes help
			if msg.Action == tea.MouseActionPress {
				a.showHelp = false
			}
			return a, nil
		}

		// Handle mouse events
		switch msg.Action {
		case tea.MouseActionPress:
			// In narrow mode, check for tab bar clicks
			if a.layoutMode == LayoutNarrow && msg.Y == a.contentTop-1 {
				// Tab bar click - determine which tab based on X position
				// Tabs are roughly evenly distributed
				tabWidth := a.width / 4
				switch {
				case msg.X < tabWidth:
					a.setActivePane(PaneTasks)
				case msg.X < tabWidth*2:
					a.setActivePane(PaneNotes)
				case msg.X < tabWidth*3:
					a.setActivePane(PaneHabits)
				default:
					a.setActivePane(PaneMood)
				}
				return a, nil
			}

			// Determine which pane was clicked (in wide mode)
			clickedPane := a.paneAtPosition(msg.X)
			if clickedPane >= 0 && clickedPane != a.activePane {
				a.setActivePane(clickedPane)
			}

			// Forward click to active pane with adjusted coordinates
			if msg.Y >= a.contentTop {
				localMsg := msg
				localMsg.Y = msg.Y - a.contentTop
				// Adjust X for non-tasks panes in wide mode
				if a.layoutMode == LayoutWide {
					switch a.activePane {
					case PaneNotes:
						localMsg.X = msg.X - a.notesPaneStart
					case PaneHabits:
						localMsg.X = msg.X - a.habitsPaneStart
					case PaneMood:
						localMsg.X = msg.X - a.moodPaneStart
					}
				}

				return a, a.activePaneUpdate(localMsg)
			}

		case tea.MouseActionMotion:
			// Ignore motion events for now

		}

		// Handle scroll wheel
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			// Forward scroll to active pane
			localMsg := msg
			localMsg.Y = msg.Y - a.contentTop
			return a, a.activePaneUpdate(localMsg)
		}

		return a, nil

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		return a, tickCmd()
	}

	// Forward to active pane (only if help is not shown)
	if !a.showHelp {
		if cmd := a.activePaneUpdate(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

// activePaneUpdate forwards a message to the focused pane.
func (a *App) activePaneUpdate(msg tea.Msg) tea.Cmd {
	switch a.activePane {
	case PaneTasks:
		return a.taskPane.Update(msg)
	case PaneNotes:
		return a.notesPane.Update(msg)
	case PaneHabits:
		return a.habitsPane.Update(msg)
	case PaneMood:
		return a.moodPane.Update(msg)
	}
	return nil
}

// switchPane cycles through panes.
func (a *App) switchPane() {
	switch a.activePane {
	case PaneTasks:
		a.setActivePane(PaneNotes)
	case PaneNotes:
		a.setActivePane(PaneHabits)
	case PaneHabits:
		a.setActivePane(PaneMood)
	case PaneMood:
		a.setActivePane(PaneTasks)
	}
}

// setActivePane sets the active pane and updates focus states.
func (a *App) setActivePane(pane PaneID) {
	a.activePane = pane

	a.taskPane.SetFocused(pane == PaneTasks)
	a.notesPane.SetFocused(pane == PaneNotes)
	a.habitsPane.SetFocused(pane == PaneHabits)
	a.moodPane.SetFocused(pane == PaneMood)
}

// paneAtPosition returns which pane is at the given X coordinate.
// Returns -1 if no pane is at that position.
func (a *App) paneAtPosition(x int) PaneID {
	if a.layoutMode == LayoutNarrow {
		// In narrow mode, return the active pane
		return a.activePane
	}

	if x >= a.tasksPaneStart && x < a.tasksPaneEnd {
		return PaneTasks
	}
	if x >= a.notesPaneStart && x < a.notesPaneEnd {
		return PaneNotes
	}
	if x >= a.habitsPaneStart && x < a.habitsPaneEnd {
		return PaneHabits
	}
	if x >= a.moodPaneStart && x < a.moodPaneEnd {
		return PaneMood
	}
	return -1
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (2) and help bar (1)
	contentHeight := a.height - 4
	if contentHeight < 10 {
		contentHeight = 10
	}

	// Content starts after title bar (1 line title + 1 line space)
	a.contentTop = 1

	// Update help overlay size
	a.helpOverlay.SetSize(a.width, a.height)

	totalWidth := a.width - 4

	// Determine layout mode based on configured threshold
	threshold := a.config.NarrowLayoutThreshold
	if threshold <= 0 {
		threshold = 100 // Default threshold
	}

	if a.width < threshold {
		// Narrow mode: single focused pane with tab bar
		a.layoutMode = LayoutNarrow

		// In narrow mode, leave room for tab bar (1 line)
		narrowHeight := contentHeight - 1
		if narrowHeight < 8 {
			narrowHeight = 8
		}

		// Give full width to all panes (only focused one will be shown)
		paneWidth := totalWidth
		if paneWidth < 20 {
			paneWidth = 20
		}

		a.taskPane.SetSize(paneWidth, narrowHeight)
		a.notesPane.SetSize(paneWidth, narrowHeight)
		a.habitsPane.SetSize(paneWidth, narrowHeight)
		a.moodPane.SetSize(paneWidth, narrowHeight)

		// In narrow mode, all panes occupy the same space
		a.tasksPaneStart = 0
		a.tasksPaneEnd = a.width
		a.notesPaneStart = 0
		a.notesPaneEnd = a.width
		a.habitsPaneStart = 0
		a.habitsPaneEnd = a.width
		a.moodPaneStart = 0
		a.moodPaneEnd = a.width
		// Content starts after tab bar in narrow mode
		a.contentTop = 2
	} else {
		// Wide mode: four panes side-by-side
		a.layoutMode = LayoutWide

		var tasksWidth, notesWidth, habitsWidth, moodWidth int
		if totalWidth < 140 {
			// Medium: balanced four-column
			tasksWidth = (totalWidth * 28) / 100
			notesWidth = (totalWidth * 26) / 100
			habitsWidth = (totalWidth * 24) / 100
			moodWidth = totalWidth - tasksWidth - notesWidth - habitsWidth - 3
		} else {
			// Wide: comfortable four-column with max widths
			tasksWidth = min((totalWidth*30)/100, 50)
			notesWidth = min((totalWidth*26)/100, 45)
			habitsWidth = min((totalWidth*22)/100, 40)
			moodWidth = min(totalWidth-tasksWidth-notesWidth-habitsWidth-3, 40)
		}

		a.taskPane.SetSize(tasksWidth, contentHeight)
		a.notesPane.SetSize(notesWidth, contentHeight)
		a.habitsPane.SetSize(habitsWidth, contentHeight)
		a.moodPane.SetSize(moodWidth, contentHeight)

		// Calculate pane positions (with 1 space gaps between panes)
		a.tasksPaneStart = 0
		a.tasksPaneEnd = tasksWidth
		a.notesPaneStart = tasksWidth + 1
		a.notesPaneEnd = a.notesPaneStart + notesWidth
		a.habitsPaneStart = a.notesPaneEnd + 1
		a.habitsPaneEnd = a.habitsPaneStart + habitsWidth
		a.moodPaneStart = a.habitsPaneEnd + 1
		a.moodPaneEnd = a.moodPaneStart + moodWidth
	}
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.showWelcome {
		return a.renderWelcome()
	}

	if a.confirm != nil {
		return a.renderConfirm()
	}

	// Show help overlay if active
	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	// Title bar
	titleBar := a.renderTitleBar()
	b.WriteString(titleBar)
	b.WriteString("\n")

	// Main content - switch based on layout mode
	switch a.layoutMode {
	case LayoutNarrow:
		b.WriteString(a.renderNarrowContent())
	default:
		b.WriteString(a.renderWideContent())
	}
	b.WriteString("\n")

	// Help bar
	helpBar := a.renderHelpBar()
	b.WriteString(helpBar)

	return b.String()
}

func (a *App) renderWelcome() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorPrimary).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to unidash"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Tab switches panes. ? opens help.\n"))
	b.WriteString(bodyStyle.Render("Add your first task with 'a'.\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press any key to continue"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirm() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirm.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirm.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] confirm    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderWideContent renders all four panes side by side.
func (a *App) renderWideContent() string {
	tasksView := a.taskPane.View()
	notesView := a.notesPane.View()
	habitsView := a.habitsPane.View()
	moodView := a.moodPane.View()

	return lipgloss.JoinHorizontal(lipgloss.Top, tasksView, " ", notesView, " ", habitsView, " ", moodView)
}

// renderNarrowContent renders the focused pane with a tab bar.
func (a *App) renderNarrowContent() string {
	var b strings.Builder

	// Tab bar at top
	b.WriteString(a.renderPaneTabs())
	b.WriteString("\n")

	// Only render the active pane
	switch a.activePane {
	case PaneTasks:
		b.WriteString(a.taskPane.View())
	case PaneNotes:
		b.WriteString(a.notesPane.View())
	case PaneHabits:
		b.WriteString(a.habitsPane.View())
	case PaneMood:
		b.WriteString(a.moodPane.View())
	}

	return b.String()
}

// renderPaneTabs renders a tab bar showing available panes.
func (a *App) renderPaneTabs() string {
	// Tab labels
	tabs := []struct {
		id    PaneID
		label string
	}{
		{PaneTasks, "Tasks"},
		{PaneNotes, "Notes"},
		{PaneHabits, "Habits"},
		{PaneMood, "Mood"},
	}

	// Create tab styles
	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activePane {
			// Active tab: highlighted with brackets
			label = activeTabStyle.Render("[" + label + "]")
		} else {
			// Inactive tab: muted
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	// Center the tabs
	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows a nice exit message with a day summary.
func (a *App) renderGoodbye() string {
	tasksDone, tasksTotal := a.taskPane.Stats()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you later!\n")
	b.WriteString("\n")

	if tasksTotal > 0 {
		pct := (tasksDone * 100) / tasksTotal
		b.WriteString("  Today's progress:\n")
		b.WriteString(fmt.Sprintf("     Tasks:  %d/%d (%d%%)\n", tasksDone, tasksTotal, pct))
		if best := a.habitsPane.BestStreak(); best > 0 {
			b.WriteString(fmt.Sprintf("     Best streak: %d\n", best))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with snapshot counters.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" unidash ")

	// Snapshot counters over the last loaded data
	var stats string
	if a.data != nil {
		snap := reports.SnapshotOf(a.data, a.store.Now())
		stats = a.styles.StatLabelStyle.Render(fmt.Sprintf(
			"Tasks: %d/%d  Notes: %d  Habits: %d  Moods today: %d",
			snap.CompletedTasks, snap.TotalTasks,
			snap.NoteCount, snap.HabitCount, snap.MoodsLoggedToday,
		))
	}

	// Current date/time
	now := time.Now()
	dateStr := now.Format("Mon Jan 2 · 15:04")
	date := a.styles.DateStyle.Render(dateStr)

	// Calculate spacing
	titleWidth := lipgloss.Width(title)
	statsWidth := lipgloss.Width(stats)
	dateWidth := lipgloss.Width(date)

	usedWidth := titleWidth + statsWidth + dateWidth
	spacerWidth := a.width - usedWidth - 6
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	// Build the title bar
	var parts []string
	parts = append(parts, title)

	if stats != "" {
		parts = append(parts, "  "+stats)
	}

	parts = append(parts, strings.Repeat(" ", spacerWidth))
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	// Input mode help
	if a.taskPane.IsAdding() || a.habitsPane.IsAdding() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	if a.notesPane.IsAdding() {
		return a.styles.RenderHelp(
			"enter", "next/save",
			"esc", "cancel",
		)
	}

	// Normal mode help based on active pane
	switch a.activePane {
	case PaneTasks:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "done",
			"x", "del",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	case PaneNotes:
		return a.styles.RenderHelp(
			"a", "add",
			"x", "del",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	case PaneHabits:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "mark",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	case PaneMood:
		return a.styles.RenderHelp(
			"j/k", "pick",
			"d", "log",
			"tab", "pane",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// truncateText shortens text for overlays and status lines.
func truncateText(s string, width int) string {
	return runewidth.Truncate(s, width, "..")
}

// Run starts the Bubble Tea program with the given store, styles, and config.
func Run(st *store.Store, styles *Styles, cfg *AppConfig) error {
	app := NewApp(st, styles, cfg)
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	_, err := p.Run()
	return err
}
