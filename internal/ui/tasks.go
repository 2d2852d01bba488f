// Package ui provides terminal user interface components for the dashboard.
package ui

import (
	"fmt"
	"strings"
	"time"

	"unidash/internal/config"
	"unidash/internal/store"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TaskPane handles the task list display and interactions.
type TaskPane struct {
	tasks   []store.Task
	cursor  int
	focused bool
	width   int
	height  int
	adding  bool
	input   textinput.Model
	store   *store.Store
	styles  *Styles

	// Key bindings
	keys      ItemKeyMap
	inputKeys InputKeyMap
}

// NewTaskPane creates a new task pane.
func NewTaskPane(st *store.Store, styles *Styles) *TaskPane {
	return NewTaskPaneWithKeys(st, styles, &config.KeysConfig{})
}

// NewTaskPaneWithKeys creates a new task pane with custom key bindings.
func NewTaskPaneWithKeys(st *store.Store, styles *Styles, keyCfg *config.KeysConfig) *TaskPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Width = 40

	return &TaskPane{
		tasks:     []store.Task{},
		cursor:    0,
		focused:   true,
		input:     ti,
		store:     st,
		styles:    styles,
		keys:      NewItemKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// setTasks updates the task list and adjusts cursor bounds. Tasks are kept
// in store order because positions are the store's addressing scheme.
func (p *TaskPane) setTasks(tasks []store.Task) {
	p.tasks = tasks
	if p.cursor >= len(p.tasks) {
		p.cursor = max(0, len(p.tasks)-1)
	}
}

// SetSize sets the pane dimensions.
func (p *TaskPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-4)
}

// SetFocused sets whether this pane is focused.
func (p *TaskPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *TaskPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in add mode.
func (p *TaskPane) IsAdding() bool {
	return p.adding
}

// SelectedTask returns the task under the cursor, or nil.
func (p *TaskPane) SelectedTask() *store.Task {
	if p.cursor < 0 || p.cursor >= len(p.tasks) {
		return nil
	}
	return &p.tasks[p.cursor]
}

// Update handles messages for the task pane.
func (p *TaskPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// Handle async messages first
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.data != nil {
			p.setTasks(msg.data.Tasks)
		}
		return nil
	}

	// If we're adding a task, handle input
	if p.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				name := strings.TrimSpace(p.input.Value())
				p.adding = false
				p.input.Reset()
				if name != "" {
					// Default priority, due today
					return addTaskCmd(p.store, name, store.PriorityLow, time.Time{})
				}
				return nil

			case key.Matches(msg, p.inputKeys.Cancel):
				p.adding = false
				p.input.Reset()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(p.tasks) > 0 {
				p.cursor = min(p.cursor+1, len(p.tasks)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.tasks) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(p.tasks) > 0 {
				p.cursor = len(p.tasks) - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Toggle):
			if task := p.SelectedTask(); task != nil {
				return toggleTaskCmd(p.store, task.ID)
			}

		case key.Matches(msg, p.keys.Delete):
			if task := p.SelectedTask(); task != nil {
				return deleteTaskCmd(p.store, task.ID)
			}
		}
	}

	return nil
}

// handleMouse processes mouse events for the task pane.
func (p *TaskPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(p.tasks) == 0 {
		return nil
	}

	// Content starts after title (1) + separator (1) = row 2
	const headerRows = 2

	// Mirror the view windowing logic so clicks map to the visible slice.
	maxTasks := p.height - 6
	if maxTasks < 3 {
		maxTasks = 5
	}
	startIdx := 0
	if p.cursor >= maxTasks {
		startIdx = p.cursor - maxTasks + 1
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(p.tasks)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		taskRow := msg.Y - headerRows
		if taskRow < 0 || taskRow >= maxTasks {
			return nil
		}

		taskIdx := startIdx + taskRow
		if taskIdx < 0 || taskIdx >= len(p.tasks) {
			return nil
		}

		p.cursor = taskIdx

		// Checkbox format: "![ ] " or "~[x] " - about 5 chars
		if msg.X < 5 {
			return toggleTaskCmd(p.store, p.tasks[taskIdx].ID)
		}
	}

	return nil
}

// View renders the task pane.
func (p *TaskPane) View() string {
	var b strings.Builder

	// Title
	title := p.styles.PaneTitleStyle.Render("✅ TASKS")
	b.WriteString(title)
	b.WriteString("\n")

	// Separator
	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorMuted).Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	// Tasks list
	if len(p.tasks) == 0 && !p.adding {
		b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorTextMuted).Italic(true).Render("  No tasks yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		// Calculate how many tasks we can show
		maxTasks := p.height - 6
		if maxTasks < 3 {
			maxTasks = 5
		}

		startIdx := 0
		if p.cursor >= maxTasks {
			startIdx = p.cursor - maxTasks + 1
		}

		doneCount := 0

		for i, task := range p.tasks {
			if task.Done() {
				doneCount++
			}

			if i < startIdx || i >= startIdx+maxTasks {
				continue
			}

			// Priority badge (1 char: "!", "~", or " ")
			priorityBadge := p.formatPriorityBadge(task.Priority)

			var checkbox string
			if task.Done() {
				checkbox = p.styles.TaskCheckboxDone
			} else {
				checkbox = p.styles.TaskCheckboxPending
			}

			dueIndicator := p.formatDueDate(task.Due)
			dueWidth := lipgloss.Width(dueIndicator)

			// Layout: [space][priority][checkbox][space][text][space?][due]
			fixedWidth := 6
			if dueWidth > 0 {
				fixedWidth += dueWidth + 1
			}
			availableTextWidth := p.width - 4 - fixedWidth
			if availableTextWidth < 5 {
				availableTextWidth = 5
			}

			taskText := runewidth.Truncate(task.Name, availableTextWidth, "..")
			taskTextWidth := runewidth.StringWidth(taskText)

			var line string
			if i == p.cursor && p.focused && !p.adding {
				// Selected: highlight entire line
				textPart := fmt.Sprintf("%s%s %s", priorityBadge, checkbox, taskText)
				if dueWidth > 0 {
					padding := availableTextWidth - taskTextWidth
					if padding < 1 {
						padding = 1
					}
					textPart += strings.Repeat(" ", padding) + dueIndicator
				}
				line = p.styles.TaskSelectedStyle.Render(" " + textPart + " ")
			} else {
				var styledText string
				if task.Done() {
					styledText = p.styles.TaskDoneStyle.Render(taskText)
				} else {
					styledText = p.styles.TaskPendingStyle.Render(taskText)
				}

				textPart := fmt.Sprintf(" %s%s %s", priorityBadge, checkbox, styledText)
				if dueWidth > 0 {
					padding := availableTextWidth - taskTextWidth
					if padding < 1 {
						padding = 1
					}
					textPart += strings.Repeat(" ", padding) + dueIndicator
				}
				line = textPart
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		// Stats
		b.WriteString("\n")
		stats := p.styles.StatLabelStyle.Render(fmt.Sprintf("%d/%d complete", doneCount, len(p.tasks)))
		b.WriteString("  " + stats)
		b.WriteString("\n")
	}

	// Input field when adding
	if p.adding {
		b.WriteString("\n")
		prompt := p.styles.InputPromptStyle.Render("+ ")
		b.WriteString(prompt + p.input.View())
		b.WriteString("\n")
	}

	// Apply pane style
	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// Stats returns task statistics.
func (p *TaskPane) Stats() (done, total int) {
	for _, task := range p.tasks {
		if task.Done() {
			done++
		}
	}
	return done, len(p.tasks)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// formatPriorityBadge returns a styled priority indicator.
// Returns: "!" for high, "~" for medium, " " for low
func (p *TaskPane) formatPriorityBadge(priority store.Priority) string {
	switch priority {
	case store.PriorityHigh:
		return p.styles.PriorityHighStyle.Render("!")
	case store.PriorityMedium:
		return p.styles.PriorityMediumStyle.Render("~")
	default:
		return " " // space placeholder for alignment
	}
}

// formatDueDate returns a compact, styled due date indicator.
// Returns empty string if the date doesn't parse, otherwise: "!" (overdue),
// "T" (today), "+1" (tomorrow), "3d" (days), "2w" (weeks), ">1m" (over a month).
func (p *TaskPane) formatDueDate(due string) string {
	parsed, err := time.ParseInLocation("2006-01-02", due, time.Local)
	if err != nil {
		return ""
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := int(parsed.Sub(today).Hours() / 24)

	switch {
	case days < 0:
		return p.styles.DueDateOverdueStyle.Render("!")
	case days == 0:
		return p.styles.DueDateTodayStyle.Render("T")
	case days == 1:
		return p.styles.DueDateFutureStyle.Render("+1")
	case days <= 7:
		return p.styles.DueDateFutureStyle.Render(fmt.Sprintf("%dd", days))
	case days <= 30:
		weeks := days / 7
		return p.styles.DueDateFutureStyle.Render(fmt.Sprintf("%dw", weeks))
	default:
		return p.styles.DueDateFutureStyle.Render(">1m")
	}
}
