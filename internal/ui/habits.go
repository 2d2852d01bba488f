package ui

import (
	"fmt"
	"strings"

	"unidash/internal/config"
	"unidash/internal/store"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// HabitsPane handles the habits display and interactions.
type HabitsPane struct {
	habits  []store.Habit
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

// NewHabitsPane creates a new habits pane.
func NewHabitsPane(st *store.Store, styles *Styles) *HabitsPane {
	return NewHabitsPaneWithKeys(st, styles, &config.KeysConfig{})
}

// NewHabitsPaneWithKeys creates a new habits pane with custom key bindings.
func NewHabitsPaneWithKeys(st *store.Store, styles *Styles, keyCfg *config.KeysConfig) *HabitsPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Habit name"
	ti.CharLimit = 50
	ti.Width = 30

	return &HabitsPane{
		habits:    []store.Habit{},
		cursor:    0,
		focused:   false,
		input:     ti,
		store:     st,
		styles:    styles,
		keys:      NewItemKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// setHabits updates the habit list and adjusts cursor bounds.
func (p *HabitsPane) setHabits(habits []store.Habit) {
	p.habits = habits
	if p.cursor >= len(p.habits) {
		p.cursor = max(0, len(p.habits)-1)
	}
}

// SetSize sets the pane dimensions.
func (p *HabitsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-6)
}

// SetFocused sets whether this pane is focused.
func (p *HabitsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *HabitsPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in add mode.
func (p *HabitsPane) IsAdding() bool {
	return p.adding
}

// SelectedHabit returns the habit under the cursor, or nil.
func (p *HabitsPane) SelectedHabit() *store.Habit {
	if p.cursor < 0 || p.cursor >= len(p.habits) {
		return nil
	}
	return &p.habits[p.cursor]
}

// Update handles messages for the habits pane.
func (p *HabitsPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.data != nil {
			p.setHabits(msg.data.Habits)
		}
		return nil
	}

	// If we're adding a habit, handle input
	if p.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				name := strings.TrimSpace(p.input.Value())
				p.resetAddMode()
				if name != "" {
					return addHabitCmd(p.store, name)
				}
				return nil

			case key.Matches(msg, p.inputKeys.Cancel):
				p.resetAddMode()
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
			if len(p.habits) > 0 {
				p.cursor = min(p.cursor+1, len(p.habits)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.habits) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(p.habits) > 0 {
				p.cursor = len(p.habits) - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Toggle):
			if habit := p.SelectedHabit(); habit != nil {
				return markHabitCmd(p.store, habit.ID)
			}
		}
	}

	return nil
}

// resetAddMode resets the add habit state.
func (p *HabitsPane) resetAddMode() {
	p.adding = false
	p.input.Reset()
}

// handleMouse processes mouse events for the habits pane.
func (p *HabitsPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(p.habits) == 0 {
		return nil
	}

	// Content starts after title (1) + separator (1) = row 2
	const headerRows = 2

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(p.habits)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		habitRow := msg.Y - headerRows
		if habitRow < 0 || habitRow >= len(p.habits) {
			return nil
		}
		p.cursor = habitRow

		// Click on the marker area marks the habit for today
		if msg.X < 5 {
			if habit := p.SelectedHabit(); habit != nil {
				return markHabitCmd(p.store, habit.ID)
			}
		}
	}

	return nil
}

// View renders the habits pane.
func (p *HabitsPane) View() string {
	var b strings.Builder

	// Title
	title := p.styles.PaneTitleStyle.Render("🔁 HABITS")
	b.WriteString(title)
	b.WriteString("\n")

	// Separator
	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	if len(p.habits) == 0 && !p.adding {
		b.WriteString(p.styles.StatLabelStyle.Render("  No habits yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		maxHabits := p.height - 6
		if maxHabits < 3 {
			maxHabits = 5
		}

		startIdx := 0
		if p.cursor >= maxHabits {
			startIdx = p.cursor - maxHabits + 1
		}

		for i, habit := range p.habits {
			if i < startIdx || i >= startIdx+maxHabits {
				continue
			}

			prefix := "  "
			if i == p.cursor && p.focused && !p.adding {
				prefix = "▶ "
			}

			streak := p.styles.HabitStreakStyle.Render(fmt.Sprintf("🔥%d", habit.Streak))
			if habit.Streak == 0 {
				streak = p.styles.StatLabelStyle.Render("new")
			}

			availableWidth := p.width - 14
			if availableWidth < 5 {
				availableWidth = 5
			}
			name := runewidth.Truncate(habit.Name, availableWidth, "..")

			line := fmt.Sprintf("%s%s  %s", prefix, name, streak)
			if i == p.cursor && p.focused && !p.adding {
				line = p.styles.TaskSelectedStyle.Render(line)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		stats := p.styles.StatLabelStyle.Render(fmt.Sprintf("%d habits · press 'd' to mark today", len(p.habits)))
		b.WriteString("  " + stats)
		b.WriteString("\n")
	}

	// Input field when adding
	if p.adding {
		b.WriteString("\n")
		b.WriteString("  " + p.styles.InputPromptStyle.Render("+ ") + p.input.View())
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

// BestStreak returns the longest current streak across all habits.
func (p *HabitsPane) BestStreak() int {
	best := 0
	for _, h := range p.habits {
		if h.Streak > best {
			best = h.Streak
		}
	}
	return best
}

// Count returns the number of habits.
func (p *HabitsPane) Count() int {
	return len(p.habits)
}
