package ui

import (
	"fmt"
	"strings"

	"unidash/internal/config"
	"unidash/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MoodPane handles mood logging and the recent mood history.
type MoodPane struct {
	moodLog []store.MoodEntry
	labels  []store.Mood
	cursor  int // index into labels
	focused bool
	width   int
	height  int
	store   *store.Store
	styles  *Styles

	// Key bindings
	keys ItemKeyMap
}

// NewMoodPane creates a new mood pane.
func NewMoodPane(st *store.Store, styles *Styles) *MoodPane {
	return NewMoodPaneWithKeys(st, styles, &config.KeysConfig{})
}

// NewMoodPaneWithKeys creates a new mood pane with custom key bindings.
func NewMoodPaneWithKeys(st *store.Store, styles *Styles, keyCfg *config.KeysConfig) *MoodPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	return &MoodPane{
		moodLog: []store.MoodEntry{},
		labels:  store.Moods(),
		cursor:  0,
		focused: false,
		store:   st,
		styles:  styles,
		keys:    NewItemKeyMap(keyCfg),
	}
}

// setMoodLog updates the mood history.
func (p *MoodPane) setMoodLog(entries []store.MoodEntry) {
	p.moodLog = entries
}

// SetSize sets the pane dimensions.
func (p *MoodPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *MoodPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *MoodPane) IsFocused() bool {
	return p.focused
}

// IsAdding reports whether the pane is capturing text input. The mood pane
// never does; it exists so all panes share the same interface.
func (p *MoodPane) IsAdding() bool {
	return false
}

// SelectedMood returns the mood label under the cursor.
func (p *MoodPane) SelectedMood() store.Mood {
	if p.cursor < 0 || p.cursor >= len(p.labels) {
		return p.labels[0]
	}
	return p.labels[p.cursor]
}

// Update handles messages for the mood pane.
func (p *MoodPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.data != nil {
			p.setMoodLog(msg.data.MoodLog)
		}
		return nil
	}

	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			p.cursor = min(p.cursor+1, len(p.labels)-1)

		case key.Matches(msg, p.keys.Up):
			p.cursor = max(p.cursor-1, 0)

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			p.cursor = len(p.labels) - 1

		case key.Matches(msg, p.keys.Toggle):
			return logMoodCmd(p.store, p.SelectedMood())
		}
	}

	return nil
}

// handleMouse processes mouse events for the mood pane.
func (p *MoodPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Content starts after title (1) + separator (1) = row 2
	const headerRows = 2

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(p.labels)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		row := msg.Y - headerRows
		if row < 0 || row >= len(p.labels) {
			return nil
		}
		p.cursor = row
		return logMoodCmd(p.store, p.SelectedMood())
	}

	return nil
}

// View renders the mood pane.
func (p *MoodPane) View() string {
	var b strings.Builder

	// Title
	title := p.styles.PaneTitleStyle.Render("🙂 MOOD")
	b.WriteString(title)
	b.WriteString("\n")

	// Separator
	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	// Mood picker
	for i, label := range p.labels {
		prefix := "  "
		if i == p.cursor && p.focused {
			prefix = "▶ "
		}

		score := p.styles.MoodScoreStyle.Render(fmt.Sprintf("(%d)", label.Score()))
		line := fmt.Sprintf("%s%s %s", prefix, label, score)
		if i == p.cursor && p.focused {
			line = p.styles.MoodSelectedStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	// Recent history, newest first
	b.WriteString("\n")
	if len(p.moodLog) == 0 {
		b.WriteString(p.styles.StatLabelStyle.Render("  No moods logged yet."))
		b.WriteString("\n")
	} else {
		maxEntries := p.height - len(p.labels) - 7
		if maxEntries < 2 {
			maxEntries = 3
		}
		if maxEntries > len(p.moodLog) {
			maxEntries = len(p.moodLog)
		}

		b.WriteString("  " + p.styles.StatLabelStyle.Render("Recent:"))
		b.WriteString("\n")
		for i := 0; i < maxEntries; i++ {
			entry := p.moodLog[len(p.moodLog)-1-i]
			b.WriteString(fmt.Sprintf("  %s  %s",
				p.styles.NoteDateStyle.Render(entry.Date),
				entry.Mood))
			b.WriteString("\n")
		}
	}

	// Apply pane style
	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// LoggedToday returns how many moods were logged on the store's current day.
func (p *MoodPane) LoggedToday() int {
	today := p.store.Now().Format("2006-01-02")
	n := 0
	for _, e := range p.moodLog {
		if e.Date == today {
			n++
		}
	}
	return n
}

// Count returns the number of mood log entries.
func (p *MoodPane) Count() int {
	return len(p.moodLog)
}
