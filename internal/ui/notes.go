// Package ui provides terminal user interface components for the dashboard.
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

// NotesPane handles the notes display and interactions. Notes are shown
// newest-first; the cursor addresses the displayed order.
type NotesPane struct {
	notes    []store.Note // store order, oldest first
	cursor   int          // index into the displayed (reversed) order
	focused  bool
	width    int
	height   int
	adding   bool
	addStep  int // 0 = title, 1 = content
	input    textinput.Model
	newTitle string
	store    *store.Store
	styles   *Styles

	// Key bindings
	keys      ItemKeyMap
	inputKeys InputKeyMap
}

// NewNotesPane creates a new notes pane.
func NewNotesPane(st *store.Store, styles *Styles) *NotesPane {
	return NewNotesPaneWithKeys(st, styles, &config.KeysConfig{})
}

// NewNotesPaneWithKeys creates a new notes pane with custom key bindings.
func NewNotesPaneWithKeys(st *store.Store, styles *Styles, keyCfg *config.KeysConfig) *NotesPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.CharLimit = 120
	ti.Width = 40

	return &NotesPane{
		notes:     []store.Note{},
		cursor:    0,
		focused:   false,
		input:     ti,
		store:     st,
		styles:    styles,
		keys:      NewItemKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// setNotes updates the note list and adjusts cursor bounds.
func (p *NotesPane) setNotes(notes []store.Note) {
	p.notes = notes
	if p.cursor >= len(p.notes) {
		p.cursor = max(0, len(p.notes)-1)
	}
}

// SetSize sets the pane dimensions.
func (p *NotesPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-6)
}

// SetFocused sets whether this pane is focused.
func (p *NotesPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *NotesPane) IsFocused() bool {
	return p.focused
}

// IsAdding returns whether we're in add mode.
func (p *NotesPane) IsAdding() bool {
	return p.adding
}

// SelectedNote returns the note under the cursor (newest-first order), or nil.
func (p *NotesPane) SelectedNote() *store.Note {
	if p.cursor < 0 || p.cursor >= len(p.notes) {
		return nil
	}
	// Displayed order is reversed relative to store order.
	return &p.notes[len(p.notes)-1-p.cursor]
}

// Update handles messages for the notes pane.
func (p *NotesPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.data != nil {
			p.setNotes(msg.data.Notes)
		}
		return nil
	}

	// If we're adding a note, handle input
	if p.adding {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				if p.addStep == 0 {
					// Got title, now get content
					p.newTitle = strings.TrimSpace(p.input.Value())
					if p.newTitle != "" {
						p.addStep = 1
						p.input.Reset()
						p.input.Placeholder = "Content (optional)"
						p.input.CharLimit = 0
					}
				} else {
					content := strings.TrimSpace(p.input.Value())
					title := p.newTitle
					p.resetAddMode()
					return addNoteCmd(p.store, title, content)
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
			if len(p.notes) > 0 {
				p.cursor = min(p.cursor+1, len(p.notes)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.notes) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(p.notes) > 0 {
				p.cursor = len(p.notes) - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.addStep = 0
			p.input.Placeholder = "Note title"
			p.input.CharLimit = 120
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Delete):
			if note := p.SelectedNote(); note != nil {
				return deleteNoteCmd(p.store, note.ID)
			}
		}
	}

	return nil
}

// resetAddMode resets the add note state.
func (p *NotesPane) resetAddMode() {
	p.adding = false
	p.addStep = 0
	p.newTitle = ""
	p.input.Reset()
	p.input.Placeholder = "Note title"
	p.input.CharLimit = 120
}

// handleMouse processes mouse events for the notes pane.
func (p *NotesPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(p.notes) == 0 {
		return nil
	}

	// Content starts after title (1) + separator (1) = row 2
	const headerRows = 2

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(p.notes)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		noteRow := msg.Y - headerRows
		if noteRow < 0 || noteRow >= len(p.notes) {
			return nil
		}
		p.cursor = noteRow
	}

	return nil
}

// View renders the notes pane.
func (p *NotesPane) View() string {
	var b strings.Builder

	// Title
	title := p.styles.PaneTitleStyle.Render("🗒 NOTES")
	b.WriteString(title)
	b.WriteString("\n")

	// Separator
	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	if len(p.notes) == 0 && !p.adding {
		b.WriteString(p.styles.StatLabelStyle.Render("  No notes yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		maxNotes := p.height - 6
		if maxNotes < 3 {
			maxNotes = 5
		}

		startIdx := 0
		if p.cursor >= maxNotes {
			startIdx = p.cursor - maxNotes + 1
		}

		// Newest first
		for display := 0; display < len(p.notes); display++ {
			if display < startIdx || display >= startIdx+maxNotes {
				continue
			}
			note := p.notes[len(p.notes)-1-display]

			prefix := "  "
			if display == p.cursor && p.focused && !p.adding {
				prefix = "▶ "
			}

			dateTag := p.styles.NoteDateStyle.Render(note.Date)
			availableWidth := p.width - 4 - len(note.Date) - 4
			if availableWidth < 5 {
				availableWidth = 5
			}
			noteTitle := runewidth.Truncate(note.Title, availableWidth, "..")

			line := prefix + p.styles.NoteTitleStyle.Render(noteTitle) + "  " + dateTag
			if display == p.cursor && p.focused && !p.adding {
				line = p.styles.TaskSelectedStyle.Render(line)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		// Content preview of the selected note
		if note := p.SelectedNote(); note != nil && note.Content != "" && !p.adding {
			b.WriteString("\n")
			preview := runewidth.Truncate(firstLine(note.Content), max(10, p.width-6), "..")
			b.WriteString("  " + p.styles.StatLabelStyle.Render(preview))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		stats := p.styles.StatLabelStyle.Render(pluralize(len(p.notes), "note", "notes"))
		b.WriteString("  " + stats)
		b.WriteString("\n")
	}

	// Input field when adding
	if p.adding {
		b.WriteString("\n")
		var prompt string
		if p.addStep == 0 {
			prompt = p.styles.InputPromptStyle.Render("Title: ")
		} else {
			prompt = p.styles.InputPromptStyle.Render("Text: ")
		}
		b.WriteString("  " + prompt + p.input.View())
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

// Count returns the number of notes.
func (p *NotesPane) Count() int {
	return len(p.notes)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
