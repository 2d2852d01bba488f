// Package store implements the persistent record store behind the dashboard:
// four ordered entity lists (tasks, notes, habits, mood log) serialized as a
// single JSON file, plus the validated mutation operations over them.
//
// The store is single-process, single-writer. Every mutation loads the full
// blob, validates its input, mutates in memory, and persists the full blob
// before returning. Entities are publicly addressed by positional index;
// each task, note, and habit additionally carries a stable opaque id so the
// UI can survive index shifts.
package store

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"unidash/internal/fsutil"
)

const (
	// DataFileName is the single persisted blob holding all four lists.
	DataFileName = "dashboard.json"

	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	dateLayout = "2006-01-02"

	maxTaskNameLen    = 200
	maxNoteTitleLen   = 120
	maxNoteContentLen = 10000
	maxHabitNameLen   = 60
)

// Store handles all reads and writes of the dashboard data file.
type Store struct {
	dataDir   string
	now       func() time.Time // injectable clock for deterministic tests
	onRecover func(err error)  // called after a corrupt blob was replaced
}

// New creates a Store rooted at dataDir, creating the directory and seeding
// an empty data file if either is missing.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{dataDir: dataDir, now: time.Now}

	if !fileExists(s.path()) {
		if err := s.Save(emptyData()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetNowFunc overrides the clock used for due dates, note dates, and mood
// dates. Passing nil resets it to time.Now.
func (s *Store) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the store clock.
func (s *Store) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// SetOnRecover registers a callback invoked when a corrupt data file was
// detected and replaced. Corruption never fails an operation; the callback
// is the only place it surfaces.
func (s *Store) SetOnRecover(fn func(err error)) {
	s.onRecover = fn
}

// DataDir returns the path to the data directory.
func (s *Store) DataDir() string {
	return s.dataDir
}

func (s *Store) path() string {
	return filepath.Join(s.dataDir, DataFileName)
}

func (s *Store) today() string {
	return s.Now().Format(dateLayout)
}

func (s *Store) dateString(t time.Time) string {
	if t.IsZero() {
		return s.today()
	}
	return t.Format(dateLayout)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func emptyData() *Data {
	return &Data{
		Tasks:   []Task{},
		Notes:   []Note{},
		Habits:  []Habit{},
		MoodLog: []MoodEntry{},
	}
}

// normalize replaces nil lists with empty ones so a blob with missing keys
// round-trips to the canonical four-list shape.
func (d *Data) normalize() {
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	if d.MoodLog == nil {
		d.MoodLog = []MoodEntry{}
	}
}

// NoteIndexFromDisplay maps a position in the newest-first note listing back
// to the underlying storage index.
func (d *Data) NoteIndexFromDisplay(display int) int {
	return len(d.Notes) - 1 - display
}

func newID(prefix string) (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(b[:])), nil
}

// ============================================================================
// Load / Save
// ============================================================================

// Load reads the data file. A missing file yields a seeded empty store. A
// corrupt file is moved aside and replaced, from the .bak snapshot when one
// is readable and with an empty store otherwise. The error is reported
// only through the OnRecover callback. Load fails only on real I/O errors.
func (s *Store) Load() (*Data, error) {
	data := emptyData()

	raw, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.Save(data); err != nil {
				return nil, err
			}
			return data, nil
		}
		return nil, fmt.Errorf("read %s: %w", DataFileName, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return s.recover(fmt.Errorf("%s is empty", DataFileName))
	}
	if err := json.Unmarshal(raw, data); err != nil {
		return s.recover(fmt.Errorf("parse %s: %w", DataFileName, err))
	}

	data.normalize()
	return data, nil
}

// Save serializes and atomically replaces the data file, keeping a
// best-effort .bak of the previous contents. The write is the only
// persistence step: there is no partial or incremental save.
func (s *Store) Save(data *Data) error {
	data.normalize()
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", DataFileName, err)
	}

	fsutil.SnapshotBackup(s.path(), dataFilePerm)

	if err := fsutil.WriteAtomic(s.path(), raw, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", DataFileName, err)
	}
	return nil
}

// recover handles an unreadable blob: preserve it under a .corrupt suffix,
// try the .bak snapshot, and fall back to a fresh empty store. Data loss
// here is accepted; the app must keep working.
func (s *Store) recover(cause error) (*Data, error) {
	path := s.path()
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, s.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)

	data := emptyData()
	notice := fmt.Errorf("%v (reset to empty; original moved to %s)", cause, corruptPath)

	if bak, err := os.ReadFile(path + ".bak"); err == nil && len(bytes.TrimSpace(bak)) > 0 {
		restored := emptyData()
		if err := json.Unmarshal(bak, restored); err == nil {
			restored.normalize()
			data = restored
			notice = fmt.Errorf("%v (recovered from %s.bak)", cause, DataFileName)
		}
	}

	if err := s.Save(data); err != nil {
		return nil, err
	}
	if s.onRecover != nil {
		s.onRecover(notice)
	}
	return data, nil
}

// ResetAll clears all four lists and persists immediately.
func (s *Store) ResetAll() error {
	return s.Save(emptyData())
}

// ============================================================================
// Enum parsing and assertions
// ============================================================================

// ParsePriority converts boundary text (CLI flags, import files) into a
// Priority, case-insensitively.
func ParsePriority(v string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("invalid priority %q: must be low, medium, or high", v)
}

// ParseStatus converts boundary text into a Status, case-insensitively.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pending":
		return StatusPending, nil
	case "completed", "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("invalid status %q: must be pending or completed", v)
}

// ParseMood converts boundary text into a Mood. It accepts either the full
// label or the bare word after the emoji ("sad", "awesome"),
// case-insensitively.
func ParseMood(v string) (Mood, error) {
	v = strings.TrimSpace(v)
	for _, m := range moodScale {
		if v == string(m) {
			return m, nil
		}
		_, word, _ := strings.Cut(string(m), " ")
		if strings.EqualFold(v, word) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mood %q", v)
}

// The write operations only accept enum values from the fixed sets offered
// by the UI. An unrecognized value is a programming error, not input to
// validate, so it panics.
func mustValidPriority(p Priority) {
	if !p.Valid() {
		panic(fmt.Sprintf("store: invalid priority %q", p))
	}
}

func mustValidStatus(st Status) {
	if !st.Valid() {
		panic(fmt.Sprintf("store: invalid status %q", st))
	}
}

func mustValidMood(m Mood) {
	if !m.Valid() {
		panic(fmt.Sprintf("store: invalid mood %q", m))
	}
}

// ============================================================================
// Tasks
// ============================================================================

// AddTask validates and appends a new pending task. A zero due date means
// today.
func (s *Store) AddTask(name string, priority Priority, due time.Time) (*Task, error) {
	mustValidPriority(priority)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errRequired("task name")
	}
	if len(name) > maxTaskNameLen {
		return nil, errTooLong("task name", maxTaskNameLen)
	}

	data, err := s.Load()
	if err != nil {
		return nil, err
	}

	id, err := newID("t")
	if err != nil {
		return nil, err
	}

	task := Task{
		ID:       id,
		Name:     name,
		Priority: priority,
		Due:      s.dateString(due),
		Status:   StatusPending,
	}
	data.Tasks = append(data.Tasks, task)

	if err := s.Save(data); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces every field of the task at index. Unlike MarkTaskDone
// it can move a task in either direction between pending and completed.
func (s *Store) UpdateTask(index int, name string, priority Priority, due time.Time, status Status) error {
	mustValidPriority(priority)
	mustValidStatus(status)

	name = strings.TrimSpace(name)
	if name == "" {
		return errRequired("task name")
	}
	if len(name) > maxTaskNameLen {
		return errTooLong("task name", maxTaskNameLen)
	}

	data, err := s.Load()
	if err != nil {
		return err
	}
	if err := checkIndex("task", index, len(data.Tasks)); err != nil {
		return err
	}

	data.Tasks[index].Name = name
	data.Tasks[index].Priority = priority
	data.Tasks[index].Due = s.dateString(due)
	data.Tasks[index].Status = status

	return s.Save(data)
}

// MarkTaskDone sets the task at index to completed. Marking an already
// completed task is a persisted no-op.
func (s *Store) MarkTaskDone(index int) error {
	data, err := s.Load()
	if err != nil {
		return err
	}
	if err := checkIndex("task", index, len(data.Tasks)); err != nil {
		return err
	}

	data.Tasks[index].Status = StatusCompleted
	return s.Save(data)
}

// DeleteTask removes the task at index; all later tasks shift down by one.
func (s *Store) DeleteTask(index int) error {
	data, err := s.Load()
	if err != nil {
		return err
	}
	if err := checkIndex("task", index, len(data.Tasks)); err != nil {
		return err
	}

	data.Tasks = append(data.Tasks[:index], data.Tasks[index+1:]...)
	return s.Save(data)
}

// CompleteTaskByID marks the task with the given id as completed.
func (s *Store) CompleteTaskByID(id string) error {
	return s.withTaskIndex(id, s.MarkTaskDone)
}

// ReopenTaskByID sets the task with the given id back to pending.
func (s *Store) ReopenTaskByID(id string) error {
	return s.withTaskIndex(id, func(i int) error {
		data, err := s.Load()
		if err != nil {
			return err
		}
		if err := checkIndex("task", i, len(data.Tasks)); err != nil {
			return err
		}
		data.Tasks[i].Status = StatusPending
		return s.Save(data)
	})
}

// DeleteTaskByID removes the task with the given id.
func (s *Store) DeleteTaskByID(id string) error {
	return s.withTaskIndex(id, s.DeleteTask)
}

func (s *Store) withTaskIndex(id string, op func(index int) error) error {
	data, err := s.Load()
	if err != nil {
		return err
	}
	for i := range data.Tasks {
		if data.Tasks[i].ID == id {
			return op(i)
		}
	}
	return fmt.Errorf("task not found: %s", id)
}

// ============================================================================
// Notes
// ============================================================================

// AddNote validates and appends a new note stamped with today's date.
func (s *Store) AddNote(title, content string) (*Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return nil, errRequired("note title")
	}
	if len(title) > maxNoteTitleLen {
		return nil, errTooLong("note title", maxNoteTitleLen)
	}
	if content == "" {
		return nil, errRequired("note content")
	}
	if len(content) > maxNoteContentLen {
		return nil, errTooLong("note content", maxNoteContentLen)
	}

	data, err := s.Load()
	if err != nil {
		return nil, err
	}

	id, err := newID("n")
	if err != nil {
		return nil, err
	}

	note := Note{
		ID:      id,
		Title:   title,
		Content: content,
		Date:    s.today(),
	}
	data.Notes = append(data.Notes, note)

	if err := s.Save(data); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes the note at the underlying storage index. Callers
// showing the newest-first listing must map the display position through
// NoteIndexFromDisplay first.
func (s *Store) DeleteNote(index int) error {
	data, err := s.Load()
	if err != nil {
		return err
	}
	if err := checkIndex("note", index, len(data.Notes)); err != nil {
		return err
	}

	data.Notes = append(data.Notes[:index], data.Notes[index+1:]...)
	return s.Save(data)
}

// DeleteNoteByID removes the note with the given id.
func (s *Store) DeleteNoteByID(id string) error {
	data, err := s.Load()
	if err != nil {
		return err
	}
	for i := range data.Notes {
		if data.Notes[i].ID == id {
			return s.DeleteNote(i)
		}
	}
	return fmt.Errorf("note not found: %s", id)
}

// ============================================================================
// Habits
// ============================================================================

// AddHabit validates and appends a new habit with a zero streak.
func (s *Store) AddHabit(name string) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errRequired("habit name")
	}
	if len(name) > maxHabitNameLen {
		return nil, errTooLong("habit name", maxHabitNameLen)
	}

	data, err := s.Load()
	if err != nil {
		return nil, err
	}

	id, err := newID("h")
	if err != nil {
		return nil, err
	}

	habit := Habit{ID: id, Name: name, Streak: 0}
	data.Habits = append(data.Habits, habit)

	if err := s.Save(data); err != nil {
		return nil, err
	}
	return &habit, nil
}

// MarkHabitToday increments the streak of the habit at index by exactly
// one. There is no same-day dedup: marking twice on the same day increments
// twice.
func (s *Store) MarkHabitToday(index int) error {
	data, err := s.Load()
	if err != nil {
		return err
	}
	if err := checkIndex("habit", index, len(data.Habits)); err != nil {
		return err
	}

	data.Habits[index].Streak++
	return s.Save(data)
}

// MarkHabitTodayByID increments the streak of the habit with the given id.
func (s *Store) MarkHabitTodayByID(id string) error {
	data, err := s.Load()
	if err != nil {
		return err
	}
	for i := range data.Habits {
		if data.Habits[i].ID == id {
			return s.MarkHabitToday(i)
		}
	}
	return fmt.Errorf("habit not found: %s", id)
}

// ============================================================================
// Mood log
// ============================================================================

// LogMood appends a mood entry for today. The label always comes from the
// fixed vocabulary, so the only failure paths are storage errors.
func (s *Store) LogMood(label Mood) (*MoodEntry, error) {
	mustValidMood(label)

	data, err := s.Load()
	if err != nil {
		return nil, err
	}

	entry := MoodEntry{Date: s.today(), Mood: label}
	data.MoodLog = append(data.MoodLog, entry)

	if err := s.Save(data); err != nil {
		return nil, err
	}
	return &entry, nil
}
