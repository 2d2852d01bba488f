package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// createTestStore creates a Store instance with a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s
}

func fixedClock(day string) func() time.Time {
	return func() time.Time {
		ts, err := time.ParseInLocation("2006-01-02", day, time.Local)
		if err != nil {
			panic(err)
		}
		return ts
	}
}

// =============================================================================
// Task Tests
// =============================================================================

func TestAddTask(t *testing.T) {
	tests := []struct {
		name     string
		taskName string
		priority Priority
		want     string
	}{
		{
			name:     "simple task",
			taskName: "Buy groceries",
			priority: PriorityLow,
			want:     "Buy groceries",
		},
		{
			name:     "trims surrounding whitespace",
			taskName: "  Write tests  ",
			priority: PriorityHigh,
			want:     "Write tests",
		},
		{
			name:     "task with special characters",
			taskName: "Fix bug: 'undefined' error in @main",
			priority: PriorityMedium,
			want:     "Fix bug: 'undefined' error in @main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestStore(t)
			s.SetNowFunc(fixedClock("2026-03-01"))

			task, err := s.AddTask(tt.taskName, tt.priority, time.Time{})
			if err != nil {
				t.Fatalf("AddTask() error = %v", err)
			}

			if task.Name != tt.want {
				t.Errorf("task.Name = %q, want %q", task.Name, tt.want)
			}
			if task.Priority != tt.priority {
				t.Errorf("task.Priority = %q, want %q", task.Priority, tt.priority)
			}
			if task.Status != StatusPending {
				t.Errorf("task.Status = %q, want %q", task.Status, StatusPending)
			}
			if task.Due != "2026-03-01" {
				t.Errorf("task.Due = %q, want 2026-03-01", task.Due)
			}
			if task.ID == "" {
				t.Error("task.ID is empty")
			}

			// Verify the task was persisted
			data, err := s.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(data.Tasks) != 1 {
				t.Fatalf("len(tasks) = %d, want 1", len(data.Tasks))
			}
			if data.Tasks[0].ID != task.ID {
				t.Errorf("persisted task ID = %q, want %q", data.Tasks[0].ID, task.ID)
			}
		})
	}
}

func TestAddTask_DueDateNormalized(t *testing.T) {
	s := createTestStore(t)

	due := time.Date(2026, 4, 15, 23, 59, 12, 0, time.Local)
	task, err := s.AddTask("Plan trip", PriorityLow, due)
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if task.Due != "2026-04-15" {
		t.Errorf("task.Due = %q, want 2026-04-15 (time component dropped)", task.Due)
	}
}

func TestAddTask_Validation(t *testing.T) {
	s := createTestStore(t)

	_, err := s.AddTask("   ", PriorityLow, time.Time{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("AddTask() error = %v, want ValidationError", err)
	}

	// The rejected write must be a no-op.
	data, _ := s.Load()
	if len(data.Tasks) != 0 {
		t.Errorf("len(tasks) = %d after rejected add, want 0", len(data.Tasks))
	}

	long := make([]byte, maxTaskNameLen+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := s.AddTask(string(long), PriorityLow, time.Time{}); !errors.As(err, &verr) {
		t.Fatalf("AddTask() error = %v for overly long name, want ValidationError", err)
	}
}

func TestAddTask_InvalidPriorityPanics(t *testing.T) {
	s := createTestStore(t)

	defer func() {
		if recover() == nil {
			t.Fatal("AddTask() with unrecognized priority should panic")
		}
	}()
	s.AddTask("Task", Priority("Urgent"), time.Time{})
}

func TestMarkTaskDone(t *testing.T) {
	s := createTestStore(t)

	s.AddTask("Test task", PriorityLow, time.Time{})

	if err := s.MarkTaskDone(0); err != nil {
		t.Fatalf("MarkTaskDone() error = %v", err)
	}
	data, _ := s.Load()
	if data.Tasks[0].Status != StatusCompleted {
		t.Errorf("task.Status = %q, want %q", data.Tasks[0].Status, StatusCompleted)
	}

	// Idempotent: a second call leaves the status completed.
	if err := s.MarkTaskDone(0); err != nil {
		t.Fatalf("MarkTaskDone() second call error = %v", err)
	}
	data, _ = s.Load()
	if data.Tasks[0].Status != StatusCompleted {
		t.Errorf("task.Status after second mark = %q, want %q", data.Tasks[0].Status, StatusCompleted)
	}
}

func TestMarkTaskDone_IndexError(t *testing.T) {
	s := createTestStore(t)
	s.AddTask("Only task", PriorityLow, time.Time{})

	err := s.MarkTaskDone(3)
	var ierr *IndexError
	if !errors.As(err, &ierr) {
		t.Fatalf("MarkTaskDone() error = %v, want IndexError", err)
	}
	if ierr.Index != 3 || ierr.Len != 1 {
		t.Errorf("IndexError = %+v, want Index=3 Len=1", ierr)
	}

	if err := s.MarkTaskDone(-1); !errors.As(err, &ierr) {
		t.Fatalf("MarkTaskDone(-1) error = %v, want IndexError", err)
	}
}

func TestUpdateTask(t *testing.T) {
	s := createTestStore(t)

	s.AddTask("Old name", PriorityLow, time.Time{})
	s.MarkTaskDone(0)

	// Update can freely move a completed task back to pending.
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)
	if err := s.UpdateTask(0, "New name", PriorityHigh, due, StatusPending); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	data, _ := s.Load()
	got := data.Tasks[0]
	if got.Name != "New name" || got.Priority != PriorityHigh || got.Due != "2026-05-01" || got.Status != StatusPending {
		t.Errorf("updated task = %+v", got)
	}
}

func TestUpdateTask_Errors(t *testing.T) {
	s := createTestStore(t)
	s.AddTask("Task", PriorityLow, time.Time{})

	var verr *ValidationError
	if err := s.UpdateTask(0, "  ", PriorityLow, time.Time{}, StatusPending); !errors.As(err, &verr) {
		t.Errorf("UpdateTask() with empty name error = %v, want ValidationError", err)
	}

	var ierr *IndexError
	if err := s.UpdateTask(5, "Name", PriorityLow, time.Time{}, StatusPending); !errors.As(err, &ierr) {
		t.Errorf("UpdateTask() out of range error = %v, want IndexError", err)
	}
}

func TestDeleteTask_ShiftsIndices(t *testing.T) {
	s := createTestStore(t)

	s.AddTask("Task A", PriorityLow, time.Time{})
	s.AddTask("Task B", PriorityLow, time.Time{})
	s.AddTask("Task C", PriorityLow, time.Time{})

	if err := s.DeleteTask(1); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}

	data, _ := s.Load()
	if len(data.Tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(data.Tasks))
	}
	if data.Tasks[0].Name != "Task A" || data.Tasks[1].Name != "Task C" {
		t.Errorf("tasks after delete = [%q, %q], want [Task A, Task C]",
			data.Tasks[0].Name, data.Tasks[1].Name)
	}

	var ierr *IndexError
	if err := s.DeleteTask(2); !errors.As(err, &ierr) {
		t.Errorf("DeleteTask() stale index error = %v, want IndexError", err)
	}
}

func TestTaskByIDOperations(t *testing.T) {
	s := createTestStore(t)

	a, _ := s.AddTask("Task A", PriorityLow, time.Time{})
	b, _ := s.AddTask("Task B", PriorityLow, time.Time{})

	if err := s.CompleteTaskByID(b.ID); err != nil {
		t.Fatalf("CompleteTaskByID() error = %v", err)
	}
	data, _ := s.Load()
	if !data.Tasks[1].Done() {
		t.Error("task B not completed")
	}

	if err := s.ReopenTaskByID(b.ID); err != nil {
		t.Fatalf("ReopenTaskByID() error = %v", err)
	}
	data, _ = s.Load()
	if data.Tasks[1].Done() {
		t.Error("task B still completed after reopen")
	}

	if err := s.DeleteTaskByID(a.ID); err != nil {
		t.Fatalf("DeleteTaskByID() error = %v", err)
	}
	data, _ = s.Load()
	if len(data.Tasks) != 1 || data.Tasks[0].ID != b.ID {
		t.Errorf("tasks after delete-by-id = %+v, want only task B", data.Tasks)
	}

	if err := s.DeleteTaskByID("t_missing"); err == nil {
		t.Error("DeleteTaskByID() expected error for unknown id")
	}
}

// =============================================================================
// Note Tests
// =============================================================================

func TestAddNote(t *testing.T) {
	s := createTestStore(t)
	s.SetNowFunc(fixedClock("2026-03-02"))

	note, err := s.AddNote("  Meeting  ", "  Discussed roadmap.  ")
	if err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}
	if note.Title != "Meeting" || note.Content != "Discussed roadmap." {
		t.Errorf("note = %+v, want trimmed fields", note)
	}
	if note.Date != "2026-03-02" {
		t.Errorf("note.Date = %q, want 2026-03-02", note.Date)
	}
	if note.ID == "" {
		t.Error("note.ID is empty")
	}
}

func TestAddNote_Validation(t *testing.T) {
	s := createTestStore(t)

	var verr *ValidationError
	if _, err := s.AddNote("", "content"); !errors.As(err, &verr) {
		t.Errorf("AddNote() with empty title error = %v, want ValidationError", err)
	}
	if _, err := s.AddNote("title", "   "); !errors.As(err, &verr) {
		t.Errorf("AddNote() with empty content error = %v, want ValidationError", err)
	}

	data, _ := s.Load()
	if len(data.Notes) != 0 {
		t.Errorf("len(notes) = %d after rejected adds, want 0", len(data.Notes))
	}
}

// Notes are listed newest-first; deleting at a display position must remove
// the correct underlying note.
func TestDeleteNote_DisplayIndexMapping(t *testing.T) {
	s := createTestStore(t)

	s.AddNote("First", "oldest")
	s.AddNote("Second", "middle")
	s.AddNote("Third", "newest")

	data, _ := s.Load()

	// Display position 0 is the newest note, stored at the end of the list.
	idx := data.NoteIndexFromDisplay(0)
	if idx != 2 {
		t.Fatalf("NoteIndexFromDisplay(0) = %d, want 2", idx)
	}
	if err := s.DeleteNote(idx); err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}

	data, _ = s.Load()
	if len(data.Notes) != 2 {
		t.Fatalf("len(notes) = %d, want 2", len(data.Notes))
	}
	if data.Notes[0].Title != "First" || data.Notes[1].Title != "Second" {
		t.Errorf("notes after delete = [%q, %q], want [First, Second]",
			data.Notes[0].Title, data.Notes[1].Title)
	}
}

func TestDeleteNote_Errors(t *testing.T) {
	s := createTestStore(t)

	var ierr *IndexError
	if err := s.DeleteNote(0); !errors.As(err, &ierr) {
		t.Errorf("DeleteNote() on empty list error = %v, want IndexError", err)
	}

	n, _ := s.AddNote("Keep", "body")
	if err := s.DeleteNoteByID(n.ID); err != nil {
		t.Fatalf("DeleteNoteByID() error = %v", err)
	}
	if err := s.DeleteNoteByID(n.ID); err == nil {
		t.Error("DeleteNoteByID() expected error for already deleted note")
	}
}

// =============================================================================
// Habit Tests
// =============================================================================

func TestAddHabit(t *testing.T) {
	s := createTestStore(t)

	habit, err := s.AddHabit("Exercise")
	if err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if habit.Name != "Exercise" {
		t.Errorf("habit.Name = %q, want Exercise", habit.Name)
	}
	if habit.Streak != 0 {
		t.Errorf("habit.Streak = %d, want 0", habit.Streak)
	}
	if habit.ID == "" {
		t.Error("habit.ID is empty")
	}

	var verr *ValidationError
	if _, err := s.AddHabit("   "); !errors.As(err, &verr) {
		t.Errorf("AddHabit() with empty name error = %v, want ValidationError", err)
	}
}

func TestMarkHabitToday(t *testing.T) {
	s := createTestStore(t)
	s.AddHabit("Read")

	if err := s.MarkHabitToday(0); err != nil {
		t.Fatalf("MarkHabitToday() error = %v", err)
	}
	// No same-day dedup: a second mark increments again.
	if err := s.MarkHabitToday(0); err != nil {
		t.Fatalf("MarkHabitToday() second call error = %v", err)
	}

	data, _ := s.Load()
	if data.Habits[0].Streak != 2 {
		t.Errorf("habit.Streak = %d, want 2", data.Habits[0].Streak)
	}

	var ierr *IndexError
	if err := s.MarkHabitToday(1); !errors.As(err, &ierr) {
		t.Errorf("MarkHabitToday() out of range error = %v, want IndexError", err)
	}
}

func TestMarkHabitTodayByID(t *testing.T) {
	s := createTestStore(t)

	s.AddHabit("Read")
	h, _ := s.AddHabit("Stretch")

	if err := s.MarkHabitTodayByID(h.ID); err != nil {
		t.Fatalf("MarkHabitTodayByID() error = %v", err)
	}
	data, _ := s.Load()
	if data.Habits[0].Streak != 0 || data.Habits[1].Streak != 1 {
		t.Errorf("streaks = [%d, %d], want [0, 1]", data.Habits[0].Streak, data.Habits[1].Streak)
	}

	if err := s.MarkHabitTodayByID("h_missing"); err == nil {
		t.Error("MarkHabitTodayByID() expected error for unknown id")
	}
}

// =============================================================================
// Mood Tests
// =============================================================================

func TestLogMood_PreservesLogOrder(t *testing.T) {
	s := createTestStore(t)
	s.SetNowFunc(fixedClock("2026-03-03"))

	for _, label := range []Mood{"😢 Sad", "🤩 Awesome", "🙂 Good"} {
		if _, err := s.LogMood(label); err != nil {
			t.Fatalf("LogMood(%q) error = %v", label, err)
		}
	}

	data, _ := s.Load()
	wantScores := []int{1, 5, 3}
	if len(data.MoodLog) != len(wantScores) {
		t.Fatalf("len(mood_log) = %d, want %d", len(data.MoodLog), len(wantScores))
	}
	for i, entry := range data.MoodLog {
		if entry.Mood.Score() != wantScores[i] {
			t.Errorf("mood_log[%d].Score() = %d, want %d (entries must stay in log order)",
				i, entry.Mood.Score(), wantScores[i])
		}
		if entry.Date != "2026-03-03" {
			t.Errorf("mood_log[%d].Date = %q, want 2026-03-03", i, entry.Date)
		}
	}
}

func TestLogMood_InvalidLabelPanics(t *testing.T) {
	s := createTestStore(t)

	defer func() {
		if recover() == nil {
			t.Fatal("LogMood() with unrecognized label should panic")
		}
	}()
	s.LogMood(Mood("🔥 Lit"))
}

func TestMoodScores(t *testing.T) {
	scale := Moods()
	if len(scale) != 5 {
		t.Fatalf("len(Moods()) = %d, want 5", len(scale))
	}
	for i, m := range scale {
		if m.Score() != i+1 {
			t.Errorf("Moods()[%d].Score() = %d, want %d", i, m.Score(), i+1)
		}
	}
	if Mood("whatever").Score() != 0 {
		t.Error("unknown mood should score 0")
	}
}

// =============================================================================
// Load / Save / Recovery Tests
// =============================================================================

func TestLoad_MissingFile(t *testing.T) {
	s := createTestStore(t)
	if err := os.Remove(filepath.Join(s.DataDir(), DataFileName)); err != nil {
		t.Fatalf("remove data file: %v", err)
	}

	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(data.Tasks) != 0 || len(data.Notes) != 0 || len(data.Habits) != 0 || len(data.MoodLog) != 0 {
		t.Errorf("Load() on missing file = %+v, want four empty lists", data)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	s := createTestStore(t)
	path := filepath.Join(s.DataDir(), DataFileName)

	// Remove the .bak so recovery has nothing to restore from.
	os.Remove(path + ".bak")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	var notice error
	s.SetOnRecover(func(err error) { notice = err })

	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, corruption must not fail the load", err)
	}
	if len(data.Tasks) != 0 || len(data.Notes) != 0 || len(data.Habits) != 0 || len(data.MoodLog) != 0 {
		t.Errorf("Load() on corrupt file = %+v, want four empty lists", data)
	}
	if notice == nil {
		t.Error("OnRecover callback was not invoked")
	}

	// The broken file is preserved for inspection.
	matches, _ := filepath.Glob(path + ".corrupt.*")
	if len(matches) == 0 {
		t.Error("corrupt file was not moved aside")
	}

	// Subsequent operations proceed against the fresh store.
	if _, err := s.AddTask("After recovery", PriorityLow, time.Time{}); err != nil {
		t.Fatalf("AddTask() after recovery error = %v", err)
	}
}

func TestLoad_CorruptFileRecoversFromBackup(t *testing.T) {
	s := createTestStore(t)
	path := filepath.Join(s.DataDir(), DataFileName)

	// A successful save leaves a .bak of the previous state behind, so write
	// twice: the first state becomes the backup.
	if _, err := s.AddTask("Survivor", PriorityLow, time.Time{}); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if _, err := s.AddHabit("Exercise"); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("\x00\x01garbage"), 0600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(data.Tasks) != 1 || data.Tasks[0].Name != "Survivor" {
		t.Errorf("recovered tasks = %+v, want the Survivor task from .bak", data.Tasks)
	}
}

func TestLoad_MissingKeysAreEmptyLists(t *testing.T) {
	s := createTestStore(t)
	path := filepath.Join(s.DataDir(), DataFileName)

	if err := os.WriteFile(path, []byte(`{"tasks":[{"id":"t1","name":"A","priority":"Low","due":"2026-01-01","status":"Pending"}]}`), 0600); err != nil {
		t.Fatalf("write data file: %v", err)
	}

	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(data.Tasks) != 1 {
		t.Errorf("len(tasks) = %d, want 1", len(data.Tasks))
	}
	if data.Notes == nil || data.Habits == nil || data.MoodLog == nil {
		t.Error("missing list keys must load as empty lists, not nil")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := createTestStore(t)

	want := &Data{
		Tasks: []Task{
			{ID: "t1", Name: "A", Priority: PriorityHigh, Due: "2026-01-02", Status: StatusCompleted},
			{ID: "t2", Name: "B", Priority: PriorityLow, Due: "2026-02-03", Status: StatusPending},
		},
		Notes: []Note{
			{ID: "n1", Title: "T", Content: "C", Date: "2026-01-01"},
		},
		Habits: []Habit{
			{ID: "h1", Name: "Run", Streak: 7},
		},
		MoodLog: []MoodEntry{
			{Date: "2026-01-01", Mood: "😐 Meh"},
			{Date: "2026-01-01", Mood: "😃 Great"},
		},
	}

	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestResetAll(t *testing.T) {
	s := createTestStore(t)

	s.AddTask("Task", PriorityLow, time.Time{})
	s.AddNote("Note", "body")
	s.AddHabit("Habit")
	s.LogMood("🙂 Good")

	if err := s.ResetAll(); err != nil {
		t.Fatalf("ResetAll() error = %v", err)
	}

	data, _ := s.Load()
	if len(data.Tasks)+len(data.Notes)+len(data.Habits)+len(data.MoodLog) != 0 {
		t.Errorf("store not empty after ResetAll: %+v", data)
	}
}

// =============================================================================
// Parse Helpers
// =============================================================================

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"Medium", PriorityMedium, false},
		{" HIGH ", PriorityHigh, false},
		{"med", PriorityMedium, false},
		{"urgent", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePriority(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if st, err := ParseStatus("done"); err != nil || st != StatusCompleted {
		t.Errorf("ParseStatus(done) = %q, %v", st, err)
	}
	if st, err := ParseStatus("Pending"); err != nil || st != StatusPending {
		t.Errorf("ParseStatus(Pending) = %q, %v", st, err)
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Error("ParseStatus(archived) expected error")
	}
}

func TestParseMood(t *testing.T) {
	if m, err := ParseMood("awesome"); err != nil || m != "🤩 Awesome" {
		t.Errorf("ParseMood(awesome) = %q, %v", m, err)
	}
	if m, err := ParseMood("😢 Sad"); err != nil || m != "😢 Sad" {
		t.Errorf("ParseMood(full label) = %q, %v", m, err)
	}
	if _, err := ParseMood("ecstatic"); err == nil {
		t.Error("ParseMood(ecstatic) expected error")
	}
}
