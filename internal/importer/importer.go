// Package importer provides import functionality for migrating tasks from
// other productivity tools like Todoist and Taskwarrior.
package importer

import (
	"io"
	"time"

	"unidash/internal/store"
)

// ImportResult contains statistics about an import operation.
type ImportResult struct {
	Imported int      // Number of successfully imported tasks
	Skipped  int      // Number of skipped items (deleted tasks, notes, etc.)
	Errors   []string // Error messages for failed imports
}

// PreviewTask represents a task preview before import.
type PreviewTask struct {
	Name     string
	Priority store.Priority
	DueDate  *time.Time
	Done     bool
}

// Importer defines the interface for import implementations.
type Importer interface {
	// Import reads tasks from the reader and adds them to the store.
	Import(reader io.Reader, st *store.Store) (*ImportResult, error)

	// Preview reads tasks from the reader without importing.
	Preview(reader io.Reader) ([]PreviewTask, error)

	// Name returns the importer name (e.g., "todoist", "taskwarrior").
	Name() string
}

// GetImporter returns the appropriate importer for the given format.
func GetImporter(format string) Importer {
	switch format {
	case "todoist":
		return &TodoistImporter{}
	case "taskwarrior":
		return &TaskwarriorImporter{}
	default:
		return nil
	}
}

// SupportedFormats returns the list of supported import formats.
func SupportedFormats() []string {
	return []string{"todoist", "taskwarrior"}
}

// importPreviews adds previewed tasks to the store, collecting per-task errors.
func importPreviews(tasks []PreviewTask, st *store.Store) *ImportResult {
	result := &ImportResult{}

	for _, task := range tasks {
		var due time.Time
		if task.DueDate != nil {
			due = *task.DueDate
		}

		added, err := st.AddTask(task.Name, task.Priority, due)
		if err != nil {
			result.Errors = append(result.Errors, task.Name+": "+err.Error())
			continue
		}

		if task.Done {
			if err := st.CompleteTaskByID(added.ID); err != nil {
				result.Errors = append(result.Errors, "failed to mark "+task.Name+" as complete: "+err.Error())
			}
		}

		result.Imported++
	}

	return result
}
