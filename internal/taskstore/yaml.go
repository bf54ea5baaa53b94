package taskstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLTask represents a task as written in a YAML backlog file. Priority
// and status use their names rather than storage tags, and the ID is
// informational only: importing always assigns fresh IDs.
type YAMLTask struct {
	ID          int    `yaml:"id,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
	Status      string `yaml:"status,omitempty"`
	DueDate     string `yaml:"dueDate,omitempty"`
	Category    string `yaml:"category,omitempty"`
}

// YAMLFile represents the structure of a tasks YAML file.
type YAMLFile struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// ImportError represents an error that occurred during import of a specific task.
type ImportError struct {
	Title  string
	Reason string
}

// ImportResult contains the results of a YAML import operation.
type ImportResult struct {
	Imported int
	Errors   []ImportError
}

// ImportFromYAML reads tasks from a YAML file and adds them to the store
// through the normal Add path, so each gets a fresh ID. Entries that fail
// validation are skipped and reported in the result.
func ImportFromYAML(store Store, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}

	var yamlFile YAMLFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	result := &ImportResult{}

	for _, yt := range yamlFile.Tasks {
		if err := importYAMLTask(store, yt); err != nil {
			result.Errors = append(result.Errors, ImportError{
				Title:  yt.Title,
				Reason: err.Error(),
			})
			continue
		}
		result.Imported++
	}

	return result, nil
}

// importYAMLTask converts a single YAML entry to a candidate task,
// validates it and adds it to the store, applying a status update
// afterwards when the entry is not pending.
func importYAMLTask(store Store, yt YAMLTask) error {
	candidate := &Task{
		Title:       yt.Title,
		Description: yt.Description,
		Priority:    PriorityMedium,
		Status:      StatusPending,
		Category:    yt.Category,
	}

	if yt.Priority != "" {
		p, err := ParsePriority(yt.Priority)
		if err != nil {
			return err
		}
		candidate.Priority = p
	}

	if yt.Status != "" {
		st, err := ParseStatus(yt.Status)
		if err != nil {
			return err
		}
		candidate.Status = st
	}

	if yt.DueDate != "" {
		d, err := ParseDate(yt.DueDate)
		if err != nil {
			return err
		}
		candidate.DueDate = &d
	}

	if err := candidate.Validate(); err != nil {
		return err
	}

	task, err := store.Add(candidate.Title, candidate.Description, candidate.Priority, candidate.DueDate, candidate.Category)
	if err != nil {
		return err
	}

	if candidate.Status != StatusPending {
		if _, err := store.Update(task.ID, Patch{Status: &candidate.Status}); err != nil {
			return err
		}
	}

	return nil
}

// ExportToYAML writes all tasks from the store to a YAML backlog file and
// returns the number of tasks written.
func ExportToYAML(store Store, path string) (int, error) {
	tasks := store.List()

	yamlFile := YAMLFile{Tasks: make([]YAMLTask, 0, len(tasks))}
	for _, t := range tasks {
		yt := YAMLTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority.String(),
			Status:      string(t.Status),
			Category:    t.Category,
		}
		if t.DueDate != nil {
			yt.DueDate = t.DueDate.String()
		}
		yamlFile.Tasks = append(yamlFile.Tasks, yt)
	}

	data, err := yaml.Marshal(yamlFile)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write YAML file: %w", err)
	}

	return len(tasks), nil
}
