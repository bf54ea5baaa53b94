package config

// Data defaults
const (
	DefaultDataPath = "todo_data.json"
)

// Task defaults
const (
	DefaultCategory = "General"
	DefaultPriority = "medium"
)
