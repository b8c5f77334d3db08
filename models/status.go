package models

// TaskStatus represents the progress of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// NextStatus advances the status one step along the cycle
// todo -> inprogress -> done -> todo. This backs the quick-advance action;
// any status may still be set directly to any other status via an edit.
func NextStatus(s TaskStatus) TaskStatus {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	case StatusDone:
		return StatusTodo
	default:
		return StatusTodo
	}
}

// IsCompleted reports whether the status counts as finished.
func IsCompleted(s TaskStatus) bool {
	return s == StatusDone
}
