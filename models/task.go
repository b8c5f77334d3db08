package models

// Task is a single to-do item inside a project.
//
// Completed mirrors Status: after any write, Completed == (Status == StatusDone).
// Status is the authoritative field; Completed exists for older records and
// callers that predate the status enum. Records written before the enum was
// introduced may lack Status and the timestamps entirely; the task repository
// backfills them lazily.
type Task struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Status    TaskStatus `json:"status,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}
