package models

// Project is a named container for tasks. Projects are owned by exactly one
// user; the owning username is the partition key in the store, not a field.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
