package models

// User represents a registered account.
// Password holds a bcrypt hash for accounts created by this code; records
// written by earlier versions may carry a plaintext password, which the user
// repository still accepts on verify but never writes back.
type User struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt,omitempty"`
}
