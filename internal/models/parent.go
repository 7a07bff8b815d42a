package models

import "time"

// Parent represents a guardian account. StudentID is the link to the child
// record and may be missing when provisioning is incomplete.
type Parent struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	FullName  string    `db:"full_name" json:"full_name"`
	StudentID *string   `db:"student_id" json:"student_id,omitempty"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
