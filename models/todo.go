package models

import "time"

// TodoStatus is the lifecycle state of a todo item.
type TodoStatus string

const (
	// StatusPending is the default status of a newly created todo.
	StatusPending TodoStatus = "PENDING"
	// StatusCompleted marks a finished todo.
	StatusCompleted TodoStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known statuses.
func (s TodoStatus) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Todo is a task record owned by exactly one user.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TodoStatus `json:"status"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoFilter selects a page of a user's todos. Search is matched
// case-insensitively against title and description.
type TodoFilter struct {
	UserID string
	Search string
	Limit  uint64
	Offset uint64
}

// TodoList is the response payload of the list endpoint.
type TodoList struct {
	Todos      []Todo     `json:"todos"`
	Pagination Pagination `json:"pagination"`
}
