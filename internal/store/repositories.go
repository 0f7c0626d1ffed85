package store

import "github.com/MKhiriev/go-todo/internal/logger"

// Repositories groups every repository built on one database connection.
type Repositories struct {
	UserRepository UserRepository
	TodoRepository TodoRepository
	HealthChecker  HealthChecker
}

// NewRepositories wires all repositories to db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		TodoRepository: NewTodoRepository(db, log),
		HealthChecker:  db,
	}
}
