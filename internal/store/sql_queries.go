// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo/models"
)

const (
	usersTable = "users"
	todosTable = "todos"
)

var (
	userColumns = []string{"id", "email", "name", "password", "created_at", "updated_at"}
	todoColumns = []string{"id", "title", "description", "status", "user_id", "created_at", "updated_at"}
)

// likeEscaper escapes LIKE metacharacters so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPredicate matches term case-insensitively against title and
// description. Both sides are folded by the database's LOWER so they always
// agree; the SQLite connection replaces LOWER with a Unicode-aware one. The
// explicit ESCAPE clause behaves the same in PostgreSQL and SQLite.
const searchPredicate = `(LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE LOWER(?) ESCAPE '\')`

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Name, user.Password, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateUserQuery sets only the fields present in update.
func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	qb := b.Update(usersTable).Set("updated_at", update.UpdatedAt)

	if update.Email != nil {
		qb = qb.Set("email", *update.Email)
	}
	if update.Name != nil {
		qb = qb.Set("name", *update.Name)
	}
	if update.Password != nil {
		qb = qb.Set("password", *update.Password)
	}

	query, args, err := qb.Where(sq.Eq{"id": update.ID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Delete(usersTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	query, args, err := b.Insert(todosTable).
		Columns(todoColumns...).
		Values(todo.ID, todo.Title, todo.Description, string(todo.Status), todo.UserID, todo.CreatedAt, todo.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindTodoQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	query, args, err := b.Select(todoColumns...).
		From(todosTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// todoFilterWhere narrows a todo query to the owner and, when set, the
// search term.
func todoFilterWhere(filter models.TodoFilter) sq.And {
	where := sq.And{sq.Eq{"user_id": filter.UserID}}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		where = append(where, sq.Expr(searchPredicate, pattern, pattern))
	}

	return where
}

func buildListTodosQuery(b sq.StatementBuilderType, filter models.TodoFilter) (string, []any, error) {
	qb := b.Select(todoColumns...).
		From(todosTable).
		Where(todoFilterWhere(filter)).
		OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		qb = qb.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountTodosQuery(b sq.StatementBuilderType, filter models.TodoFilter) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").
		From(todosTable).
		Where(todoFilterWhere(filter)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	query, args, err := b.Update(todosTable).
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("status", string(todo.Status)).
		Set("updated_at", todo.UpdatedAt).
		Where(sq.Eq{"id": todo.ID, "user_id": todo.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	query, args, err := b.Delete(todosTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
