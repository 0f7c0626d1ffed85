package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/models"
)

const todoIDParam = "id"

// listTodos serves GET /todo?page=&search=. A missing, non-numeric or
// non-positive page is page 1.
func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	query := r.URL.Query()
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	list, err := h.services.TodoService.ListTodos(r.Context(), userID, page, query.Get("search"))
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	message := "Todos fetched successfully"
	if len(list.Todos) == 0 {
		message = "No todos found"
	}
	writeEnvelope(w, r, http.StatusOK, message, list)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	var req models.TodoRequest
	if err = decodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createTodo").Msg("Invalid JSON was passed")
		h.writeError(w, r, err, nil)
		return
	}

	todo, err := h.services.TodoService.CreateTodo(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err, req)
		return
	}

	writeEnvelope(w, r, http.StatusCreated, "Todo created successfully", todo)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	todo, err := h.services.TodoService.GetTodo(r.Context(), chi.URLParam(r, todoIDParam), userID)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	writeEnvelope(w, r, http.StatusOK, "Todo found successfully", todo)
}

// updateTodo replaces title, description and status of the todo.
func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	var req models.TodoRequest
	if err = decodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateTodo").Msg("Invalid JSON was passed")
		h.writeError(w, r, err, nil)
		return
	}

	todo, err := h.services.TodoService.UpdateTodo(r.Context(), chi.URLParam(r, todoIDParam), userID, req)
	if err != nil {
		h.writeError(w, r, err, req)
		return
	}

	writeEnvelope(w, r, http.StatusOK, "Todo updated successfully", todo)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	if err = h.services.TodoService.DeleteTodo(r.Context(), chi.URLParam(r, todoIDParam), userID); err != nil {
		h.writeError(w, r, err, nil)
		return
	}

	writeEnvelope(w, r, http.StatusOK, "Todo deleted successfully", nil)
}
