package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/poojan019/user-management/internal/application/users"
	domerrors "github.com/poojan019/user-management/internal/domain/errors"
)

// UsersHandler handles the user CRUD routes. All routes are
// unauthenticated; that matches the service's observed contract.
type UsersHandler struct {
	create   *users.CreateUser
	list     *users.ListUsers
	update   *users.UpdateUser
	remove   *users.DeleteUser
	validate *validator.Validate
	log      zerolog.Logger
}

func NewUsersHandler(create *users.CreateUser, list *users.ListUsers, update *users.UpdateUser, remove *users.DeleteUser, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{
		create:   create,
		list:     list,
		update:   update,
		remove:   remove,
		validate: validator.New(),
		log:      log,
	}
}

// Create handles POST /add_users. The body must carry all six fields and
// a well-formed email; validation failures are rejected with 422 before
// any write reaches the store.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		ProjectID string `json:"project_id" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	result, err := h.create.Execute(r.Context(), users.CreateUserInput{
		Username:  body.Username,
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		ProjectID: body.ProjectID,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("create user")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User added successfully",
		"user":    result.User,
	})
}

// List handles GET /get_users: every document in the collection, hashed
// passwords included, no pagination.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.list.Execute(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": all})
}

// Update handles PATCH /update_users/{doc_id}: a partial record, omitted
// fields left untouched.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "doc_id")
	var body struct {
		Username  *string `json:"username"`
		Email     *string `json:"email" validate:"omitempty,email"`
		Password  *string `json:"password"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		ProjectID *string `json:"project_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	updated, err := h.update.Execute(r.Context(), users.UpdateUserInput{
		ID:        docID,
		Username:  body.Username,
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		ProjectID: body.ProjectID,
	})
	switch {
	case err == domerrors.ErrUserNotFound:
		writeErr(w, http.StatusNotFound, "User not found")
		return
	case err == domerrors.ErrEmptyUpdate:
		writeErr(w, http.StatusBadRequest, "No valid fields provided for update")
		return
	case err != nil:
		h.log.Error().Err(err).Str("doc_id", docID).Msg("update user")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":           docID,
		"updated_user": updated,
	})
}

// Delete handles DELETE /delete_users/{doc_id}: permanent removal, no
// soft delete.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "doc_id")
	err := h.remove.Execute(r.Context(), docID)
	switch {
	case err == domerrors.ErrUserNotFound:
		writeErr(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		h.log.Error().Err(err).Str("doc_id", docID).Msg("delete user")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("User with ID %s deleted successfully.", docID),
	})
}
