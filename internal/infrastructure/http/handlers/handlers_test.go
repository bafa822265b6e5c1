package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/poojan019/user-management/internal/application/invitation"
	"github.com/poojan019/user-management/internal/application/ports"
	"github.com/poojan019/user-management/internal/application/users"
	"github.com/poojan019/user-management/internal/domain"
	httprouter "github.com/poojan019/user-management/internal/infrastructure/http"
	"github.com/poojan019/user-management/internal/infrastructure/http/handlers"
	"github.com/poojan019/user-management/internal/infrastructure/persistence/memory"
	"github.com/poojan019/user-management/internal/infrastructure/security"
)

type recordingMailer struct {
	sent []ports.Message
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg ports.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func newTestRouter(t *testing.T, mailer ports.MailSender, attachment string) (http.Handler, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	log := zerolog.Nop()

	usersHandler := handlers.NewUsersHandler(
		users.NewCreateUser(repo, hasher),
		users.NewListUsers(repo),
		users.NewUpdateUser(repo, hasher),
		users.NewDeleteUser(repo),
		log,
	)
	inviteUC := invitation.NewSendInvitation(mailer, []string{"a@example.com"}, attachment, "http://127.0.0.1:8080/redoc")

	router := httprouter.NewRouter(httprouter.RouterConfig{
		Users:      usersHandler,
		Invitation: handlers.NewInvitationHandler(inviteUC, log),
		Docs:       handlers.NewDocsHandler(),
		Health:     handlers.NewHealthHandler(repo),
		Log:        log,
	})
	return router, repo
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func validCreateBody() map[string]string {
	return map[string]string{
		"username":   "pghetiya",
		"email":      "pghetiya@example.com",
		"password":   "s3cret",
		"first_name": "Poojan",
		"last_name":  "Ghetiya",
		"project_id": "proj-1",
	}
}

func TestCreateUserInvalidEmailRejectedBeforeWrite(t *testing.T) {
	router, repo := newTestRouter(t, &recordingMailer{}, "")

	body := validCreateBody()
	body["email"] = "not-an-email"
	resp := doJSON(t, router, http.MethodPost, "/add_users", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestCreateUserMissingFieldRejected(t *testing.T) {
	router, _ := newTestRouter(t, &recordingMailer{}, "")

	body := validCreateBody()
	delete(body, "project_id")
	resp := doJSON(t, router, http.MethodPost, "/add_users", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestCreateUserReturnsHashedPassword(t *testing.T) {
	router, _ := newTestRouter(t, &recordingMailer{}, "")

	resp := doJSON(t, router, http.MethodPost, "/add_users", validCreateBody())
	require.Equal(t, http.StatusOK, resp.Code)

	out := decodeBody(t, resp)
	require.Equal(t, "User added successfully", out["message"])

	user, ok := out["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "pghetiya", user["username"])
	password, _ := user["password"].(string)
	require.NotEmpty(t, password)
	require.NotEqual(t, "s3cret", password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(password), []byte("s3cret")))
}

func TestListUsersIncludesCreated(t *testing.T) {
	router, _ := newTestRouter(t, &recordingMailer{}, "")

	resp := doJSON(t, router, http.MethodPost, "/add_users", validCreateBody())
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/get_users", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	out := decodeBody(t, resp)
	list, ok := out["users"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	first := list[0].(map[string]any)
	require.Equal(t, "pghetiya@example.com", first["email"])
}

func TestUpdateUnknownIDFailsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, &recordingMailer{}, "")

	resp := doJSON(t, router, http.MethodPatch, "/update_users/missing", map[string]string{"first_name": "X"})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateEmptyPayloadFailsBadRequest(t *testing.T) {
	router, repo := newTestRouter(t, &recordingMailer{}, "")
	id, err := repo.Add(context.Background(), &domain.User{Username: "pghetiya"})
	require.NoError(t, err)

	resp := doJSON(t, router, http.MethodPatch, "/update_users/"+id, map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateTouchesOnlySuppliedField(t *testing.T) {
	router, repo := newTestRouter(t, &recordingMailer{}, "")
	id, err := repo.Add(context.Background(), &domain.User{
		Username:     "pghetiya",
		Email:        "pghetiya@example.com",
		PasswordHash: "hash",
		FirstName:    "Poojan",
		LastName:     "Ghetiya",
		ProjectID:    "proj-1",
	})
	require.NoError(t, err)

	resp := doJSON(t, router, http.MethodPatch, "/update_users/"+id, map[string]string{"first_name": "X"})
	require.Equal(t, http.StatusOK, resp.Code)

	out := decodeBody(t, resp)
	require.Equal(t, id, out["id"])
	updated, ok := out["updated_user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "X", updated["first_name"])
	require.Equal(t, "pghetiya", updated["username"])
	require.Equal(t, "Ghetiya", updated["last_name"])
	require.Equal(t, "hash", updated["password"])
}

func TestDeleteTwiceFailsNotFound(t *testing.T) {
	router, repo := newTestRouter(t, &recordingMailer{}, "")
	id, err := repo.Add(context.Background(), &domain.User{Username: "pghetiya"})
	require.NoError(t, err)

	resp := doJSON(t, router, http.MethodDelete, "/delete_users/"+id, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	out := decodeBody(t, resp)
	require.Contains(t, out["message"], id)

	resp = doJSON(t, router, http.MethodDelete, "/delete_users/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSendInvitationMissingAttachment(t *testing.T) {
	mailer := &recordingMailer{}
	router, _ := newTestRouter(t, mailer, "/nonexistent/shot.png")

	resp := doJSON(t, router, http.MethodPost, "/send_invitation", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Empty(t, mailer.sent)
}

func TestSendInvitationSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firestore_screenshot.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	mailer := &recordingMailer{}
	router, _ := newTestRouter(t, mailer, path)

	resp := doJSON(t, router, http.MethodPost, "/send_invitation", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	out := decodeBody(t, resp)
	require.Equal(t, "Invitation emails sent successfully", out["message"])
	require.Len(t, mailer.sent, 1)
}

func TestSendInvitationTransportFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firestore_screenshot.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	mailer := &recordingMailer{err: errors.New("smtp: connection refused")}
	router, _ := newTestRouter(t, mailer, path)

	resp := doJSON(t, router, http.MethodPost, "/send_invitation", nil)
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	out := decodeBody(t, resp)
	require.Contains(t, out["error"], "connection refused")
}

func TestStaticEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, &recordingMailer{}, "")

	for path, want := range map[string]string{
		"/":      "Firestore connected successfully",
		"/docs":  "Swagger is available at /docs",
		"/redoc": "ReDoc is available at /redoc",
	} {
		resp := doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.Code, path)
		out := decodeBody(t, resp)
		require.Equal(t, want, out["message"], path)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &recordingMailer{}, "")

	resp := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	out := decodeBody(t, resp)
	require.Equal(t, "ok", out["status"])
}
