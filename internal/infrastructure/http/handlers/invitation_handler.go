package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/poojan019/user-management/internal/application/invitation"
	domerrors "github.com/poojan019/user-management/internal/domain/errors"
	"github.com/poojan019/user-management/internal/infrastructure/http/middleware"
)

// InvitationHandler handles POST /send_invitation.
type InvitationHandler struct {
	send *invitation.SendInvitation
	log  zerolog.Logger
}

func NewInvitationHandler(send *invitation.SendInvitation, log zerolog.Logger) *InvitationHandler {
	return &InvitationHandler{send: send, log: log}
}

// Send emails the documentation invitation to the configured recipients.
// A missing attachment fails 400 before any SMTP I/O; transport failures
// surface as 500 with the underlying error text.
func (h *InvitationHandler) Send(w http.ResponseWriter, r *http.Request) {
	err := h.send.Execute(r.Context())
	switch {
	case err == domerrors.ErrAttachmentNotFound:
		middleware.RecordInvitation(false)
		writeErr(w, http.StatusBadRequest, "Attachment file not found")
		return
	case err != nil:
		middleware.RecordInvitation(false)
		h.log.Error().Err(err).Msg("send invitation")
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	middleware.RecordInvitation(true)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Invitation emails sent successfully"})
}
