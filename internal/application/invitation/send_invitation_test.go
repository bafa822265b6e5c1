package invitation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poojan019/user-management/internal/application/ports"
	domerrors "github.com/poojan019/user-management/internal/domain/errors"
)

type recordingMailer struct {
	sent []ports.Message
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg ports.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func writeAttachment(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "firestore_screenshot.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))
	return path
}

func TestMissingAttachmentFailsBeforeSending(t *testing.T) {
	mailer := &recordingMailer{}
	uc := NewSendInvitation(mailer, []string{"a@example.com"}, "/nonexistent/shot.png", "http://127.0.0.1:8080/redoc")

	err := uc.Execute(context.Background())
	require.ErrorIs(t, err, domerrors.ErrAttachmentNotFound)
	require.Empty(t, mailer.sent)
}

func TestSendDeliversOneMessageToAllRecipients(t *testing.T) {
	path := writeAttachment(t)
	mailer := &recordingMailer{}
	recipients := []string{"a@example.com", "b@example.com"}
	uc := NewSendInvitation(mailer, recipients, path, "http://docs.example.com/redoc")

	require.NoError(t, uc.Execute(context.Background()))
	require.Len(t, mailer.sent, 1)

	msg := mailer.sent[0]
	require.Equal(t, recipients, msg.Recipients)
	require.Equal(t, "API Documentation Invitation", msg.Subject)
	require.Equal(t, path, msg.AttachmentPath)
	require.True(t, strings.Contains(msg.HTMLBody, "http://docs.example.com/redoc"))
}

func TestTransportFailurePropagates(t *testing.T) {
	path := writeAttachment(t)
	sendErr := errors.New("smtp: connection refused")
	mailer := &recordingMailer{err: sendErr}
	uc := NewSendInvitation(mailer, []string{"a@example.com"}, path, "http://127.0.0.1:8080/redoc")

	require.ErrorIs(t, uc.Execute(context.Background()), sendErr)
}
