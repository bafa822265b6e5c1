package invitation

import (
	"context"
	"fmt"
	"os"

	"github.com/poojan019/user-management/internal/application/ports"
	domerrors "github.com/poojan019/user-management/internal/domain/errors"
)

const subject = "API Documentation Invitation"

const bodyTemplate = `<html>
  <head>
  <style>
  body { font-family: sans-serif; }
  .container { text-align: center; }
  button {
    background-color: #4CAF50;
    border: none;
    color: white;
    padding: 15px 32px;
    text-align: center;
    text-decoration: none;
    display: inline-block;
    font-size: 16px;
    margin: 4px 2px;
    cursor: pointer;
  }
  .blue-background { background-color: lightblue; padding: 10px; }
  </style>
  </head>
  <body>
  <div class="container">
  <h1>API Documentation Invitation</h1>
  <p>Hello,</p>
  <p>I am excited to invite you to view our User Management API documentation on ReDoc. You can access the documentation by clicking the button below:</p>
  <a href="%s"><button>View API Documentation</button></a>
  <p>We appreciate your time and look forward to your feedback.</p>
  <div class="blue-background container">
    <p>Thank you,</p>
    <p>The User Management Team</p>
    <p>If you have any questions, feel free to reply to this email.</p>
  </div>
  </div>
  </body>
</html>`

type SendInvitation struct {
	mailer         ports.MailSender
	recipients     []string
	attachmentPath string
	docsURL        string
}

func NewSendInvitation(mailer ports.MailSender, recipients []string, attachmentPath, docsURL string) *SendInvitation {
	return &SendInvitation{
		mailer:         mailer,
		recipients:     recipients,
		attachmentPath: attachmentPath,
		docsURL:        docsURL,
	}
}

// Execute sends one fixed HTML email with the configured attachment to
// all recipients in a single SMTP transaction. The attachment is checked
// on disk before any network I/O.
func (uc *SendInvitation) Execute(ctx context.Context) error {
	if _, err := os.Stat(uc.attachmentPath); err != nil {
		return domerrors.ErrAttachmentNotFound
	}
	return uc.mailer.Send(ctx, ports.Message{
		Subject:        subject,
		HTMLBody:       fmt.Sprintf(bodyTemplate, uc.docsURL),
		Recipients:     uc.recipients,
		AttachmentPath: uc.attachmentPath,
	})
}
