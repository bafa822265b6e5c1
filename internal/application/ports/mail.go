package ports

import "context"

// Message is one outbound email: HTML body, optional file attachment.
type Message struct {
	Subject        string
	HTMLBody       string
	Recipients     []string
	AttachmentPath string
}

// MailSender delivers a message in a single SMTP transaction. No retry,
// no queuing; transport failures surface synchronously.
type MailSender interface {
	Send(ctx context.Context, msg Message) error
}
