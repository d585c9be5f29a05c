package service

import (
	"context"
	"errors"
)

// ErrMailRejected marks a send that the mail provider refused permanently.
// Senders wrap it so callers can stop retrying.
var ErrMailRejected = errors.New("mail rejected")

// MailMessage is one templated email.
type MailMessage struct {
	TemplateID     string
	To             string
	ToName         string
	TemplateParams map[string]string
}

// Mailer sends templated emails through an external provider.
type Mailer interface {
	// TemplateFor returns the provider template id for a notification kind.
	TemplateFor(kind string) (string, bool)

	Send(ctx context.Context, msg *MailMessage) error
}
