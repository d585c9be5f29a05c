package impl

import (
	"context"
	"log/slog"
	"maps"

	"tripbook/internal/domain/service"
	"tripbook/internal/usecase"

	"github.com/pkg/errors"
)

type mailDeliveryService struct {
	mailer service.Mailer
	logger *slog.Logger
}

// NewMailDeliveryService creates the worker side mail delivery use case.
func NewMailDeliveryService(mailer service.Mailer, logger *slog.Logger) usecase.MailDeliveryUsecase {
	return &mailDeliveryService{
		mailer: mailer,
		logger: logger,
	}
}

// Deliver resolves the template for the event kind and sends the email.
func (s *mailDeliveryService) Deliver(ctx context.Context, event *service.NotificationEvent) error {
	log := loggerFrom(ctx, s.logger).With(
		slog.String("task_id", event.TaskID),
		slog.String("kind", string(event.Kind)),
	)

	if event.Recipient == "" {
		return errors.Wrap(service.ErrMailRejected, "event has no recipient")
	}

	templateID, ok := s.mailer.TemplateFor(string(event.Kind))
	if !ok {
		return errors.Wrapf(service.ErrMailRejected, "no template configured for %s", event.Kind)
	}

	params := make(map[string]string, len(event.TemplateParams)+2)
	maps.Copy(params, event.TemplateParams)
	params["to_email"] = event.Recipient
	if event.RecipientName != "" {
		params["to_name"] = event.RecipientName
	}

	msg := &service.MailMessage{
		TemplateID:     templateID,
		To:             event.Recipient,
		ToName:         event.RecipientName,
		TemplateParams: params,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "send mail")
	}

	log.Info("Notification email sent", slog.String("template_id", templateID))

	return nil
}
