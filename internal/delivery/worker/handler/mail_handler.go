package handler

import (
	"context"
	"log/slog"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/repository"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
	"contactbook/internal/infra/mail"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

// MailHandlerParams holds dependencies for the MailHandler
type MailHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	Mailer   service.Mailer
	UserRepo repository.UserRepository
}

// MailHandler consumes queued verification mail.
type MailHandler struct {
	logger   *slog.Logger
	mailer   service.Mailer
	userRepo repository.UserRepository
}

// NewMailHandler creates a new mail task handler
func NewMailHandler(params MailHandlerParams) *MailHandler {
	return &MailHandler{
		logger:   params.Logger,
		mailer:   params.Mailer,
		userRepo: params.UserRepo,
	}
}

// RegisterHandlers binds every mail task type on mux.
func (h *MailHandler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(mail.TypeVerification, h.HandleVerification)
}

// HandleVerification sends one verification message. Tasks that can never succeed
// (bad payload, unknown recipient) and tasks made stale by a verification that
// already happened are dropped without retry; SMTP failures are retried by asynq.
func (h *MailHandler) HandleVerification(ctx context.Context, task *asynq.Task) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	payload, err := mail.ParseVerificationTask(task)
	if err != nil {
		logger.Warn("[Worker] Dropping malformed verification task", slog.Any("error", err))

		return errors.Wrap(asynq.SkipRetry, err.Error())
	}

	logger = logger.With(slog.String("to", payload.To))

	user, err := h.userRepo.FindByEmail(ctx, payload.To)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("[Worker] Dropping verification mail for unknown user")

			return errors.Wrap(asynq.SkipRetry, "recipient no longer exists")
		}

		return errors.Wrap(err, "failed to load recipient")
	}

	if user.Verified || user.PendingVerificationToken() != payload.VerificationToken {
		logger.Info("[Worker] Skipping stale verification mail", slog.Bool("verified", user.Verified))

		return nil
	}

	if err := h.mailer.SendVerification(ctx, payload); err != nil {
		logger.Error("[Worker] Failed to send verification mail", slog.Any("error", err))

		return errors.Wrap(err, "failed to send verification mail")
	}

	logger.Info("[Worker] Verification mail sent")

	return nil
}
