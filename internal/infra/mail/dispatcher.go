package mail

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"contactbook/internal/domain/service"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// inlineDispatcher sends from a background goroutine of the API process.
type inlineDispatcher struct {
	mailer  service.Mailer
	timeout time.Duration
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func newInlineDispatcher(mailer service.Mailer, timeout time.Duration, logger *slog.Logger) *inlineDispatcher {
	return &inlineDispatcher{
		mailer:  mailer,
		timeout: timeout,
		logger:  logger,
	}
}

// DispatchVerification starts the send and returns immediately.
func (d *inlineDispatcher) DispatchVerification(ctx context.Context, mail service.VerificationMail) error {
	// The send outlives the request that triggered it.
	sendCtx := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(sendCtx, d.timeout)
		defer cancel()

		if err := d.mailer.SendVerification(ctx, mail); err != nil {
			d.logger.ErrorContext(ctx, "Failed to send verification mail",
				slog.String("to", mail.To),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close waits for in-flight sends.
func (d *inlineDispatcher) Close() error {
	d.wg.Wait()

	return nil
}

// taskEnqueuer is the part of *asynq.Client the queue dispatcher needs.
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// queueDispatcher hands verification mail to the mail worker through asynq.
type queueDispatcher struct {
	client   taskEnqueuer
	maxRetry int
	logger   *slog.Logger
}

func newQueueDispatcher(client taskEnqueuer, maxRetry int, logger *slog.Logger) *queueDispatcher {
	return &queueDispatcher{
		client:   client,
		maxRetry: maxRetry,
		logger:   logger,
	}
}

// DispatchVerification enqueues the mail; delivery happens in cmd/mailworker.
func (d *queueDispatcher) DispatchVerification(ctx context.Context, mail service.VerificationMail) error {
	task, err := NewVerificationTask(mail)
	if err != nil {
		return err
	}

	info, err := d.client.EnqueueContext(ctx, task, asynq.MaxRetry(d.maxRetry), asynq.Queue(QueueName))
	if err != nil {
		return errors.Wrap(err, "enqueue verification mail")
	}

	d.logger.DebugContext(ctx, "Verification mail enqueued",
		slog.String("taskID", info.ID),
		slog.String("to", mail.To),
	)

	return nil
}

func (d *queueDispatcher) Close() error {
	return errors.WithStack(d.client.Close())
}
