package worker

import (
	"context"
	"log/slog"

	"contactbook/config"
	"contactbook/internal/delivery"
	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/delivery/worker/handler"
	"contactbook/internal/errors"
	"contactbook/internal/infra/mail"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *asynq.Server
	mux    *asynq.ServeMux
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	MailHandler *handler.MailHandler
}

// NewServer creates the asynq server that drains the mail queue
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Redis == nil || params.Cfg.Redis.Addr == "" {
		return nil, errors.New("redis address is required for the mail worker")
	}

	concurrency := 0
	if params.Cfg.Worker != nil {
		concurrency = params.Cfg.Worker.Concurrency
	}

	server := asynq.NewServer(
		mail.RedisClientOpt(params.Cfg.Redis),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				mail.QueueName: 1,
			},
			Logger:   newAsynqLogger(params.Logger),
			LogLevel: asynq.InfoLevel,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				params.Logger.Warn("[Worker] Task failed",
					slog.String("type", task.Type()),
					slog.Int("retried", retried),
					slog.Int("max_retry", maxRetry),
					slog.Any("error", err),
				)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.Use(taskLogger(params.Logger))
	params.MailHandler.RegisterHandlers(mux)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: server,
		mux:    mux,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts processing tasks; it returns once the server is running.
func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting mail worker",
		slog.String("redis", s.cfg.Redis.Addr),
		slog.String("queue", mail.QueueName),
	)

	return errors.WithStack(s.server.Start(s.mux))
}

// stop drains in-flight tasks and shuts the worker down
func (s *workerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down mail worker")
	s.server.Shutdown()

	return nil
}

// taskLogger gives every task a logger tagged with its id, the same way HTTP
// requests get one tagged with their request id.
func taskLogger(logger *slog.Logger) asynq.MiddlewareFunc {
	return func(next asynq.Handler) asynq.Handler {
		return asynq.HandlerFunc(func(ctx context.Context, task *asynq.Task) error {
			taskID, ok := asynq.GetTaskID(ctx)
			if !ok {
				taskID = uuid.NewString()
			}

			taskLogger := logger.With(slog.String("task_id", taskID), slog.String("type", task.Type()))
			ctx = deliverycontext.WithRequestID(ctx, taskID)
			ctx = deliverycontext.WithLogger(ctx, taskLogger)

			return next.ProcessTask(ctx, task)
		})
	}
}
