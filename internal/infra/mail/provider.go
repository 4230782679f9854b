package mail

import (
	"context"
	"log/slog"

	"contactbook/config"
	"contactbook/internal/domain/service"
	"contactbook/internal/util"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// QueueName is the asynq queue verification mail travels on.
const QueueName = "mail"

// RedisClientOpt converts the redis section into asynq connection options.
func RedisClientOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// MailerParams holds dependencies for the Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer creates a Mailer based on configuration
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail

	// If SMTP is not configured, fall back to logging the link
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("SMTP not configured, using log mailer")

		baseURL := ""
		if cfg != nil {
			baseURL = cfg.BaseURL
		}

		return &logMailer{baseURL: baseURL, logger: params.Logger}, nil
	}

	params.Logger.Info("Using SMTP mailer",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
	)

	return NewSMTPMailer(cfg, params.Logger)
}

// DispatcherParams holds dependencies for the MailDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Mailer service.Mailer
}

// NewMailDispatcher creates a MailDispatcher based on configuration
func NewMailDispatcher(params DispatcherParams) (service.MailDispatcher, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	var dispatcher service.MailDispatcher

	switch cfg.Dispatcher {
	case config.MailDispatcherInline:
		logger.Info("Using inline mail dispatcher", slog.String("sendTimeout", util.FormatDuration(cfg.SendTimeout)))

		dispatcher = newInlineDispatcher(params.Mailer, cfg.SendTimeout, logger)

	case config.MailDispatcherQueue:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis address is required for the queue mail dispatcher")
		}
		logger.Info("Using queued mail dispatcher", slog.String("redis", params.Config.Redis.Addr))

		client := asynq.NewClient(RedisClientOpt(params.Config.Redis))
		dispatcher = newQueueDispatcher(client, cfg.MaxRetry, logger)

	default:
		return nil, errors.Errorf("unknown mail dispatcher: %s", cfg.Dispatcher)
	}

	// Register lifecycle hook to close dispatcher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MailDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer, NewMailDispatcher),
)
