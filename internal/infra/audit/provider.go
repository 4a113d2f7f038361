// Package audit provides the audit-log sinks behind the AuditPublisher
// interface: a postgres table for production, Google Pub/Sub for streaming
// deployments, a local HTTP endpoint for development and a no-op fallback.
package audit

import (
	"context"
	"log/slog"

	"reliefmap/config"
	"reliefmap/internal/domain/constants"
	"reliefmap/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// noopPublisher is a no-op implementation when the audit sink is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	p.logger.Debug("[NoopAudit] Audit sink disabled, skipping",
		slog.String("action", string(event.Action)),
		slog.String("record_id", event.RecordID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for AuditPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewAuditPublisher creates an AuditPublisher based on configuration
func NewAuditPublisher(params PublisherParams) (service.AuditPublisher, error) {
	cfg := params.Config.Audit
	logger := params.Logger

	// If the sink is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.AuditProviderNoop {
		logger.Info("Audit sink not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.AuditPublisher
	var err error

	switch cfg.Provider {
	case constants.AuditProviderPostgres:
		logger.Info("Using postgres audit sink")

		publisher = NewPostgresSink(params.DB, logger)

	case constants.AuditProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for audit events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.AuditProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub audit publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown audit provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing AuditPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the audit FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAuditPublisher),
)
