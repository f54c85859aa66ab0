package pubsub

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"wordtrainer/config"
	"wordtrainer/internal/domain/constants"
	"wordtrainer/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPracticeEvent(_ context.Context, event *service.PracticeEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.Int64("session_id", event.SessionID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the practice event publisher for pubsub.provider and closes it
// on shutdown. An empty provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing practice event publisher")

		return publisher.Close()
	}))

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// validateConfig reports every missing setting of the chosen provider at once.
func validateConfig(cfg *config.PubSubConfig) error {
	if cfg == nil {
		return nil
	}

	var missing []string
	switch cfg.Provider {
	case "":
		return nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			missing = append(missing, "localEndpoint")
		} else if u, err := url.ParseRequestURI(cfg.LocalEndpoint); err != nil || u.Host == "" {
			return errors.Errorf("pubsub localEndpoint %q is not an absolute URL", cfg.LocalEndpoint)
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			missing = append(missing, "projectId")
		}
		if cfg.TopicID == "" {
			missing = append(missing, "topicId")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	if len(missing) > 0 {
		return errors.Errorf("pubsub provider %q requires %s", cfg.Provider, strings.Join(missing, ", "))
	}

	return nil
}
