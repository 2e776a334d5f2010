package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"vyaparkendra/contexts/marketplace-core/request-lifecycle/application"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/ports"
)

const (
	relayBatchSize = 50
	relayTopic     = "marketplace.requests"
)

// OutboxRelay drains pending completion events from the outbox to the
// event bus. Publish-then-mark ordering means delivery is at-least-once.
type OutboxRelay struct {
	Outbox       ports.OutboxRepository
	Publisher    ports.EventPublisher
	Clock        ports.Clock
	PollInterval time.Duration
	Logger       *slog.Logger
}

func (r *OutboxRelay) Run(ctx context.Context) {
	interval := r.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := application.ResolveLogger(r.Logger)
	logger.Info("outbox relay started",
		"event", "outbox_relay_started",
		"module", "marketplace-core/request-lifecycle",
		"layer", "worker",
		"poll_interval", interval.String(),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("outbox relay stopped",
				"event", "outbox_relay_stopped",
				"module", "marketplace-core/request-lifecycle",
				"layer", "worker",
			)
			return
		case <-ticker.C:
			r.drainOnce(ctx, logger)
		}
	}
}

func (r *OutboxRelay) drainOnce(ctx context.Context, logger *slog.Logger) {
	pending, err := r.Outbox.ListPendingOutbox(ctx, relayBatchSize)
	if err != nil {
		logger.Error("outbox poll failed",
			"event", "outbox_poll_failed",
			"module", "marketplace-core/request-lifecycle",
			"layer", "worker",
			"error", err.Error(),
		)
		return
	}

	for _, message := range pending {
		var envelope ports.EventEnvelope
		if err := json.Unmarshal(message.Payload, &envelope); err != nil {
			logger.Error("outbox payload malformed",
				"event", "outbox_payload_malformed",
				"module", "marketplace-core/request-lifecycle",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"error", err.Error(),
			)
			continue
		}

		if err := r.Publisher.Publish(ctx, relayTopic, envelope); err != nil {
			logger.Error("outbox publish failed",
				"event", "outbox_publish_failed",
				"module", "marketplace-core/request-lifecycle",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"error", err.Error(),
			)
			continue
		}

		if err := r.Outbox.MarkOutboxPublished(ctx, message.OutboxID, r.Clock.Now().UTC()); err != nil {
			logger.Error("outbox mark failed",
				"event", "outbox_mark_failed",
				"module", "marketplace-core/request-lifecycle",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"error", err.Error(),
			)
		}
	}
}
