package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleChangeStream implements ChangeStream over Google Cloud Pub/Sub with
// one subscription per watched table.
type googleChangeStream struct {
	client             *pubsub.Client
	subscriptionPrefix string
	logger             *slog.Logger

	mu      sync.Mutex
	cancels []context.CancelFunc
}

// changeMessage is the wire payload published by the store-side trigger.
type changeMessage struct {
	Table     string `json:"table"`
	Operation string `json:"operation"`
}

// NewGoogleChangeStream creates a Pub/Sub backed change stream.
func NewGoogleChangeStream(ctx context.Context, projectID, subscriptionPrefix string, logger *slog.Logger) (service.ChangeStream, func() error, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	stream := &googleChangeStream{
		client:             client,
		subscriptionPrefix: subscriptionPrefix,
		logger:             logger,
	}

	logger.Info("Google Pub/Sub change stream initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_prefix", subscriptionPrefix),
	)

	return stream, stream.close, nil
}

// Subscribe opens the Pub/Sub subscription for one table and pumps its
// messages into the handler until the handle is released.
func (s *googleChangeStream) Subscribe(ctx context.Context, table string, handler service.ChangeHandler) (service.Subscription, error) {
	subID := s.subscriptionPrefix + table

	// Verify the subscription exists before handing out a handle, so a
	// misconfigured table surfaces at establishment rather than silently
	// never delivering.
	subPath := fmt.Sprintf("projects/%s/subscriptions/%s", s.client.Project(), subID)
	_, err := s.client.SubscriptionAdminClient.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{
		Subscription: subPath,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get subscription %s", subID)
	}

	receiveCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancels = append(s.cancels, cancel)
	s.mu.Unlock()

	subscriber := s.client.Subscriber(subID)

	go func() {
		err := subscriber.Receive(receiveCtx, func(_ context.Context, msg *pubsub.Message) {
			var cm changeMessage
			if err := json.Unmarshal(msg.Data, &cm); err != nil {
				s.logger.Warn("Dropping malformed change message",
					slog.String("table", table),
					slog.Any("error", err),
				)
				msg.Ack()

				return
			}

			handler(entity.ChangeEvent{
				Table:     cm.Table,
				Operation: entity.ChangeOperation(cm.Operation),
			})
			msg.Ack()
		})
		if err != nil && receiveCtx.Err() == nil {
			s.logger.Error("Change stream receive loop stopped",
				slog.String("table", table),
				slog.Any("error", err),
			)
		}
	}()

	return newStreamSubscription(cancel), nil
}

// close stops every receive loop and releases the Pub/Sub client.
func (s *googleChangeStream) close() error {
	s.mu.Lock()
	cancels := s.cancels
	s.cancels = nil
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}

	return s.client.Close()
}
