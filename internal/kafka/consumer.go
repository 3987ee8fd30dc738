package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"oms-client/internal/cache"
	"oms-client/internal/config"
)

// changeEvent is the payload the backend publishes whenever a record of some
// kind is created, updated or deleted.
type changeEvent struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
	Op   string `json:"op,omitempty"`
}

type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Consumer listens for entity-change events and drops the matching cache
// snapshot, so a long-running client converges without waiting out the TTL.
type Consumer struct {
	reader  Reader
	store   *cache.Store
	zlogger *zap.Logger
}

func NewReader(cfg config.Kafka) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.Group,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

func NewConsumer(reader Reader, store *cache.Store, logger *zap.Logger) *Consumer {
	return &Consumer{
		reader:  reader,
		store:   store,
		zlogger: logger,
	}
}

func (c *Consumer) Run(ctx context.Context) {
	c.zlogger.Info("starting invalidation consumer")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				c.zlogger.Debug("fetch timeout (idle), backing off", zap.Error(err))
				sleepWithContext(ctx, 10*time.Second)
				continue
			}

			// Frequent temporary errors during rebalancing/coordinator = just wait and continue
			c.zlogger.Warn("FetchMessage error, backing off", zap.Error(err))
			sleepWithContext(ctx, 500*time.Millisecond)
			continue
		}

		c.handle(msg)

		// Committed even when the payload was unusable: a poison message
		// must not wedge the consumer.
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.zlogger.Warn("commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, 200*time.Millisecond)
		}
	}
}

func (c *Consumer) handle(msg kafkago.Message) {
	var ev changeEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		c.zlogger.Error("bad event json",
			zap.Error(err),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		)
		return
	}

	switch kind := cache.Kind(ev.Kind); kind {
	case cache.KindOrders, cache.KindProducts, cache.KindSales:
		c.store.Invalidate(kind)
		c.zlogger.Info("cache invalidated by event",
			zap.String("kind", ev.Kind),
			zap.String("op", ev.Op),
			zap.String("id", ev.ID),
			zap.Int64("offset", msg.Offset),
		)
	default:
		c.zlogger.Warn("unknown event kind",
			zap.String("kind", ev.Kind),
			zap.Int64("offset", msg.Offset),
		)
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
