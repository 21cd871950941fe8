package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier publishes notifications as JSON messages keyed by recipient.
type Notifier struct {
	writer messageWriter
	log    *slog.Logger
}

// NewNotifier creates a Notifier writing to cfg.Topic on cfg.Brokers.
func NewNotifier(cfg config.KafkaConfig, logger *slog.Logger) *Notifier {
	return newNotifier(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}, logger)
}

func newNotifier(w messageWriter, logger *slog.Logger) *Notifier {
	return &Notifier{writer: w, log: logger.With("adapter", "kafka_notifier")}
}

// Notify publishes msg. Errors are wrapped as upstream failures.
func (n *Notifier) Notify(ctx context.Context, msg domain.Notification) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("kafka.Notify marshal: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Recipient),
		Value: data,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(msg.Kind)},
		},
	})
	if err != nil {
		return &domain.UpstreamError{Service: "kafka", Err: err}
	}

	n.log.DebugContext(ctx, "notification published",
		slog.String("kind", msg.Kind),
		slog.String("recipient", msg.Recipient))
	return nil
}

// Close flushes and closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
