// Package kafka publishes flattened measurements to a feed topic for
// downstream consumers. The feed is egress only; the pipeline never reads
// from Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/pfas-dashboard/internal/config"
	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

// Writer produces measurement messages to the feed topic.
// It implements pipeline.Loader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured feed topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaFeedTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Writer{writer: w, logger: logger}
}

// Load serializes and publishes every measurement in a single WriteMessages
// call. A publish failure fails the run; the feed must not be partial.
func (w *Writer) Load(ctx context.Context, run domain.RunInfo, rows []domain.Measurement) error {
	if len(rows) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(rows))
	for i := range rows {
		msg, err := serializeToMessage(run, rows[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish feed: %w", err)
	}
	w.logger.Info("feed published", "messages", len(msgs), "run_id", run.ID)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a measurement into a feed message. Messages are
// keyed by study so one study's measurements land on one partition in order.
func serializeToMessage(run domain.RunInfo, m domain.Measurement) (kafkago.Message, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize measurement: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(m.StudyID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "pfa_type", Value: []byte(m.PFAType)},
			{Key: "run_id", Value: []byte(run.ID)},
			{Key: "loaded_at", Value: []byte(run.LoadedAt.Format(time.RFC3339))},
		},
	}, nil
}
