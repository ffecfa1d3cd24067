package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/config"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/export"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes PDF render requests for the external rendering backend.
// It implements export.PDFRequester.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured PDF request topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.PDFRequestTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
		WriteTimeout: cfg.KafkaWriteTimeout,
	}
	return &Writer{writer: w, logger: logger}
}

// RequestPDF serializes the request and publishes it keyed by request id.
func (w *Writer) RequestPDF(ctx context.Context, req export.PDFRequest) error {
	msg, err := serializeToMessage(req)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish pdf request: %w", err)
	}
	w.logger.Debug("pdf request written", "topic", w.writer.Topic, "request_id", req.RequestID)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a PDFRequest into a Kafka message.
func serializeToMessage(req export.PDFRequest) (kafkago.Message, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize pdf request: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(req.RequestID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "content_type", Value: []byte("application/pdf")},
			{Key: "report_count", Value: []byte(strconv.Itoa(len(req.ReportIDs)))},
			{Key: "requested_at", Value: []byte(req.RequestedAt.Format(time.RFC3339))},
		},
	}, nil
}
