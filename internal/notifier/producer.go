package notifier

import (
	"context"
	"fmt"

	kafka "github.com/segmentio/kafka-go"

	"eventboard/internal/config"
	"eventboard/internal/logger"
)

// Publisher streams domain notifications. Publication is best-effort: a
// broker failure is logged by the caller and never fails the request.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value []byte) error
	Close() error
}

type Producer struct {
	Writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, value []byte) error {
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}

// Noop is used when Kafka is disabled.
type Noop struct{}

func (Noop) Publish(context.Context, string, string, []byte) error { return nil }
func (Noop) Close() error                                          { return nil }

// Mock logs instead of producing, for local runs without a broker.
type Mock struct {
	Logger *logger.Logger
}

func (m Mock) Publish(_ context.Context, topic, key string, value []byte) error {
	m.Logger.Info("KAFKA", fmt.Sprintf("[MOCK] %s key=%s %s", topic, key, string(value)))
	return nil
}

func (Mock) Close() error { return nil }

// NewFromConfig picks the publisher implementation the configuration asks for.
func NewFromConfig(cfg config.KafkaConfig, log *logger.Logger) Publisher {
	switch {
	case !cfg.Enabled:
		return Noop{}
	case cfg.MockMode:
		return Mock{Logger: log}
	default:
		log.Info("KAFKA", fmt.Sprintf("Kafka producer initialized for brokers %v", cfg.Brokers))
		return NewProducer(cfg.Brokers)
	}
}
