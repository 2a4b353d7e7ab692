package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicare-api/config"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Producer publishes domain events to a single Kafka topic.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no Kafka brokers configured")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logrus.Infof("Kafka producer created for topic %s", cfg.Topic)
	return &Producer{writer: writer}, nil
}

// Publish writes value as JSON keyed by key. Messages with the same key land
// on the same partition.
func (p *Producer) Publish(ctx context.Context, key string, value interface{}) error {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: valueBytes,
	})
	if err != nil {
		return fmt.Errorf("publish event to %s: %w", p.writer.Topic, err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
