package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/segmentio/kafka-go"
)

// Publisher streams order events to Kafka. Publishing is best-effort: the
// order ledger never blocks on or reads back from the stream.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) PublishOrder(event domain.OrderEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
