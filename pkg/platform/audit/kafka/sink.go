// Package kafka publishes audit events to a Kafka topic. Each record is keyed
// by a fresh event id and carries the JSON-encoded event as its value.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "holocron/pkg/platform/audit"
)

const headerCategory = "category"

// Producer is the subset of *kgo.Client the sink needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Sink implements audit.Sink over a Kafka producer.
type Sink struct {
	producer Producer
	topic    string
	client   *kgo.Client
}

// payload is the wire shape of an audit record.
type payload struct {
	Timestamp   time.Time `json:"timestamp"`
	Category    string    `json:"category"`
	Action      string    `json:"action"`
	UserID      int64     `json:"user_id,omitempty"`
	SubjectType string    `json:"subject_type,omitempty"`
	SubjectID   int64     `json:"subject_id,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
	ClientIP    string    `json:"client_ip,omitempty"`
	Client      string    `json:"client,omitempty"`
}

// NewSink wraps an existing producer. Used by tests and by Dial.
func NewSink(producer Producer, topic string) *Sink {
	return &Sink{producer: producer, topic: topic}
}

// Dial connects to the brokers and makes sure the audit topic exists.
func Dial(ctx context.Context, brokers []string, topic string) (*Sink, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerLinger(50*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka: create client: %w", err)
	}
	if err := EnsureTopic(ctx, client, topic); err != nil {
		client.Close()
		return nil, err
	}
	s := NewSink(client, topic)
	s.client = client
	return s, nil
}

// EnsureTopic creates topic with one partition if it is missing.
func EnsureTopic(ctx context.Context, client *kgo.Client, topic string) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, 1, 1, nil, topic)
	if err != nil {
		return fmt.Errorf("kafka: create topic %s: %w", topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("kafka: create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

func (s *Sink) Append(ctx context.Context, event audit.Event) error {
	value, err := json.Marshal(payload{
		Timestamp:   event.Timestamp.UTC(),
		Category:    string(event.Category),
		Action:      event.Action,
		UserID:      int64(event.UserID),
		SubjectType: event.SubjectType,
		SubjectID:   event.SubjectID,
		RequestID:   event.RequestID,
		ClientIP:    event.ClientIP,
		Client:      event.Client,
	})
	if err != nil {
		return fmt.Errorf("kafka: encode event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(uuid.NewString()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: headerCategory, Value: []byte(event.Category)},
		},
	}
	if err := s.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("kafka: produce %s: %w", event.Action, err)
	}
	return nil
}

// Close flushes and closes the underlying client when the sink owns it.
func (s *Sink) Close() {
	if s.client != nil {
		s.client.Close()
	}
}
