package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hwright/contactform/internal/pubsub"
)

// Topic is the queue topic notification jobs are published on.
const Topic = "contact.email.send"

// SendRequest is one notification job: a single recipient, subject and body.
// It is a transient value; it is never persisted.
type SendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Queue is the fire-and-forget job submission contract. Submit returns as
// soon as the job is accepted; the caller receives a job ID for log
// correlation and nothing else. Delivery outcome is never reported back.
type Queue interface {
	Submit(ctx context.Context, req SendRequest) (jobID string, err error)
}

// PubSubQueue implements Queue by publishing jobs onto the pub/sub bridge.
type PubSubQueue struct {
	publisher pubsub.Publisher
}

// NewQueue creates a Queue backed by the given publisher.
func NewQueue(publisher pubsub.Publisher) *PubSubQueue {
	return &PubSubQueue{publisher: publisher}
}

var _ Queue = (*PubSubQueue)(nil)

// Submit encodes the job and publishes it on the dispatch topic.
func (q *PubSubQueue) Submit(ctx context.Context, req SendRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode send request: %w", err)
	}

	jobID := uuid.NewString()
	msg := pubsub.Message{
		Topic:   Topic,
		Payload: payload,
		Metadata: map[string]string{
			"job_id":      jobID,
			"enqueued_at": time.Now().UTC().Format(time.RFC3339Nano),
		},
	}

	if err := q.publisher.Publish(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to enqueue send request: %w", err)
	}
	return jobID, nil
}
