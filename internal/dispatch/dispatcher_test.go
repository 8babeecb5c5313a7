package dispatch_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwright/contactform/internal/dispatch"
	"github.com/hwright/contactform/internal/domain"
	"github.com/hwright/contactform/internal/pubsub"
)

// fakeSender records Send calls and returns scripted errors per attempt.
type fakeSender struct {
	mu    sync.Mutex
	calls []sendCall
	errs  []error // errs[i] is returned for call i; past the end, nil
	done  chan struct{}
}

type sendCall struct {
	to, subject, body string
}

func newFakeSender(errs ...error) *fakeSender {
	return &fakeSender{errs: errs, done: make(chan struct{}, 16)}
}

func (f *fakeSender) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.calls)
	f.calls = append(f.calls, sendCall{to: to, subject: subject, body: body})
	f.done <- struct{}{}
	if i < len(f.errs) {
		return f.errs[i]
	}
	return nil
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// recordingHandler captures slog records so tests can assert on emitted entries.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) countByLevel(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

func (h *recordingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.records))
	for _, r := range h.records {
		out = append(out, r.Message)
	}
	return out
}

func TestDeliver_Success(t *testing.T) {
	sender := newFakeSender()
	logs := &recordingHandler{}
	d := dispatch.NewDispatcher(sender, "noreply@example.com", slog.New(logs), dispatch.Options{})

	outcome := d.Deliver(context.Background(), dispatch.SendRequest{
		To:      "ops@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})

	assert.Equal(t, dispatch.Sent, outcome)
	assert.Equal(t, 1, sender.callCount())
	// The attempt itself is logged before the transport is invoked.
	assert.Equal(t, 1, logs.countByLevel(slog.LevelInfo))
	assert.Equal(t, 0, logs.countByLevel(slog.LevelError))

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "ops@example.com", sender.calls[0].to)
	assert.Equal(t, "Hi", sender.calls[0].subject)
	assert.Equal(t, "Hello", sender.calls[0].body)
}

func TestDeliver_BadHeaderIsTerminal(t *testing.T) {
	sender := newFakeSender(domain.ErrBadHeader)
	logs := &recordingHandler{}
	d := dispatch.NewDispatcher(sender, "noreply@example.com", slog.New(logs), dispatch.Options{})

	outcome := d.Deliver(context.Background(), dispatch.SendRequest{
		To:      "ops@example.com\r\nBcc: attacker@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})

	assert.Equal(t, dispatch.DroppedBadHeader, outcome)
	// No retry: a rejected header can never become valid.
	assert.Equal(t, 1, sender.callCount())
	// One attempt log plus exactly one informational drop entry, no errors.
	assert.Equal(t, 2, logs.countByLevel(slog.LevelInfo))
	assert.Equal(t, 0, logs.countByLevel(slog.LevelError))
	assert.Contains(t, logs.messages(), "dropping notification email with invalid header")
}

func TestDeliver_GenericFailureIsSwallowedByDefault(t *testing.T) {
	sender := newFakeSender(errors.New("connection refused"))
	logs := &recordingHandler{}
	d := dispatch.NewDispatcher(sender, "noreply@example.com", slog.New(logs), dispatch.Options{})

	outcome := d.Deliver(context.Background(), dispatch.SendRequest{
		To:      "ops@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})

	assert.Equal(t, dispatch.Failed, outcome)
	// The attempt ceiling is configured at 3 but the log-only branch stops
	// after the first attempt.
	assert.Equal(t, 1, sender.callCount())
	assert.Equal(t, 1, logs.countByLevel(slog.LevelError))
}

func TestDeliver_EscalatedFailureConsumesAttemptBudget(t *testing.T) {
	sender := newFakeSender(
		errors.New("connection refused"),
		errors.New("connection refused"),
		errors.New("connection refused"),
		errors.New("connection refused"),
	)
	logs := &recordingHandler{}
	d := dispatch.NewDispatcher(sender, "noreply@example.com", slog.New(logs), dispatch.Options{
		EscalateFailures: true,
	})

	outcome := d.Deliver(context.Background(), dispatch.SendRequest{
		To:      "ops@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})

	assert.Equal(t, dispatch.Failed, outcome)
	assert.Equal(t, dispatch.DefaultMaxAttempts, sender.callCount())
	assert.Equal(t, dispatch.DefaultMaxAttempts, logs.countByLevel(slog.LevelError))
}

func TestDeliver_EscalatedFailureRecoversOnRetry(t *testing.T) {
	sender := newFakeSender(errors.New("temporary failure"))
	logs := &recordingHandler{}
	d := dispatch.NewDispatcher(sender, "noreply@example.com", slog.New(logs), dispatch.Options{
		EscalateFailures: true,
	})

	outcome := d.Deliver(context.Background(), dispatch.SendRequest{
		To:      "ops@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})

	assert.Equal(t, dispatch.Sent, outcome)
	assert.Equal(t, 2, sender.callCount())
	assert.Equal(t, 1, logs.countByLevel(slog.LevelError))
}

func TestDeliver_BadHeaderStopsEscalation(t *testing.T) {
	sender := newFakeSender(errors.New("temporary failure"), domain.ErrBadHeader)
	logs := &recordingHandler{}
	d := dispatch.NewDispatcher(sender, "noreply@example.com", slog.New(logs), dispatch.Options{
		EscalateFailures: true,
	})

	outcome := d.Deliver(context.Background(), dispatch.SendRequest{
		To:      "ops@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})

	assert.Equal(t, dispatch.DroppedBadHeader, outcome)
	assert.Equal(t, 2, sender.callCount())
}

// TestDispatcher_ConsumesQueuedJobs exercises the full path: submit a job on
// the queue, and assert the worker drives the transport in the background.
func TestDispatcher_ConsumesQueuedJobs(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	sender := newFakeSender()
	logs := &recordingHandler{}
	d := dispatch.NewDispatcher(sender, "noreply@example.com", slog.New(logs), dispatch.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, d.Start(ctx, bridge))

	queue := dispatch.NewQueue(bridge)
	jobID, err := queue.Submit(ctx, dispatch.SendRequest{
		To:      "ops@example.com",
		Subject: "Hi",
		Body:    "Hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, jobID)

	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not process the queued job in time")
	}

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "ops@example.com", sender.calls[0].to)
}
