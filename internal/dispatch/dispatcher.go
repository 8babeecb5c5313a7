package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hwright/contactform/internal/domain"
	"github.com/hwright/contactform/internal/pubsub"
)

// DefaultMaxAttempts is the delivery attempt ceiling per job.
const DefaultMaxAttempts = 3

// Outcome is the terminal state of one job.
type Outcome int

const (
	// Sent means the transport accepted the message.
	Sent Outcome = iota
	// DroppedBadHeader means the transport rejected the message structure.
	// The job is dropped; retrying cannot repair an injected header.
	DroppedBadHeader
	// Failed means the transport reported a generic failure and the attempt
	// budget is exhausted or escalation is disabled.
	Failed
)

// Options configures a Dispatcher.
type Options struct {
	// MaxAttempts caps delivery attempts per job. Zero means DefaultMaxAttempts.
	MaxAttempts int

	// EscalateFailures controls whether a generic transport failure consumes
	// the attempt budget. When false (the default), a generic failure is
	// logged and the job stops after its first attempt, so the attempt
	// ceiling never takes effect on that path. The original behavior of this
	// feature logged and swallowed generic failures; flip this on to make
	// the retry budget live.
	EscalateFailures bool
}

// Dispatcher consumes notification jobs from the queue topic and drives the
// mail transport. It is the sole caller of the transport. Callers never
// observe delivery outcomes; all failure visibility is log-based.
type Dispatcher struct {
	sender      domain.EmailSender
	from        string
	logger      *slog.Logger
	maxAttempts int
	escalate    bool
}

// NewDispatcher creates a Dispatcher sending via the given transport, with
// the configured default sender address. logger may be nil, in which case
// the process default is used.
func NewDispatcher(sender domain.EmailSender, from string, logger *slog.Logger, opts Options) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Dispatcher{
		sender:      sender,
		from:        from,
		logger:      logger,
		maxAttempts: maxAttempts,
		escalate:    opts.EscalateFailures,
	}
}

// Start subscribes the dispatcher to the queue topic. Jobs are processed on
// background goroutines owned by the subscriber; Start itself does not block.
func (d *Dispatcher) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return sub.Subscribe(ctx, Topic, d.handle)
}

// handle decodes one queued job and delivers it. It always returns nil for
// delivery failures: the job's outcome is terminal either way and must not
// bounce back into the queue.
func (d *Dispatcher) handle(ctx context.Context, msg pubsub.Message) error {
	var req SendRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		d.logger.Error("discarding undecodable send request", "job_id", msg.Metadata["job_id"], "error", err)
		return nil
	}
	d.Deliver(ctx, req)
	return nil
}

// Deliver runs the attempt loop for one job and returns its terminal outcome.
// The outcome is exposed for tests and direct callers; the queue path ignores it.
func (d *Dispatcher) Deliver(ctx context.Context, req SendRequest) Outcome {
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		d.logger.Info("dispatching notification email",
			"from", d.from,
			"to", req.To,
			"subject", req.Subject,
			"body", req.Body,
			"attempt", attempt,
		)

		err := d.sender.Send(req.To, req.Subject, req.Body)
		if err == nil {
			return Sent
		}

		if errors.Is(err, domain.ErrBadHeader) {
			// Terminal by design: a header rejection means injected content,
			// and no retry can make the message valid.
			d.logger.Info("dropping notification email with invalid header",
				"to", req.To,
				"subject", req.Subject,
			)
			return DroppedBadHeader
		}

		d.logger.Error("failed to send notification email",
			"to", req.To,
			"subject", req.Subject,
			"attempt", attempt,
			"error", err,
		)

		if !d.escalate {
			// Log-only failure handling: the attempt ceiling stays configured
			// but is never consumed on this path.
			return Failed
		}
	}
	return Failed
}
