// Package console holds the front-end logic shared by the terminal UI and
// the one-shot command: prompt validation, the single active request and
// the status text shown for each outcome.
package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"chatconsole/internal/llm"

	"github.com/google/uuid"
)

const (
	MsgNotConfigured = "Configure OPENAI_API_KEY and restart the app."
	MsgEmptyPrompt   = "Please enter a prompt first."
	MsgPending       = "Contacting OpenAI..."
	MsgReceived      = "Response received."
	MsgCanceled      = "Request canceled."
	MsgFailed        = "Failed to fetch response."
)

type Status int

const (
	StatusRejected Status = iota
	StatusDone
	StatusCanceled
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRejected:
		return "rejected"
	case StatusDone:
		return "done"
	case StatusCanceled:
		return "canceled"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Result struct {
	RequestID string
	Status    Status
	// Message is the status line text.
	Message string
	// Response is the completion on success, or the error text on failure.
	Response string
	Err      error
	// Superseded is set when a newer Send started before this one finished.
	Superseded bool
}

// Console allows one active request at a time. Starting a new request
// cancels the previous one.
type Console struct {
	completer llm.Completer
	setupErr  error

	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
}

// New returns a Console. A nil completer disables sending; setupErr is the
// reason it could not be built.
func New(completer llm.Completer, setupErr error) *Console {
	return &Console{completer: completer, setupErr: setupErr}
}

func (c *Console) Ready() bool {
	return c.completer != nil
}

func (c *Console) SetupError() error {
	return c.setupErr
}

// Send blocks until the completion finishes, fails or is canceled.
func (c *Console) Send(ctx context.Context, prompt string) Result {
	if c.completer == nil {
		return Result{Status: StatusRejected, Message: MsgNotConfigured, Err: c.setupErr}
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Result{Status: StatusRejected, Message: MsgEmptyPrompt}
	}

	reqCtx, id := c.begin(ctx)
	text, err := c.completer.Complete(reqCtx, prompt)
	superseded := c.finish(id)

	res := Result{RequestID: id, Superseded: superseded, Err: err}
	switch {
	case err == nil:
		res.Status = StatusDone
		res.Message = MsgReceived
		res.Response = text
	case llm.IsCanceled(err) || errors.Is(err, context.Canceled):
		res.Status = StatusCanceled
		res.Message = MsgCanceled
	default:
		res.Status = StatusFailed
		res.Message = MsgFailed
		res.Response = err.Error()
	}
	return res
}

// Cancel aborts the active request, if any.
func (c *Console) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// Pending reports whether a request is in flight.
func (c *Console) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != ""
}

// Close cancels the active request and closes the completer when it
// implements io.Closer.
func (c *Console) Close() error {
	c.Cancel()
	if closer, ok := c.completer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Console) begin(parent context.Context) (context.Context, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	c.current = uuid.NewString()
	c.cancel = cancel
	return ctx, c.current
}

func (c *Console) finish(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != id {
		return true
	}
	c.cancel()
	c.current = ""
	c.cancel = nil
	return false
}
