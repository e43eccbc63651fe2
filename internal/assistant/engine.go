// Package assistant wires the intent classifier and the reply composer into a
// single synchronous engine. An Engine is stateless and safe for concurrent
// use: the only shared data is the immutable knowledge base behind the
// composer.
package assistant

import (
	"strings"
	"time"

	"github.com/neer2304/foliobot/internal/composer"
	"github.com/neer2304/foliobot/internal/intent"
)

// Result is one classified and answered exchange.
type Result struct {
	Intent intent.Intent
	Reply  string
}

// Engine answers a single message per call. No conversation state is kept
// between calls.
type Engine struct {
	composer *composer.Composer
}

// New creates an Engine over a constructed composer.
func New(c *composer.Composer) *Engine {
	return &Engine{composer: c}
}

// Respond classifies the message and renders the reply. now is the wall-clock
// instant the caller observed; it only influences the greeting salutation, so
// the same (message, now) pair always yields the same result. Empty or
// whitespace-only messages skip classification and get the default prompt.
func (e *Engine) Respond(message string, now time.Time) Result {
	if strings.TrimSpace(message) == "" {
		return Result{Intent: intent.Unknown, Reply: e.composer.DefaultPrompt()}
	}
	in := intent.Classify(message)
	return Result{Intent: in, Reply: e.composer.Reply(in, message, now)}
}

// Apology returns the generic friendly-error reply the HTTP boundary falls
// back to when anything in the pipeline panics.
func (e *Engine) Apology() string {
	return e.composer.Apology()
}
