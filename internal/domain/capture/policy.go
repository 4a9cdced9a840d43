package capture

import (
	"context"
	"time"
)

// State is the first-visit prompt state for a visitor.
type State string

const (
	StateNotYetShown State = "not_yet_shown"
	StateShown       State = "shown"
)

// Trigger selects when the prompt fires for a fresh visitor.
type Trigger string

const (
	TriggerImmediate Trigger = "immediate"
	TriggerDelayed   Trigger = "delayed"
)

// Config is the prompt policy: fire immediately on first render, or
// after Delay.
type Config struct {
	Trigger Trigger
	Delay   time.Duration
}

// FlagStore is the durable per-visitor "prompt completed" flag. It is a
// collaborator interface so tests can fake it and deployments can choose
// where the flag lives.
type FlagStore interface {
	Seen(ctx context.Context, visitorID string) (bool, error)
	MarkSeen(ctx context.Context, visitorID string) error
}

// Decision tells the presentation layer what to do with the prompt.
type Decision struct {
	State      State `json:"state"`
	ShowPrompt bool  `json:"show_prompt"`
	DelayMs    int64 `json:"delay_ms"`
}

// Policy decides, once per visitor, whether to present the lead-capture
// prompt. The durable flag is written only when the visitor completes the
// prompt; a dismissal leaves it absent so the prompt is offered again in
// a later session. That asymmetry is deliberate: a skip is not consent to
// never ask again.
type Policy struct {
	store FlagStore
	cfg   Config
}

// NewPolicy creates a capture policy over the given flag store.
func NewPolicy(store FlagStore, cfg Config) *Policy {
	if cfg.Trigger != TriggerImmediate && cfg.Trigger != TriggerDelayed {
		cfg.Trigger = TriggerDelayed
	}
	if cfg.Trigger == TriggerImmediate {
		cfg.Delay = 0
	}
	return &Policy{store: store, cfg: cfg}
}

// Evaluate reads the durable flag and returns the prompt decision for a
// visitor. A visitor with the flag set is never auto-prompted again.
func (p *Policy) Evaluate(ctx context.Context, visitorID string) (Decision, error) {
	seen, err := p.store.Seen(ctx, visitorID)
	if err != nil {
		return Decision{}, err
	}
	if seen {
		return Decision{State: StateShown}, nil
	}
	return Decision{
		State:      StateNotYetShown,
		ShowPrompt: true,
		DelayMs:    p.cfg.Delay.Milliseconds(),
	}, nil
}

// Complete records that the visitor submitted the prompt. Idempotent.
func (p *Policy) Complete(ctx context.Context, visitorID string) error {
	return p.store.MarkSeen(ctx, visitorID)
}

// NewSession starts tracking the prompt for one visit.
func (p *Policy) NewSession(ctx context.Context, visitorID string) (*Session, error) {
	seen, err := p.store.Seen(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	state := StateNotYetShown
	if seen {
		state = StateShown
	}
	return &Session{policy: p, visitorID: visitorID, state: state}, nil
}

// Session is the per-visit state machine: NotYetShown transitions to
// Shown exactly once, when the prompt is rendered; Shown is terminal.
type Session struct {
	policy    *Policy
	visitorID string
	state     State
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Decide returns whether to render the prompt now. The first call for a
// fresh visitor transitions the session to Shown; every later call in
// the same session declines.
func (s *Session) Decide() Decision {
	if s.state == StateShown {
		return Decision{State: StateShown}
	}
	s.state = StateShown
	return Decision{
		State:      StateShown,
		ShowPrompt: true,
		DelayMs:    s.policy.cfg.Delay.Milliseconds(),
	}
}

// Complete records a submitted prompt in the durable store.
func (s *Session) Complete(ctx context.Context) error {
	s.state = StateShown
	return s.policy.Complete(ctx, s.visitorID)
}

// Dismiss ends the prompt without a durable write. The visitor will be
// offered the prompt again in a new session.
func (s *Session) Dismiss() {
	s.state = StateShown
}
