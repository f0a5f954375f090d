// Package session implements the image generation use case: prompt
// validation, credit accounting, backend dispatch, and history recording,
// with all-or-nothing semantics per attempt.
package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spetersoncode/imagify"
	"github.com/spetersoncode/imagify/generator"
	"github.com/spetersoncode/imagify/store"
)

// InsufficientCreditsMessage is surfaced when a generation is requested
// with an empty balance.
const InsufficientCreditsMessage = "Insufficient credits. Please purchase more credits to continue."

// BusyMessage is surfaced when a generation is requested while another is
// in flight.
const BusyMessage = "A generation is already in progress."

// FailureKind classifies why a generation attempt failed, so callers can
// branch or localize without parsing the message.
type FailureKind string

const (
	FailureNone                FailureKind = ""
	FailureValidation          FailureKind = "validation"
	FailureInsufficientCredits FailureKind = "insufficient_credits"
	FailureProvider            FailureKind = "provider"
	FailureBusy                FailureKind = "busy"
)

// Outcome is the result of one generation attempt.
type Outcome struct {
	Success bool
	// Entry is the recorded history entry on success, nil otherwise.
	Entry *store.HistoryEntry
	// Err is the user-facing failure message, empty on success.
	Err string
	// Kind classifies the failure, FailureNone on success.
	Kind FailureKind
}

// Session wires the validator, credit ledger, generator, and history store
// into a single Run operation. A failed attempt never consumes a credit or
// writes history.
//
// Session serializes generation: only one Run may be in flight at a time,
// and concurrent calls fail fast with FailureBusy.
type Session struct {
	gen     *generator.Generator
	ledger  *CreditLedger
	history *store.HistoryStore

	mu       sync.Mutex
	settings imagify.Settings
	lastErr  string

	inFlight atomic.Bool
}

// Option configures a Session.
type Option func(*Session)

// WithSettings sets the initial generation settings.
func WithSettings(s imagify.Settings) Option {
	return func(sess *Session) {
		sess.settings = s
	}
}

// New creates a Session with default settings.
func New(gen *generator.Generator, ledger *CreditLedger, history *store.HistoryStore, opts ...Option) *Session {
	s := &Session{
		gen:      gen,
		ledger:   ledger,
		history:  history,
		settings: imagify.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run performs one generation attempt for the given prompt.
//
// The attempt short-circuits before any external call on an invalid prompt
// or an empty balance. On backend success it records a history entry and
// deducts exactly one credit; on backend failure nothing is deducted or
// recorded.
func (s *Session) Run(ctx context.Context, prompt string) Outcome {
	if !s.inFlight.CompareAndSwap(false, true) {
		return s.fail(FailureBusy, BusyMessage)
	}
	defer s.inFlight.Store(false)

	s.ClearError()

	if v := imagify.ValidatePrompt(prompt); !v.Valid {
		return s.fail(FailureValidation, v.Err)
	}

	if !s.ledger.HasSufficientCredits() {
		return s.fail(FailureInsufficientCredits, InsufficientCreditsMessage)
	}

	settings := s.Settings()
	result, err := s.gen.GenerateImage(ctx, prompt, settings.Options()...)
	if err != nil {
		return s.fail(FailureProvider, imagify.UserMessage(err))
	}

	entry := store.HistoryEntry{
		// UUIDv7 is time-ordered, so ids also serve as a monotonic token.
		ID:            uuid.Must(uuid.NewV7()).String(),
		Prompt:        prompt,
		ImageURL:      result.ImageURL,
		RevisedPrompt: result.RevisedPrompt,
		Settings:      settings,
		Timestamp:     time.Now().UTC(),
		IsMock:        result.IsMock,
	}

	if err := s.history.Append(ctx, entry); err != nil {
		// Persistence trouble must not fail a generation the user paid for.
		slog.Warn("failed to persist generation history", "error", err)
	}
	s.ledger.Deduct(1)

	return Outcome{Success: true, Entry: &entry}
}

// Provider returns the backend serving this session's generations.
func (s *Session) Provider() imagify.Provider {
	return s.gen.Provider()
}

// Settings returns the current generation settings.
func (s *Session) Settings() imagify.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings replaces the generation settings for subsequent runs.
func (s *Session) SetSettings(settings imagify.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// LastError returns the most recent failure message, empty if the last
// run succeeded or no run has happened.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError clears the surfaced error state.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// InFlight reports whether a generation is currently running.
func (s *Session) InFlight() bool {
	return s.inFlight.Load()
}

func (s *Session) fail(kind FailureKind, msg string) Outcome {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	return Outcome{Err: msg, Kind: kind}
}
