package datasource

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pocketbook/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Operation is a kind of store access that the simulator can delay or fail.
type Operation int

const (
	OperationLoad Operation = iota
	OperationSave
	OperationDelete
	OperationToggle
)

func (o Operation) String() string {
	switch o {
	case OperationLoad:
		return "load"
	case OperationSave:
		return "save"
	case OperationDelete:
		return "delete"
	case OperationToggle:
		return "toggle"
	}
	return "unknown"
}

// Simulator makes store access behave like a slow and unreliable remote
// service: operations wait for Delay and fallible operations then fail
// with probability FailureRate.
//
// Loads are delayed but never fail unless FailLoads is set. Saves and
// deletes are delayed and may fail. Toggles run immediately.
//
// The zero value runs every operation immediately.
type Simulator struct {
	Enabled     bool
	Delay       time.Duration
	FailureRate float64
	FailLoads   bool

	mu   sync.Mutex
	rand *rand.Rand
}

// NewSimulator returns a simulator drawing its coin flips from r. A nil r
// uses a randomly seeded source.
func NewSimulator(enabled bool, delay time.Duration, failureRate float64, failLoads bool, r *rand.Rand) *Simulator {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Simulator{
		Enabled:     enabled,
		Delay:       delay,
		FailureRate: failureRate,
		FailLoads:   failLoads,
		rand:        r,
	}
}

// Do runs fn after simulating latency and failure for the operation.
//
// When the context is cancelled during the delay, its error is returned.
// A failed coin flip returns models.ErrSimulatedFailure and fn is not run.
func (s *Simulator) Do(ctx context.Context, op Operation, fn func() error) error {
	if s == nil || !s.Enabled || op == OperationToggle {
		return fn()
	}

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if s.fallible(op) && s.flip() {
		log.Debug().Str("operation", op.String()).Msg("simulated failure")
		return models.ErrSimulatedFailure
	}

	return fn()
}

func (s *Simulator) fallible(op Operation) bool {
	switch op {
	case OperationSave, OperationDelete:
		return true
	case OperationLoad:
		return s.FailLoads
	}
	return false
}

// flip reports whether the operation fails.
func (s *Simulator) flip() bool {
	if s.FailureRate <= 0 {
		return false
	}
	if s.FailureRate >= 1 {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rand == nil {
		s.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s.rand.Float64() < s.FailureRate
}
