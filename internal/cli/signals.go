package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalHandler cancels the run context on interrupt so in-flight
// reviewers drain into cancelled results instead of being killed
type SignalHandler struct {
	signals  chan os.Signal
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	cancel   context.CancelFunc
}

// NewSignalHandler creates a signal handler with the given context cancel
func NewSignalHandler(cancel context.CancelFunc) *SignalHandler {
	return &SignalHandler{
		signals: make(chan os.Signal, 1),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
}

// Start begins listening for SIGINT and SIGTERM
func (h *SignalHandler) Start() {
	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer close(h.done)

		select {
		case <-h.signals:
			if h.cancel != nil {
				h.cancel()
			}
		case <-h.stopCh:
		}
	}()
}

// Stop stops the signal handler and cleans up
func (h *SignalHandler) Stop() {
	signal.Stop(h.signals)
	h.stopOnce.Do(func() {
		close(h.stopCh)
	})
	<-h.done
}

// Trigger simulates a received signal. Used by tests to exercise the
// cancellation path without touching process signal state.
func (h *SignalHandler) Trigger() {
	select {
	case h.signals <- syscall.SIGINT:
	default:
	}
}
