package util

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestWithSignals(t *testing.T) {
	ctx, cancel := WithSignals(context.Background())
	defer cancel()

	// Verify context is not cancelled initially
	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled initially")
	default:
	}

	// Send SIGTERM to trigger context cancellation
	// Note: this sends a signal to the current process, which the handler
	// installed above will receive
	go func() {
		time.Sleep(10 * time.Millisecond)
		syscall.Kill(syscall.Getpid(), syscall.SIGTERM)
	}()

	select {
	case <-ctx.Done():
		if ctx.Err() != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", ctx.Err())
		}
	case <-time.After(1 * time.Second):
		t.Fatal("context was not cancelled after SIGTERM")
	}
}

func TestWithSignals_ParentCancellation(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithSignals(parent)
	defer cancel()

	cancelParent()

	select {
	case <-ctx.Done():
	case <-time.After(1 * time.Second):
		t.Fatal("derived context did not follow parent cancellation")
	}
}
