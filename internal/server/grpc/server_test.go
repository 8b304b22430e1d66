package grpc

import (
	"context"
	"testing"
	"time"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	s, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeAuth{})
	if err != nil {
		t.Fatalf("NewGRPCServer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// give the listener a moment to come up, then shut down
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRunFailsOnBadAddress(t *testing.T) {
	s, err := NewGRPCServer("256.256.256.256:1", nopLogger{}, &fakeAuth{})
	if err != nil {
		t.Fatalf("NewGRPCServer: %v", err)
	}

	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
