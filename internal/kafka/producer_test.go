package kafka

import (
	"context"
	"testing"
	"time"
)

func waitClosedOrTimeout(t *testing.T, p *Producer) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitClosed tidak selesai")
	}
}

func TestProducer_CloseUnblocksWaitClosed(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"}, "test-topic", 4)
	p.Start(context.Background())

	p.Close()
	waitClosedOrTimeout(t, p)
}

func TestProducer_CancelUnblocksWaitClosed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewProducer([]string{"127.0.0.1:1"}, "test-topic", 4)
	p.Start(ctx)

	cancel()
	waitClosedOrTimeout(t, p)
}
