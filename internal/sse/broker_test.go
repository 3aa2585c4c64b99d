package sse

import (
	"strings"
	"testing"
	"time"
)

func receive(t *testing.T, ch chan []byte) string {
	t.Helper()
	select {
	case msg, ok := <-ch:
		if !ok {
			t.Fatal("channel closed before message arrived")
		}
		return string(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return ""
}

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	if n := b.ClientCount(); n != 1 {
		t.Fatalf("client count = %d, want 1", n)
	}
	b.Unsubscribe(ch)
	if n := b.ClientCount(); n != 0 {
		t.Fatalf("client count = %d, want 0", n)
	}
	if _, ok := <-ch; ok {
		t.Error("channel not closed after unsubscribe")
	}
}

func TestPublishDeliversToAllClients(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	a := b.Subscribe()
	c := b.Subscribe()

	b.Publish(Event{Type: "ping", Data: map[string]string{"x": "1"}})

	for _, ch := range []chan []byte{a, c} {
		msg := receive(t, ch)
		if !strings.Contains(msg, "event: ping") || !strings.Contains(msg, `"x":"1"`) {
			t.Errorf("message = %q", msg)
		}
	}
}

func TestPublishPostEvent(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	b.PublishPostEvent("created", "42")

	msg := receive(t, ch)
	if !strings.Contains(msg, "event: post.created") {
		t.Errorf("message = %q", msg)
	}
	if !strings.Contains(msg, `"id":"42"`) {
		t.Errorf("message = %q", msg)
	}
	if !strings.HasSuffix(msg, "\n\n") {
		t.Errorf("message missing frame terminator: %q", msg)
	}
}

func TestPublishAssetEvent(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	b.PublishAssetEvent("deleted", "team.png")

	msg := receive(t, ch)
	if !strings.Contains(msg, "event: asset.deleted") || !strings.Contains(msg, `"id":"team.png"`) {
		t.Errorf("message = %q", msg)
	}
}

func TestCloseShutsDownClients(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after broker shutdown")
	}

	// Operations after close are no-ops.
	b.Publish(Event{Type: "late"})
	b.PublishPostEvent("created", "1")
	if n := b.ClientCount(); n != 0 {
		t.Errorf("client count after close = %d", n)
	}
	b.Close()
}

func TestSubscribeAfterClose(t *testing.T) {
	b := NewBroker()
	b.Close()
	ch := b.Subscribe()
	if _, ok := <-ch; ok {
		t.Error("subscribe after close returned open channel")
	}
}
