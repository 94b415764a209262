package notify

import (
	"testing"

	"snakes_backend/internal/model"
)

// TestPublishDeliversInOrder ensures a subscriber sees events of its session in publish order.
func TestPublishDeliversInOrder(t *testing.T) {
	d := NewDispatcher(8, nil)
	ch, unsubscribe := d.Subscribe("s1")
	defer unsubscribe()

	for seq := uint64(1); seq <= 3; seq++ {
		d.Publish(model.Event{SessionID: "s1", Seq: seq, Kind: model.EventStepAdvanced})
	}

	for want := uint64(1); want <= 3; want++ {
		ev := <-ch
		if ev.Seq != want {
			t.Fatalf("Seq = %d, want %d", ev.Seq, want)
		}
	}
}

// TestPublishIsolatesSessions ensures events never leak to another session's subscribers.
func TestPublishIsolatesSessions(t *testing.T) {
	d := NewDispatcher(8, nil)
	ch, unsubscribe := d.Subscribe("s1")
	defer unsubscribe()

	d.Publish(model.Event{SessionID: "s2", Seq: 1})

	select {
	case ev := <-ch:
		t.Fatalf("received foreign event %+v", ev)
	default:
	}
}

// TestPublishDropsWhenFull ensures a slow subscriber never blocks the publisher.
func TestPublishDropsWhenFull(t *testing.T) {
	d := NewDispatcher(1, nil)
	ch, unsubscribe := d.Subscribe("s1")
	defer unsubscribe()

	d.Publish(model.Event{SessionID: "s1", Seq: 1})
	d.Publish(model.Event{SessionID: "s1", Seq: 2})

	if ev := <-ch; ev.Seq != 1 {
		t.Fatalf("Seq = %d, want 1", ev.Seq)
	}
	select {
	case ev := <-ch:
		t.Fatalf("received %+v, want dropped", ev)
	default:
	}
}

// TestUnsubscribeClosesChannel ensures unsubscribe is idempotent and closes the stream.
func TestUnsubscribeClosesChannel(t *testing.T) {
	d := NewDispatcher(1, nil)
	ch, unsubscribe := d.Subscribe("s1")

	unsubscribe()
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("channel still open after unsubscribe")
	}
	if n := d.Subscribers("s1"); n != 0 {
		t.Fatalf("Subscribers = %d, want 0", n)
	}
}

// TestCloseSessionClosesAll ensures ending a session terminates every stream.
func TestCloseSessionClosesAll(t *testing.T) {
	d := NewDispatcher(1, nil)
	a, unsubA := d.Subscribe("s1")
	b, _ := d.Subscribe("s1")

	d.CloseSession("s1")
	unsubA()

	if _, ok := <-a; ok {
		t.Fatal("first channel still open")
	}
	if _, ok := <-b; ok {
		t.Fatal("second channel still open")
	}
}
