package sim

import (
	"fmt"
	"testing"
)

func TestBroadcaster_DeliversInOrder(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	for i := 0; i < 10; i++ {
		b.Publish(Event{Kind: EventActivity, Message: fmt.Sprintf("msg %d", i)})
	}

	for i := 0; i < 10; i++ {
		e := <-ch
		if want := fmt.Sprintf("msg %d", i); e.Message != want {
			t.Fatalf("event %d: got %q, want %q", i, e.Message, want)
		}
	}
}

// A subscriber that never drains must not block the publisher; it loses
// the newest events past its buffer but keeps the rest in order.
func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	total := subscriberBuffer + 20
	for i := 0; i < total; i++ {
		b.Publish(Event{Kind: EventActivity, Message: fmt.Sprintf("msg %d", i)})
	}

	if len(ch) != subscriberBuffer {
		t.Fatalf("expected %d buffered events, got %d", subscriberBuffer, len(ch))
	}
	for i := 0; i < subscriberBuffer; i++ {
		e := <-ch
		if want := fmt.Sprintf("msg %d", i); e.Message != want {
			t.Fatalf("event %d: got %q, want %q", i, e.Message, want)
		}
	}
}

func TestBroadcaster_LatestState(t *testing.T) {
	b := NewBroadcaster()
	if b.LatestState() != nil {
		t.Fatal("expected nil before any state event")
	}

	b.Publish(Event{Kind: EventState, State: &Snapshot{Day: 3}})
	b.Publish(Event{Kind: EventActivity, Message: "noise"})

	snap := b.LatestState()
	if snap == nil || snap.Day != 3 {
		t.Fatalf("expected latest state day 3, got %+v", snap)
	}
}

func TestBroadcaster_Recent(t *testing.T) {
	b := NewBroadcaster()
	for i := 0; i < 5; i++ {
		b.Publish(Event{Kind: EventActivity, Message: fmt.Sprintf("msg %d", i)})
	}

	recent := b.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 events, got %d", len(recent))
	}
	if recent[0].Message != "msg 2" || recent[2].Message != "msg 4" {
		t.Errorf("recent window wrong: %v", recent)
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	id, ch := b.Subscribe()
	b.Unsubscribe(id)

	if _, ok := <-ch; ok {
		t.Error("expected closed channel after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	b.Publish(Event{Kind: EventActivity, Message: "late"})
}
