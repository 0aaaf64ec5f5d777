package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/parceldesk/shipment-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.ActivityEventInput
	done   chan struct{} // closed once want events arrive
	want   int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{done: make(chan struct{}), want: want}
}

func (s *recordingService) Process(_ context.Context, in ports.ActivityEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, in)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingService) wait(t *testing.T) []ports.ActivityEventInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events to be processed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.ActivityEventInput(nil), s.events...)
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("ship_0001")
	for i := 0; i < 100; i++ {
		if got := d.shardIndex("ship_0001"); got != first {
			t.Fatalf("shard index changed between calls: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_PerShipmentOrderingPreserved(t *testing.T) {
	svc := newRecordingService(5)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	statuses := []string{"created", "picked up", "in transit", "out for delivery", "delivered"}
	for _, st := range statuses {
		d.Enqueue(ports.ActivityEventInput{TrackingNo: "ship_0001", Status: st})
	}

	events := svc.wait(t)
	for i, st := range statuses {
		if events[i].Status != st {
			t.Fatalf("events for one shipment must process in order: got %q at %d, want %q",
				events[i].Status, i, st)
		}
	}
}

func TestDispatcher_EnqueueBatch(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.EnqueueBatch([]ports.ActivityEventInput{
		{TrackingNo: "ship_0001", Status: "in transit"},
		{TrackingNo: "ship_0002", Status: "in transit"},
		{TrackingNo: "ship_0003", Status: "delivered"},
	})

	events := svc.wait(t)
	seen := map[string]bool{}
	for _, ev := range events {
		seen[ev.TrackingNo] = true
	}
	for _, id := range []string{"ship_0001", "ship_0002", "ship_0003"} {
		if !seen[id] {
			t.Errorf("event for %s was never processed", id)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("expected %d workers by default, got %d", defaultWorkers, len(d.workers))
	}
}
