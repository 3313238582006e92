package game

import "time"

// EventKind identifies a deferred round transition.
type EventKind int

const (
	EventActivateRound EventKind = iota // Grace period over, collisions go live
	EventFinishRound                    // Forced drops settled, score the round
	EventStartRound                     // Begin the next round
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventActivateRound:
		return "activate_round"
	case EventFinishRound:
		return "finish_round"
	case EventStartRound:
		return "start_round"
	default:
		return "unknown"
	}
}

// Event is a pending phase transition stamped with the epoch and round it
// was scheduled for.
type Event struct {
	Kind  EventKind
	Round int

	epoch     uint64
	remaining time.Duration
}

// Scheduler is a queue of delayed phase events driven by simulation time.
// A reset bumps the epoch so anything scheduled before it is dropped.
type Scheduler struct {
	epoch   uint64
	pending []Event
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues kind to fire after delay.
func (s *Scheduler) Schedule(kind EventKind, round int, delay time.Duration) {
	s.pending = append(s.pending, Event{
		Kind:      kind,
		Round:     round,
		epoch:     s.epoch,
		remaining: delay,
	})
}

// Advance moves time forward and returns the due events in scheduling order.
func (s *Scheduler) Advance(dt time.Duration) []Event {
	if len(s.pending) == 0 {
		return nil
	}
	var due []Event
	kept := s.pending[:0]
	for _, ev := range s.pending {
		ev.remaining -= dt
		if ev.remaining <= 0 {
			due = append(due, ev)
			continue
		}
		kept = append(kept, ev)
	}
	s.pending = kept
	return due
}

// Cancel drops every pending event and starts a new epoch.
func (s *Scheduler) Cancel() {
	s.epoch++
	s.pending = nil
}

// Live reports whether ev belongs to the current epoch.
func (s *Scheduler) Live(ev Event) bool {
	return ev.epoch == s.epoch
}

// Pending returns the number of queued events.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Epoch returns the current epoch.
func (s *Scheduler) Epoch() uint64 {
	return s.epoch
}
