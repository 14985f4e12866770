// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

// Phase identifies which stage of the pipeline produced a progress event.
type Phase int

const (
	PhasePartition Phase = iota
	PhaseMerge
)

func (p Phase) String() string {
	switch p {
	case PhasePartition:
		return "partitioned locus"
	case PhaseMerge:
		return "merged cluster"
	default:
		return "unknown phase"
	}
}

// Event is one progress tick: a locus partitioned or a cluster merged.
type Event struct {
	Phase Phase
	Name  string
}

// Reporter carries progress events from workers to the orchestrator over a
// buffered channel so workers never write to the log themselves.
type Reporter struct {
	ch chan Event
}

// NewReporter returns a Reporter with a buffered channel of size 64.
func NewReporter() *Reporter {
	return &Reporter{ch: make(chan Event, 64)}
}

// Emit sends an event without blocking. If the channel is full the event is
// dropped; ticks are observational only.
func (r *Reporter) Emit(ev Event) {
	select {
	case r.ch <- ev:
	default:
	}
}

// Events returns the channel the orchestrator consumes.
func (r *Reporter) Events() <-chan Event { return r.ch }

// Close closes the event channel. No Emit may follow.
func (r *Reporter) Close() { close(r.ch) }
