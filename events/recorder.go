package events

import "sync"

// Published is one delivered (channel, event) pair.
type Published struct {
	Channel string
	Event   Event
}

// Recorder keeps every published event in memory. Test transport.
type Recorder struct {
	mu     sync.Mutex
	events []Published
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Publish(channel string, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Published{Channel: channel, Event: ev})
}

// All returns a copy of everything published so far.
func (r *Recorder) All() []Published {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Published, len(r.events))
	copy(out, r.events)
	return out
}

// Named returns published events with the given event name.
func (r *Recorder) Named(name string) []Published {
	var out []Published
	for _, p := range r.All() {
		if p.Event.Name == name {
			out = append(out, p)
		}
	}
	return out
}
