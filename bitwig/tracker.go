package bitwig

import (
	"sort"
	"sync"

	"go.uber.org/multierr"
)

// AnyChannel marks a note recorded without a channel. Whoever sweeps it
// decides which channel the stop goes to.
const AnyChannel = -1

// NoteTracker records which notes are sounding, one set per Timbre.
// Presence in a set means on; a note is never stored as off.
// The zero value is ready to use and it is safe for concurrent use.
type NoteTracker struct {
	mu sync.Mutex
	on map[Timbre]map[int]int // note -> channel it was started on
}

// NewNoteTracker returns a tracker with every set empty.
func NewNoteTracker() *NoteTracker {
	t := &NoteTracker{on: make(map[Timbre]map[int]int, len(Timbres))}
	for _, timbre := range Timbres {
		t.on[timbre] = make(map[int]int)
	}
	return t
}

// NoteOn records note as sounding under timbre. Recording a note twice is a no-op.
func (t *NoteTracker) NoteOn(note int, timbre Timbre) error {
	return t.NoteOnChannel(note, timbre, AnyChannel)
}

// NoteOnChannel is NoteOn remembering the channel the note was started on.
// A note already on keeps its set membership and takes the new channel.
func (t *NoteTracker) NoteOnChannel(note int, timbre Timbre, channel int) error {
	if err := checkNote(note); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.set(timbre)[note] = channel
	return nil
}

// NoteOff forgets note. Forgetting a note that is not on does nothing.
func (t *NoteTracker) NoteOff(note int, timbre Timbre) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.set(timbre), note)
}

// IsOn reports whether note is sounding under timbre.
func (t *NoteTracker) IsOn(note int, timbre Timbre) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.set(timbre)[note]
	return ok
}

// AllOn returns a sorted copy of the notes sounding under timbre.
func (t *NoteTracker) AllOn(timbre Timbre) []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	notes := make([]int, 0, len(t.set(timbre)))
	for note := range t.set(timbre) {
		notes = append(notes, note)
	}
	sort.Ints(notes)
	return notes
}

// Len returns the number of notes sounding under timbre.
func (t *NoteTracker) Len(timbre Timbre) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.set(timbre))
}

// Clear forgets every note of timbre without stopping anything.
func (t *NoteTracker) Clear(timbre Timbre) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.on, timbre)
}

// Sweep calls stop for every note sounding under timbre, lowest note first, and forgets it.
// A note is forgotten even when stop fails; all stop errors are returned combined.
// Sweeping an empty set calls nothing and returns nil.
//
// The notes are copied before the first stop, so stop may itself call back into the tracker.
func (t *NoteTracker) Sweep(timbre Timbre, stop func(note, channel int) error) error {
	type entry struct{ note, channel int }

	t.mu.Lock()
	entries := make([]entry, 0, len(t.set(timbre)))
	for note, channel := range t.set(timbre) {
		entries = append(entries, entry{note, channel})
	}
	t.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].note < entries[j].note })

	var err error
	for _, e := range entries {
		err = multierr.Append(err, stop(e.note, e.channel))
		t.NoteOff(e.note, timbre)
	}
	return err
}

// set returns the live set of timbre. t.mu must be held.
func (t *NoteTracker) set(timbre Timbre) map[int]int {
	if t.on == nil {
		t.on = make(map[Timbre]map[int]int, len(Timbres))
	}
	s, ok := t.on[timbre]
	if !ok {
		s = make(map[int]int)
		t.on[timbre] = s
	}
	return s
}
