package core

import "sync"

// Live is the single-slot holder for the most recent message and its
// speaker. Exactly one instance exists per server process; it is created at
// startup, overwritten on every submission, and never persisted.
type Live struct {
	mu      sync.RWMutex
	text    string
	speaker SpeakerID
}

// NewLive returns a live slot holding the default value: an empty message
// attributed to DefaultSpeaker.
func NewLive() *Live {
	return &Live{speaker: DefaultSpeaker}
}

// Read returns the current slot value. The pair is always consistent: a
// reader never sees the text of one submission with the speaker of another.
func (l *Live) Read() (string, SpeakerID) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text, l.speaker
}

// Write atomically replaces the slot. Last writer wins; there is no merge
// and no ordering guarantee between concurrent writers.
func (l *Live) Write(text string, speaker SpeakerID) {
	l.mu.Lock()
	l.text = text
	l.speaker = speaker
	l.mu.Unlock()
}
