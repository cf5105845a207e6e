package core

import "strconv"

// SpeakerID identifies which visual presence is currently speaking.
// Speaker ids are small positive integers assigned at deployment time.
type SpeakerID int

// DefaultSpeaker is the live-state speaker before any submission.
const DefaultSpeaker SpeakerID = 2

// Roster is the closed set of speaker ids a deployment knows about.
// Ids run from 1 to size inclusive.
type Roster struct {
	size int
}

// NewRoster builds a roster of n speakers. n smaller than the default
// deployment size of two is rounded up so DefaultSpeaker is always valid.
func NewRoster(n int) Roster {
	if n < int(DefaultSpeaker) {
		n = int(DefaultSpeaker)
	}
	return Roster{size: n}
}

// Contains reports whether id is a member of the roster.
func (r Roster) Contains(id SpeakerID) bool {
	return id >= 1 && int(id) <= r.size
}

// Size returns the number of known speakers.
func (r Roster) Size() int {
	return r.size
}

// ParseSpeakerID parses a wire-format speaker id and validates it against
// the roster. Malformed and unknown values are both rejected rather than
// stored verbatim.
func (r Roster) ParseSpeakerID(raw string) (SpeakerID, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrUnknownSpeaker
	}
	id := SpeakerID(n)
	if !r.Contains(id) {
		return 0, ErrUnknownSpeaker
	}
	return id, nil
}
