package tracker

import (
	ts "github.com/samuelfneumann/gogrid/timestep"
)

// EpisodeLength tracks the number of steps in each episode of an
// experiment. One value is recorded per finished episode. An episode
// still running when the experiment ends is not saved.
//
// Combined with Register, EpisodeLength can record the lengths of only
// those episodes an unwrapped environment ended itself, ignoring the
// episodes cut short by a wrapper.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a Tracker recording episode lengths, saved
// at filename
func NewEpisodeLength(filename string) Tracker {
	return &EpisodeLength{filename: filename}
}

// Track records the length of the current episode once it sees the
// episode's last timestep. Timesteps in the middle of an episode leave
// the tracker unchanged.
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Save writes the tracked episode lengths to disk
func (e *EpisodeLength) Save() {
	save(e.filename, e.episodeLengths)
}
