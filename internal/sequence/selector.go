package sequence

import "github.com/driplab/driptweet/internal/domain"

// Reason explains how a selection was made. Fallback reasons must be
// distinguishable in logs from a clean advance.
type Reason int

const (
	// ReasonAdvance means the last label was found and the following entry
	// was selected.
	ReasonAdvance Reason = iota

	// ReasonWrap means the last entry had just been published, so selection
	// wrapped around to entry 1.
	ReasonWrap

	// ReasonNoLabel means the last post carried no recognizable label
	// (first run, foreign post) and the sequence restarted from entry 1.
	ReasonNoLabel

	// ReasonOutOfRange means the last label fell outside [1, N] (store
	// shrank, label corrupted) and the sequence restarted from entry 1.
	ReasonOutOfRange
)

func (r Reason) String() string {
	switch r {
	case ReasonAdvance:
		return "advance"
	case ReasonWrap:
		return "wrap"
	case ReasonNoLabel:
		return "no-label"
	case ReasonOutOfRange:
		return "out-of-range"
	default:
		return "unknown"
	}
}

// Next decides which entry to publish after lastLabel. The entries slice
// must be ordered by label with labels contiguous from 1, which the store
// guarantees at load time. hasLabel is false when no label could be parsed
// from the last post.
//
// Restarting from entry 1 on a missing or out-of-range label is deliberate
// policy: losing place is preferred over refusing to post.
//
// Next is deterministic and always returns an entry from the slice.
func Next(entries []domain.Entry, lastLabel int, hasLabel bool) (domain.Entry, Reason) {
	n := len(entries)
	switch {
	case !hasLabel:
		return entries[0], ReasonNoLabel
	case lastLabel < 1 || lastLabel > n:
		return entries[0], ReasonOutOfRange
	case lastLabel == n:
		return entries[0], ReasonWrap
	default:
		return entries[lastLabel], ReasonAdvance
	}
}
