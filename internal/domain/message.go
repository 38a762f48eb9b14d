package domain

// Entry is one candidate message in the sequence store.
// Entries are immutable once loaded.
type Entry struct {
	// Label is the 1-based position in the sequence. The store guarantees
	// labels are unique and contiguous from 1.
	Label int

	// Body is the message text, already normalized for publishing.
	Body string
}

// LastPublished is the newest post on the configured account, as reported
// by the publish gateway. It is derived fresh each tick and never persisted
// locally; the remote account's history is the sole record of what has
// already been sent.
type LastPublished struct {
	// Text is the raw text of the newest post. It may be foreign content
	// (a retweet, a hand-written post) that carries no sequence label.
	Text string

	// Exists is false when the account has no posts yet.
	Exists bool
}
