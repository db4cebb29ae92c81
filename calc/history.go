package calc

// Result describes one accepted evaluation: the expression as entered and the
// formatted value shown for it. Results are immutable once appended.
type Result struct {
	Expr  string
	Value string
}

// History is a bounded, insertion-ordered ledger of accepted evaluations.
// When capacity is exceeded the oldest entries are evicted first.
type History struct {
	limit   int
	entries []Result
}

func newHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

func (h *History) Append(r Result) {
	h.entries = append(h.entries, r)
	if n := len(h.entries) - h.limit; n > 0 {
		h.entries = append(h.entries[:0], h.entries[n:]...)
	}
}

// MostRecent returns the newest entry, or ok=false when the ledger is empty.
func (h *History) MostRecent() (Result, bool) {
	if len(h.entries) == 0 {
		return Result{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Snapshot returns a copy of the ledger in insertion order. Mutating the
// returned slice does not affect the ledger.
func (h *History) Snapshot() []Result {
	out := make([]Result, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int { return len(h.entries) }
