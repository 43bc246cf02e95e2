package words

// defaultHistoryLimit caps how many shown entries the history retains.
const defaultHistoryLimit = 100

// historyLog is a bounded log of entries shown to the user, with a
// browse cursor for previous/next replay. Appending while the cursor is
// behind the tail truncates the newer entries first, like an undo log.
// When the log outgrows its limit the oldest entry is evicted and the
// cursor is clamped back into range.
type historyLog struct {
	entries []Entry
	cursor  int // -1 while empty, otherwise an index into entries
	limit   int
}

func newHistoryLog(limit int) *historyLog {
	return &historyLog{cursor: -1, limit: limit}
}

// push records a shown entry. A push with the same word as the current
// tail is suppressed; either way the cursor ends up at the tail.
// Suppression compares only the word field, matching the store's
// one-entry-per-word invariant.
func (h *historyLog) push(e Entry) {
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	if len(h.entries) == 0 || h.entries[len(h.entries)-1].Word != e.Word {
		h.entries = append(h.entries, e)
		if len(h.entries) > h.limit {
			h.entries = h.entries[1:]
			h.clampCursor()
		}
	}
	h.cursor = len(h.entries) - 1
}

// clampCursor pulls the cursor back to the tail if eviction left it
// past the end of the log.
func (h *historyLog) clampCursor() {
	if h.cursor >= len(h.entries) {
		h.cursor = len(h.entries) - 1
	}
}

// prev moves the cursor one entry back and returns a copy of it.
func (h *historyLog) prev() (Entry, bool) {
	if len(h.entries) == 0 || h.cursor <= 0 {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// next moves the cursor one entry forward and returns a copy of it.
func (h *historyLog) next() (Entry, bool) {
	if len(h.entries) == 0 || h.cursor >= len(h.entries)-1 {
		return Entry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *historyLog) hasPrev() bool {
	return len(h.entries) > 0 && h.cursor > 0
}

func (h *historyLog) hasNext() bool {
	return len(h.entries) > 0 && h.cursor < len(h.entries)-1
}

func (h *historyLog) atEnd() bool {
	return len(h.entries) > 0 && h.cursor == len(h.entries)-1
}

// snapshot returns a copy of the log, oldest first.
func (h *historyLog) snapshot() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}
