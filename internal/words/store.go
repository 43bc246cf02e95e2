package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
)

// Sentinel errors for CRUD validation failures. Callers surface these
// to the user; nothing in this package panics or aborts on them.
var (
	ErrWordExists   = errors.New("word already exists")
	ErrWordNotFound = errors.New("word not found")
)

// Store owns the in-memory vocabulary list, the sequential cursor, the
// history log and the dirty flag. It is not safe for concurrent use;
// all methods are expected to run on the UI event loop.
type Store struct {
	filepath string
	words    []Entry

	currentIndex int // sequential cursor, -1 before the first fetch
	dirty        bool
	history      *historyLog
}

// New loads the store from the given JSON file. A missing or malformed
// file degrades to an empty store, and an empty array is written back
// out to self-heal the file. Construction never fails.
func New(filepath string) *Store {
	s := &Store{
		filepath:     filepath,
		currentIndex: -1,
		history:      newHistoryLog(defaultHistoryLimit),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.filepath)
	if err == nil {
		err = json.Unmarshal(data, &s.words)
	}
	if err != nil || s.words == nil {
		s.words = []Entry{}
		if werr := s.save(); werr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize word file %s: %v\n", s.filepath, werr)
		}
	}
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.words, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}
	if err := os.WriteFile(s.filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write words to %s: %w", s.filepath, err)
	}
	s.dirty = false
	return nil
}

// SaveChanges writes the word list back to disk, but only if there are
// unsaved mutations. On write failure the dirty flag stays set so a
// later save is not silently skipped.
func (s *Store) SaveChanges() error {
	if !s.dirty {
		return nil
	}
	return s.save()
}

// Dirty reports whether there are unsaved mutations.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.words)
}

// Words returns a copy of every stored entry in file order.
func (s *Store) Words() []Entry {
	out := make([]Entry, len(s.words))
	copy(out, s.words)
	return out
}

// Find scans for the first entry whose word or translation equals
// value. The scan is linear; the corpus is small and mutation-heavy, so
// no index is kept.
func (s *Store) Find(value string) (Entry, bool) {
	for _, e := range s.words {
		if e.Word == value || e.Translation == value {
			return e, true
		}
	}
	return Entry{}, false
}

// FindByField scans for the first entry whose named field equals value.
func (s *Store) FindByField(field Field, value string) (Entry, bool) {
	for _, e := range s.words {
		if e.get(field) == value {
			return e, true
		}
	}
	return Entry{}, false
}

// RandomWord draws one entry uniformly at random and records it in the
// history. Every call is an independent draw; repeats are expected.
// Returns false when the store is empty.
func (s *Store) RandomWord() (Entry, bool) {
	if len(s.words) == 0 {
		return Entry{}, false
	}
	e := s.words[rand.Intn(len(s.words))]
	s.history.push(e)
	return e, true
}

// NextWord advances the sequential cursor, wrapping to the start after
// the last entry, and records the result in the history. Returns false
// when the store is empty.
func (s *Store) NextWord() (Entry, bool) {
	if len(s.words) == 0 {
		return Entry{}, false
	}
	s.currentIndex++
	if s.currentIndex >= len(s.words) {
		s.currentIndex = 0
	}
	e := s.words[s.currentIndex]
	s.history.push(e)
	return e, true
}

// ResetSequentialIndex rewinds the sequential cursor so the next
// NextWord call starts at the first entry.
func (s *Store) ResetSequentialIndex() {
	s.currentIndex = -1
}

// PreviousWord steps the history browse cursor back one entry.
// Returns false at the start of the history.
func (s *Store) PreviousWord() (Entry, bool) {
	return s.history.prev()
}

// HasPreviousWord reports whether PreviousWord would succeed.
func (s *Store) HasPreviousWord() bool {
	return s.history.hasPrev()
}

// NextHistoryWord steps the history browse cursor forward one entry.
// Returns false at the end of the history.
func (s *Store) NextHistoryWord() (Entry, bool) {
	return s.history.next()
}

// HasNextHistoryWord reports whether NextHistoryWord would succeed.
func (s *Store) HasNextHistoryWord() bool {
	return s.history.hasNext()
}

// IsAtHistoryEnd reports whether the browse cursor sits on the most
// recently recorded entry.
func (s *Store) IsAtHistoryEnd() bool {
	return s.history.atEnd()
}

// History returns a copy of the history log, oldest entry first.
func (s *Store) History() []Entry {
	return s.history.snapshot()
}

// HistoryInfo summarizes the history log.
type HistoryInfo struct {
	TotalCount   int
	CurrentIndex int
	UniqueWords  int
}

// HistoryInfo returns counts and the browse cursor position. Unique
// words are counted over the word field across the whole log.
func (s *Store) HistoryInfo() HistoryInfo {
	entries := s.history.entries
	if len(entries) == 0 {
		return HistoryInfo{CurrentIndex: -1}
	}
	unique := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		unique[e.Word] = struct{}{}
	}
	return HistoryInfo{
		TotalCount:   len(entries),
		CurrentIndex: s.history.cursor,
		UniqueWords:  len(unique),
	}
}

// AddWord appends a new entry. Fails with ErrWordExists when an entry
// with the same word is already stored. History and cursors are left
// untouched.
func (s *Store) AddWord(word, translation, partOfSpeech string) error {
	if _, ok := s.FindByField(FieldWord, word); ok {
		return fmt.Errorf("cannot add %q: %w", word, ErrWordExists)
	}
	s.words = append(s.words, Entry{
		Word:         word,
		Translation:  translation,
		PartOfSpeech: partOfSpeech,
	})
	s.dirty = true
	return nil
}

// EditWord applies a partial update to the entry whose word equals
// originalWord. Renaming to a word held by a different entry fails with
// ErrWordExists. An update with no fields set still marks the store
// dirty; payload contents are not diffed.
func (s *Store) EditWord(originalWord string, updates EntryUpdate) error {
	idx := -1
	for i := range s.words {
		if s.words[i].Word == originalWord {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("cannot edit %q: %w", originalWord, ErrWordNotFound)
	}
	if updates.Word != nil && *updates.Word != originalWord {
		if _, ok := s.FindByField(FieldWord, *updates.Word); ok {
			return fmt.Errorf("cannot rename %q to %q: %w", originalWord, *updates.Word, ErrWordExists)
		}
	}
	updates.apply(&s.words[idx])
	s.dirty = true
	return nil
}

// DeleteWord removes every entry matching the given word (at most one
// exists). The history keeps any rows already recorded for it; the log
// is a record of what was shown, not a live view.
func (s *Store) DeleteWord(word string) error {
	kept := s.words[:0]
	removed := false
	for _, e := range s.words {
		if e.Word == word {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return fmt.Errorf("cannot delete %q: %w", word, ErrWordNotFound)
	}
	s.words = kept
	s.dirty = true
	return nil
}
