// Package words implements the vocabulary store: an ordered, JSON-backed
// list of entries with sequential and random retrieval, a bounded
// browse-able history of shown entries, and dirty-flag gated persistence.
package words
