// Package anki exports the vocabulary list as Anki import files,
// either a plain CSV or a full .apkg package.
package anki

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/THINKER-ONLY/word-learner/internal/words"
)

// Card represents a single Anki flashcard built from a vocabulary entry.
type Card struct {
	Word         string // The English word
	Translation  string // Chinese translation
	PartOfSpeech string // Optional part of speech tag
}

// FromEntries converts store entries to cards, preserving order.
func FromEntries(entries []words.Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, Card{
			Word:         e.Word,
			Translation:  e.Translation,
			PartOfSpeech: e.PartOfSpeech,
		})
	}
	return cards
}

// GeneratorOptions configures the CSV export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible CSV import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki CSV generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddCards adds several cards at once
func (g *Generator) AddCards(cards []Card) {
	g.cards = append(g.cards, cards...)
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if g.options.IncludeHeaders {
		headers := []string{"Word", "Translation", "PartOfSpeech"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{card.Word, card.Translation, card.PartOfSpeech}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card for %q: %w", card.Word, err)
		}
	}

	return nil
}
