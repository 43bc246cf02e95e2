package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/THINKER-ONLY/word-learner/internal/testutil"
	"github.com/THINKER-ONLY/word-learner/internal/words"
)

func TestFromEntries(t *testing.T) {
	entries := []words.Entry{
		{Word: "apple", Translation: "苹果", PartOfSpeech: "n."},
		{Word: "run", Translation: "跑", PartOfSpeech: "v."},
	}

	cards := FromEntries(entries)

	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}
	if cards[0].Word != "apple" || cards[0].Translation != "苹果" || cards[0].PartOfSpeech != "n." {
		t.Errorf("Unexpected first card: %+v", cards[0])
	}
	if cards[1].Word != "run" {
		t.Errorf("Card order not preserved: %+v", cards[1])
	}
}

func TestNewGeneratorDefaults(t *testing.T) {
	gen := NewGenerator(nil)

	if gen.options.OutputPath != "anki_import.csv" {
		t.Errorf("Unexpected default output path: %s", gen.options.OutputPath)
	}
	if !gen.options.IncludeHeaders {
		t.Error("Expected headers enabled by default")
	}
}

func TestGenerateCSV(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "export.csv")
	gen := NewGenerator(&GeneratorOptions{OutputPath: outPath, IncludeHeaders: true})
	gen.AddCards([]Card{
		{Word: "apple", Translation: "苹果", PartOfSpeech: "n."},
		{Word: "blue", Translation: "蓝色", PartOfSpeech: "adj."},
	})

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "Word" {
		t.Errorf("Unexpected header row: %v", records[0])
	}
	if records[1][0] != "apple" || records[1][1] != "苹果" || records[1][2] != "n." {
		t.Errorf("Unexpected first row: %v", records[1])
	}
}

func TestGenerateCSVWithoutHeaders(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "export.csv")
	gen := NewGenerator(&GeneratorOptions{OutputPath: outPath})
	gen.AddCard(Card{Word: "apple", Translation: "苹果"})

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	testutil.AssertFileContains(t, outPath, "apple")

	f, _ := os.Open(outPath)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("Expected a single data row, got %d", len(records))
	}
}
