package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/THINKER-ONLY/word-learner/internal/ai"
	"github.com/THINKER-ONLY/word-learner/internal/anki"
	"github.com/THINKER-ONLY/word-learner/internal/cli"
	"github.com/THINKER-ONLY/word-learner/internal/gui"
	"github.com/THINKER-ONLY/word-learner/internal/words"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --anki export
	if flags.OutputPath != "" {
		return exportDeck(flags)
	}

	// Handle word lookup
	if len(args) > 0 {
		return lookupWord(args[0], flags)
	}

	// No input provided - launch GUI mode by default
	config := &gui.Config{
		WordsFile:    flags.WordsFile,
		SettingsFile: flags.SettingsFile,
		DeckName:     flags.DeckName,
	}
	gui.New(config, newAssistant(flags)).Run()
	return nil
}

// newAssistant builds the study assistant for the selected backend.
// Returns nil when no API key is available.
func newAssistant(flags *cli.Flags) *ai.Assistant {
	switch flags.AIProvider {
	case "gemini":
		if key := cli.GetGeminiKey(); key != "" {
			return ai.NewAssistant(ai.NewGemini(key))
		}
	default:
		if key := cli.GetDeepSeekKey(); key != "" {
			return ai.NewAssistant(ai.NewDeepSeek(key, ""))
		}
	}
	return nil
}

func exportDeck(flags *cli.Flags) error {
	store := words.New(flags.WordsFile)
	if store.Len() == 0 {
		return fmt.Errorf("no words to export in %s", flags.WordsFile)
	}

	cards := anki.FromEntries(store.Words())

	if flags.AnkiCSV || strings.HasSuffix(strings.ToLower(flags.OutputPath), ".csv") {
		gen := anki.NewGenerator(&anki.GeneratorOptions{
			OutputPath:     flags.OutputPath,
			IncludeHeaders: true,
		})
		gen.AddCards(cards)
		if err := gen.GenerateCSV(); err != nil {
			return fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		gen := anki.NewAPKGGenerator(flags.DeckName)
		gen.AddCards(cards)
		if err := gen.GenerateAPKG(flags.OutputPath); err != nil {
			return fmt.Errorf("failed to generate Anki package: %w", err)
		}
	}

	fmt.Printf("Exported %d cards to %s\n", len(cards), flags.OutputPath)
	return nil
}

func lookupWord(query string, flags *cli.Flags) error {
	store := words.New(flags.WordsFile)

	entry, ok := store.Find(query)
	if !ok {
		return fmt.Errorf("word %q not found in %s", query, flags.WordsFile)
	}

	fmt.Printf("%s %s\n%s\n", entry.Word, entry.PartOfSpeech, entry.Translation)

	if flags.Explain {
		assistant := newAssistant(flags)
		if assistant == nil {
			fmt.Fprintln(os.Stderr, "Warning: no AI provider configured, skipping explanation")
			return nil
		}
		answer, err := assistant.WordExplanation(context.Background(), entry)
		if err != nil {
			return fmt.Errorf("explanation failed: %w", err)
		}
		fmt.Printf("\n%s\n", answer)
	}

	return nil
}
