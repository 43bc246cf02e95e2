package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/THINKER-ONLY/word-learner/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordlearner [word]",
		Short: "Desktop English vocabulary trainer",
		Long: `wordlearner cycles through your vocabulary list on a timer or on
demand, in random or sequential order, with browse-able history and an
optional AI study assistant.

Examples:
  wordlearner                      # Launch the interactive GUI (default)
  wordlearner apple                # Look up "apple" in the word list
  wordlearner apple --explain      # Look it up and ask the AI assistant
  wordlearner --anki deck.apkg     # Export the word list as an Anki deck`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordlearner.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.WordsFile, "words", "w", flags.WordsFile, "Word list file (JSON array)")
	cmd.Flags().StringVar(&flags.SettingsFile, "settings", flags.SettingsFile, "Display settings file")
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "Ask the AI assistant to explain the looked-up word")
	cmd.Flags().StringVar(&flags.OutputPath, "anki", "", "Export the word list as an Anki package to the given path")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Export legacy CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().StringVar(&flags.AIProvider, "ai-provider", flags.AIProvider, "AI backend: deepseek or gemini")

	// Flag names are long-form only; normalize nothing but keep the
	// hook so aliases stay cheap to add.
	cmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(name)
	})

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("words.file", cmd.Flags().Lookup("words"))
	viper.BindPFlag("settings.file", cmd.Flags().Lookup("settings"))
	viper.BindPFlag("export.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("ai.provider", cmd.Flags().Lookup("ai-provider"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordlearner" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordlearner")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDLEARNER")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetDeepSeekKey retrieves the DeepSeek API key from environment or config
func GetDeepSeekKey() string {
	// First check environment variable
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("ai.deepseek_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("ai.gemini_key")
}
