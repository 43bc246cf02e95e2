package cli

import (
	"os"
	"path/filepath"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	WordsFile    string
	SettingsFile string

	// Lookup flags
	Explain bool

	// Export flags
	AnkiCSV    bool
	DeckName   string
	OutputPath string

	// AI flags
	AIProvider string
}

// DataDir returns the default directory for the word list and settings
// files, following the XDG base directory layout.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "wordlearner")
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	dataDir := DataDir()
	return &Flags{
		WordsFile:    filepath.Join(dataDir, "words.json"),
		SettingsFile: filepath.Join(dataDir, "config.json"),
		DeckName:     "English Vocabulary",
		AIProvider:   "deepseek",
	}
}
