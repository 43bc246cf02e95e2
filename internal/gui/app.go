package gui

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/THINKER-ONLY/word-learner/internal"
	"github.com/THINKER-ONLY/word-learner/internal/ai"
	"github.com/THINKER-ONLY/word-learner/internal/settings"
	"github.com/THINKER-ONLY/word-learner/internal/words"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Display elements
	wordText        *canvas.Text
	posText         *canvas.Text
	translationText *canvas.Text
	countdownLabel  *widget.Label
	statusLabel     *widget.Label
	showChineseChk  *widget.Check
	searchInput     *widget.Entry

	// Navigation buttons
	prevWordBtn *ttwidget.Button
	nextWordBtn *ttwidget.Button

	// State management
	current    words.Entry
	hasCurrent bool
	remaining  int  // countdown seconds until auto-advance
	autoRun    bool // false while paused (history browsing, no words)

	// Collaborators
	store     *words.Store
	settings  *settings.Manager
	assistant *ai.Assistant
	config    *Config

	// Background ticking
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds GUI application configuration
type Config struct {
	WordsFile    string
	SettingsFile string
	DeckName     string
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".local", "share", "wordlearner")

	return &Config{
		WordsFile:    filepath.Join(dataDir, "words.json"),
		SettingsFile: filepath.Join(dataDir, "config.json"),
		DeckName:     "English Vocabulary",
	}
}

// New creates a new GUI application
func New(config *Config, assistant *ai.Assistant) *Application {
	if config == nil {
		config = DefaultConfig()
	} else {
		// Fill in missing fields with defaults
		defaults := DefaultConfig()
		if config.WordsFile == "" {
			config.WordsFile = defaults.WordsFile
		}
		if config.SettingsFile == "" {
			config.SettingsFile = defaults.SettingsFile
		}
		if config.DeckName == "" {
			config.DeckName = defaults.DeckName
		}
	}

	// Ensure the data directory exists
	os.MkdirAll(filepath.Dir(config.WordsFile), 0755)

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("io.github.thinker-only.wordlearner")

	a := &Application{
		app:       myApp,
		config:    config,
		store:     words.New(config.WordsFile),
		settings:  settings.NewManager(config.SettingsFile),
		assistant: assistant,
		ctx:       ctx,
		cancel:    cancel,
	}

	a.setupUI()

	return a
}

// Store exposes the word store, mainly for tests.
func (a *Application) Store() *words.Store {
	return a.store
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Word Learner v%s", internal.Version))
	a.window.Resize(fyne.NewSize(675, 375))

	// Word display: large word, part-of-speech tag and translation
	fg := theme.Color(theme.ColorNameForeground)
	grey := color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}

	a.wordText = canvas.NewText("...", fg)
	a.wordText.TextSize = 52
	a.wordText.TextStyle = fyne.TextStyle{Bold: true}
	a.wordText.Alignment = fyne.TextAlignCenter

	a.posText = canvas.NewText("", grey)
	a.posText.TextSize = 18
	a.posText.TextStyle = fyne.TextStyle{Italic: true}
	a.posText.Alignment = fyne.TextAlignCenter

	a.translationText = canvas.NewText("", grey)
	a.translationText.TextSize = 30
	a.translationText.Alignment = fyne.TextAlignCenter

	wordSection := container.NewVBox(
		a.wordText,
		a.posText,
		a.translationText,
	)

	// Control row: translation toggle and countdown
	a.showChineseChk = widget.NewCheck("Show translation", a.onToggleChinese)
	a.showChineseChk.SetChecked(a.settings.ShowChinese())

	a.countdownLabel = widget.NewLabel("--")

	controlRow := container.NewBorder(nil, nil, a.showChineseChk, a.countdownLabel)

	// Search entry lives in the toolbar row
	a.searchInput = widget.NewEntry()
	a.searchInput.SetPlaceHolder("Find word...")
	a.searchInput.OnSubmitted = func(string) { a.onSearch() }
	searchBtn := ttwidget.NewButtonWithIcon("", theme.SearchIcon(), a.onSearch)

	// Navigation buttons
	a.prevWordBtn = ttwidget.NewButtonWithIcon("Previous", theme.NavigateBackIcon(), a.onPrevWord)
	a.nextWordBtn = ttwidget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), a.onNextWord)

	addBtn := ttwidget.NewButtonWithIcon("", theme.ContentAddIcon(), a.onAddWord)
	editBtn := ttwidget.NewButtonWithIcon("", theme.DocumentCreateIcon(), a.onEditWord)
	deleteBtn := ttwidget.NewButtonWithIcon("", theme.DeleteIcon(), a.onDeleteWord)
	deleteBtn.Importance = widget.DangerImportance

	assistantBtn := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowAssistant)
	historyBtn := ttwidget.NewButtonWithIcon("", theme.HistoryIcon(), a.onShowHistory)
	exportBtn := ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExportToAnki)
	settingsBtn := ttwidget.NewButtonWithIcon("", theme.SettingsIcon(), a.onShowSettings)
	aboutBtn := ttwidget.NewButtonWithIcon("", theme.InfoIcon(), a.onShowAbout)

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(
			addBtn,
			editBtn,
			deleteBtn,
			widget.NewSeparator(),
			assistantBtn,
			historyBtn,
			exportBtn,
			widget.NewSeparator(),
			settingsBtn,
			aboutBtn,
		),
		searchBtn,
		a.searchInput,
	)

	navRow := container.NewGridWithColumns(2, a.prevWordBtn, a.nextWordBtn)

	a.statusLabel = widget.NewLabel("Ready")

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		container.NewVBox(controlRow, navRow, a.statusLabel),
		nil, nil,
		container.NewCenter(wordSection),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.prevWordBtn.SetToolTip("Show the previously displayed word")
	a.nextWordBtn.SetToolTip("Show the next word")
	addBtn.SetToolTip("Add a new word")
	editBtn.SetToolTip("Edit the displayed word")
	deleteBtn.SetToolTip("Delete a word")
	assistantBtn.SetToolTip("Ask the AI study assistant")
	historyBtn.SetToolTip("Show study history")
	exportBtn.SetToolTip("Export the word list as an Anki deck")
	settingsBtn.SetToolTip("Settings")
	aboutBtn.SetToolTip("About")
	searchBtn.SetToolTip("Find a word by English or Chinese")

	a.window.SetOnClosed(func() {
		a.cancel()
		// Flush any unsaved mutations at session end.
		if err := a.store.SaveChanges(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to save words on exit: %v\n", err)
		}
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.startTicker()
	a.showNextWordAndResetTimer()
	a.updateButtonStates()
	a.window.ShowAndRun()
}

// startTicker drives the auto-advance countdown. The tick always runs
// on the UI thread; the store is never touched from this goroutine
// directly.
func (a *Application) startTicker() {
	ticker := time.NewTicker(time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-a.ctx.Done():
				return
			case <-ticker.C:
				fyne.Do(a.tick)
			}
		}
	}()
}

func (a *Application) tick() {
	if !a.autoRun {
		return
	}
	a.remaining--
	if a.remaining > 0 {
		a.countdownLabel.SetText(fmt.Sprintf("%ds", a.remaining))
		return
	}
	a.showNextWord()
	a.updateButtonStates()
	a.resetCountdown()
}

// resetCountdown restarts the auto-advance countdown from the
// configured interval, or pauses when auto-advance is disabled.
func (a *Application) resetCountdown() {
	interval := a.settings.DisplayInterval()
	if interval > 0 && a.hasCurrent {
		a.remaining = interval
		a.autoRun = true
		a.countdownLabel.SetText(fmt.Sprintf("%ds", a.remaining))
	} else {
		a.pauseCountdown()
	}
}

// pauseCountdown stops auto-advance until the next explicit fetch.
func (a *Application) pauseCountdown() {
	a.autoRun = false
	a.countdownLabel.SetText("--")
}

// setDisplay updates the three display texts.
func (a *Application) setDisplay(word, pos, translation string) {
	a.wordText.Text = word
	a.wordText.Refresh()
	a.posText.Text = pos
	a.posText.Refresh()
	a.translationText.Text = translation
	a.translationText.Refresh()
	a.applyTranslationVisibility()
}

func (a *Application) applyTranslationVisibility() {
	if a.settings.ShowChinese() {
		a.translationText.Show()
	} else {
		a.translationText.Hide()
	}
}

// onToggleChinese flips translation visibility without advancing.
func (a *Application) onToggleChinese(checked bool) {
	if err := a.settings.Set(settings.KeyShowChinese, checked); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save settings: %v\n", err)
	}
	a.applyTranslationVisibility()
}

func (a *Application) updateStatus(status string) {
	a.statusLabel.SetText(status)
}
