package gui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/THINKER-ONLY/word-learner/internal"
	"github.com/THINKER-ONLY/word-learner/internal/anki"
	"github.com/THINKER-ONLY/word-learner/internal/settings"
	"github.com/THINKER-ONLY/word-learner/internal/words"
)

// onAddWord shows a form dialog for adding a new word.
func (a *Application) onAddWord() {
	wordEntry := widget.NewEntry()
	wordEntry.SetPlaceHolder("e.g. resilience")
	translationEntry := widget.NewEntry()
	translationEntry.SetPlaceHolder("e.g. 韧性")
	posEntry := widget.NewEntry()
	posEntry.SetPlaceHolder("e.g. n. (optional)")

	items := []*widget.FormItem{
		widget.NewFormItem("Word", wordEntry),
		widget.NewFormItem("Translation", translationEntry),
		widget.NewFormItem("Part of speech", posEntry),
	}

	d := dialog.NewForm("Add Word", "Add", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		word := strings.TrimSpace(wordEntry.Text)
		translation := strings.TrimSpace(translationEntry.Text)
		if word == "" || translation == "" {
			dialog.ShowInformation("Add Word", "Word and translation are both required.", a.window)
			return
		}
		if err := a.store.AddWord(word, translation, strings.TrimSpace(posEntry.Text)); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := a.store.SaveChanges(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save words: %w", err), a.window)
			return
		}
		a.updateStatus(fmt.Sprintf("Added %q (%d words total)", word, a.store.Len()))
	}, a.window)
	d.Resize(fyne.NewSize(400, 250))
	d.Show()
}

// onEditWord shows a form dialog prefilled with the displayed word.
func (a *Application) onEditWord() {
	if !a.hasCurrent {
		dialog.ShowInformation("Edit Word", "No word is currently displayed.", a.window)
		return
	}
	original := a.current

	wordEntry := widget.NewEntry()
	wordEntry.SetText(original.Word)
	translationEntry := widget.NewEntry()
	translationEntry.SetText(original.Translation)
	posEntry := widget.NewEntry()
	posEntry.SetText(original.PartOfSpeech)

	items := []*widget.FormItem{
		widget.NewFormItem("Word", wordEntry),
		widget.NewFormItem("Translation", translationEntry),
		widget.NewFormItem("Part of speech", posEntry),
	}

	d := dialog.NewForm("Edit Word", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		word := strings.TrimSpace(wordEntry.Text)
		translation := strings.TrimSpace(translationEntry.Text)
		if word == "" || translation == "" {
			dialog.ShowInformation("Edit Word", "Word and translation are both required.", a.window)
			return
		}
		pos := strings.TrimSpace(posEntry.Text)
		updates := words.EntryUpdate{
			Word:         &word,
			Translation:  &translation,
			PartOfSpeech: &pos,
		}
		if err := a.store.EditWord(original.Word, updates); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := a.store.SaveChanges(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save words: %w", err), a.window)
			return
		}
		a.updateStatus(fmt.Sprintf("Updated %q", word))
		a.showNextWordAndResetTimer()
	}, a.window)
	d.Resize(fyne.NewSize(400, 250))
	d.Show()
}

// onDeleteWord prompts for a word, then confirms before deleting it.
func (a *Application) onDeleteWord() {
	wordEntry := widget.NewEntry()
	if a.hasCurrent {
		wordEntry.SetText(a.current.Word)
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Word", wordEntry),
	}

	d := dialog.NewForm("Delete Word", "Delete", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		word := strings.TrimSpace(wordEntry.Text)
		if word == "" {
			return
		}
		entry, ok := a.store.FindByField(words.FieldWord, word)
		if !ok {
			dialog.ShowInformation("Delete Word", fmt.Sprintf("Word %q was not found.", word), a.window)
			return
		}
		msg := fmt.Sprintf("Delete %q (%s)?", entry.Word, entry.Translation)
		dialog.ShowConfirm("Delete Word", msg, func(yes bool) {
			if !yes {
				return
			}
			if err := a.store.DeleteWord(entry.Word); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if err := a.store.SaveChanges(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save words: %w", err), a.window)
				return
			}
			a.updateStatus(fmt.Sprintf("Deleted %q (%d words left)", entry.Word, a.store.Len()))
			if a.hasCurrent && a.current.Word == entry.Word {
				a.showNextWordAndResetTimer()
			}
		}, a.window)
	}, a.window)
	d.Resize(fyne.NewSize(350, 150))
	d.Show()
}

// onSearch looks up the search box text by English word or Chinese
// translation and shows the match in a dialog.
func (a *Application) onSearch() {
	query := strings.TrimSpace(a.searchInput.Text)
	if query == "" {
		return
	}
	entry, ok := a.store.Find(query)
	if !ok {
		dialog.ShowInformation("Find Word", fmt.Sprintf("No entry matches %q.", query), a.window)
		return
	}
	msg := fmt.Sprintf("%s %s\n%s", entry.Word, entry.PartOfSpeech, entry.Translation)
	dialog.ShowInformation("Find Word", msg, a.window)
}

// onShowSettings shows the settings dialog. Saved values take effect
// immediately.
func (a *Application) onShowSettings() {
	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(strconv.Itoa(a.settings.DisplayInterval()))

	modeSelect := widget.NewSelect([]string{settings.ModeRandom, settings.ModeSequential}, nil)
	modeSelect.SetSelected(a.settings.DisplayMode())

	showChineseCheck := widget.NewCheck("Show translation under the word", nil)
	showChineseCheck.SetChecked(a.settings.ShowChinese())

	items := []*widget.FormItem{
		widget.NewFormItem("Interval (seconds)", intervalEntry),
		widget.NewFormItem("Display mode", modeSelect),
		widget.NewFormItem("Translation", showChineseCheck),
	}

	previousMode := a.settings.DisplayMode()

	d := dialog.NewForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		interval, err := strconv.Atoi(strings.TrimSpace(intervalEntry.Text))
		if err != nil || interval < 0 {
			dialog.ShowInformation("Settings", "Interval must be a non-negative number of seconds.", a.window)
			return
		}
		if err := a.settings.Set(settings.KeyDisplayInterval, interval); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := a.settings.Set(settings.KeyDisplayMode, modeSelect.Selected); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := a.settings.Set(settings.KeyShowChinese, showChineseCheck.Checked); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if modeSelect.Selected != previousMode {
			a.store.ResetSequentialIndex()
		}
		a.showChineseChk.SetChecked(showChineseCheck.Checked)
		a.showNextWordAndResetTimer()
	}, a.window)
	d.Resize(fyne.NewSize(400, 220))
	d.Show()
}

// onShowHistory shows recently displayed words with the browse cursor
// marked.
func (a *Application) onShowHistory() {
	info := a.store.HistoryInfo()
	if info.TotalCount == 0 {
		dialog.ShowInformation("History", "No words have been displayed yet.", a.window)
		return
	}

	stats := widget.NewLabel(fmt.Sprintf("%d words shown, %d unique", info.TotalCount, info.UniqueWords))

	var sb strings.Builder
	for i, e := range a.store.History() {
		marker := "   "
		if i == info.CurrentIndex {
			marker = ">> "
		}
		fmt.Fprintf(&sb, "%s%s  %s\n", marker, e.Word, e.Translation)
	}
	list := widget.NewLabel(sb.String())
	list.TextStyle = fyne.TextStyle{Monospace: true}

	content := container.NewBorder(stats, nil, nil, nil, container.NewVScroll(list))

	d := dialog.NewCustom("History", "Close", content, a.window)
	d.Resize(fyne.NewSize(350, 400))
	d.Show()
}

// onExportToAnki asks for a destination and writes an Anki package, or
// a CSV when the chosen name ends in .csv.
func (a *Application) onExportToAnki() {
	if a.store.Len() == 0 {
		dialog.ShowInformation("Export", "There are no words to export.", a.window)
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		cards := anki.FromEntries(a.store.Words())

		if strings.HasSuffix(strings.ToLower(path), ".csv") {
			gen := anki.NewGenerator(&anki.GeneratorOptions{OutputPath: path, IncludeHeaders: true})
			gen.AddCards(cards)
			err = gen.GenerateCSV()
		} else {
			gen := anki.NewAPKGGenerator(a.config.DeckName)
			gen.AddCards(cards)
			err = gen.GenerateAPKG(path)
		}
		if err != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
			return
		}
		a.updateStatus(fmt.Sprintf("Exported %d cards to %s", len(cards), path))
		dialog.ShowInformation("Export", fmt.Sprintf("Exported %d cards.", len(cards)), a.window)
	}, a.window)
	fd.SetFileName(internal.SanitizeFilename(a.config.DeckName) + ".apkg")
	fd.Show()
}

// onShowAbout shows the about dialog.
func (a *Application) onShowAbout() {
	msg := fmt.Sprintf("Word Learner v%s\n\nA flashcard trainer for English vocabulary\nwith Chinese translations.", internal.Version)
	dialog.ShowInformation("About Word Learner", msg, a.window)
}
