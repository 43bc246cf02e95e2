package gui

import (
	"github.com/THINKER-ONLY/word-learner/internal/settings"
)

// showNextWordAndResetTimer fetches a fresh word and restarts the
// auto-advance countdown.
func (a *Application) showNextWordAndResetTimer() {
	a.showNextWord()
	a.updateButtonStates()
	a.resetCountdown()
}

// showNextWord fetches a word according to the configured display mode
// and shows it. An empty store degrades to a placeholder display and
// pauses the countdown.
func (a *Application) showNextWord() {
	var ok bool
	if a.settings.DisplayMode() == settings.ModeRandom {
		a.current, ok = a.store.RandomWord()
	} else {
		a.current, ok = a.store.NextWord()
	}
	a.hasCurrent = ok

	if ok {
		a.setDisplay(a.current.Word, a.current.PartOfSpeech, a.current.Translation)
	} else {
		a.setDisplay("No words", "", "Please add words first.")
		a.pauseCountdown()
	}
}

// onPrevWord browses one step back in the history. Auto-advance pauses
// while the user is looking at older words.
func (a *Application) onPrevWord() {
	if prev, ok := a.store.PreviousWord(); ok {
		a.current = prev
		a.hasCurrent = true
		a.setDisplay(prev.Word, prev.PartOfSpeech, prev.Translation)
		a.pauseCountdown()
	}
	a.updateButtonStates()
}

// onNextWord replays forward history first; once the cursor is back at
// the newest entry, fresh words are fetched again and the countdown
// restarts.
func (a *Application) onNextWord() {
	if a.store.HasNextHistoryWord() {
		next, ok := a.store.NextHistoryWord()
		if ok {
			a.current = next
			a.hasCurrent = true
			a.setDisplay(next.Word, next.PartOfSpeech, next.Translation)

			if a.store.IsAtHistoryEnd() {
				a.resetCountdown()
			} else {
				a.pauseCountdown()
			}
		}
	} else {
		a.showNextWordAndResetTimer()
	}
	a.updateButtonStates()
}

// updateButtonStates enables the previous button only when the history
// has somewhere to go back to.
func (a *Application) updateButtonStates() {
	if a.store.HasPreviousWord() {
		a.prevWordBtn.Enable()
	} else {
		a.prevWordBtn.Disable()
	}
}
