package gui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/THINKER-ONLY/word-learner/internal/words"
)

// onShowAssistant opens the AI study assistant dialog for the word
// currently on screen.
func (a *Application) onShowAssistant() {
	if a.assistant == nil || !a.assistant.Configured() {
		dialog.ShowInformation("Study Assistant",
			"No AI provider is configured.\nSet DEEPSEEK_API_KEY or GEMINI_API_KEY and restart.", a.window)
		return
	}
	if !a.hasCurrent {
		dialog.ShowInformation("Study Assistant", "No word is currently displayed.", a.window)
		return
	}

	// Snapshot so the auto-advance timer cannot swap the word under a
	// running request.
	entry := a.current

	output := widget.NewLabel(fmt.Sprintf("Ask about %q.", entry.Word))
	output.Wrapping = fyne.TextWrapWord

	scroll := container.NewVScroll(output)
	scroll.SetMinSize(fyne.NewSize(450, 250))

	busy := widget.NewProgressBarInfinite()
	busy.Hide()

	run := func(label string, call func(context.Context, words.Entry) (string, error)) {
		busy.Show()
		output.SetText(fmt.Sprintf("%s for %q...", label, entry.Word))
		go func() {
			answer, err := call(a.ctx, entry)
			fyne.Do(func() {
				busy.Hide()
				if err != nil {
					output.SetText(fmt.Sprintf("Request failed: %v", err))
					return
				}
				output.SetText(answer)
			})
		}()
	}

	explainBtn := widget.NewButton("Explain", func() {
		run("Explanation", a.assistant.WordExplanation)
	})
	tipsBtn := widget.NewButton("Memory Tips", func() {
		run("Memory tips", a.assistant.MemoryTips)
	})
	examplesBtn := widget.NewButton("Examples", func() {
		run("Example sentences", a.assistant.ExampleSentences)
	})
	quizBtn := widget.NewButton("Quiz", func() {
		run("Quiz", a.assistant.WordTest)
	})

	chatInput := widget.NewEntry()
	chatInput.SetPlaceHolder("Ask your own question...")
	ask := func() {
		message := strings.TrimSpace(chatInput.Text)
		if message == "" {
			return
		}
		chatInput.SetText("")
		busy.Show()
		output.SetText("Thinking...")
		go func() {
			answer, err := a.assistant.Chat(a.ctx, message, entry)
			fyne.Do(func() {
				busy.Hide()
				if err != nil {
					output.SetText(fmt.Sprintf("Request failed: %v", err))
					return
				}
				output.SetText(answer)
			})
		}()
	}
	chatInput.OnSubmitted = func(string) { ask() }
	askBtn := widget.NewButton("Ask", ask)

	content := container.NewBorder(
		container.NewVBox(
			container.NewGridWithColumns(4, explainBtn, tipsBtn, examplesBtn, quizBtn),
			busy,
		),
		container.NewBorder(nil, nil, nil, askBtn, chatInput),
		nil, nil,
		scroll,
	)

	d := dialog.NewCustom(fmt.Sprintf("Study Assistant (%s)", a.assistant.ProviderName()), "Close", content, a.window)
	d.Resize(fyne.NewSize(500, 420))
	d.Show()
}
