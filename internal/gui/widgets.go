package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// answerLabel is the masked/revealed text of one word-list row. A tap either
// toggles the reveal or, in game mode, opens the cipher game for the item.
type answerLabel struct {
	widget.BaseWidget

	text     string
	revealed func() bool
	onTap    func()

	label *widget.Label
}

func newAnswerLabel(text string, revealed func() bool, onTap func()) *answerLabel {
	l := &answerLabel{
		text:     text,
		revealed: revealed,
		onTap:    onTap,
	}
	l.label = widget.NewLabel(l.display())
	l.label.TextStyle = fyne.TextStyle{Monospace: true}
	l.ExtendBaseWidget(l)
	return l
}

// Tapped implements fyne.Tappable
func (l *answerLabel) Tapped(*fyne.PointEvent) {
	if l.text == "" || l.onTap == nil {
		return
	}
	l.onTap()
	l.Refresh()
}

// Refresh updates the label to the current reveal state
func (l *answerLabel) Refresh() {
	l.label.SetText(l.display())
	l.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget
func (l *answerLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.label)
}

func (l *answerLabel) display() string {
	if l.text == "" {
		return ""
	}
	if l.revealed() {
		return l.text
	}
	return maskText(l.text)
}

// maskText replaces every letter with a bullet, keeping word boundaries
// visible.
func maskText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' {
			b.WriteRune(' ')
		} else {
			b.WriteRune('•')
		}
	}
	return b.String()
}
