package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/spellcast/internal/game"
)

// chip colors
var (
	chipFill         = color.NRGBA{R: 0xf2, G: 0xf4, B: 0xf8, A: 0xff}
	chipSlotFill     = color.NRGBA{R: 0xdd, G: 0xe4, B: 0xf0, A: 0xff}
	chipSelectedFill = color.NRGBA{R: 0xa8, G: 0xc7, B: 0xfa, A: 0xff}
	chipCorrectFill  = color.NRGBA{R: 0xa6, G: 0xda, B: 0x95, A: 0xff}
	chipWrongFill    = color.NRGBA{R: 0xf0, G: 0xa0, B: 0xa8, A: 0xff}
	chipText         = color.NRGBA{R: 0x24, G: 0x27, B: 0x3a, A: 0xff}
)

// tileChip is a tappable letter tile used for both the word slots and the
// bank row of the cipher game.
type tileChip struct {
	widget.BaseWidget

	text     string
	fill     color.Color
	onTap    func()
	onAltTap func()
}

func newTileChip(text string, fill color.Color, onTap func()) *tileChip {
	c := &tileChip{text: text, fill: fill, onTap: onTap}
	c.ExtendBaseWidget(c)
	return c
}

// Tapped implements fyne.Tappable
func (c *tileChip) Tapped(*fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap()
	}
}

// TappedSecondary restores a hidden slot
func (c *tileChip) TappedSecondary(*fyne.PointEvent) {
	if c.onAltTap != nil {
		c.onAltTap()
	}
}

// CreateRenderer implements fyne.Widget
func (c *tileChip) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(c.fill)
	bg.CornerRadius = 6
	label := canvas.NewText(c.text, chipText)
	label.TextSize = 28
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Alignment = fyne.TextAlignCenter
	return &chipRenderer{chip: c, bg: bg, label: label}
}

type chipRenderer struct {
	chip  *tileChip
	bg    *canvas.Rectangle
	label *canvas.Text
}

func (r *chipRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.label.Resize(size)
	r.label.Move(fyne.NewPos(0, (size.Height-r.label.MinSize().Height)/2))
}

func (r *chipRenderer) MinSize() fyne.Size {
	min := r.label.MinSize()
	return fyne.NewSize(min.Width+24, min.Height+16)
}

func (r *chipRenderer) Refresh() {
	r.bg.FillColor = r.chip.fill
	r.label.Text = r.chip.text
	r.bg.Refresh()
	r.label.Refresh()
}

func (r *chipRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.label}
}

func (r *chipRenderer) Destroy() {}

// CipherView is the fill-in-the-blank overlay for one word. All game rules
// live in the engine; the view only maps taps to engine calls and redraws.
type CipherView struct {
	widget.BaseWidget

	engine  *game.Engine
	onSpeak func(text string)
	onClose func()

	content     *fyne.Container
	slotRow     *fyne.Container
	bankRow     *fyne.Container
	resultLabel *widget.Label
}

// NewCipherView creates the game view for the word already loaded into the
// engine.
func NewCipherView(engine *game.Engine, onSpeak func(string), onClose func()) *CipherView {
	v := &CipherView{
		engine:  engine,
		onSpeak: onSpeak,
		onClose: onClose,
	}

	v.slotRow = container.NewHBox()
	v.bankRow = container.NewHBox()
	v.resultLabel = widget.NewLabel("")
	v.resultLabel.Alignment = fyne.TextAlignCenter

	playBtn := ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		v.onSpeak(v.engine.Word())
	})
	playBtn.SetToolTip("Hear the word")

	checkBtn := ttwidget.NewButtonWithIcon("Check", theme.ConfirmIcon(), v.onCheck)
	checkBtn.SetToolTip("Check the spelling")

	resetBtn := ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		word := v.engine.Word()
		v.engine.LoadWord(word)
		v.refreshGame()
	})
	resetBtn.SetToolTip("Start over")

	closeBtn := ttwidget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		v.engine.Close()
		v.onClose()
	})
	closeBtn.SetToolTip("Back to the word list")

	buttons := container.NewHBox(playBtn, checkBtn, resetBtn, closeBtn)

	v.content = container.NewVBox(
		widget.NewLabelWithStyle("Tap tiles to hide them, then spell the word back",
			fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		container.NewCenter(v.slotRow),
		widget.NewSeparator(),
		container.NewCenter(v.bankRow),
		v.resultLabel,
		container.NewCenter(buttons),
	)

	v.ExtendBaseWidget(v)
	v.refreshGame()
	return v
}

// CreateRenderer implements fyne.Widget
func (v *CipherView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewPadded(v.content))
}

// onCheck runs the check and speaks the outcome
func (v *CipherView) onCheck() {
	switch v.engine.Check() {
	case game.ResultCorrect:
		v.onSpeak("Correct! " + v.engine.Word())
	case game.ResultIncorrect:
		v.onSpeak("Not quite, try again")
	}
	v.refreshGame()
}

// refreshGame rebuilds both tile rows from the engine state
func (v *CipherView) refreshGame() {
	checked := v.engine.State() == game.StateChecked
	result := v.engine.Result()

	v.slotRow.Objects = nil
	for i, t := range v.engine.Tiles() {
		i := i

		if !v.engine.Hidden(i) {
			chip := newTileChip(t.Text, chipFill, func() {
				v.engine.HideTile(i)
				v.refreshGame()
			})
			v.slotRow.Add(chip)
			continue
		}

		text := "_"
		fill := chipSlotFill
		if placed, ok := v.engine.PlacedAt(i); ok {
			text = placed.Text
			if checked {
				if result == game.ResultCorrect {
					fill = chipCorrectFill
				} else {
					fill = chipWrongFill
				}
			}
		}
		chip := newTileChip(text, fill, func() {
			v.engine.PlaceAt(i)
			v.refreshGame()
		})
		chip.onAltTap = func() {
			v.engine.UnhideTile(i)
			v.refreshGame()
		}
		v.slotRow.Add(chip)
	}

	v.bankRow.Objects = nil
	for _, b := range v.engine.Bank() {
		b := b
		fill := chipFill
		if v.engine.SelectedBank() == b.ID {
			fill = chipSelectedFill
		}
		v.bankRow.Add(newTileChip(b.Tile.Text, fill, func() {
			v.engine.SelectBankTile(b.ID)
			v.refreshGame()
		}))
	}

	switch {
	case checked && result == game.ResultCorrect:
		v.resultLabel.SetText("Correct!")
	case checked && result == game.ResultIncorrect:
		v.resultLabel.SetText("Not quite - move the tiles and check again")
	default:
		v.resultLabel.SetText("")
	}

	v.content.Refresh()
}
