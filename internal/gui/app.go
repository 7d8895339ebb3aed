package gui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/spellcast/internal"
	"codeberg.org/snonux/spellcast/internal/catalog"
	"codeberg.org/snonux/spellcast/internal/game"
	"codeberg.org/snonux/spellcast/internal/reveal"
	"codeberg.org/snonux/spellcast/internal/sketch"
	"codeberg.org/snonux/spellcast/internal/speech"
	"codeberg.org/snonux/spellcast/internal/tiles"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Collaborators
	controller *speech.Controller
	reveal     *reveal.Tracker
	strokes    *sketch.Buffer
	engine     *game.Engine
	logViewer  *LogViewer

	// UI elements
	tabs        *container.AppTabs
	statusLabel *widget.Label
	pageStack   *fyne.Container
	overlay     *SketchOverlay
	voiceSelect *widget.Select

	// Toolbar buttons
	slowBtn    *ttwidget.Button
	cursorBtn  *ttwidget.Button
	bluePenBtn *ttwidget.Button
	redPenBtn  *ttwidget.Button
	gameBtn    *ttwidget.Button

	// Row widgets by item ID
	playButtons  map[string]*ttwidget.Button
	answerLabels map[string]*answerLabel

	// State management
	gameMode   bool
	cipherOpen bool
	voices     []speech.Voice

	// Configuration
	config *Config
}

// Config holds GUI application configuration
type Config struct {
	Catalog      *catalog.Catalog
	SpeechConfig *speech.Config
	VoiceID      string
	StartSlow    bool
}

// New creates a new GUI application
func New(config *Config) *Application {
	myApp := app.NewWithID("org.codeberg.snonux.spellcast")
	myApp.SetIcon(GetAppIcon())
	return newWithApp(myApp, config)
}

// newWithApp wires the application onto an existing fyne.App. Tests pass a
// headless app here.
func newWithApp(fyneApp fyne.App, config *Config) *Application {
	if config == nil {
		config = &Config{}
	}
	if config.Catalog == nil {
		config.Catalog = catalog.Default()
	}
	if config.SpeechConfig == nil {
		config.SpeechConfig = speech.DefaultProviderConfig()
	}

	a := &Application{
		app:          fyneApp,
		config:       config,
		reveal:       reveal.NewTracker(),
		strokes:      sketch.NewBuffer(),
		engine:       game.New(tiles.Decompose),
		playButtons:  make(map[string]*ttwidget.Button),
		answerLabels: make(map[string]*answerLabel),
	}

	a.logViewer = NewLogViewer()
	a.logViewer.StartCapture()

	a.setupSpeech()
	a.protect("setup", a.setupUI)

	return a
}

// setupSpeech builds the synthesizer chain and the playback controller.
// Remote providers fall back to local espeak-ng when they fail.
func (a *Application) setupSpeech() {
	synth, err := speech.NewSynthesizer(a.config.SpeechConfig)
	if err != nil {
		log.Printf("Speech provider %s unavailable: %v. Using espeak-ng",
			a.config.SpeechConfig.Provider, err)
		synth, err = speech.NewESpeakSynthesizer(nil)
		if err != nil {
			log.Printf("espeak-ng unavailable: %v. Playback disabled", err)
		}
	} else if a.config.SpeechConfig.Provider != "espeak" {
		if fallback, ferr := speech.NewESpeakSynthesizer(nil); ferr == nil {
			synth = speech.NewSynthesizerWithFallback(synth, fallback)
		}
	}

	if synth == nil {
		return
	}
	a.voices = synth.Voices()

	a.controller = speech.NewController(synth, speech.Callbacks{
		OnStart: func(id string) {
			fyne.Do(func() { a.setRowPlaying(id, true) })
		},
		OnEnd: func(id string) {
			fyne.Do(func() { a.setRowPlaying(id, false) })
		},
		OnError: func(id string, err error) {
			// Speech errors clear the indicator, no dialog
			log.Printf("Speech error for %s: %v", id, err)
			fyne.Do(func() { a.setRowPlaying(id, false) })
		},
	})

	a.controller.SetSlow(a.config.StartSlow)
	a.controller.SetVoice(a.pickVoice())
}

// pickVoice resolves the configured voice ID against the roster
func (a *Application) pickVoice() speech.Voice {
	if a.config.VoiceID != "" {
		for _, v := range a.voices {
			if v.ID == a.config.VoiceID {
				return v
			}
		}
		log.Printf("Voice %q not available, using default", a.config.VoiceID)
	}
	return speech.ChooseDefaultVoice(a.voices)
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("spellcast v%s - %s",
		internal.Version, a.config.Catalog.LessonName))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(900, 700))

	a.statusLabel = widget.NewLabel("Ready")

	a.buildTabs()

	a.overlay = NewSketchOverlay(a.strokes)
	a.pageStack = container.NewStack(a.tabs, a.overlay)

	toolbar := a.buildToolbar()

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), a.statusLabel),
		nil, nil,
		a.pageStack,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.setupKeyboardShortcuts()

	a.window.SetOnClosed(func() {
		if a.controller != nil {
			a.controller.Close()
		}
		a.logViewer.StopCapture()
	})
}

// buildTabs creates the six section tabs with their word rows
func (a *Application) buildTabs() {
	a.tabs = container.NewAppTabs()

	for tabIndex, section := range a.config.Catalog.Sections {
		rows := container.NewVBox()
		for _, row := range section.Rows() {
			rows.Add(a.buildRow(tabIndex, row))
		}
		item := container.NewTabItemWithIcon(section.Title,
			sectionIcon(section.Icon), container.NewVScroll(rows))
		a.tabs.Append(item)
	}

	a.tabs.OnSelected = func(*container.TabItem) {
		// Navigation clears annotations and any open game
		a.clearAnnotations()
		a.closeCipher()
	}
}

// sectionIcon maps a catalog icon name to a theme icon
func sectionIcon(name string) fyne.Resource {
	switch name {
	case "volumeUp":
		return theme.VolumeUpIcon()
	case "document":
		return theme.DocumentIcon()
	case "grid":
		return theme.GridIcon()
	case "question":
		return theme.QuestionIcon()
	case "list":
		return theme.ListIcon()
	case "documentCreate":
		return theme.DocumentCreateIcon()
	default:
		return theme.FileTextIcon()
	}
}

// buildRow creates one word row: number, play button, masked answer
func (a *Application) buildRow(tabIndex int, row catalog.Row) fyne.CanvasObject {
	id := catalog.ItemID(tabIndex, row.Index)
	text := row.Text

	playBtn := ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		a.speakItem(text, id)
	})
	playBtn.SetToolTip("Play")
	if text == "" {
		playBtn.Disable()
	}
	a.playButtons[id] = playBtn

	answer := newAnswerLabel(text,
		func() bool { return a.reveal.Revealed(id) },
		func() { a.onAnswerTapped(id, text) },
	)
	a.answerLabels[id] = answer

	number := widget.NewLabel(fmt.Sprintf("%2d.", row.Index+1))

	return container.NewBorder(nil, nil,
		container.NewHBox(number, playBtn), nil, answer)
}

// onAnswerTapped toggles the reveal, or opens the cipher game in game mode
func (a *Application) onAnswerTapped(id, text string) {
	if a.gameMode {
		a.protect("cipher", func() { a.openCipher(text) })
		return
	}
	a.reveal.Toggle(id)
}

// speakItem plays one catalog item through the controller
func (a *Application) speakItem(text, id string) {
	if a.controller == nil || text == "" {
		return
	}
	a.controller.Speak(text, id)
}

// setRowPlaying flips the play/stop icon of a row's play button
func (a *Application) setRowPlaying(id string, playing bool) {
	btn, ok := a.playButtons[id]
	if !ok {
		// Game prompts carry IDs without buttons
		return
	}
	if playing {
		btn.SetIcon(theme.MediaStopIcon())
		a.updateStatus("Speaking...")
	} else {
		btn.SetIcon(theme.MediaPlayIcon())
		a.updateStatus("Ready")
	}
}

// buildToolbar creates the toolbar with playback, pen and game controls
func (a *Application) buildToolbar() fyne.CanvasObject {
	a.slowBtn = ttwidget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), a.onToggleSlow)
	a.slowBtn.SetToolTip("Toggle slow speech (s)")
	if a.config.StartSlow {
		a.slowBtn.Importance = widget.HighImportance
	}

	voiceNames := make([]string, len(a.voices))
	for i, v := range a.voices {
		voiceNames[i] = v.Name
	}
	a.voiceSelect = widget.NewSelect(voiceNames, a.onVoiceSelected)
	if a.controller != nil {
		a.voiceSelect.SetSelected(a.controller.Voice().Name)
	}

	a.cursorBtn = ttwidget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		a.onToolSelected(sketch.ToolCursor, nil)
	})
	a.cursorBtn.SetToolTip("Cursor (no drawing)")
	a.cursorBtn.Importance = widget.HighImportance

	a.bluePenBtn = ttwidget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		a.onToolSelected(sketch.ToolPen, sketch.InkBlue)
	})
	a.bluePenBtn.SetToolTip("Blue pen")

	a.redPenBtn = ttwidget.NewButtonWithIcon("", theme.ColorChromaticIcon(), func() {
		a.onToolSelected(sketch.ToolPen, sketch.InkRed)
	})
	a.redPenBtn.SetToolTip("Red pen")

	clearBtn := ttwidget.NewButtonWithIcon("", theme.ContentClearIcon(), a.clearAnnotations)
	clearBtn.SetToolTip("Clear drawing (c)")

	a.gameBtn = ttwidget.NewButtonWithIcon("", theme.GridIcon(), a.onToggleGameMode)
	a.gameBtn.SetToolTip("Cipher game mode (g)")

	resetBtn := ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.onReset)
	resetBtn.SetToolTip("Reset reveals, drawing and game (r)")

	logBtn := ttwidget.NewButtonWithIcon("", theme.DocumentIcon(), func() {
		a.logViewer.ShowWindow(a.app)
	})
	logBtn.SetToolTip("Show log")

	helpBtn := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHelp)
	helpBtn.SetToolTip("Help (h)")

	return container.NewHBox(
		a.slowBtn,
		a.voiceSelect,
		widget.NewSeparator(),
		a.cursorBtn,
		a.bluePenBtn,
		a.redPenBtn,
		clearBtn,
		widget.NewSeparator(),
		a.gameBtn,
		resetBtn,
		widget.NewSeparator(),
		logBtn,
		helpBtn,
	)
}

// onToggleSlow flips the speaking rate
func (a *Application) onToggleSlow() {
	if a.controller == nil {
		return
	}
	slow := !a.controller.Slow()
	a.controller.SetSlow(slow)
	if slow {
		a.slowBtn.Importance = widget.HighImportance
		a.updateStatus("Slow speech on")
	} else {
		a.slowBtn.Importance = widget.MediumImportance
		a.updateStatus("Slow speech off")
	}
	a.slowBtn.Refresh()
}

// onVoiceSelected switches the controller voice
func (a *Application) onVoiceSelected(name string) {
	if a.controller == nil {
		return
	}
	for _, v := range a.voices {
		if v.Name == name {
			a.controller.SetVoice(v)
			a.updateStatus(fmt.Sprintf("Voice: %s", v.Name))
			return
		}
	}
}

// onToolSelected switches between the cursor and a pen color
func (a *Application) onToolSelected(tool sketch.Tool, ink color.Color) {
	a.strokes.SetTool(tool)
	if ink != nil {
		a.strokes.SetInk(ink)
	}

	a.cursorBtn.Importance = widget.MediumImportance
	a.bluePenBtn.Importance = widget.MediumImportance
	a.redPenBtn.Importance = widget.MediumImportance
	switch {
	case tool == sketch.ToolCursor:
		a.cursorBtn.Importance = widget.HighImportance
	case ink == sketch.InkBlue:
		a.bluePenBtn.Importance = widget.HighImportance
	default:
		a.redPenBtn.Importance = widget.HighImportance
	}
	a.cursorBtn.Refresh()
	a.bluePenBtn.Refresh()
	a.redPenBtn.Refresh()
}

// clearAnnotations erases all strokes
func (a *Application) clearAnnotations() {
	a.strokes.Clear()
	if a.overlay != nil {
		a.overlay.Refresh()
	}
}

// onToggleGameMode switches item taps between reveal and the cipher game
func (a *Application) onToggleGameMode() {
	a.gameMode = !a.gameMode
	a.clearAnnotations()
	if !a.gameMode {
		a.closeCipher()
		a.gameBtn.Importance = widget.MediumImportance
		a.updateStatus("Game mode off")
	} else {
		a.gameBtn.Importance = widget.HighImportance
		a.updateStatus("Game mode on - tap a word to play")
	}
	a.gameBtn.Refresh()
}

// openCipher loads the word into the engine and shows the game view
func (a *Application) openCipher(text string) {
	if text == "" {
		return
	}
	a.engine.LoadWord(text)
	view := NewCipherView(a.engine,
		func(prompt string) {
			if a.controller != nil {
				a.controller.Speak(prompt, "game")
			}
		},
		a.closeCipher,
	)

	a.clearAnnotations()
	a.cipherOpen = true
	a.pageStack.Objects = []fyne.CanvasObject{view, a.overlay}
	a.pageStack.Refresh()
	a.updateStatus(fmt.Sprintf("Cipher game: %s", maskText(text)))
}

// closeCipher returns from the game view to the word list
func (a *Application) closeCipher() {
	if !a.cipherOpen {
		return
	}
	a.engine.Close()
	a.cipherOpen = false
	a.clearAnnotations()
	a.pageStack.Objects = []fyne.CanvasObject{a.tabs, a.overlay}
	a.pageStack.Refresh()
	a.updateStatus("Ready")
}

// onReset clears reveals, strokes and any running game
func (a *Application) onReset() {
	a.reveal.Reset()
	a.clearAnnotations()
	a.closeCipher()
	for _, l := range a.answerLabels {
		l.Refresh()
	}
	a.updateStatus("Reset")
}

// onShowHelp displays the interaction summary
func (a *Application) onShowHelp() {
	help := `Word list:
  Play button     speak the item
  Tap the dots    reveal or hide the answer
  Drag with pen   draw on the screen

Toolbar:
  s  toggle slow speech
  c  clear the drawing
  g  cipher game mode
  r  reset everything
  h  this help

Cipher game (game mode on, tap a word):
  Tap a tile        hide it into the bank
  Tap a bank tile   select it
  Tap a blank       place the selected tile
  Tap a filled slot return its tile to the bank
  Right-click slot  restore the original tile
  Check             grade the spelling`

	dialog.ShowInformation("spellcast", help, a.window)
}

// setupKeyboardShortcuts wires the single-letter hotkeys
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 's':
			a.onToggleSlow()
		case 'c':
			a.clearAnnotations()
		case 'g':
			a.onToggleGameMode()
		case 'r':
			a.onReset()
		case 'h':
			a.onShowHelp()
		}
	})
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

// protect runs fn under a recover that swaps in the crash screen
func (a *Application) protect(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in %s: %v", name, r)
			a.showCrashScreen(r)
		}
	}()
	fn()
}

// showCrashScreen replaces the window content with a failure notice and a
// restart button that rebuilds the whole UI.
func (a *Application) showCrashScreen(cause interface{}) {
	if a.window == nil {
		return
	}

	message := widget.NewLabel(fmt.Sprintf("Something went wrong:\n\n%v", cause))
	message.Wrapping = fyne.TextWrapWord

	restart := widget.NewButtonWithIcon("Restart", theme.ViewRefreshIcon(), func() {
		a.reveal.Reset()
		a.strokes.Clear()
		a.engine.Close()
		a.gameMode = false
		a.cipherOpen = false
		a.playButtons = make(map[string]*ttwidget.Button)
		a.answerLabels = make(map[string]*answerLabel)
		a.protect("restart", func() {
			old := a.window
			a.setupUI()
			a.window.Show()
			old.Close()
		})
	})

	a.window.SetContent(container.NewCenter(container.NewVBox(message, restart)))
}

// Run starts the GUI application
func (a *Application) Run() {
	if a.window == nil {
		return
	}
	a.window.ShowAndRun()
}
