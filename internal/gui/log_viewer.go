package gui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogViewer is a widget that collects the app's log output and shows it in
// a separate window, newest message first.
type LogViewer struct {
	widget.BaseWidget

	content    *fyne.Container
	logEntry   *widget.Entry
	scrollView *container.Scroll

	mu          sync.Mutex
	messages    []string
	maxMessages int
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{
		maxMessages: 1000,
		messages:    make([]string, 0),
	}

	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable() // read-only
	v.logEntry.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(480, 300))
	v.scrollView.Direction = container.ScrollBoth

	v.content = container.NewBorder(
		widget.NewLabel("Log messages (newest first):"),
		nil,
		nil,
		nil,
		v.scrollView,
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// StartCapture routes the log package output into the viewer.
func (v *LogViewer) StartCapture() {
	log.SetOutput(v)
}

// StopCapture restores the default log output.
func (v *LogViewer) StopCapture() {
	log.SetOutput(os.Stderr)
}

// Write implements io.Writer for the log package
func (v *LogViewer) Write(p []byte) (n int, err error) {
	message := strings.TrimRight(string(p), "\n")
	if message != "" {
		v.AddMessage(message)
	}
	return len(p), nil
}

// ShowWindow opens the viewer in its own window
func (v *LogViewer) ShowWindow(app fyne.App) {
	w := app.NewWindow("spellcast - Log")
	w.SetContent(v)
	w.Resize(fyne.NewSize(520, 360))
	w.Show()
}

// AddMessage adds a message to the log
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	timestamp := time.Now().Format("15:04:05")
	fullMessage := fmt.Sprintf("[%s] %s", timestamp, message)

	// Newest first
	v.messages = append([]string{fullMessage}, v.messages...)
	if len(v.messages) > v.maxMessages {
		v.messages = v.messages[:v.maxMessages]
	}

	text := strings.Join(v.messages, "\n")
	fyne.Do(func() {
		v.logEntry.SetText(text)
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}

// Clear clears all log messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.messages = v.messages[:0]

	fyne.Do(func() {
		v.logEntry.SetText("")
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}
