package logic

import (
	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
)

const notifyTitle = "tasklist"

// Notifier sends a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends notifications through beeep.
type DesktopNotifier struct{}

// Notify implements Notifier.
func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

// ReadAll implements Clipboard.
func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// notifyDone announces a completed task. Failures are only logged.
func (h *Handler) notifyDone(description string) {
	if h.Notifier == nil {
		return
	}
	if err := h.Notifier.Notify(notifyTitle, "Done: "+description); err != nil {
		h.Logger.Warn("notification failed", "err", err)
	}
}
