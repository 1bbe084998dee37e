package rgui

// ClipboardProvider is the system clipboard as seen by the engine. Native
// backends supply one; TextBox reads it on Ctrl+V and writes it on Ctrl+C.
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" when it holds none.
	GetText() string
	SetText(text string)
}

var clipboardProvider ClipboardProvider

// SetClipboardProvider installs the clipboard used by text widgets. A nil
// provider disables copy and paste.
//
//	rgui.SetClipboardProvider(window.Clipboard())
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// ClipboardGetText returns the clipboard text, or "" without a provider.
func ClipboardGetText() string {
	if clipboardProvider == nil {
		return ""
	}
	return clipboardProvider.GetText()
}

// ClipboardSetText writes text to the clipboard. Without a provider it does
// nothing.
func ClipboardSetText(text string) {
	if clipboardProvider == nil {
		return
	}
	clipboardProvider.SetText(text)
}
