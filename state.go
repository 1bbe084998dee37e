package rgui

// maxUndo bounds an editHistory.
const maxUndo = 50

// editHistory is a linear undo/redo stack of text snapshots.
type editHistory struct {
	stack []string
	index int // position of the next snapshot; entries at or past it are redo states
}

// push records text as the state before an edit. Forward history is
// dropped and consecutive duplicates are skipped.
func (h *editHistory) push(text string) {
	if h.index < len(h.stack) {
		h.stack = h.stack[:h.index]
	}
	if n := len(h.stack); n > 0 && h.stack[n-1] == text {
		return
	}
	h.stack = append(h.stack, text)
	if len(h.stack) > maxUndo {
		h.stack = h.stack[1:]
	}
	h.index = len(h.stack)
}

// undo returns the state before current.
func (h *editHistory) undo(current string) (string, bool) {
	if h.index == 0 {
		return "", false
	}
	// Keep current so redo can return to it.
	if h.index == len(h.stack) && h.stack[len(h.stack)-1] != current {
		h.stack = append(h.stack, current)
	}
	h.index--
	return h.stack[h.index], true
}

func (h *editHistory) redo() (string, bool) {
	if h.index >= len(h.stack)-1 {
		return "", false
	}
	h.index++
	return h.stack[h.index], true
}

func (h *editHistory) reset() {
	h.stack = h.stack[:0]
	h.index = 0
}
