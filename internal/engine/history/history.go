package history

import (
	"github.com/dshills/piecebuf/internal/engine/piecetable"
)

// DefaultMaxEntries is the undo stack capacity used when none is configured.
const DefaultMaxEntries = 100

// Option is a functional option for configuring a History.
type Option func(*History)

// WithMaxEntries sets the undo stack capacity. Values <= 0 are ignored.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.maxEntries = n
		}
	}
}

// History manages undo/redo for a piece table using whole-buffer checkpoints.
//
// Checkpointing is caller-driven: mutations on the buffer never snapshot by
// themselves. A logical undoable action is whatever span of edits occurred
// between two SaveState calls. The invariant maintained throughout is that
// the top of the undo stack always equals the live buffer's content; undo and
// redo operate purely by restoring a previously captured checkpoint.
type History struct {
	buf        *piecetable.PieceTable
	undoStack  []*Checkpoint
	redoStack  []*Checkpoint
	maxEntries int
}

// NewHistory creates a history manager wrapping the given buffer and
// immediately captures the baseline checkpoint. The baseline is never
// removable by Undo, though it can age out of a full stack.
func NewHistory(buf *piecetable.PieceTable, opts ...Option) *History {
	h := &History{
		buf:        buf,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.undoStack = append(h.undoStack, newCheckpoint(buf))
	return h
}

// SaveState captures the buffer's current content as a new checkpoint and
// pushes it onto the undo stack. The oldest entry is evicted if the stack
// exceeds its capacity, and all redo history is discarded.
func (h *History) SaveState() {
	h.undoStack = append(h.undoStack, newCheckpoint(h.buf))

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}

	h.redoStack = nil
}

// Undo restores the buffer to the previous checkpoint. It returns false
// without touching anything if only the baseline remains.
func (h *History) Undo() bool {
	if len(h.undoStack) <= 1 {
		return false
	}

	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, top)

	h.buf.Restore(h.undoStack[len(h.undoStack)-1].snap)
	return true
}

// Redo restores the buffer to the most recently undone checkpoint. It returns
// false if there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}

	top := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, top)

	h.buf.Restore(top.snap)
	return true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 1
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of entries on the undo stack, baseline
// included.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of entries on the redo stack.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear discards all history and re-baselines on the buffer's current
// content.
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.undoStack = append(h.undoStack, newCheckpoint(h.buf))
	h.redoStack = nil
}

// SetMaxEntries changes the undo stack capacity. If the current stack is
// larger, oldest entries are evicted. Values <= 0 reset to the default.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	h.maxEntries = n

	if len(h.undoStack) > n {
		excess := len(h.undoStack) - n
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the undo stack capacity.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// UndoInfo returns metadata for every entry on the undo stack, oldest first.
func (h *History) UndoInfo() []Info {
	out := make([]Info, len(h.undoStack))
	for i, c := range h.undoStack {
		out[i] = c.info()
	}
	return out
}

// RedoInfo returns metadata for every entry on the redo stack, oldest first.
func (h *History) RedoInfo() []Info {
	out := make([]Info, len(h.redoStack))
	for i, c := range h.redoStack {
		out[i] = c.info()
	}
	return out
}

// PeekUndo returns metadata for the checkpoint Undo would restore, without
// removing anything.
func (h *History) PeekUndo() (Info, bool) {
	if len(h.undoStack) <= 1 {
		return Info{}, false
	}
	return h.undoStack[len(h.undoStack)-2].info(), true
}

// PeekRedo returns metadata for the checkpoint Redo would restore, without
// removing anything.
func (h *History) PeekRedo() (Info, bool) {
	if len(h.redoStack) == 0 {
		return Info{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}
