// Package history provides checkpoint-based undo/redo for the piece table.
//
// Unlike delta-based schemes that record per-edit inverse operations, this
// history captures whole-buffer checkpoints: each entry is a self-contained
// copy of the piece sequence and added region at capture time. That makes
// undo and redo a pure restore with no replay, at the cost of memory
// proportional to buffer size per checkpoint.
//
// Checkpointing is caller-driven:
//
//	buf := piecetable.FromString("Hello")
//	hist := history.NewHistory(buf, history.WithMaxEntries(200))
//
//	buf.Insert(5, ", World")
//	hist.SaveState() // one undoable unit, however many edits preceded it
//
//	hist.Undo() // back to "Hello"
//	hist.Redo() // forward to "Hello, World"
//
// Construction captures a baseline checkpoint so the pre-edit state is always
// reachable; Undo never pops past it. SaveState clears the redo stack, so
// history is linear with no branching.
//
// Like the piece table it wraps, History assumes a single editor session and
// performs no locking.
package history
