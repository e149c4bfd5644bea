// Package piecetable implements a piece-table text buffer for the editor
// engine. The document is represented as an ordered sequence of pieces, each
// referencing a span of one of two backing regions:
//
//   - the original region: the text supplied at construction, never mutated
//   - the added region: an append-only store accumulating all inserted text
//
// Insert, delete, and replace rewrite only the piece sequence; document text
// is never copied on edit except for newly inserted bytes appended to the
// added region.
//
// Basic usage:
//
//	pt := piecetable.FromString("Hello, World!")
//
//	pt.Insert(7, "beautiful ")        // "Hello, beautiful World!"
//	removed, _ := pt.Delete(0, 7)     // removed == "Hello, ", text is "beautiful World!"
//
//	snap := pt.Snapshot()             // independent copy of buffer state
//	pt.Restore(snap)                  // roll back to the captured state
//
// Line and column queries are answered from a line-break index: the global
// offset of every '\n', rebuilt lazily after mutation. Columns are raw byte
// offsets within a line, not grapheme counts.
//
// # Concurrency
//
// The buffer assumes a single logical editor session and performs no locking.
// Callers that share a PieceTable across goroutines must supply their own
// mutual exclusion. Snapshots are fully independent copies and are safe to
// read from any goroutine once captured.
package piecetable
