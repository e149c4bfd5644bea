package piecetable

// Snapshot is a self-contained copy of buffer state: the piece sequence, the
// added region content at capture time, and the total length. It never
// aliases the live buffer's mutable state, so mutating the buffer after
// capture cannot alter a snapshot. The original region is shared by
// reference; it is immutable for the life of the buffer.
//
// Snapshots are opaque and only meaningful to the PieceTable they were
// captured from (or one sharing the same original text). No cross-version
// format is guaranteed.
type Snapshot struct {
	pieces []piece
	added  []byte
	length ByteOffset
}

// Len returns the total byte length of the captured state.
func (s *Snapshot) Len() ByteOffset {
	return s.length
}

// Snapshot captures an independent deep copy of the current buffer state.
func (pt *PieceTable) Snapshot() *Snapshot {
	return &Snapshot{
		pieces: append([]piece(nil), pt.pieces...),
		added:  append([]byte(nil), pt.added...),
		length: pt.length,
	}
}

// Restore replaces the buffer's piece sequence, added region, and length
// with copies of the snapshot's. The line-break index is invalidated, never
// carried through a snapshot; it rebuilds lazily on next use.
func (pt *PieceTable) Restore(s *Snapshot) {
	pt.pieces = append(pt.pieces[:0], s.pieces...)
	pt.added = append(pt.added[:0], s.added...)
	pt.length = s.length
	pt.invalidateLines()
	pt.version++
}
