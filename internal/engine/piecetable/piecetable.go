package piecetable

import (
	"errors"
	"strings"
)

// Errors returned by piece table operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrLineOutOfRange   = errors.New("line out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrEmptySearch      = errors.New("empty search text")
)

// PieceTable is a text buffer that stores the document as an ordered sequence
// of references into two backing regions: the immutable original text and an
// append-only added buffer. Edits rewrite only the piece sequence; document
// text is never copied except for newly inserted bytes.
//
// Pieces are kept in a flat ordered slice with linear lookup and splice.
// Lookups and edits are O(pieces), which is the right trade for typical
// editing sessions; a balanced order-statistics index would be needed for
// logarithmic edits on pathological piece counts.
type PieceTable struct {
	original string
	added    []byte
	pieces   []piece
	length   ByteOffset
	version  uint64

	// Lazily rebuilt offsets of every '\n' in the document, ascending.
	lineBreaks []ByteOffset
	lineValid  bool
}

// New creates a new empty piece table.
func New() *PieceTable {
	return &PieceTable{}
}

// FromString creates a piece table with initial content.
// The initial text becomes the immutable original region, referenced by a
// single piece spanning the whole text.
func FromString(s string) *PieceTable {
	pt := &PieceTable{
		original: s,
		length:   ByteOffset(len(s)),
	}
	if len(s) > 0 {
		pt.pieces = []piece{{region: RegionOriginal, start: 0, length: ByteOffset(len(s))}}
	}
	return pt
}

// Read Operations

// Len returns the total byte length of the buffer.
func (pt *PieceTable) Len() ByteOffset {
	return pt.length
}

// IsEmpty returns true if the buffer is empty.
func (pt *PieceTable) IsEmpty() bool {
	return pt.length == 0
}

// Version returns a counter that increases on every successful mutation,
// including restores. Useful for cheap change detection by embedders.
func (pt *PieceTable) Version() uint64 {
	return pt.version
}

// Text returns the full buffer content as a string.
func (pt *PieceTable) Text() string {
	var sb strings.Builder
	sb.Grow(int(pt.length))
	for _, p := range pt.pieces {
		sb.WriteString(pt.regionText(p.region, p.start, p.end()))
	}
	return sb.String()
}

// TextRange returns text in the byte range [start, end).
// start == end is allowed and yields the empty string.
// Cost is proportional to the number of pieces overlapping the range.
func (pt *PieceTable) TextRange(start, end ByteOffset) (string, error) {
	if start < 0 || end > pt.length || start > end {
		return "", ErrRangeInvalid
	}
	if start == end {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(int(end - start))

	var running ByteOffset
	for _, p := range pt.pieces {
		if running >= end {
			break
		}
		pieceStart := running
		pieceEnd := running + p.length
		running = pieceEnd

		if pieceEnd <= start {
			continue
		}

		from := p.start
		if start > pieceStart {
			from += start - pieceStart
		}
		to := p.end()
		if end < pieceEnd {
			to -= pieceEnd - end
		}
		sb.WriteString(pt.regionText(p.region, from, to))
	}

	return sb.String(), nil
}

// CharAt returns the byte at the given offset.
func (pt *PieceTable) CharAt(offset ByteOffset) (byte, error) {
	if offset < 0 || offset >= pt.length {
		return 0, ErrOffsetOutOfRange
	}

	idx, within := pt.findPieceAt(offset)
	// A boundary offset attributes to the preceding piece; reads want the
	// piece that owns the byte itself.
	if within == pt.pieces[idx].length {
		idx++
		within = 0
	}
	p := pt.pieces[idx]
	return pt.regionText(p.region, p.start+within, p.start+within+1)[0], nil
}

// Write Operations

// Insert inserts text at the given offset. The text is appended verbatim to
// the added region; only the piece sequence is rewritten. Inserting the empty
// string is a no-op. On error, buffer state is unchanged.
func (pt *PieceTable) Insert(offset ByteOffset, text string) error {
	if offset < 0 || offset > pt.length {
		return ErrOffsetOutOfRange
	}
	if text == "" {
		return nil
	}

	addStart := ByteOffset(len(pt.added))
	pt.added = append(pt.added, text...)
	newPiece := piece{region: RegionAdded, start: addStart, length: ByteOffset(len(text))}

	if len(pt.pieces) == 0 {
		pt.pieces = append(pt.pieces, newPiece)
	} else {
		idx, within := pt.findPieceAt(offset)
		target := pt.pieces[idx]

		switch {
		case within == 0:
			pt.splice(idx, idx, newPiece)
		case within == target.length:
			pt.splice(idx+1, idx+1, newPiece)
		default:
			left := piece{region: target.region, start: target.start, length: within}
			right := piece{region: target.region, start: target.start + within, length: target.length - within}
			pt.splice(idx, idx+1, left, newPiece, right)
		}
	}

	pt.length += ByteOffset(len(text))
	pt.invalidateLines()
	pt.version++
	return nil
}

// Delete removes text in the byte range [start, end) and returns the removed
// text. The range must be non-empty. On error, buffer state is unchanged.
func (pt *PieceTable) Delete(start, end ByteOffset) (string, error) {
	if start < 0 || end > pt.length || start >= end {
		return "", ErrRangeInvalid
	}

	removed, err := pt.TextRange(start, end)
	if err != nil {
		return "", err
	}

	firstIdx, firstWithin := pt.findPieceAt(start)
	// A start boundary attributed to the preceding piece means that piece is
	// untouched; the deletion begins at the next one.
	if firstWithin == pt.pieces[firstIdx].length {
		firstIdx++
		firstWithin = 0
	}
	// For the exclusive end bound the preceding-piece attribution is exactly
	// what we want: lastWithin is the count of deleted bytes in that piece.
	lastIdx, lastWithin := pt.findPieceAt(end)

	first := pt.pieces[firstIdx]
	last := pt.pieces[lastIdx]

	left := piece{region: first.region, start: first.start, length: firstWithin}
	right := piece{region: last.region, start: last.start + lastWithin, length: last.length - lastWithin}
	pt.splice(firstIdx, lastIdx+1, left, right)

	pt.length -= end - start
	pt.invalidateLines()
	pt.version++
	return removed, nil
}

// Replace replaces the byte range [start, end) with new text and returns the
// removed text. It is composed as Delete followed by Insert at start; the two
// steps validate independently.
func (pt *PieceTable) Replace(start, end ByteOffset, text string) (string, error) {
	removed, err := pt.Delete(start, end)
	if err != nil {
		return "", err
	}
	if err := pt.Insert(start, text); err != nil {
		return "", err
	}
	return removed, nil
}

// Internal helpers

// findPieceAt locates the piece containing offset and the in-piece offset.
// The walk prefers the earlier piece on a boundary tie, so an offset exactly
// at a piece boundary is attributed to the preceding piece with an in-piece
// offset equal to that piece's length. An offset equal to the total length
// falls to the final piece at its end (the append position).
// Must not be called with an empty piece sequence.
func (pt *PieceTable) findPieceAt(offset ByteOffset) (int, ByteOffset) {
	var running ByteOffset
	for i, p := range pt.pieces {
		if running+p.length >= offset {
			return i, offset - running
		}
		running += p.length
	}
	last := len(pt.pieces) - 1
	return last, pt.pieces[last].length
}

// splice replaces pieces[i:j] with the given replacements, eliding any
// zero-length entries so degenerate pieces never persist in the sequence.
func (pt *PieceTable) splice(i, j int, repl ...piece) {
	kept := 0
	for _, p := range repl {
		if p.length > 0 {
			kept++
		}
	}

	out := make([]piece, 0, len(pt.pieces)-(j-i)+kept)
	out = append(out, pt.pieces[:i]...)
	for _, p := range repl {
		if p.length > 0 {
			out = append(out, p)
		}
	}
	out = append(out, pt.pieces[j:]...)
	pt.pieces = out
}

// regionText returns the [from, to) slice of the named region.
func (pt *PieceTable) regionText(r Region, from, to ByteOffset) string {
	if r == RegionOriginal {
		return pt.original[from:to]
	}
	return string(pt.added[from:to])
}
