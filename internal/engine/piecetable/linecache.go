package piecetable

import "sort"

// Line-break index maintenance. The index holds the global offset of every
// '\n' in the document, ascending. It is invalidated on every structural
// mutation and rebuilt in full on first use; there is no incremental patching.

// invalidateLines marks the index stale. Rebuild is always lazy.
func (pt *PieceTable) invalidateLines() {
	pt.lineValid = false
}

// ensureLines rebuilds the index if it is stale, scanning each piece's
// referenced text while tracking a running global offset.
func (pt *PieceTable) ensureLines() {
	if pt.lineValid {
		return
	}

	pt.lineBreaks = pt.lineBreaks[:0]
	var running ByteOffset
	for _, p := range pt.pieces {
		s := pt.regionText(p.region, p.start, p.end())
		for i := 0; i < len(s); i++ {
			if s[i] == '\n' {
				pt.lineBreaks = append(pt.lineBreaks, running+ByteOffset(i))
			}
		}
		running += p.length
	}
	pt.lineValid = true
}

// lineSpan returns the [start, end) offsets of a line, terminator excluded.
// The caller must have validated line and ensured the index.
func (pt *PieceTable) lineSpan(line uint32) (ByteOffset, ByteOffset) {
	var start ByteOffset
	if line > 0 {
		start = pt.lineBreaks[line-1] + 1
	}
	end := pt.length
	if int(line) < len(pt.lineBreaks) {
		end = pt.lineBreaks[line]
	}
	return start, end
}

// LineCount returns the number of lines. An empty buffer has one line.
func (pt *PieceTable) LineCount() uint32 {
	pt.ensureLines()
	return uint32(len(pt.lineBreaks)) + 1
}

// LineText returns the text of a specific line, without the terminator.
func (pt *PieceTable) LineText(line uint32) (string, error) {
	pt.ensureLines()
	if int(line) > len(pt.lineBreaks) {
		return "", ErrLineOutOfRange
	}
	start, end := pt.lineSpan(line)
	return pt.TextRange(start, end)
}

// OffsetToPoint converts a byte offset to a line/column point.
// Offsets in [0, Len()] are valid; Len() maps to the end of the last line.
func (pt *PieceTable) OffsetToPoint(offset ByteOffset) (Point, error) {
	if offset < 0 || offset > pt.length {
		return Point{}, ErrOffsetOutOfRange
	}
	pt.ensureLines()

	// Line number is the count of terminators strictly before offset; an
	// offset sitting on a '\n' still belongs to that terminator's line.
	line := sort.Search(len(pt.lineBreaks), func(i int) bool {
		return pt.lineBreaks[i] >= offset
	})

	var lineStart ByteOffset
	if line > 0 {
		lineStart = pt.lineBreaks[line-1] + 1
	}
	return Point{Line: uint32(line), Column: uint32(offset - lineStart)}, nil
}

// PointToOffset converts a line/column point to a byte offset.
// The column may equal the line's length, addressing the terminator (or the
// end of the buffer on the last line).
func (pt *PieceTable) PointToOffset(point Point) (ByteOffset, error) {
	pt.ensureLines()
	if int(point.Line) > len(pt.lineBreaks) {
		return 0, ErrLineOutOfRange
	}

	start, end := pt.lineSpan(point.Line)
	offset := start + ByteOffset(point.Column)
	if offset > end {
		return 0, ErrColumnOutOfRange
	}
	return offset, nil
}
