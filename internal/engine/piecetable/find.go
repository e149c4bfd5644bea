package piecetable

import "strings"

// Find returns the offset of every occurrence of needle at or after from,
// ascending. The scan advances one byte past each match start, so overlapping
// occurrences are all reported. Empty search text is rejected with
// ErrEmptySearch rather than matching at every position.
func (pt *PieceTable) Find(needle string, from ByteOffset) ([]ByteOffset, error) {
	if needle == "" {
		return nil, ErrEmptySearch
	}
	if from < 0 || from > pt.length {
		return nil, ErrOffsetOutOfRange
	}

	haystack, err := pt.TextRange(from, pt.length)
	if err != nil {
		return nil, err
	}

	var matches []ByteOffset
	for i := 0; ; {
		j := strings.Index(haystack[i:], needle)
		if j < 0 {
			break
		}
		matches = append(matches, from+ByteOffset(i+j))
		i += j + 1
	}
	return matches, nil
}
