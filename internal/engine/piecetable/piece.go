package piecetable

// Region identifies which backing store a piece references.
type Region uint8

const (
	RegionOriginal Region = iota // text supplied at construction, immutable
	RegionAdded                  // append-only store of all inserted text
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionOriginal:
		return "original"
	case RegionAdded:
		return "added"
	default:
		return "unknown"
	}
}

// piece references the half-open range [start, start+length) of one backing
// region. The document is the concatenation of the piece sequence in order.
// Zero-length pieces are never stored; splice drops them.
type piece struct {
	region Region
	start  ByteOffset
	length ByteOffset
}

// end returns the exclusive end of the referenced range.
func (p piece) end() ByteOffset {
	return p.start + p.length
}
