package piecetable

import (
	"strings"
	"testing"
)

// FuzzInsert tests insert operations against a plain string model.
func FuzzInsert(f *testing.F) {
	f.Add("hello", 0, "x")
	f.Add("hello", 5, "x")
	f.Add("hello", 3, "world")
	f.Add("", 0, "test")
	f.Add("one\ntwo", 4, "line\n")

	f.Fuzz(func(t *testing.T, initial string, offset int, insert string) {
		pt := FromString(initial)

		// Clamp offset to valid range
		if offset < 0 {
			offset = 0
		}
		if offset > len(initial) {
			offset = len(initial)
		}

		if err := pt.Insert(ByteOffset(offset), insert); err != nil {
			t.Fatalf("insert failed: %v", err)
		}

		expected := initial[:offset] + insert + initial[offset:]
		if pt.Text() != expected {
			t.Errorf("insert mismatch at offset %d", offset)
		}
		if pt.Len() != int64(len(expected)) {
			t.Errorf("length mismatch: got %d, want %d", pt.Len(), len(expected))
		}
	})
}

// FuzzDelete tests delete operations against a plain string model.
func FuzzDelete(f *testing.F) {
	f.Add("hello world", 0, 5)
	f.Add("hello world", 6, 11)
	f.Add("hello world", 5, 6)
	f.Add("a\nb\nc", 1, 4)

	f.Fuzz(func(t *testing.T, initial string, start, end int) {
		pt := FromString(initial)

		// Clamp to a valid non-empty range
		if start < 0 {
			start = 0
		}
		if end > len(initial) {
			end = len(initial)
		}
		if start >= end {
			return
		}

		removed, err := pt.Delete(ByteOffset(start), ByteOffset(end))
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		if removed != initial[start:end] {
			t.Errorf("removed text mismatch: got %q, want %q", removed, initial[start:end])
		}

		expected := initial[:start] + initial[end:]
		if pt.Text() != expected {
			t.Errorf("delete mismatch: range [%d, %d)", start, end)
		}
	})
}

// FuzzEditSequence drives a whole edit session from fuzz input, checking the
// piece table against a plain string after every step.
func FuzzEditSequence(f *testing.F) {
	f.Add("seed text\nwith lines", []byte{0, 1, 2, 3, 4, 5})
	f.Add("", []byte{9, 8, 7, 6})
	f.Add("aaaa", []byte{255, 0, 128, 64, 32})

	f.Fuzz(func(t *testing.T, initial string, script []byte) {
		pt := FromString(initial)
		model := initial

		for i := 0; i+2 < len(script); i += 3 {
			op := script[i] % 3
			a := int(script[i+1])
			b := int(script[i+2])

			switch op {
			case 0: // insert
				off := 0
				if len(model) > 0 {
					off = a % (len(model) + 1)
				}
				text := strings.Repeat(string(rune('a'+b%26)), b%5+1)
				if err := pt.Insert(ByteOffset(off), text); err != nil {
					t.Fatalf("insert(%d) failed: %v", off, err)
				}
				model = model[:off] + text + model[off:]

			case 1: // delete
				if len(model) == 0 {
					continue
				}
				start := a % len(model)
				end := start + b%(len(model)-start) + 1
				if _, err := pt.Delete(ByteOffset(start), ByteOffset(end)); err != nil {
					t.Fatalf("delete(%d, %d) failed: %v", start, end, err)
				}
				model = model[:start] + model[end:]

			case 2: // replace
				if len(model) == 0 {
					continue
				}
				start := a % len(model)
				end := start + b%(len(model)-start) + 1
				text := strings.Repeat("R", b%4)
				if _, err := pt.Replace(ByteOffset(start), ByteOffset(end), text); err != nil {
					t.Fatalf("replace(%d, %d) failed: %v", start, end, err)
				}
				model = model[:start] + text + model[end:]
			}

			if pt.Text() != model {
				t.Fatalf("step %d: text mismatch\n got %q\nwant %q", i/3, pt.Text(), model)
			}
			if pt.Len() != int64(len(model)) {
				t.Fatalf("step %d: length mismatch: %d vs %d", i/3, pt.Len(), len(model))
			}
			if int(pt.LineCount()) != strings.Count(model, "\n")+1 {
				t.Fatalf("step %d: line count mismatch", i/3)
			}
		}
	})
}
