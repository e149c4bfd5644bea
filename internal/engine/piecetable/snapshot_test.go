package piecetable

import "testing"

func TestSnapshotRestore(t *testing.T) {
	pt := FromString("Hello, World!")
	snap := pt.Snapshot()

	if err := pt.Insert(13, " Goodbye."); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := pt.Delete(0, 5); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	pt.Restore(snap)

	if pt.Text() != "Hello, World!" {
		t.Errorf("restore did not recover original text: %q", pt.Text())
	}
	if pt.Len() != 13 {
		t.Errorf("expected length 13, got %d", pt.Len())
	}
}

func TestSnapshotIndependence(t *testing.T) {
	pt := FromString("base")
	if err := pt.Insert(4, " one"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	snap := pt.Snapshot()
	snapLen := snap.Len()

	// Mutations after capture must not affect the snapshot: the added region
	// keeps growing, the piece sequence keeps being rewritten.
	for i := 0; i < 20; i++ {
		if err := pt.Insert(pt.Len(), " more"); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	if _, err := pt.Delete(0, 4); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if snap.Len() != snapLen {
		t.Error("snapshot length changed after buffer mutation")
	}

	pt.Restore(snap)
	if pt.Text() != "base one" {
		t.Errorf("expected 'base one', got %q", pt.Text())
	}
}

func TestRestoreInvalidatesLineIndex(t *testing.T) {
	pt := FromString("one\ntwo\nthree")
	if pt.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", pt.LineCount())
	}

	snap := pt.Snapshot()

	if _, err := pt.Delete(3, 13); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if pt.LineCount() != 1 {
		t.Fatalf("expected 1 line, got %d", pt.LineCount())
	}

	pt.Restore(snap)
	if pt.LineCount() != 3 {
		t.Errorf("expected 3 lines after restore, got %d", pt.LineCount())
	}
}

func TestRestoreBumpsVersion(t *testing.T) {
	pt := FromString("abc")
	snap := pt.Snapshot()

	v := pt.Version()
	pt.Restore(snap)
	if pt.Version() == v {
		t.Error("restore should bump the version")
	}
}

func TestSnapshotOfEmptyBuffer(t *testing.T) {
	pt := New()
	snap := pt.Snapshot()

	if err := pt.Insert(0, "filled"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	pt.Restore(snap)
	if !pt.IsEmpty() {
		t.Errorf("expected empty buffer after restore, got %q", pt.Text())
	}
}
