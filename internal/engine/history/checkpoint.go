package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/piecebuf/internal/engine/piecetable"
)

// Checkpoint is an immutable capture of whole-buffer state. It owns an
// independent copy of the piece sequence and added region, so later edits to
// the live buffer cannot alter it. Checkpoints are created by SaveState (and
// once at construction, the baseline) and destroyed only by stack eviction.
type Checkpoint struct {
	id   string
	at   time.Time
	snap *piecetable.Snapshot
}

func newCheckpoint(buf *piecetable.PieceTable) *Checkpoint {
	return &Checkpoint{
		id:   uuid.New().String(),
		at:   time.Now(),
		snap: buf.Snapshot(),
	}
}

// ID returns the checkpoint's unique identifier.
func (c *Checkpoint) ID() string {
	return c.id
}

// Time returns when the checkpoint was captured.
func (c *Checkpoint) Time() time.Time {
	return c.at
}

// Len returns the total byte length of the captured buffer state.
func (c *Checkpoint) Len() piecetable.ByteOffset {
	return c.snap.Len()
}

// Info describes a checkpoint on one of the history stacks.
type Info struct {
	ID        string
	Timestamp time.Time
	Len       piecetable.ByteOffset
}

func (c *Checkpoint) info() Info {
	return Info{ID: c.id, Timestamp: c.at, Len: c.snap.Len()}
}
