package redblack

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/redblack/rbtree"

// History is an append-only sequence of insertion records with a cursor.
//
// Once the history is non-empty, 0 ≤ Cursor() < Len() holds. A secondary
// frame index walks the intermediate frames of the record at the cursor
// (drill-down). It is reset to 0 whenever the cursor moves or a record
// is appended.
//
// A History created by
//
//	History{}
//
// is a valid empty history.
type History struct {
	records []*rbtree.Insertion
	cursor  int
	frame   int
}

// Len returns the number of records.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.records)
}

// IsEmpty is true for a history without records.
func (h *History) IsEmpty() bool {
	return h.Len() == 0
}

// Cursor returns the position of the current record, or 0 for an empty history.
func (h *History) Cursor() int {
	if h == nil {
		return 0
	}
	return h.cursor
}

// At returns the record at position i, or nil if i is out of range.
func (h *History) At(i int) *rbtree.Insertion {
	if i < 0 || i >= h.Len() {
		return nil
	}
	return h.records[i]
}

// Current returns the record at the cursor, or nil for an empty history.
func (h *History) Current() *rbtree.Insertion {
	return h.At(h.Cursor())
}

// Records returns the records in insertion order. The slice is a copy; the
// records themselves are immutable.
func (h *History) Records() []*rbtree.Insertion {
	if h.IsEmpty() {
		return []*rbtree.Insertion{}
	}
	r := make([]*rbtree.Insertion, len(h.records))
	copy(r, h.records)
	return r
}

// Append adds a record and moves the cursor to it.
func (h *History) Append(rec *rbtree.Insertion) {
	assert(rec != nil, "history cannot append a nil record")
	h.records = append(h.records, rec)
	h.cursor = len(h.records) - 1
	h.frame = 0
}

// Advance moves the cursor one record forward, stopping at the last record.
// It reports whether the cursor has moved.
func (h *History) Advance() bool {
	if h.IsEmpty() || h.cursor >= len(h.records)-1 {
		return false
	}
	h.cursor++
	h.frame = 0
	return true
}

// Retreat moves the cursor one record back, stopping at the first record.
// It reports whether the cursor has moved.
func (h *History) Retreat() bool {
	if h.IsEmpty() || h.cursor <= 0 {
		return false
	}
	h.cursor--
	h.frame = 0
	return true
}

// --- Drill-down ------------------------------------------------------------

// HasDrilldown is true if the record at the cursor has enough frames to be
// replayed action by action.
func (h *History) HasDrilldown() bool {
	return h.Current().HasDrilldown()
}

// Frame returns the drill-down index into the frames of the current record.
func (h *History) Frame() int {
	if h == nil {
		return 0
	}
	return h.frame
}

// AdvanceFrame moves the drill-down index one frame forward, stopping at the
// last frame. It is a no-op for records without drill-down.
func (h *History) AdvanceFrame() bool {
	if !h.HasDrilldown() || h.frame >= h.Current().NumFrames()-1 {
		return false
	}
	h.frame++
	return true
}

// RetreatFrame moves the drill-down index one frame back, stopping at the
// first frame. It is a no-op for records without drill-down.
func (h *History) RetreatFrame() bool {
	if !h.HasDrilldown() || h.frame <= 0 {
		return false
	}
	h.frame--
	return true
}

// CurrentFrame returns the frame at the drill-down index together with the
// name of the case which produced it. The trailing frame of the committed
// tree has an empty case name. For records without drill-down, CurrentFrame
// returns nil.
func (h *History) CurrentFrame() (*rbtree.Snapshot, string) {
	if !h.HasDrilldown() {
		return nil, ""
	}
	return h.Current().Frame(h.frame)
}
