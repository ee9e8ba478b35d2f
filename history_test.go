package redblack

import (
	"testing"

	"github.com/npillmayer/redblack/rbtree"
)

func records(keys ...int) []*rbtree.Insertion {
	tree := rbtree.New()
	recs := make([]*rbtree.Insertion, len(keys))
	for i, k := range keys {
		recs[i] = tree.Insert(k)
	}
	return recs
}

func TestHistoryEmpty(t *testing.T) {
	h := &History{}
	if h.Advance() || h.Retreat() || h.AdvanceFrame() || h.RetreatFrame() {
		t.Errorf("expected navigation on empty history to be a no-op")
	}
	if h.Cursor() != 0 || h.Len() != 0 || h.Current() != nil {
		t.Errorf("expected empty history, have cursor=%d, len=%d", h.Cursor(), h.Len())
	}
	if f, name := h.CurrentFrame(); f != nil || name != "" {
		t.Errorf("expected no frame for empty history")
	}
	var nilh *History
	if nilh.Len() != 0 || nilh.Current() != nil || nilh.HasDrilldown() {
		t.Errorf("expected nil history to behave like an empty one")
	}
}

func TestHistoryAppendMovesCursor(t *testing.T) {
	h := &History{}
	for i, rec := range records(10, 20, 30, 40) {
		h.Append(rec)
		if h.Cursor() != i {
			t.Errorf("after append #%d expected cursor at %d, is %d", i+1, i, h.Cursor())
		}
	}
	h.Retreat()
	h.Retreat()
	h.Append(records(50)[0])
	if h.Len() != 5 || h.Cursor() != 4 {
		t.Errorf("expected append to move cursor to end, have cursor=%d, len=%d", h.Cursor(), h.Len())
	}
}

func TestHistoryClamping(t *testing.T) {
	h := &History{}
	for _, rec := range records(1, 2, 3) {
		h.Append(rec)
	}
	if h.Advance() {
		t.Errorf("expected advance at end of history to report no move")
	}
	if h.Cursor() != 2 {
		t.Errorf("expected cursor to stay at 2, is %d", h.Cursor())
	}
	for range 5 {
		h.Retreat()
	}
	if h.Cursor() != 0 {
		t.Errorf("expected cursor to stop at 0, is %d", h.Cursor())
	}
	if h.Current().Key() != 1 {
		t.Errorf("expected record for key 1 at cursor 0, have %d", h.Current().Key())
	}
	for range 5 {
		h.Advance()
	}
	if h.Cursor() != 2 {
		t.Errorf("expected cursor to stop at 2, is %d", h.Cursor())
	}
}

func TestHistoryDrilldown(t *testing.T) {
	h := &History{}
	for _, rec := range records(10, 20, 15) {
		h.Append(rec)
	}
	if !h.HasDrilldown() {
		t.Fatalf("expected insertion of 15 to offer a drill-down")
	}
	f, name := h.CurrentFrame()
	if name != "Case 2" || f.String() != "10B(_ 15R(_ 20R))" {
		t.Errorf("expected first frame from case 2, have %s: %s", name, f)
	}
	h.AdvanceFrame()
	h.AdvanceFrame()
	if h.AdvanceFrame() {
		t.Errorf("expected drill-down to stop at last frame")
	}
	f, name = h.CurrentFrame()
	if h.Frame() != 2 || name != "" || f.String() != "15B(10R 20R)" {
		t.Errorf("expected final frame without case at index 2, have %d %q: %s", h.Frame(), name, f)
	}
	h.Retreat()
	if h.Frame() != 0 {
		t.Errorf("expected moving the cursor to reset the drill-down index, is %d", h.Frame())
	}
	if h.HasDrilldown() || h.AdvanceFrame() {
		t.Errorf("expected no drill-down for insertion of 20")
	}
	h.Advance()
	h.AdvanceFrame()
	h.Advance() // clamped, cursor does not move
	if h.Frame() != 1 {
		t.Errorf("expected clamped advance to keep the drill-down index, is %d", h.Frame())
	}
}

func TestHistoryRecordsAreCopied(t *testing.T) {
	h := &History{}
	for _, rec := range records(3, 1, 2) {
		h.Append(rec)
	}
	r := h.Records()
	r[0] = nil
	if h.At(0) == nil {
		t.Errorf("expected Records to return a copy")
	}
	if h.At(-1) != nil || h.At(3) != nil {
		t.Errorf("expected out of range access to yield nil")
	}
}
