package redblack

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/guiguan/caster"
	"github.com/npillmayer/redblack/rbtree"
	"github.com/npillmayer/schuko/tracing"
)

// Session binds a live tree to the history of its insertions.
//
// Reset and ResetWithKeys discard both and start over with an empty tree.
// A session is not safe for concurrent use.
type Session struct {
	tree    *rbtree.Tree
	history *History
	keys    []int
	cast    *caster.Caster // optional, receives an Event after every change
	trace   tracing.Trace
}

// Option configures a session.
type Option func(*Session)

// WithCaster lets the session publish an Event to c after every insertion,
// cursor move and reset. The session never closes c.
func WithCaster(c *caster.Caster) Option {
	return func(s *Session) {
		s.cast = c
	}
}

// WithTracer sets the tracer for session-level traces. Defaults to T().
func WithTracer(t tracing.Trace) Option {
	return func(s *Session) {
		s.trace = t
	}
}

// NewSession creates a session with an empty tree and an empty history.
func NewSession(opts ...Option) *Session {
	s := &Session{
		tree:    rbtree.New(),
		history: &History{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) tracer() tracing.Trace {
	if s.trace != nil {
		return s.trace
	}
	if t := T(); t != nil {
		return t
	}
	return tracing.Select("redblack")
}

// Insert adds key to the live tree and appends the insertion record to the
// history. The cursor moves to the new record.
func (s *Session) Insert(key int) {
	s.insert(key)
	s.publish(Inserted)
}

func (s *Session) insert(key int) {
	rec := s.tree.Insert(key)
	s.history.Append(rec)
	s.keys = append(s.keys, key)
	s.tracer().Debugf("session: inserted %d, %d record(s)", key, s.history.Len())
}

// AdvanceStep moves the cursor to the next insertion, if any.
func (s *Session) AdvanceStep() {
	if s.history.Advance() {
		s.publish(Moved)
	}
}

// RetreatStep moves the cursor to the previous insertion, if any.
func (s *Session) RetreatStep() {
	if s.history.Retreat() {
		s.publish(Moved)
	}
}

// Reset discards tree and history.
func (s *Session) Reset() {
	s.ResetWithKeys(nil)
}

// ResetWithKeys discards tree and history and inserts keys in order into a
// fresh tree. The cursor ends up at the last insertion.
func (s *Session) ResetWithKeys(keys []int) {
	s.tracer().P("keys", len(keys)).Infof("session: reset")
	s.tree = rbtree.New()
	s.history = &History{}
	s.keys = nil
	for _, k := range keys {
		s.insert(k)
	}
	s.publish(Reset)
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of insertions in the history.
func (s *Session) Len() int {
	return s.history.Len()
}

// Cursor returns the position of the current insertion.
func (s *Session) Cursor() int {
	return s.history.Cursor()
}

// Keys returns the keys inserted so far, in insertion order.
func (s *Session) Keys() []int {
	keys := make([]int, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// History gives read access to the session's history.
func (s *Session) History() *History {
	return s.history
}

// CurrentRecord returns the insertion record at the cursor, or nil.
func (s *Session) CurrentRecord() *rbtree.Insertion {
	return s.history.Current()
}

// CurrentSnapshot returns the tree after the insertion at the cursor, or nil
// if the history is empty.
func (s *Session) CurrentSnapshot() *rbtree.Snapshot {
	if rec := s.history.Current(); rec != nil {
		return rec.Tree()
	}
	return nil
}

// CurrentCaseLabels returns the step labels of the insertion at the cursor,
// e.g. "Step 1: Case 2". Insertions without corrective actions and an empty
// history yield an empty slice.
func (s *Session) CurrentCaseLabels() []string {
	return s.history.Current().Labels()
}

// HasIntermediateDrilldown is true if the insertion at the cursor has at least
// two intermediate frames.
func (s *Session) HasIntermediateDrilldown() bool {
	return s.history.HasDrilldown()
}

// IntermediateSnapshots returns the frames of the insertion at the cursor if
// it supports drill-down, and an empty slice otherwise. The single frame of
// an insertion with one corrective action is available from CurrentRecord.
func (s *Session) IntermediateSnapshots() []*rbtree.Snapshot {
	if !s.history.HasDrilldown() {
		return []*rbtree.Snapshot{}
	}
	return s.history.Current().Frames()
}

// IntermediateCaseNames returns the case names of the insertion at the cursor
// if it supports drill-down, and an empty slice otherwise. There is one name
// per corrective action; a trailing frame of the committed tree has no name.
func (s *Session) IntermediateCaseNames() []string {
	if !s.history.HasDrilldown() {
		return []string{}
	}
	return s.history.Current().CaseNames()
}

// AdvanceIntermediate moves the drill-down cursor to the next frame.
func (s *Session) AdvanceIntermediate() {
	if s.history.AdvanceFrame() {
		s.publish(Drilled)
	}
}

// RetreatIntermediate moves the drill-down cursor to the previous frame.
func (s *Session) RetreatIntermediate() {
	if s.history.RetreatFrame() {
		s.publish(Drilled)
	}
}

// CurrentIntermediate returns the frame at the drill-down cursor and the name
// of the case which produced it. See History.CurrentFrame.
func (s *Session) CurrentIntermediate() (*rbtree.Snapshot, string) {
	return s.history.CurrentFrame()
}
