package redblack

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/redblack/rbtree"

// EventKind tells which kind of change triggered an Event.
type EventKind uint8

const (
	Inserted EventKind = iota + 1 // a key has been inserted
	Moved                         // the history cursor has moved
	Drilled                       // the drill-down cursor has moved
	Reset                         // tree and history have been replaced
)

func (k EventKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Moved:
		return "moved"
	case Drilled:
		return "drilled"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// Event is published to a session's caster after every change. It carries
// the state a view needs to redraw. Snapshots are immutable, so events may
// be consumed on any goroutine.
type Event struct {
	Kind      EventKind
	Key       int // key of the insertion at the cursor
	Cursor    int
	Len       int
	Snapshot  *rbtree.Snapshot // tree at the cursor, nil for an empty history
	Labels    []string
	Drilldown bool
	Frame     int              // drill-down index
	FrameTree *rbtree.Snapshot // frame at the drill-down index, if any
}

func (s *Session) event(kind EventKind) Event {
	frame, _ := s.history.CurrentFrame()
	var key int
	if rec := s.history.Current(); rec != nil {
		key = rec.Key()
	}
	return Event{
		Kind:      kind,
		Key:       key,
		Cursor:    s.history.Cursor(),
		Len:       s.history.Len(),
		Snapshot:  s.CurrentSnapshot(),
		Labels:    s.CurrentCaseLabels(),
		Drilldown: s.history.HasDrilldown(),
		Frame:     s.history.Frame(),
		FrameTree: frame,
	}
}

func (s *Session) publish(kind EventKind) {
	if s.cast == nil {
		return
	}
	if !s.cast.Pub(s.event(kind)) {
		s.tracer().Errorf("session: cannot publish %s event, caster closed", kind)
	}
}
