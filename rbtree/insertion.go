package rbtree

import (
	"fmt"
	"slices"
)

// Case identifies a corrective action of the insertion fixup.
// Values are the conventional case numbers 1, 2 and 3.
type Case uint8

const (
	// RedUncle recolors parent, uncle and grandparent.
	RedUncle Case = 1
	// InnerChild rotates around the parent to straighten a zig-zag.
	InnerChild Case = 2
	// OuterChild recolors and rotates around the grandparent.
	OuterChild Case = 3
)

func (c Case) String() string {
	return fmt.Sprintf("Case %d", uint8(c))
}

// Step is a corrective action applied during a single insertion.
// N counts the actions of the insertion, starting at 1.
type Step struct {
	N    int
	Case Case
}

func (s Step) String() string {
	return fmt.Sprintf("Step %d: %s", s.N, s.Case)
}

// DrilldownMin is the number of frames an insertion needs to be worth
// replaying action by action.
const DrilldownMin = 2

// Insertion records the outcome of one call to Tree.Insert.
// It is immutable: accessors hand out copies.
//
// Frames holds one snapshot after each step. If two or more steps were
// applied, a final snapshot of the committed tree is appended, so there are
// either NumSteps() or NumSteps()+1 frames.
type Insertion struct {
	key    int
	tree   *Snapshot
	steps  []Step
	frames []*Snapshot
}

// Key returns the inserted key.
func (ins *Insertion) Key() int {
	if ins == nil {
		return 0
	}
	return ins.key
}

// Tree returns the snapshot of the tree after the insertion.
func (ins *Insertion) Tree() *Snapshot {
	if ins == nil {
		return nil
	}
	return ins.tree
}

// Steps returns a copy of the corrective actions in application order.
func (ins *Insertion) Steps() []Step {
	if ins == nil {
		return []Step{}
	}
	return slices.Clone(ins.steps)
}

// NumSteps returns the number of corrective actions.
func (ins *Insertion) NumSteps() int {
	if ins == nil {
		return 0
	}
	return len(ins.steps)
}

// Frames returns a copy of the intermediate snapshots.
func (ins *Insertion) Frames() []*Snapshot {
	if ins == nil {
		return []*Snapshot{}
	}
	return slices.Clone(ins.frames)
}

// NumFrames returns the number of intermediate snapshots.
func (ins *Insertion) NumFrames() int {
	if ins == nil {
		return 0
	}
	return len(ins.frames)
}

// Frame returns frame i and the name of the case which produced it. The
// trailing frame of the committed tree has an empty case name. Out of range
// indices yield nil.
func (ins *Insertion) Frame(i int) (*Snapshot, string) {
	if i < 0 || i >= ins.NumFrames() {
		return nil, ""
	}
	var name string
	if i < len(ins.steps) {
		name = ins.steps[i].Case.String()
	}
	return ins.frames[i], name
}

// Labels returns the step labels in application order, e.g. "Step 1: Case 2".
func (ins *Insertion) Labels() []string {
	if ins == nil {
		return []string{}
	}
	labels := make([]string, len(ins.steps))
	for i, s := range ins.steps {
		labels[i] = s.String()
	}
	return labels
}

// CaseNames returns the case names in application order, without step prefix.
// The trailing frame of the committed tree has no case name.
func (ins *Insertion) CaseNames() []string {
	if ins == nil {
		return []string{}
	}
	names := make([]string, len(ins.steps))
	for i, s := range ins.steps {
		names[i] = s.Case.String()
	}
	return names
}

// HasDrilldown reports whether the insertion has at least DrilldownMin frames.
func (ins *Insertion) HasDrilldown() bool {
	return ins != nil && len(ins.frames) >= DrilldownMin
}

// FirstStepOf returns the number of the first step which applied c.
func (ins *Insertion) FirstStepOf(c Case) (int, bool) {
	if ins == nil {
		return 0, false
	}
	for _, s := range ins.steps {
		if s.Case == c {
			return s.N, true
		}
	}
	return 0, false
}

// recorder collects steps and frames while a single insertion runs.
type recorder struct {
	tree   *Tree
	steps  []Step
	frames []*Snapshot
}

func (r *recorder) record(c Case) {
	r.steps = append(r.steps, Step{N: len(r.steps) + 1, Case: c})
	r.frames = append(r.frames, r.tree.Snapshot())
}

func (r *recorder) finish(key int) *Insertion {
	final := r.tree.Snapshot()
	if len(r.steps) >= DrilldownMin {
		r.frames = append(r.frames, final)
	}
	return &Insertion{
		key:    key,
		tree:   final,
		steps:  r.steps,
		frames: r.frames,
	}
}
