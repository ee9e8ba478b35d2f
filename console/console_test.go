package console

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/redblack/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func snapshotOf(keys ...int) *rbtree.Snapshot {
	tree := rbtree.New()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree.Snapshot()
}

func TestPrintOutline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	color.NoColor = true
	//
	p := NewPrinter(&Config{})
	var buf bytes.Buffer
	if err := p.Fprint(&buf, snapshotOf(1, 2, 3, 4, 5, 6, 7, 8)); err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		"4",
		"├── 2",
		"│   ├── 1",
		"│   └── 3",
		"└── 6",
		"    ├── 5",
		"    └── 7",
		"        ├── nil",
		"        └── 8",
	}, "\n") + "\n"
	if buf.String() != expected {
		t.Errorf("unexpected outline:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestPrintSmallTrees(t *testing.T) {
	color.NoColor = true
	p := NewPrinter(&Config{})
	for _, tc := range []struct {
		snap     *rbtree.Snapshot
		expected string
	}{
		{nil, "(empty)\n"},
		{snapshotOf(), "(empty)\n"},
		{snapshotOf(7), "7\n"},
		{snapshotOf(10, 20), "10\n├── nil\n└── 20\n"},
		{snapshotOf(10, 20, 15), "15\n├── 10\n└── 20\n"},
	} {
		var buf bytes.Buffer
		p.Fprint(&buf, tc.snap)
		if buf.String() != tc.expected {
			t.Errorf("expected %q, have %q", tc.expected, buf.String())
		}
	}
}

func TestPrintRespectsLineWidth(t *testing.T) {
	color.NoColor = true
	p := NewPrinter(&Config{LineWidth: 6})
	var buf bytes.Buffer
	p.Fprint(&buf, snapshotOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if n := utf8.RuneCountInString(line); n > 6 {
			t.Errorf("line %q exceeds width: %d", line, n)
		}
	}
}

func TestLabels(t *testing.T) {
	if Labels(nil) != "no rebalancing" {
		t.Errorf("expected placeholder for empty labels")
	}
	if s := Labels([]string{"Step 1: Case 2", "Step 2: Case 3"}); s != "Step 1: Case 2 → Step 2: Case 3" {
		t.Errorf("unexpected label line %q", s)
	}
}
