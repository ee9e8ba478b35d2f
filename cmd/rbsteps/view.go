package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/redblack"
	"github.com/npillmayer/redblack/console"
)

// view draws session events to the terminal. Events arrive on the caster's
// goroutine, drill mode is switched from the input loop.
type view struct {
	mx      sync.Mutex
	out     io.Writer
	printer *console.Printer
	last    redblack.Event
	drill   bool
}

func (v *view) drilling() bool {
	v.mx.Lock()
	defer v.mx.Unlock()
	return v.drill
}

// toggleDrill leaves drill mode, or enters it if allowed is set.
func (v *view) toggleDrill(allowed bool) {
	v.mx.Lock()
	defer v.mx.Unlock()
	v.drill = !v.drill && allowed
}

func (v *view) setDrill(on bool) {
	v.mx.Lock()
	defer v.mx.Unlock()
	v.drill = on
}

func (v *view) draw(ev redblack.Event) {
	v.mx.Lock()
	defer v.mx.Unlock()
	v.last = ev
	v.render()
}

func (v *view) redraw() {
	v.mx.Lock()
	defer v.mx.Unlock()
	v.render()
}

func (v *view) render() {
	io.WriteString(v.out, "\x1b[H\x1b[2J")
	ev := v.last
	if ev.Len == 0 {
		io.WriteString(v.out, "empty tree, press e to enter keys\n\n")
	} else {
		fmt.Fprintf(v.out, "insertion %d of %d: key %d\n", ev.Cursor+1, ev.Len, ev.Key)
		fmt.Fprintf(v.out, "%s\n\n", console.Labels(ev.Labels))
	}
	if v.drill && ev.FrameTree != nil {
		name := "committed"
		if ev.Frame < len(ev.Labels) {
			name = "after " + ev.Labels[ev.Frame]
		}
		fmt.Fprintf(v.out, "drill-down frame %d: %s\n", ev.Frame+1, name)
		v.printer.Fprint(v.out, ev.FrameTree)
	} else {
		v.printer.Fprint(v.out, ev.Snapshot)
	}
	fmt.Fprintf(v.out, "\n%s\n", v.printer.Legend())
	help := "←/→ step  n new  e edit  q quit"
	if ev.Drilldown {
		help = "←/→ step  d drill-down  n new  e edit  q quit"
	}
	io.WriteString(v.out, help+"\n")
}
