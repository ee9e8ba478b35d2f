package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/guiguan/caster"
	"github.com/npillmayer/redblack"
	"github.com/npillmayer/redblack/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "navigate the insertion history with the keyboard",
	Long: `Shows the tree at the current insertion and reacts to keys:

  ← →   previous / next insertion (or frame, in drill-down)
  d     toggle drill-down into the rebalancing steps
  n     new, empty tree
  e     edit the key sequence
  q Esc quit`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

type key int

const (
	keyNone key = iota
	keyLeft
	keyRight
	keyDrill
	keyNew
	keyEdit
	keyQuit
)

// decodeKey maps a chunk of raw terminal input to a key.
func decodeKey(b []byte) key {
	switch {
	case bytes.Equal(b, []byte{27, '[', 'D'}):
		return keyLeft
	case bytes.Equal(b, []byte{27, '[', 'C'}):
		return keyRight
	case len(b) == 1 && (b[0] == 27 || b[0] == 'q' || b[0] == 3):
		return keyQuit
	case len(b) == 1 && b[0] == 'd':
		return keyDrill
	case len(b) == 1 && b[0] == 'n':
		return keyNew
	case len(b) == 1 && b[0] == 'e':
		return keyEdit
	}
	return keyNone
}

func runInteractive(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("interactive mode needs a terminal")
	}
	cast := caster.New(nil)
	events, ok := cast.Sub(context.Background(), 8)
	if !ok {
		return errors.New("cannot subscribe to session events")
	}
	v := &view{
		out:     crlf{os.Stdout},
		printer: console.NewPrinter(nil),
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range events {
			if ev, ok := msg.(redblack.Event); ok {
				v.draw(ev)
			}
		}
	}()
	s := redblack.NewSession(redblack.WithCaster(cast))
	err := loop(fd, s, v)
	cast.Close()
	<-done
	return err
}

func loop(fd int, s *redblack.Session, v *view) error {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrapf(err, "cannot switch terminal to raw mode")
	}
	defer func() { term.Restore(fd, state) }()
	s.ResetWithKeys(parseKeys(keysFlag))
	in := bufio.NewReader(os.Stdin)
	buf := make([]byte, 8)
	for {
		n, err := in.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch decodeKey(buf[:n]) {
		case keyQuit:
			return nil
		case keyLeft:
			if v.drilling() {
				s.RetreatIntermediate()
			} else {
				s.RetreatStep()
			}
		case keyRight:
			if v.drilling() {
				s.AdvanceIntermediate()
			} else {
				s.AdvanceStep()
			}
		case keyDrill:
			v.toggleDrill(s.HasIntermediateDrilldown())
			v.redraw()
		case keyNew:
			v.setDrill(false)
			s.Reset()
		case keyEdit:
			term.Restore(fd, state)
			keys, ok, err := editKeys(in, os.Stdout, s.Keys())
			if err != nil && !errors.Is(err, io.EOF) {
				log.Printf("cannot read keys: %v", err)
			}
			if state, err = term.MakeRaw(fd); err != nil {
				return errors.Wrapf(err, "cannot switch terminal to raw mode")
			}
			if ok {
				v.setDrill(false)
				s.ResetWithKeys(keys)
			} else {
				v.redraw()
			}
		}
	}
}

// editKeys prompts on out for a new key sequence, showing the current one,
// and reads the answer from in. An empty answer keeps the current sequence.
// A last line without newline is accepted at end of input.
func editKeys(in *bufio.Reader, out io.Writer, current []int) ([]int, bool, error) {
	s := make([]string, len(current))
	for i, k := range current {
		s[i] = strconv.Itoa(k)
	}
	fmt.Fprintf(out, "\nkeys [%s]: ", strings.Join(s, ", "))
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return nil, false, err
	}
	if strings.TrimSpace(line) == "" {
		return nil, false, nil
	}
	return parseKeys(line), true, nil
}

// crlf translates line feeds for terminals in raw mode.
type crlf struct {
	w io.Writer
}

func (c crlf) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte{'\n'}, []byte{'\r', '\n'})); err != nil {
		return 0, err
	}
	return len(p), nil
}
