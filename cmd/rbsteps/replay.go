package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/redblack"
	"github.com/npillmayer/redblack/console"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "insert keys and print the insertion history",
	Long: `Inserts the keys given with --keys in order and prints a table with one
row per insertion, followed by the final tree.`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

var replayConfig struct {
	dot    bool
	frames bool
}

func runReplay(cmd *cobra.Command, args []string) error {
	keys := parseKeys(keysFlag)
	s := redblack.NewSession()
	s.ResetWithKeys(keys)
	out := cmd.OutOrStdout()
	if s.Len() == 0 {
		fmt.Fprintln(out, "no keys to insert")
		return nil
	}
	printHistory(s, out)
	if replayConfig.dot {
		redblack.Snapshot2Dot(s.CurrentSnapshot(), out)
		return nil
	}
	p := console.NewPrinter(nil)
	if replayConfig.frames {
		for i, rec := range s.History().Records() {
			if !rec.HasDrilldown() {
				continue
			}
			names := rec.CaseNames()
			fmt.Fprintf(out, "\ninsertion #%d of key %d:\n", i+1, rec.Key())
			for j, f := range rec.Frames() {
				if j < len(names) {
					fmt.Fprintf(out, "after %s:\n", names[j])
				} else {
					fmt.Fprintln(out, "committed:")
				}
				p.Fprint(out, f)
			}
		}
	}
	fmt.Fprintln(out, "\nfinal tree:")
	return p.Fprint(out, s.CurrentSnapshot())
}

func printHistory(s *redblack.Session, w io.Writer) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetAutoWrapText(false)
	tbl.SetHeader([]string{"#", "Key", "Cases", "Frames", "Tree"})
	for i, rec := range s.History().Records() {
		tbl.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(rec.Key()),
			console.Labels(rec.Labels()),
			strconv.Itoa(rec.NumFrames()),
			rec.Tree().String(),
		})
	}
	tbl.Render()
}
