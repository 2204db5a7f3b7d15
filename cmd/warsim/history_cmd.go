package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lox/warsim/internal/history"
	"github.com/lox/warsim/internal/report"
)

// HistoryCmd is the root command for game history utilities.
type HistoryCmd struct {
	Show HistoryShowCmd `cmd:"show" help:"Print a recorded game history"`
}

// HistoryShowCmd loads a history file and prints it.
type HistoryShowCmd struct {
	File   string `arg:"" name:"file" help:"Path to a history TOML file" type:"path"`
	Rounds int    `help:"Maximum number of rounds to print (0 = all)"`
}

func (cmd *HistoryShowCmd) Run(g *Globals) error {
	if cmd.File == "" {
		return errors.New("history show requires a file path")
	}
	if _, _, err := g.setup(); err != nil {
		return err
	}

	h, err := history.Load(cmd.File)
	if err != nil {
		return err
	}
	renderHistory(g.out(), h, cmd.Rounds)
	return nil
}

func renderHistory(w io.Writer, h *history.GameHistory, limit int) {
	fmt.Fprintln(w, report.HeaderStyle.Render("GAME "+h.ID))
	row := func(label, format string, args ...any) {
		fmt.Fprintf(w, "%s %s\n", report.LabelStyle.Render(label), fmt.Sprintf(format, args...))
	}
	row("Started", "%s", h.Started.Format("2006-01-02 15:04:05 MST"))
	if h.Seed != 0 {
		row("Seed", "%d", h.Seed)
	}
	row("Outcome", "%s", h.Outcome)
	row("Rounds", "%d (cap %d)", h.Rounds, h.MaxRounds)
	if h.Capped {
		row("", "%s", report.MutedStyle.Render("round cap reached"))
	}
	if h.Discarded > 0 {
		row("Discarded", "%d cards", h.Discarded)
	}
	row("Left", "%d kings, %d → %d cards", h.Left.Kings, len(h.Left.Start), h.Left.FinalCards)
	row("Right", "%d kings, %d → %d cards", h.Right.Kings, len(h.Right.Start), h.Right.FinalCards)

	if len(h.Log) == 0 {
		return
	}
	n := len(h.Log)
	if limit > 0 && limit < n {
		n = limit
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, report.SectionStyle.Render("Rounds"))
	for _, r := range h.Log[:n] {
		var extra []string
		if r.Ties > 0 {
			extra = append(extra, fmt.Sprintf("%d tie(s)", r.Ties))
		}
		if r.Discarded > 0 {
			extra = append(extra, fmt.Sprintf("%d discarded", r.Discarded))
		}
		suffix := ""
		if len(extra) > 0 {
			suffix = "  " + report.MutedStyle.Render("("+strings.Join(extra, ", ")+")")
		}
		fmt.Fprintf(w, "%6d  %-5s  %s%s\n", r.Number, r.Winner, strings.Join(r.Cards, " "), suffix)
	}
	if remaining := len(h.Log) - n; remaining > 0 {
		fmt.Fprintln(w, report.MutedStyle.Render(fmt.Sprintf("... %d more rounds", remaining)))
	} else if h.Truncated {
		fmt.Fprintln(w, report.MutedStyle.Render("... log truncated when recorded"))
	}
}
