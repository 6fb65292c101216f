package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/casualjim/mozart/box"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

func printRound(w io.Writer, n int, results []result) {
	fmt.Fprintf(w, "%s\n", color.CyanString(":: Benchmark %d:", n))
	for _, r := range results {
		fmt.Fprintf(w, "   benchmark of %16s: %s for %d tests\n",
			color.YellowString(r.Name),
			color.GreenString("%d(%s)", r.Elapsed, r.Unit),
			r.Times,
		)
	}
}

func markdownReport(sc scenario, results []result, stats []box.PoolStats, failures int) string {
	var b strings.Builder
	b.WriteString("# mozart benchmark\n\n")
	fmt.Fprintf(&b, "%d rounds of %d iterations, times in %s.\n\n", sc.Rounds, sc.Times, sc.Unit)

	names, best := summarize(results)
	b.WriteString("| benchmark | best | average |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, name := range names {
		s := best[name]
		fmt.Fprintf(&b, "| %s | %d | %d |\n", name, s.min, s.total/int64(s.count))
	}

	if len(stats) > 0 {
		b.WriteString("\n## heap pools\n\n")
		b.WriteString("| type | capacity | available | fresh | reused | returned | dropped |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|---:|\n")
		for _, s := range stats {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %d | %d |\n",
				s.Type, s.Capacity, s.Available, s.Fresh, s.Reused, s.Returned, s.Dropped)
		}
	}

	if failures > 0 {
		fmt.Fprintf(&b, "\n**%d failures were thrown during the run.**\n", failures)
	}
	return b.String()
}

type summary struct {
	min, total int64
	count      int
}

// summarize groups results by name, keeping the first-seen order of names.
func summarize(results []result) ([]string, map[string]summary) {
	var names []string
	byName := make(map[string]summary)
	for _, r := range results {
		s, ok := byName[r.Name]
		if !ok {
			names = append(names, r.Name)
			s.min = r.Elapsed
		}
		s.min = min(s.min, r.Elapsed)
		s.total += r.Elapsed
		s.count++
		byName[r.Name] = s
	}
	return names, byName
}

func renderMarkdown(w io.Writer, md string) error {
	glam, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := glam.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
