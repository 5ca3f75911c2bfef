package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/severity"
	"github.com/muesli/termenv"
)

// PrintBanner writes the failtrace banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   __       _ _ _                      ", "#f87171"},
		{"  / _| __ _(_) | |_ _ __ __ _  ___ ___ ", "#fb923c"},
		{" | |_ / _` | | | __| '__/ _` |/ __/ _ \\", "#fbbf24"},
		{" |  _| (_| | | | |_| | | (_| | (_|  __/", "#a3e635"},
		{" |_|  \\__,_|_|_|\\__|_|  \\__,_|\\___\\___|", "#34d399"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

var kindColors = map[domain.NodeKind]string{
	domain.KindQuestion: "#60a5fa",
	domain.KindSolution: "#4ade80",
	domain.KindTerminal: "#f87171",
}

// KindBadge renders a colored, upper-cased node kind label.
func KindBadge(kind domain.NodeKind) string {
	p := termenv.ColorProfile()
	label := fmt.Sprintf("[%s]", kind)
	color, ok := kindColors[kind]
	if !ok {
		return label
	}
	return termenv.String(label).Foreground(p.Color(color)).Bold().String()
}

var severityColors = map[int]string{
	1: "#ef4444",
	2: "#f97316",
	3: "#eab308",
	4: "#3b82f6",
	5: "#a1a1aa",
}

// SeverityBadge renders a level code in its conventional color.
func SeverityBadge(level severity.Level) string {
	p := termenv.ColorProfile()
	color, ok := severityColors[level.Rank()]
	if !ok {
		return level.Code
	}
	return termenv.String(level.Code).Foreground(p.Color(color)).Bold().String()
}
