package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sghaida/diperf/bench"
)

// Text renders the medians as an aligned plain-text table styled for r.
// Build r with lipgloss.NewRenderer on the destination writer: styles then
// degrade to plain text when that writer is not a color terminal. A nil r
// uses the default renderer, which inspects stdout.
func Text(results []bench.LibraryResult, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	headerStyle := r.NewStyle().Bold(true)
	libraryStyle := r.NewStyle().Foreground(lipgloss.Color("12"))

	const row = "%-12s %-7s %7s %12s %12s %12s"

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(row, "LIBRARY", "VARIANT", "ROUNDS", "SETUP", "INJECTION", "TEARDOWN")))
	b.WriteByte('\n')
	for _, s := range Summarize(results) {
		line := fmt.Sprintf(row, s.Library, s.Variant, itoa(s.Rounds), millis(s.Setup), millis(s.Injection), millis(s.Teardown))
		// pad before styling so escape codes do not break alignment
		name := fmt.Sprintf("%-12s", s.Library)
		b.WriteString(libraryStyle.Render(name))
		b.WriteString(line[len(name):])
		b.WriteByte('\n')
	}
	return b.String()
}

func itoa(n int) string { return strconv.Itoa(n) }
