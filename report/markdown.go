package report

import (
	"strings"

	"github.com/sghaida/diperf/bench"
)

// Markdown renders the medians as a markdown table, one row per variant.
func Markdown(results []bench.LibraryResult) string {
	var b strings.Builder
	b.WriteString("| Library | Variant | Rounds | Setup | Injection | Teardown |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|\n")
	for _, s := range Summarize(results) {
		b.WriteString("| ")
		b.WriteString(strings.Join([]string{
			s.Library,
			s.Variant,
			itoa(s.Rounds),
			millis(s.Setup),
			millis(s.Injection),
			millis(s.Teardown),
		}, " | "))
		b.WriteString(" |\n")
	}
	return b.String()
}
