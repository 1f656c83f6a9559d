// Package report turns suite results into something a person can read.
//
// Every renderer is a pure function of the result list; only WriteTextfile
// touches the filesystem.
package report

import (
	"time"

	"github.com/sghaida/diperf/bench"
)

// Variant labels used in every rendering.
const (
	VariantPlain = "plain"
	VariantBean  = "bean"
)

// Summary is the median of each phase for one variant of one library.
type Summary struct {
	Library   string        `json:"library"`
	Variant   string        `json:"variant"`
	Rounds    int           `json:"rounds"`
	Setup     time.Duration `json:"setup_median_ns"`
	Injection time.Duration `json:"injection_median_ns"`
	Teardown  time.Duration `json:"teardown_median_ns"`
}

// Median returns the summary value of phase p.
func (s Summary) Median(p bench.Phase) time.Duration {
	switch p {
	case bench.PhaseSetup:
		return s.Setup
	case bench.PhaseInjection:
		return s.Injection
	case bench.PhaseTeardown:
		return s.Teardown
	}
	return 0
}

// Summarize returns two summaries per library, plain first, in result order.
func Summarize(results []bench.LibraryResult) []Summary {
	out := make([]Summary, 0, 2*len(results))
	for _, r := range results {
		out = append(out,
			summarize(r.Name, VariantPlain, r.Plain),
			summarize(r.Name, VariantBean, r.Bean),
		)
	}
	return out
}

func summarize(library, variant string, r bench.TestResult) Summary {
	return Summary{
		Library:   library,
		Variant:   variant,
		Rounds:    len(r.Setup),
		Setup:     bench.Median(r.Setup),
		Injection: bench.Median(r.Injection),
		Teardown:  bench.Median(r.Teardown),
	}
}

func millis(d time.Duration) string {
	return bench.FormatMillis(bench.ToMilliseconds(d))
}
