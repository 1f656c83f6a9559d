package report

import (
	"encoding/json"

	"github.com/sghaida/diperf/bench"
)

type document struct {
	Summary []Summary             `json:"summary"`
	Results []bench.LibraryResult `json:"results"`
}

// JSON encodes the summaries together with the raw samples. Durations are
// integer nanoseconds.
func JSON(results []bench.LibraryResult) ([]byte, error) {
	if results == nil {
		results = []bench.LibraryResult{}
	}
	return json.MarshalIndent(document{Summary: Summarize(results), Results: results}, "", "  ")
}
