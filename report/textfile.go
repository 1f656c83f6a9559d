package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sghaida/diperf/bench"
)

// WriteTextfile writes the medians in Prometheus text format to path, for
// pickup by a node_exporter textfile collector.
func WriteTextfile(path string, results []bench.LibraryResult) error {
	reg, err := Registry(results)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}

// Registry returns a registry holding one gauge per library, variant and
// phase plus the recorded round count.
func Registry(results []bench.LibraryResult) (*prometheus.Registry, error) {
	medians := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "diperf",
		Name:      "phase_median_seconds",
		Help:      "Median duration of a benchmark phase.",
	}, []string{"library", "variant", "phase"})
	rounds := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "diperf",
		Name:      "rounds",
		Help:      "Number of recorded rounds.",
	}, []string{"library", "variant"})

	reg := prometheus.NewRegistry()
	if err := reg.Register(medians); err != nil {
		return nil, err
	}
	if err := reg.Register(rounds); err != nil {
		return nil, err
	}

	for _, s := range Summarize(results) {
		for _, p := range bench.Phases {
			medians.WithLabelValues(s.Library, s.Variant, string(p)).Set(s.Median(p).Seconds())
		}
		rounds.WithLabelValues(s.Library, s.Variant).Set(float64(s.Rounds))
	}
	return reg, nil
}
