package bench

import "time"

// LibraryBenchmark pairs the two variants of one library under a name.
// Plain and Bean run independently and are reported together.
type LibraryBenchmark struct {
	Name  string
	Plain Runner
	Bean  Runner
}

// Result snapshots both variants.
func (b LibraryBenchmark) Result() LibraryResult {
	return LibraryResult{
		Name:  b.Name,
		Plain: b.Plain.Result(),
		Bean:  b.Bean.Result(),
	}
}

// TestResult holds the samples of one variant, in round order.
type TestResult struct {
	Setup     []time.Duration `json:"setup_ns"`
	Injection []time.Duration `json:"injection_ns"`
	Teardown  []time.Duration `json:"teardown_ns"`
}

// Samples returns the samples recorded for p.
func (r TestResult) Samples(p Phase) []time.Duration {
	switch p {
	case PhaseSetup:
		return r.Setup
	case PhaseInjection:
		return r.Injection
	case PhaseTeardown:
		return r.Teardown
	}
	return nil
}

// LibraryResult is the output of a suite run for one library.
type LibraryResult struct {
	Name  string     `json:"name"`
	Plain TestResult `json:"plain"`
	Bean  TestResult `json:"bean"`
}

// Phases lists the phases in report order.
var Phases = []Phase{PhaseSetup, PhaseInjection, PhaseTeardown}
