// Package suite runs every library benchmark for a fixed number of rounds
// and collects the results.
//
// Rounds are interleaved: each round runs every library once, plain variant
// first, before the next round starts. A GC cycle or a warm-up effect is
// then spread over all libraries instead of landing on whichever happened
// to run at that moment.
//
// A suite run is synchronous and stops at the first failure. Libraries that
// keep process-wide state (a global locator) assume one run per process.
package suite

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/subjects"
)

// DefaultRounds is the round count used when WithRounds is not given.
const DefaultRounds = 100

// ErrNegativeRounds is returned by New for a negative round count.
var ErrNegativeRounds = errors.New("suite: rounds must not be negative")

// ErrNilCatalog is returned by New when WithCatalog is given nil.
var ErrNilCatalog = errors.New("suite: nil catalog")

// UnknownLibraryError is returned by RunTests when WithOnly names a library
// the catalog does not have.
type UnknownLibraryError struct{ Name string }

func (e UnknownLibraryError) Error() string {
	return "suite: unknown library " + strconv.Quote(e.Name)
}

// RunError locates the round that aborted a run.
type RunError struct {
	Library string
	Variant string
	Round   int
	Err     error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("suite: %s/%s round %d: %v", e.Library, e.Variant, e.Round, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// Catalog builds the ordered library benchmarks for one run.
type Catalog func() []bench.LibraryBenchmark

// Suite is the benchmark orchestrator.
type Suite struct {
	rounds  int
	catalog Catalog
	only    []string
	log     *slog.Logger
}

// Option configures a Suite in New.
type Option func(*Suite)

// WithRounds sets the number of rounds.
func WithRounds(n int) Option { return func(s *Suite) { s.rounds = n } }

// WithCatalog replaces the default catalog (subjects.All).
func WithCatalog(c Catalog) Option { return func(s *Suite) { s.catalog = c } }

// WithOnly keeps only the named libraries, in catalog order.
func WithOnly(names ...string) Option { return func(s *Suite) { s.only = names } }

// WithLogger sets the logger; slog.Default is used otherwise.
func WithLogger(l *slog.Logger) Option { return func(s *Suite) { s.log = l } }

// New returns a Suite running DefaultRounds over subjects.All unless opts
// say otherwise. It fails for a negative round count or a nil catalog.
func New(opts ...Option) (*Suite, error) {
	s := &Suite{
		rounds:  DefaultRounds,
		catalog: subjects.All,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rounds < 0 {
		return nil, ErrNegativeRounds
	}
	if s.catalog == nil {
		return nil, ErrNilCatalog
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s, nil
}

// Rounds returns the configured round count.
func (s *Suite) Rounds() int { return s.rounds }

// RunTests builds the catalog, runs all rounds and returns one result per
// library in catalog order. The first error aborts the run and no results
// are returned.
func (s *Suite) RunTests() ([]bench.LibraryResult, error) {
	benchmarks, err := s.benchmarks()
	if err != nil {
		return nil, err
	}

	s.log.Info("benchmark run started", "libraries", len(benchmarks), "rounds", s.rounds)

	for round := 1; round <= s.rounds; round++ {
		for _, b := range benchmarks {
			if err := b.Plain.Run(); err != nil {
				return nil, &RunError{Library: b.Name, Variant: "plain", Round: round, Err: err}
			}
			if err := b.Bean.Run(); err != nil {
				return nil, &RunError{Library: b.Name, Variant: "bean", Round: round, Err: err}
			}
		}
		s.log.Debug("round finished", "round", round)
	}

	results := make([]bench.LibraryResult, len(benchmarks))
	for i, b := range benchmarks {
		results[i] = b.Result()
	}

	s.log.Info("benchmark run finished", "libraries", len(results), "rounds", s.rounds)
	return results, nil
}

func (s *Suite) benchmarks() ([]bench.LibraryBenchmark, error) {
	all := s.catalog()
	if len(s.only) == 0 {
		return all, nil
	}

	for _, name := range s.only {
		if !slices.ContainsFunc(all, func(b bench.LibraryBenchmark) bool { return b.Name == name }) {
			return nil, UnknownLibraryError{Name: name}
		}
	}
	kept := all[:0:0]
	for _, b := range all {
		if slices.Contains(s.only, b.Name) {
			kept = append(kept, b)
		}
	}
	return kept, nil
}
