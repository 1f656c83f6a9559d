// Package diperf compares the startup, injection and teardown latency of
// several dependency injection approaches for Go.
//
// Every approach resolves the same Fibonacci object graph in two variants
// and is driven through one setup/use/teardown contract, so the harness
// never needs to know how a library resolves dependencies:
//
//   - dig-locator: a process-wide go.uber.org/dig container (service locator)
//   - dig: a go.uber.org/dig container per round
//   - odi: explicit runtime injectors (di.Service + di.Injector)
//   - custom: the hand-written di.Container service locator
//   - injgen: components generated at build time by cmd/injgen
//   - fx: a go.uber.org/fx app with Start/Stop lifecycle
//   - manual: plain constructors (di.ServiceV2)
//
// Layout:
//   - bench: VariantBenchmark, timing and median helpers
//   - suite: the orchestrator running interleaved rounds
//   - subjects: one library benchmark per approach
//   - payload/plain, payload/bean: the two graph variants
//   - report: markdown, text, JSON and Prometheus textfile output
//   - cmd/diperf: the CLI, cmd/injgen: the component generator
package diperf
