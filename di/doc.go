// Package di holds the in-repo injection approaches measured by the harness.
//
// Three styles live here, from most to least machinery:
//
//   - Container: a hand-written service locator. Modules register factories
//     keyed by the type they produce; Get resolves lazily and caches one
//     instance per type until UnloadModules. Default is a process-wide
//     Container for locator-style code.
//
//   - Service[T] + Injector[T]: explicit wiring with a dependency bag (Deps).
//     Injectors bind one dependency each and report typed errors for
//     duplicates and nil wiring.
//
//   - ServiceV2[T]: construction only, no dependency tracking.
//
// None of them use reflection to call constructors. Container uses reflect
// only to derive lookup keys from type parameters.
//
// # Import
//
//	"github.com/sghaida/diperf/di"
package di
