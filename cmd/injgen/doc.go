// Command injgen generates compile-time injection components.
//
// A component is the generated equivalent of a DI container: each binding
// gets a Provide<Name>() method that calls its constructor with the other
// bindings it depends on, and each target type gets an Inject<Type>(t)
// method that assigns bindings to its fields. Resolution order, unknown
// dependencies and cycles are all checked by the generator, so the
// generated code has no runtime lookups, no reflection and no errors.
//
// Providers are memoised per component: one component instance builds each
// binding at most once. Create a new component for a fresh graph.
//
// Spec format (*.inject.json)
//
//	{
//	  "package": "plain",
//	  "component": "Component",
//	  "bindings": [
//	    { "name": "Fib1", "type": "*Fib1", "constructor": "NewFib1" },
//	    { "name": "Fib2", "type": "*Fib2", "constructor": "NewFib2" },
//	    { "name": "Fib3", "type": "*Fib3", "constructor": "NewFib3", "deps": ["Fib2", "Fib1"] }
//	  ],
//	  "targets": [
//	    { "type": "Fib3Holder", "injections": [{ "field": "Fib3", "binding": "Fib3" }] }
//	  ]
//	}
//
// # Usage
//
// Add a go:generate directive next to the spec:
//
//	//go:generate go run ../../cmd/injgen -spec component.inject.json -out component.gen.go
//
// and run:
//
//	go generate ./...
//
// Exit codes: 0 on success, 2 on usage errors. Invalid specs panic with a
// message naming the problem.
package main
