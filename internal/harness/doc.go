// Package harness runs conformance scenarios against boundary-safe callables.
//
// A scenario names a registered fixture (a callable with known behavior), how
// it is held (owned or borrowed), the calls to make with their expected
// results, and how many times the captured state must be released. The
// harness wraps the fixture into a representation, drives it through the
// representation's dispatch table only, and records a trace of every event.
// Traces are deterministic, so they can be compared with golden files.
//
// Scenario files are YAML:
//
//	name: mut_counter
//	description: a counter sees its own mutations
//	fixture: counter
//	calls:
//	  - args: []
//	    expect: 1
//	  - args: []
//	    expect: 2
//	release: true
//	expect_releases: 1
//
// Expectation failures are collected on the Result; Run only returns an
// error when the scenario cannot be executed at all.
package harness
