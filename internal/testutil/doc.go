// Package testutil holds deterministic helpers shared by tests and the
// conformance harness: a logical sequence for trace ordering, run identifiers,
// and release probes that count how often captured state is torn down.
package testutil
