// Package call defines the three call disciplines a callable can satisfy.
//
// A callable is any value with one of the call methods below. No registration
// is needed: a type that implements Call, CallMut or CallOnce with matching
// parameter and result types qualifies for that discipline.
//
//   - Fn (Call): repeatable, captured state is read-only.
//   - FnMut (CallMut): repeatable, captured state is mutated; calls must be
//     serialized by the caller.
//   - FnOnce (CallOnce): at most one call; the call consumes the captured state.
//
// Every call takes exactly one argument value and returns exactly one result.
// Functions of other arities pack their arguments with package tuple.
//
// This package imports nothing internal.
package call
