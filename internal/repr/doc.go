// Package repr provides fixed-layout stand-ins for closures.
//
// A representation is a small struct of machine words: a hand-built dispatch
// table (a call entry and, for owned state, a destroy entry) and one data word.
// The dispatch entries are instantiated from generic functions at construction
// time, so invoking a representation needs only its fixed call signature and
// never the concrete type of the callable it wraps. Two representations of the
// same type are interchangeable whatever closure produced them.
//
//	RefFn, RefFnMut                 {call, data}           borrowed
//	BoxFn, BoxFnMut, BoxFnOnce      {call, destroy, data}  owned
//
// Borrowed representations hold an unsafe.Pointer to the caller's callable and
// must not outlive it. Owned representations pin the callable in the handle
// table and must be released: Release for BoxFn and BoxFnMut, either CallOnce
// or Release for BoxFnOnce. Release is idempotent on a given value; releasing
// a copy of an already released representation panics.
//
// Preconditions that are not checked: CallMut is never invoked concurrently on
// one representation, and CallOnce is invoked at most once. Builds tagged
// rfndebug check the latter and panic with ErrConsumed.
package repr
