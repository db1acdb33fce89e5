// Package adapt converts between native Go functions and boundary-safe
// representations.
//
// Wrapping packs a function's arguments with package tuple and moves it into
// an owned representation of the matching discipline:
//
//	Func0..Func3          func(...) R  ->  repr.BoxFn
//	MutFunc0..MutFunc3    func(...) R  ->  repr.BoxFnMut
//	OnceFunc0..OnceFunc3  func(...) R  ->  repr.BoxFnOnce
//
// Unwrapping goes the other way: Unwrap, UnwrapMut and UnwrapOnce accept any
// value of the corresponding capability interface (a representation received
// from the other side, or a native callable) and return an ordinary Go function
// of the original arity. Wrapping then unwrapping yields a function that
// behaves like the original under the discipline's contract.
//
// Every conversion is total. The caller still owns the wrapped representation
// and must release it.
package adapt
