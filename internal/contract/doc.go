// Package contract loads boundary contracts and checks local layouts against them.
//
// Two independently built binaries can exchange representations only if they
// agree on every representation's layout. A contract is a CUE file that states
// that agreement: the word size and, per representation type, its discipline,
// ownership, size, alignment and fields. Contracts are validated against an
// embedded schema (schema.cue) before use.
//
// Check compares the contract with the descriptors this binary was built with
// (normally repr.Catalog). Emit writes the local descriptors as a contract that
// the other side can check against.
package contract
