// Package layout describes the in-memory layout of boundary-safe representations.
//
// A representation declares that its layout is eligible for external
// certification by implementing Certifiable. The Descriptor it returns lists
// every field with its offset, size and kind, so two independently built
// binaries can confirm they agree on the structure before exchanging values.
// Certification itself happens elsewhere; this package only describes.
//
// Descriptors have a canonical JSON form (sorted keys, NFC strings, no floats)
// and a SHA-256 fingerprint over it. Equal fingerprints mean identical layouts.
//
// layout imports nothing internal.
package layout
