// Package handle pins owned Go values behind word-sized integer handles.
//
// An owned representation stores a Handle in a plain machine word instead of a
// Go pointer, so its layout holds no GC-visible references and can be copied
// across a boundary as raw data. The table keeps the value reachable until the
// handle is taken or deleted. Each handle is released exactly once; releasing
// an unknown or already released handle panics.
package handle
