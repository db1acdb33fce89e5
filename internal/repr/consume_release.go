//go:build !rfndebug

package repr

const checkConsumed = false
