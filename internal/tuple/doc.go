// Package tuple packs call arguments into a single value.
//
// Every callable in this module takes one argument and returns one result.
// Functions with no arguments take Unit; functions with one argument take that
// argument unchanged; functions with two to four arguments take a T2, T3 or T4.
// Packing and unpacking are total and lossless: Unpack returns exactly the
// values given to Pack, in order.
package tuple
