// Package natsort implements numeric-aware string ordering for filenames.
//
// Names are split into alternating digit and non-digit runs; digit runs
// compare by numeric value, non-digit runs compare lexicographically, so
// "track2.mp3" sorts before "track10.mp3". The ordering is total: two
// distinct strings never compare equal.
package natsort
