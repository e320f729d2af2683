// Package boltseq reads a bbolt bucket as a fallible sequence: every stored
// value is decoded on pull, and a value that fails to decode becomes a
// failure instead of aborting the walk.
package boltseq
