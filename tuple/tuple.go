// Package tuple provides fixed-arity generic tuples together with the
// operations that grow, shrink, join, and consume them.
//
// The TupleN types and every function operating on them live in the
// *_generated.go files, which are produced by cmd/tuplegen and committed
// to the repository. Regenerate them after changing the generator:
//
//	go generate ./tuple
package tuple

//go:generate go run github.com/amp-labs/tuples/cmd/tuplegen -dir .

// Tuple is implemented by every TupleN type and by nothing else.
type Tuple interface {
	// Arity reports the number of components in the tuple.
	Arity() int

	// IsUnit reports whether the tuple is the empty tuple.
	IsUnit() bool

	sealed()
}
