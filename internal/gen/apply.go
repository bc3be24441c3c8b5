package gen

import "strings"

// apply emits the call-forwarding functions for one arity: a tuple used as
// the argument list of a plain call, an error-returning call, an optional
// call, a sequence-producing call and an asynchronous call. Go functions are
// plain values, so a single by-value forwarder covers every calling
// convention; the remaining variants mirror the structural result shapes.
func (b *bundle) apply(arity int) {
	params := TypeParams(arity)
	recv := tupleType(params)
	args := strings.Join(params, ", ")
	refs := fieldRefsAt(0, arity)

	b.printf("// Apply%d calls fn with the components of t as its arguments.\n", arity)
	b.printf("func Apply%d%s(fn func(%s) R, t %s) R {\n", arity, generics(params, "R"), args, recv)
	b.printf("\treturn fn(%s)\n}\n\n", refs)

	b.printf("// ApplyErr%d calls fn with the components of t as its arguments, propagating\n// its result and error.\n", arity)
	b.printf("func ApplyErr%d%s(fn func(%s) (R, error), t %s) (R, error) {\n", arity, generics(params, "R"), args, recv)
	b.printf("\treturn fn(%s)\n}\n\n", refs)

	b.printf("// ApplyOpt%d calls fn with the components of t as its arguments, propagating\n// its result and presence flag.\n", arity)
	b.printf("func ApplyOpt%d%s(fn func(%s) (R, bool), t %s) (R, bool) {\n", arity, generics(params, "R"), args, recv)
	b.printf("\treturn fn(%s)\n}\n\n", refs)

	b.printf("// ApplySeq%d calls fn with the components of t as its arguments, returning\n// the sequence it produces.\n", arity)
	b.printf("func ApplySeq%d%s(fn func(%s) iter.Seq[V], t %s) iter.Seq[V] {\n", arity, generics(params, "V"), args, recv)
	b.printf("\treturn fn(%s)\n}\n\n", refs)

	asyncArgs := joinArgs("context.Context", args)
	asyncRefs := joinArgs("ctx", refs)
	b.printf("// ApplyAsync%d calls fn with the components of t as its arguments on a\n// background goroutine, returning a future that completes with the result.\n", arity)
	b.printf("func ApplyAsync%d%s(ctx context.Context, fn func(%s) (R, error), t %s) *future.Future[R] {\n",
		arity, generics(params, "R"), asyncArgs, recv)
	b.printf("\treturn future.GoContext(ctx, func(ctx context.Context) (R, error) {\n")
	b.printf("\t\treturn fn(%s)\n\t})\n}\n\n", asyncRefs)
}

// convert emits the iterator and slice bridges for one arity. Both are
// defined for homogeneous tuples only: every type parameter is pinned to the
// same element type.
func (b *bundle) convert(arity int) {
	homogeneous := make([]string, arity)
	for i := range homogeneous {
		homogeneous[i] = "T"
	}

	recv := tupleType(homogeneous)

	b.printf("// Seq%d returns an iterator over the components of a homogeneous tuple.\n", arity)
	b.printf("func Seq%d[T any](t %s) iter.Seq[T] {\n", arity, recv)
	b.printf("\treturn func(yield func(T) bool) {\n")

	switch arity {
	case 0:
	case 1:
		b.printf("\t\tyield(t.%s)\n", Field(0))
	default:
		for i := 0; i < arity-1; i++ {
			b.printf("\t\tif !yield(t.%s) {\n\t\t\treturn\n\t\t}\n", Field(i))
		}

		b.printf("\t\tyield(t.%s)\n", Field(arity-1))
	}

	b.printf("\t}\n}\n\n")

	b.printf("// Slice%d returns the components of a homogeneous tuple as a slice.\n", arity)
	b.printf("func Slice%d[T any](t %s) []T {\n", arity, recv)
	b.printf("\treturn []T{%s}\n}\n\n", fieldRefsAt(0, arity))
}
