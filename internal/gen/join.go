package gen

// join emits the concatenation function for one (left, right) arity pair.
// The right tuple's type parameters continue the left's numbering, so the
// result type lists every parameter exactly once in positional order.
func (b *bundle) join(left, right int) {
	params := TypeParams(left + right)
	leftParams := params[:left]
	rightParams := params[left:]

	b.printf("// Join%dx%d concatenates two tuples into a tuple of arity %d.\n", left, right, left+right)
	b.printf("func Join%dx%d%s(left %s, right %s) %s {\n",
		left, right, generics(params), tupleType(leftParams), tupleType(rightParams), tupleType(params))
	b.printf("\treturn NewTuple%d(%s)\n}\n\n",
		left+right, joinArgs(fieldRefs("left", left), fieldRefs("right", right)))
}
