package gen

import (
	"fmt"
	"strconv"
	"strings"
)

// bundle accumulates the generated source for a single output file.
// Each emission method appends one complete, self-contained declaration
// followed by a blank line, so the concatenated output stays gofmt-clean.
type bundle struct {
	buf strings.Builder
}

func (b *bundle) printf(format string, args ...any) {
	fmt.Fprintf(&b.buf, format, args...)
}

func (b *bundle) String() string {
	return b.buf.String()
}

// generics renders a type parameter declaration list such as
// "[T1, T2, T any]". The extra names follow the positional parameters and
// are used for appended values (T), results (R) and sequence items (V);
// positional parameters are always T-numbered, so the extras cannot collide.
// An empty parameter set renders as the empty string.
func generics(params []string, extra ...string) string {
	all := append(append([]string{}, params...), extra...)
	if len(all) == 0 {
		return ""
	}

	return "[" + strings.Join(all, ", ") + " any]"
}

// tupleType renders the concrete tuple type for the given arguments,
// e.g. "Tuple3[T1, T2, T3]", or "Tuple0" for no arguments.
func tupleType(args []string) string {
	if len(args) == 0 {
		return "Tuple0"
	}

	return "Tuple" + strconv.Itoa(len(args)) + "[" + strings.Join(args, ", ") + "]"
}

// fieldRefs renders the component references of a tuple variable in
// positional order, e.g. "t.first, t.second, t.third".
func fieldRefs(recv string, arity int) string {
	refs := make([]string, arity)
	for i := range refs {
		refs[i] = recv + "." + Field(i)
	}

	return strings.Join(refs, ", ")
}

// pad right-pads name with spaces so that whatever follows starts one column
// after the widest name in the group, matching gofmt alignment.
func pad(name string, widest int) string {
	return name + strings.Repeat(" ", widest-len(name)+1)
}

// widestField returns the length of the longest field name among the first
// arity positions.
func widestField(arity int) int {
	widest := 0
	for i := 0; i < arity; i++ {
		if len(Field(i)) > widest {
			widest = len(Field(i))
		}
	}

	return widest
}

// typeDecl emits the tuple struct type for one arity.
func (b *bundle) typeDecl(arity int) {
	if arity == 0 {
		b.printf("// Tuple0 is the empty tuple.\ntype Tuple0 struct{}\n\n")

		return
	}

	params := TypeParams(arity)

	if arity == 1 {
		b.printf("// Tuple1 is a tuple holding a single value.\n")
	} else {
		b.printf("// Tuple%d is a tuple of %d values.\n", arity, arity)
	}

	b.printf("type Tuple%d%s struct {\n", arity, generics(params))

	widest := widestField(arity)
	for i, param := range params {
		b.printf("\t%s%s\n", pad(Field(i), widest), param)
	}

	b.printf("}\n\n")
}

// constructor emits the NewTupleN function for one arity.
func (b *bundle) constructor(arity int) {
	if arity == 0 {
		b.printf("// NewTuple0 returns the empty tuple.\nfunc NewTuple0() Tuple0 {\n\treturn Tuple0{}\n}\n\n")

		return
	}

	params := TypeParams(arity)

	args := make([]string, arity)
	for i, param := range params {
		args[i] = Field(i) + " " + param
	}

	if arity == 1 {
		b.printf("// NewTuple1 returns a tuple holding the given value.\n")
	} else {
		b.printf("// NewTuple%d returns a tuple holding the %d given values.\n", arity, arity)
	}

	b.printf("func NewTuple%d%s(%s) %s {\n", arity, generics(params), strings.Join(args, ", "), tupleType(params))
	b.printf("\treturn %s{\n", tupleType(params))

	widest := widestField(arity)
	for i := range params {
		b.printf("\t\t%s%s,\n", pad(Field(i)+":", widest+1), Field(i))
	}

	b.printf("\t}\n}\n\n")
}

// seal emits the arity report, the unit check and the sealing method that
// admits the type into the closed Tuple interface.
func (b *bundle) seal(arity int) {
	recv := tupleType(TypeParams(arity))

	b.printf("func (%s) Arity() int {\n\treturn %d\n}\n\n", recv, arity)
	b.printf("func (%s) IsUnit() bool {\n\treturn %t\n}\n\n", recv, arity == 0)
	b.printf("func (%s) sealed() {}\n\n", recv)
}

// indexable emits the per-position accessor and mutator pairs. Positions are
// compile-time constants baked into method names; an out-of-range position
// has no method and fails to compile at the call site.
func (b *bundle) indexable(arity int) {
	params := TypeParams(arity)
	recv := tupleType(params)

	for i, param := range params {
		b.printf("func (t %s) %s() %s {\n\treturn t.%s\n}\n\n", recv, Accessor(i), param, Field(i))
		b.printf("func (t *%s) Set%s(value %s) {\n\tt.%s = value\n}\n\n", recv, Accessor(i), param, Field(i))
	}
}

// nonEmpty emits head/tail access and the two truncations. Emitted for
// arity >= 1 only; Tuple0 structurally lacks the whole capability.
func (b *bundle) nonEmpty(arity int) {
	params := TypeParams(arity)
	recv := tupleType(params)
	head := Field(0)
	tail := Field(arity - 1)

	b.printf("func (t %s) Head() %s {\n\treturn t.%s\n}\n\n", recv, params[0], head)
	b.printf("func (t *%s) SetHead(value %s) {\n\tt.%s = value\n}\n\n", recv, params[0], head)
	b.printf("func (t %s) Tail() %s {\n\treturn t.%s\n}\n\n", recv, params[arity-1], tail)
	b.printf("func (t *%s) SetTail(value %s) {\n\tt.%s = value\n}\n\n", recv, params[arity-1], tail)

	rest := params[1:]
	b.printf("// TruncateHead splits the tuple into its first component and a tuple of the\n// remaining components, in order.\n")
	b.printf("func (t %s) TruncateHead() (%s, %s) {\n", recv, params[0], tupleType(rest))
	b.printf("\treturn t.%s, NewTuple%d(%s)\n}\n\n", head, arity-1, fieldRefsAt(1, arity))

	lead := params[:arity-1]
	b.printf("// TruncateTail splits the tuple into a tuple of its leading components, in\n// order, and its last component.\n")
	b.printf("func (t %s) TruncateTail() (%s, %s) {\n", recv, tupleType(lead), params[arity-1])
	b.printf("\treturn NewTuple%d(%s), t.%s\n}\n\n", arity-1, fieldRefsAt(0, arity-1), tail)
}

// nonUnary emits joint head+tail access and truncation. Emitted for
// arity >= 2 only, where head and tail are distinct positions.
func (b *bundle) nonUnary(arity int) {
	params := TypeParams(arity)
	recv := tupleType(params)
	head := Field(0)
	tail := Field(arity - 1)

	b.printf("func (t %s) HeadTail() (%s, %s) {\n\treturn t.%s, t.%s\n}\n\n",
		recv, params[0], params[arity-1], head, tail)

	middle := params[1 : arity-1]
	b.printf("// TruncateHeadTail splits the tuple into its first component, a tuple of its\n// middle components, and its last component.\n")
	b.printf("func (t %s) TruncateHeadTail() (%s, %s, %s) {\n", recv, params[0], tupleType(middle), params[arity-1])
	b.printf("\treturn t.%s, NewTuple%d(%s), t.%s\n}\n\n", head, arity-2, fieldRefsAt(1, arity-1), tail)
}

// grow emits the append and prepend functions for one arity. The driver
// skips the configured maximum arity entirely: growth past the cap is a
// compile-time error rather than a runtime panic.
func (b *bundle) grow(arity int) {
	params := TypeParams(arity)
	recv := tupleType(params)

	appended := append(append([]string{}, params...), "T")
	b.printf("// Append%d returns a tuple with value appended as the new last component.\n", arity)
	b.printf("func Append%d%s(t %s, value T) %s {\n", arity, generics(params, "T"), recv, tupleType(appended))
	b.printf("\treturn NewTuple%d(%s)\n}\n\n", arity+1, joinArgs(fieldRefsAt(0, arity), "value"))

	prepended := append([]string{"T"}, params...)
	b.printf("// Prepend%d returns a tuple with value prepended as the new first component.\n", arity)
	b.printf("func Prepend%d%s(t %s, value T) %s {\n", arity, generics(params, "T"), recv, tupleType(prepended))
	b.printf("\treturn NewTuple%d(%s)\n}\n\n", arity+1, joinArgs("value", fieldRefsAt(0, arity)))
}

// fieldRefsAt renders "t.<field>" references for positions from (inclusive)
// to to (exclusive).
func fieldRefsAt(from, to int) string {
	refs := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		refs = append(refs, "t."+Field(i))
	}

	return strings.Join(refs, ", ")
}

// joinArgs joins non-empty argument fragments with ", ".
func joinArgs(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, ", ")
}
