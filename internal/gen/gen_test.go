package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/errors"
)

func TestNew_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	for _, maxArity := range []int{-1, 0, MaxSupportedArity + 1} {
		_, err := New(maxArity)

		require.ErrorIs(t, err, errors.ErrArityRange, maxArity)
	}
}

func TestNew_AcceptsSupportedRange(t *testing.T) {
	t.Parallel()

	for _, maxArity := range []int{1, DefaultMaxArity, MaxSupportedArity} {
		gen, err := New(maxArity)

		require.NoError(t, err)
		assert.Equal(t, maxArity, gen.MaxArity())
	}
}

func TestFiles_Deterministic(t *testing.T) {
	t.Parallel()

	gen, err := New(4)
	require.NoError(t, err)

	first, err := gen.Files()
	require.NoError(t, err)

	second, err := gen.Files()
	require.NoError(t, err)

	require.Len(t, second, len(first))

	for i, file := range first {
		assert.Equal(t, file.Name, second[i].Name)
		assert.Equal(t, file.Source, second[i].Source)
	}
}

func TestFiles_NamesSorted(t *testing.T) {
	t.Parallel()

	gen, err := New(2)
	require.NoError(t, err)

	files, err := gen.Files()
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, file.Name)
	}

	assert.Equal(t, []string{
		"apply_generated.go",
		"convert_generated.go",
		"grow_generated.go",
		"headtail_generated.go",
		"join_generated.go",
		"tuple_generated.go",
	}, names)
}

// declaredNames parses every generated file and collects the declared type,
// function and method names.
func declaredNames(t *testing.T, maxArity int) (types, funcs, methods map[string]bool) {
	t.Helper()

	gen, err := New(maxArity)
	require.NoError(t, err)

	files, err := gen.Files()
	require.NoError(t, err)

	types = make(map[string]bool)
	funcs = make(map[string]bool)
	methods = make(map[string]bool)

	fset := token.NewFileSet()

	for _, file := range files {
		parsed, err := parser.ParseFile(fset, file.Name, file.Source, parser.SkipObjectResolution)
		require.NoError(t, err, file.Name)

		for _, decl := range parsed.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok {
						types[ts.Name.Name] = true
					}
				}
			case *ast.FuncDecl:
				if d.Recv != nil {
					methods[d.Name.Name] = true
				} else {
					funcs[d.Name.Name] = true
				}
			}
		}
	}

	return types, funcs, methods
}

func TestFiles_CapabilityCoverage(t *testing.T) {
	t.Parallel()

	const maxArity = 5

	types, funcs, methods := declaredNames(t, maxArity)

	for arity := 0; arity <= maxArity; arity++ {
		assert.True(t, types[fmt.Sprintf("Tuple%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("NewTuple%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("Apply%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("ApplyErr%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("ApplyOpt%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("ApplySeq%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("ApplyAsync%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("Seq%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("Slice%d", arity)], arity)
	}

	assert.True(t, methods["Arity"])
	assert.True(t, methods["IsUnit"])
	assert.True(t, methods["sealed"])
	assert.True(t, methods["Head"])
	assert.True(t, methods["TruncateHeadTail"])

	assert.False(t, types[fmt.Sprintf("Tuple%d", maxArity+1)])
}

func TestFiles_GrowthStopsAtMaxArity(t *testing.T) {
	t.Parallel()

	const maxArity = 4

	_, funcs, _ := declaredNames(t, maxArity)

	for arity := 0; arity < maxArity; arity++ {
		assert.True(t, funcs[fmt.Sprintf("Append%d", arity)], arity)
		assert.True(t, funcs[fmt.Sprintf("Prepend%d", arity)], arity)
	}

	assert.False(t, funcs[fmt.Sprintf("Append%d", maxArity)])
	assert.False(t, funcs[fmt.Sprintf("Prepend%d", maxArity)])
}

func TestFiles_JoinCoversEveryPair(t *testing.T) {
	t.Parallel()

	const maxArity = 6

	_, funcs, _ := declaredNames(t, maxArity)

	count := 0

	for left := 0; left <= maxArity; left++ {
		for right := 0; left+right <= maxArity; right++ {
			assert.True(t, funcs[fmt.Sprintf("Join%dx%d", left, right)], "%dx%d", left, right)
			count++
		}
	}

	assert.False(t, funcs[fmt.Sprintf("Join%dx%d", maxArity, 1)])
	assert.Equal(t, (maxArity+1)*(maxArity+2)/2, count)
}
