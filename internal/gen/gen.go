// Package gen emits the source of the tuple package: for every arity from 0
// up to a configured maximum it renders the tuple type itself plus its full
// capability bundle (sealing, arity, indexing, head/tail access, growth,
// joining, call forwarding and the iterator bridge). Generation is a pure
// function of the maximum arity: the same input yields byte-identical files.
package gen

import (
	"fmt"

	"facette.io/natsort"
	"golang.org/x/tools/imports"

	"github.com/amp-labs/tuples/errors"
)

const (
	// DefaultMaxArity is the arity ceiling of the committed tuple package.
	DefaultMaxArity = 32

	// MaxSupportedArity is the hard ceiling the emitter's identifier table
	// covers. Earlier revisions of the library shipped with full coverage up
	// to 50; the committed default was later lowered to keep compile times
	// reasonable, but the generator still accepts the historical range.
	MaxSupportedArity = 50

	modulePath = "github.com/amp-labs/tuples"
)

// File is one rendered output file.
type File struct {
	Name   string
	Source []byte
}

// Generator renders the tuple package for a fixed maximum arity.
type Generator struct {
	maxArity int
}

// New returns a Generator for the given maximum arity. The arity must be
// between 1 and MaxSupportedArity inclusive.
func New(maxArity int) (*Generator, error) {
	if maxArity < 1 || maxArity > MaxSupportedArity {
		return nil, fmt.Errorf("%w: %d (want 1 to %d)", errors.ErrArityRange, maxArity, MaxSupportedArity)
	}

	return &Generator{maxArity: maxArity}, nil
}

// MaxArity returns the configured maximum arity.
func (g *Generator) MaxArity() int {
	return g.maxArity
}

// section routes one capability group into its own output file.
type section struct {
	name    string
	imports []string
	emit    func(*bundle)
}

func (g *Generator) sections() []section {
	return []section{
		{name: "tuple_generated.go", emit: g.emitTypes},
		{name: "headtail_generated.go", emit: g.emitHeadTail},
		{name: "grow_generated.go", emit: g.emitGrow},
		{name: "join_generated.go", emit: g.emitJoin},
		{name: "apply_generated.go", imports: []string{"context", "iter", "", modulePath + "/future"}, emit: g.emitApply},
		{name: "convert_generated.go", imports: []string{"iter"}, emit: g.emitConvert},
	}
}

// Files renders every output file in natural-sort name order. Arities are
// always emitted in increasing order within each file, so lower arities are
// declared before the higher arities whose truncations reference them.
func (g *Generator) Files() ([]File, error) {
	secs := g.sections()

	byName := make(map[string]File, len(secs))
	names := make([]string, 0, len(secs))
	errs := &errors.Collection{}

	for _, sec := range secs {
		src, err := g.render(sec)
		if err != nil {
			errs.Add(fmt.Errorf("%s: %w", sec.name, err))

			continue
		}

		byName[sec.name] = File{Name: sec.name, Source: src}
		names = append(names, sec.name)
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	natsort.Sort(names)

	files := make([]File, 0, len(names))
	for _, name := range names {
		files = append(files, byName[name])
	}

	return files, nil
}

// render emits one section and runs the result through the import-aware
// formatter so the output matches what gofmt would produce.
func (g *Generator) render(sec section) ([]byte, error) {
	b := &bundle{}
	b.printf("// Code generated by tuplegen; DO NOT EDIT.\n\npackage tuple\n\n")

	if len(sec.imports) > 0 {
		b.printf("import (\n")

		for _, path := range sec.imports {
			if path == "" {
				b.printf("\n")
			} else {
				b.printf("\t%q\n", path)
			}
		}

		b.printf(")\n\n")
	}

	sec.emit(b)

	formatted, err := imports.Process(sec.name, []byte(b.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting emitted source: %w", err)
	}

	return formatted, nil
}

func (g *Generator) emitTypes(b *bundle) {
	for arity := 0; arity <= g.maxArity; arity++ {
		b.typeDecl(arity)
		b.constructor(arity)
		b.seal(arity)
		b.indexable(arity)
	}
}

func (g *Generator) emitHeadTail(b *bundle) {
	for arity := 1; arity <= g.maxArity; arity++ {
		b.nonEmpty(arity)

		if arity >= 2 {
			b.nonUnary(arity)
		}
	}
}

func (g *Generator) emitGrow(b *bundle) {
	// The maximum arity is skipped: there is no larger tuple type to grow
	// into, so growth at the cap is a compile-time error.
	for arity := 0; arity < g.maxArity; arity++ {
		b.grow(arity)
	}
}

func (g *Generator) emitJoin(b *bundle) {
	for left := 0; left <= g.maxArity; left++ {
		for right := 0; left+right <= g.maxArity; right++ {
			b.join(left, right)
		}
	}
}

func (g *Generator) emitApply(b *bundle) {
	for arity := 0; arity <= g.maxArity; arity++ {
		b.apply(arity)
	}
}

func (g *Generator) emitConvert(b *bundle) {
	for arity := 0; arity <= g.maxArity; arity++ {
		b.convert(arity)
	}
}
