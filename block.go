package propmods

import (
	"fmt"
	"strings"
)

// Block builds class names for one BEM block.
//
// Create blocks once, at package level or in a component constructor, and
// call Class (or Classes) while rendering:
//
//	var card = propmods.MustNew("Card")
//
//	card.Class("title", props).ClassName()
//
// The block name is transformed by TransformKeys once, here.
type Block struct {
	name string
	opts Options
}

// Builder is the closure form of a Block. It behaves like Block.Class.
type Builder func(args ...any) Result

// Factory creates blocks that share an option set.
type Factory func(name string) (*Block, error)

// Default creates blocks with the default options.
var Default Factory = Configure()

// New creates a block. It fails with ErrEmptyBlock if name is empty, or if
// the key transform turns it into an empty string.
func New(name string, opts ...Option) (*Block, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyBlock
	}

	o := resolveOptions(opts)
	transformed := o.TransformKeys(name)
	if transformed == "" {
		return nil, fmt.Errorf("%w: %q transforms to an empty name", ErrEmptyBlock, name)
	}

	return &Block{name: transformed, opts: o}, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, opts ...Option) *Block {
	b, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Configure returns a Factory that applies opts to every block it creates.
//
//	bem := propmods.Configure(propmods.WithTransformKeys(casing.Kebab))
//	header, _ := bem("PageHeader")  // "page-header"
//	footer, _ := bem("PageFooter")  // "page-footer"
func Configure(opts ...Option) Factory {
	shared := append([]Option(nil), opts...)
	return func(name string) (*Block, error) {
		return New(name, shared...)
	}
}

// Name returns the transformed block name.
func (b *Block) Name() string {
	return b.name
}

// Options returns a copy of the block's options.
func (b *Block) Options() Options {
	return b.opts
}

// Func returns the block as a Builder closure.
func (b *Block) Func() Builder {
	return b.Class
}

// Element returns the base for element el: block, ElementDelimiter, el.
// An empty el returns the block name.
func (b *Block) Element(el string) string {
	if el == "" {
		return b.name
	}
	return b.name + b.opts.ElementDelimiter + b.opts.TransformKeys(el)
}

// Class is like Classes but panics on an invalid argument kind.
//
// Passing an unsupported type is a programming error, the same as calling a
// function with the wrong argument; malformed modifier data never panics.
func (b *Block) Class(args ...any) Result {
	r, err := b.Classes(args...)
	if err != nil {
		panic(err)
	}
	return r
}

// Classes builds the class name for the block, or for an element when the
// first argument is a string. See the package documentation for the argument
// kinds accepted.
//
// The only error is ErrInvalidArgumentKind (wrapped with the argument
// position), or an encoding error for a struct argument that cannot be
// flattened.
func (b *Block) Classes(args ...any) (Result, error) {
	base := b.name
	offset := 0

	if len(args) > 0 {
		switch first := args[0].(type) {
		case string:
			base = b.Element(first)
			offset = 1
		case nil:
			offset = 1
		}
	}

	c := newCollector(base, b.opts)
	for i, arg := range args[offset:] {
		if err := c.add(arg); err != nil {
			return Result{}, fmt.Errorf("argument %d: %w", i+offset, err)
		}
	}

	return Result{className: Render(c.entity(), b.opts)}, nil
}
