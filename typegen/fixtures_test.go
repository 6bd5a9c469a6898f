package typegen_test

import (
	"github.com/sarayourfriend/openapi-type/typegen"
)

// pet exercises scalars, optionals, sequences, sets and mappings.
type pet struct {
	Name    string `typegen:"required"`
	Age     *int
	Weight  float64
	Tags    map[string]struct{}
	Aliases []string
	Traits  map[string]string
}

// shape is a two-variant sum; refShape is deliberately registered first.
type shape interface{ isShape() }

type refShape struct {
	Ref string `json:"$ref" typegen:"required"`
}

// docShape has no required fields, so it matches any mapping: a catch-all
// that makes attempt order observable.
type docShape struct {
	Title string
	Body  string
}

func (refShape) isShape() {}
func (docShape) isShape() {}

type shapeHolder struct {
	Shape shape `typegen:"required"`
}

func shapeVariants() typegen.Option {
	return typegen.WithVariants((*shape)(nil), refShape{}, docShape{})
}

// tagged pairs two variants that differ only in a declared constant.
type tagged interface{ isTagged() }

type circle struct {
	Kind   string `typegen:"const=circle"`
	Radius float64
}

type square struct {
	Kind string `typegen:"const=square"`
	Side float64
}

func (circle) isTagged() {}
func (square) isTagged() {}

type taggedHolder struct {
	Value tagged `typegen:"required"`
}

func taggedVariants() typegen.Option {
	return typegen.WithVariants((*tagged)(nil), circle{}, square{})
}

// nested is a self-referential sequence used by the depth guard tests.
type nested []nested

// deepSeq builds a sequence node nested the given number of levels.
func deepSeq(levels int) any {
	node := []any{}
	for i := 0; i < levels; i++ {
		node = []any{node}
	}
	return any(node)
}
