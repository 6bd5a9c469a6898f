package typegen

import (
	"fmt"
	"reflect"
	"sync"
)

// generator is the immutable core shared by every Generator handle built for
// the same (root type, options) pair.
type generator struct {
	cfg  config
	reg  *Registry
	root *Descriptor
}

// Generator binds decode and encode entry points to one root type. It is
// immutable after construction; Decode and Encode are pure and safe for
// concurrent use without locking.
type Generator[T any] struct {
	core *generator
}

type cacheKey struct {
	root        reflect.Type
	fingerprint string
}

// generators is the canonical per-root cache: rebuilding an identical
// configuration returns the same shared core. Generators built with different
// override tables or variant orders stay isolated behind distinct keys.
var generators sync.Map

// New builds a generator for the root type T. Descriptor and override
// problems (InvalidOverrideError, UnsupportedTypeError) surface here, once,
// as configuration defects; they can never occur later during decode.
func New[T any](opts ...Option) (*Generator[T], error) {
	cfg := config{policy: UnknownStrip, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	root := reflect.TypeOf((*T)(nil)).Elem()
	key := cacheKey{root: root, fingerprint: cfg.fingerprint()}
	if cached, ok := generators.Load(key); ok {
		return &Generator[T]{core: cached.(*generator)}, nil
	}
	core, err := build(root, cfg)
	if err != nil {
		return nil, err
	}
	// Redundant concurrent builds are pure and converge to interchangeable
	// results; the first stored core wins.
	actual, _ := generators.LoadOrStore(key, core)
	return &Generator[T]{core: actual.(*generator)}, nil
}

// MustNew is New for static registration sites; it panics on build errors.
func MustNew[T any](opts ...Option) *Generator[T] {
	g, err := New[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("typegen: building generator: %v", err))
	}
	return g
}

func build(root reflect.Type, cfg config) (*generator, error) {
	reg, err := newRegistry(cfg.overrides)
	if err != nil {
		return nil, err
	}
	a := &arena{cfg: &cfg, reg: reg, types: make(map[reflect.Type]*Descriptor)}
	rd, err := a.descriptorOf(root)
	if err != nil {
		return nil, err
	}
	return &generator{cfg: cfg, reg: reg, root: rd}, nil
}

// Decode maps an untyped document tree onto a value of the root type, or
// returns a structured decode error carrying the path to the problem.
func (g *Generator[T]) Decode(node any) (T, error) {
	v, err := g.core.decode(node, g.core.root, "", 0)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.Interface().(T), nil
}

// Encode maps a value of the root type back onto an untyped document tree.
func (g *Generator[T]) Encode(value T) (any, error) {
	v := reflect.ValueOf(&value).Elem()
	return g.core.encode(v, g.core.root, "", 0)
}

// Root exposes the shared root descriptor. Descriptors are built once per
// configuration and memoized: two generators for the same configuration
// return the same pointer.
func (g *Generator[T]) Root() *Descriptor {
	return g.core.root
}

// Overrides exposes the generator's immutable override registry.
func (g *Generator[T]) Overrides() *Registry {
	return g.core.reg
}
