package typegen

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// UnknownPolicy controls how input keys with no declared field are handled.
type UnknownPolicy int

const (
	UnknownStrip   UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                       // Reject unknown keys with UnknownFieldError.
)

const defaultMaxDepth = 1000

type overrideEntry struct {
	owner reflect.Type
	field string
	key   string
}

type config struct {
	policy       UnknownPolicy
	maxDepth     int
	absentAsNull bool
	overrides    []overrideEntry
	variants     map[reflect.Type][]reflect.Type
	variantOrder []reflect.Type
}

// Option configures a generator at build time.
type Option func(*config) error

// WithOverride renames the external key of one field on one owning struct
// type. The owner is given as a value (or pointer) of the struct type. The
// field must exist; a stale entry fails the build with InvalidOverrideError.
func WithOverride(owner any, field, key string) Option {
	return func(c *config) error {
		t := reflect.TypeOf(owner)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			return &InvalidOverrideError{Owner: t, Field: field, Key: key, Reason: "owner is not a struct type"}
		}
		c.overrides = append(c.overrides, overrideEntry{owner: t, field: field, key: key})
		return nil
	}
}

// WithVariants registers the alternative shapes of a sum type. The interface
// is named via a nil pointer and alternatives via zero values:
//
//	WithVariants((*Shape)(nil), Circle{}, Polygon{})
//
// Declared order is the decode attempt order and is a contract: a narrower
// shape (a reference) must come before a broader one (a general object) to be
// recognized.
func WithVariants(iface any, alts ...any) Option {
	return func(c *config) error {
		pt := reflect.TypeOf(iface)
		if pt == nil || pt.Kind() != reflect.Pointer || pt.Elem().Kind() != reflect.Interface {
			return &UnsupportedTypeError{Type: pt, Reason: "variants must be registered on a pointer-to-interface type"}
		}
		it := pt.Elem()
		if len(alts) == 0 {
			return &UnsupportedTypeError{Type: it, Reason: "sum type needs at least one variant"}
		}
		if _, dup := c.variants[it]; dup {
			return &UnsupportedTypeError{Type: it, Reason: "variants registered twice"}
		}
		ts := make([]reflect.Type, 0, len(alts))
		for _, alt := range alts {
			at := reflect.TypeOf(alt)
			if at == nil || !at.Implements(it) {
				return &UnsupportedTypeError{Type: it, Reason: fmt.Sprintf("variant %v does not implement %v", at, it)}
			}
			ts = append(ts, at)
		}
		if c.variants == nil {
			c.variants = make(map[reflect.Type][]reflect.Type)
		}
		c.variants[it] = ts
		c.variantOrder = append(c.variantOrder, it)
		return nil
	}
}

// WithUnknownPolicy selects how unknown input keys are treated.
func WithUnknownPolicy(p UnknownPolicy) Option {
	return func(c *config) error {
		c.policy = p
		return nil
	}
}

// WithMaxDepth sets the maximum nesting depth accepted by decode and encode.
// The depth n must be a positive integer.
func WithMaxDepth(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("typegen: max depth must be a positive integer")
		}
		c.maxDepth = n
		return nil
	}
}

// WithAbsentAsNull makes encode emit an explicit null for absent optional
// fields instead of omitting the key.
func WithAbsentAsNull() Option {
	return func(c *config) error {
		c.absentAsNull = true
		return nil
	}
}

// fingerprint renders the configuration into a canonical string so that
// generator construction for an identical (root, options) pair is idempotent.
func (c *config) fingerprint() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "policy=%d;depth=%d;null=%t;", c.policy, c.maxDepth, c.absentAsNull)
	ovr := make([]string, 0, len(c.overrides))
	for _, o := range c.overrides {
		ovr = append(ovr, fmt.Sprintf("%v.%s=%s", o.owner, o.field, o.key))
	}
	sort.Strings(ovr)
	fmt.Fprintf(b, "overrides=%s;", strings.Join(ovr, ","))
	for _, it := range c.variantOrder {
		fmt.Fprintf(b, "sum %v=[", it)
		for i, at := range c.variants[it] {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%v", at)
		}
		b.WriteString("];")
	}
	return b.String()
}
