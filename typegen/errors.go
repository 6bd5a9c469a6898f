package typegen

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeMismatchError reports a node whose shape does not match the expected
// descriptor kind. Int-to-float widening is the only tolerated coercion;
// anything else lands here.
type TypeMismatchError struct {
	Path     string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("typegen: type mismatch at %q: expected %s, got %s", e.Path, e.Expected, e.Got)
}

// MissingFieldError reports a required field absent from an input mapping.
// Path points at the enclosing mapping; Field is the external key.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("typegen: missing required field %q at %q", e.Field, e.Path)
}

// UnknownFieldError reports an input key with no declared field. Only raised
// under UnknownStrict.
type UnknownFieldError struct {
	Path string
	Key  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("typegen: unknown field %q at %q", e.Key, e.Path)
}

// NoMatchingVariantError reports that no alternative of a sum type accepted
// the node. Attempts holds one sub-error per alternative, in attempt order.
type NoMatchingVariantError struct {
	Path     string
	Sum      string
	Attempts []error
}

func (e *NoMatchingVariantError) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "typegen: no variant of %s matched at %q", e.Sum, e.Path)
	for i, sub := range e.Attempts {
		fmt.Fprintf(b, "\n  [%d] %v", i, sub)
	}
	return b.String()
}

func (e *NoMatchingVariantError) Unwrap() []error { return e.Attempts }

// InvalidOverrideError reports an override entry naming a field that does not
// exist on its owning type, or an owner that is not a struct. Raised when the
// generator is built, never at decode time.
type InvalidOverrideError struct {
	Owner  reflect.Type
	Field  string
	Key    string
	Reason string
}

func (e *InvalidOverrideError) Error() string {
	return fmt.Sprintf("typegen: invalid override %v.%s -> %q: %s", e.Owner, e.Field, e.Key, e.Reason)
}

// UnsupportedTypeError reports a declared type whose shape cannot be mapped
// to any descriptor kind. Raised when the generator is built.
type UnsupportedTypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("typegen: unsupported type %v: %s", e.Type, e.Reason)
}

// RecursionLimitError reports a document (or value graph) nested beyond the
// configured depth limit.
type RecursionLimitError struct {
	Path  string
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("typegen: recursion limit %d exceeded at %q", e.Limit, e.Path)
}
