package typegen_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sarayourfriend/openapi-type/typegen"
)

type loop struct {
	Next *loop
}

// rogueShape implements shape but is never registered as a variant.
type rogueShape struct{}

func (rogueShape) isShape() {}

func TestEncode_DecodeRoundTrip(t *testing.T) {
	g := mustNew[pet](t)
	age := 4
	in := pet{
		Name:    "rex",
		Age:     &age,
		Weight:  12.5,
		Tags:    map[string]struct{}{"good": {}, "boy": {}},
		Aliases: []string{"buddy", "rexy"},
		Traits:  map[string]string{"coat": "short"},
	}
	node, err := g.Encode(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	out, err := g.Decode(node)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip diverged:\n in: %#v\nout: %#v", in, out)
	}
}

func TestEncode_OmitsDefaultValues(t *testing.T) {
	g := mustNew[pet](t)
	node, err := g.Encode(pet{Name: "rex"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := node.(map[string]any)
	if len(m) != 1 {
		t.Fatalf("expected only the required key, got %v", m)
	}
	if m["name"] != "rex" {
		t.Fatalf("required field must always be emitted, got %v", m)
	}
}

func TestEncode_AbsentAsNull(t *testing.T) {
	g := mustNew[pet](t, typegen.WithAbsentAsNull())
	node, err := g.Encode(pet{Name: "rex"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := node.(map[string]any)
	raw, present := m["age"]
	if !present || raw != nil {
		t.Fatalf("expected explicit null for absent optional, got %v", m)
	}
}

func TestEncode_SetEmittedSorted(t *testing.T) {
	g := mustNew[pet](t)
	node, err := g.Encode(pet{
		Name: "rex",
		Tags: map[string]struct{}{"b": {}, "a": {}, "c": {}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	tags := node.(map[string]any)["tags"].([]any)
	want := []any{"a", "b", "c"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("expected sorted elements %v, got %v", want, tags)
	}
}

func TestEncode_SumDispatchesOnDynamicType(t *testing.T) {
	g := mustNew[shapeHolder](t, shapeVariants())
	node, err := g.Encode(shapeHolder{Shape: refShape{Ref: "#/x"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{"shape": map[string]any{"$ref": "#/x"}}
	if !reflect.DeepEqual(node, want) {
		t.Fatalf("expected %v, got %v", want, node)
	}
}

func TestEncode_UnregisteredVariantRejected(t *testing.T) {
	g := mustNew[shapeHolder](t, shapeVariants())
	_, err := g.Encode(shapeHolder{Shape: rogueShape{}})
	var tme *typegen.TypeMismatchError
	if !errors.As(err, &tme) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
}

func TestEncode_NilRequiredSumRejected(t *testing.T) {
	g := mustNew[shapeHolder](t, shapeVariants())
	_, err := g.Encode(shapeHolder{})
	var tme *typegen.TypeMismatchError
	if !errors.As(err, &tme) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if tme.Got != "null" {
		t.Fatalf("unexpected error detail: %+v", tme)
	}
}

func TestEncode_CyclicValueTripsGuard(t *testing.T) {
	g := mustNew[loop](t)
	l := loop{}
	l.Next = &l
	_, err := g.Encode(l)
	var rle *typegen.RecursionLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("expected RecursionLimitError, got %v", err)
	}
}
