package typegen_test

import (
	"errors"
	"testing"

	"github.com/sarayourfriend/openapi-type/typegen"
)

func TestDescriptor_RecursiveTypeSharesOnePointer(t *testing.T) {
	g, err := typegen.New[nested]()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	root := g.Root()
	if root.Kind != typegen.KindSequence {
		t.Fatalf("expected sequence root, got kind %d", root.Kind)
	}
	if root.Elem != root {
		t.Fatalf("self-referential element must resolve to the same descriptor")
	}
}

func TestDescriptor_FieldKeysAndRequirements(t *testing.T) {
	g, err := typegen.New[pet]()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	root := g.Root()
	if root.Kind != typegen.KindProduct {
		t.Fatalf("expected product root")
	}
	byName := map[string]typegen.FieldDescriptor{}
	for _, f := range root.Fields {
		byName[f.Name] = f
	}
	if got := byName["Name"].Key; got != "name" {
		t.Fatalf("expected lower-camel key %q, got %q", "name", got)
	}
	if !byName["Name"].Required {
		t.Fatalf("tagged field must be required")
	}
	if byName["Age"].Required {
		t.Fatalf("optional field must never be required")
	}
	if byName["Tags"].Desc.Kind != typegen.KindSet {
		t.Fatalf("struct{}-valued map must describe as a set")
	}
	if byName["Traits"].Desc.Kind != typegen.KindMapping {
		t.Fatalf("string-keyed map must describe as a mapping")
	}
}

func TestDescriptor_UnsupportedKindFailsAtBuild(t *testing.T) {
	type bad struct {
		C chan int
	}
	_, err := typegen.New[bad]()
	var ute *typegen.UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestDescriptor_UnregisteredInterfaceFailsAtBuild(t *testing.T) {
	_, err := typegen.New[shapeHolder]() // no WithVariants
	var ute *typegen.UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestDescriptor_DuplicateExternalKeyFailsAtBuild(t *testing.T) {
	type clash struct {
		A string `json:"x"`
		B string `json:"x"`
	}
	_, err := typegen.New[clash]()
	var ute *typegen.UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestOverride_RenamesExternalKey(t *testing.T) {
	g, err := typegen.New[pet](typegen.WithOverride(pet{}, "Name", "petName"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	v, err := g.Decode(map[string]any{"petName": "rex"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Name != "rex" {
		t.Fatalf("override key not honored: %#v", v)
	}
}

func TestOverride_UnknownFieldFailsFast(t *testing.T) {
	_, err := typegen.New[pet](typegen.WithOverride(pet{}, "Nope", "x"))
	var ioe *typegen.InvalidOverrideError
	if !errors.As(err, &ioe) {
		t.Fatalf("expected InvalidOverrideError, got %v", err)
	}
	if ioe.Field != "Nope" {
		t.Fatalf("error must carry the offending field, got %q", ioe.Field)
	}
}

func TestOverride_NonStructOwnerRejected(t *testing.T) {
	_, err := typegen.New[pet](typegen.WithOverride(42, "Name", "x"))
	var ioe *typegen.InvalidOverrideError
	if !errors.As(err, &ioe) {
		t.Fatalf("expected InvalidOverrideError, got %v", err)
	}
}
