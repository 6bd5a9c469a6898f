package typegen

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DescriptorKind identifies the structural shape of a descriptor.
type DescriptorKind int

const (
	KindScalar DescriptorKind = iota
	KindOptional
	KindSequence
	KindSet
	KindMapping
	KindProduct
	KindSum
	KindAny
)

// ScalarKind identifies the primitive family of a scalar descriptor.
type ScalarKind int

const (
	ScalarBool ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarString
)

// Descriptor is the structural description of one Go type, built once per
// generator and shared. Self-referential types resolve to the same pointer:
// the arena installs the descriptor before filling it, so any reference
// encountered mid-construction lands on the eventually-complete object.
type Descriptor struct {
	Kind   DescriptorKind
	Type   reflect.Type
	Scalar ScalarKind        // KindScalar only
	Elem   *Descriptor       // Optional, Sequence, Set and Mapping
	Fields []FieldDescriptor // KindProduct, in declaration order
	Alts   []*Descriptor     // KindSum, in registered attempt order

	byKey map[string]int // external key -> Fields index
}

// FieldDescriptor describes one declared field of a product type.
type FieldDescriptor struct {
	Name     string // Go identifier
	Key      string // external document key
	Index    int    // struct field index
	Desc     *Descriptor
	Required bool
	Const    string        // literal the decoded value must equal, when HasConst
	HasConst bool
	Default  reflect.Value // substituted on absence; invalid for required fields
}

var (
	emptyStructType = reflect.TypeOf(struct{}{})
	anyType         = reflect.TypeOf((*any)(nil)).Elem()
)

// arena memoizes descriptor construction per type identity for one generator.
type arena struct {
	cfg   *config
	reg   *Registry
	types map[reflect.Type]*Descriptor
}

func (a *arena) descriptorOf(t reflect.Type) (*Descriptor, error) {
	if d, ok := a.types[t]; ok {
		return d, nil
	}
	d := &Descriptor{Type: t}
	a.types[t] = d // placeholder first, so recursion into members terminates
	if err := a.fill(d, t); err != nil {
		delete(a.types, t)
		return nil, err
	}
	return d, nil
}

func (a *arena) fill(d *Descriptor, t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool:
		d.Kind = KindScalar
		d.Scalar = ScalarBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		d.Kind = KindScalar
		d.Scalar = ScalarInt
	case reflect.Float32, reflect.Float64:
		d.Kind = KindScalar
		d.Scalar = ScalarFloat
	case reflect.String:
		d.Kind = KindScalar
		d.Scalar = ScalarString
	case reflect.Pointer:
		elem, err := a.descriptorOf(t.Elem())
		if err != nil {
			return err
		}
		d.Kind = KindOptional
		d.Elem = elem
	case reflect.Slice:
		elem, err := a.descriptorOf(t.Elem())
		if err != nil {
			return err
		}
		d.Kind = KindSequence
		d.Elem = elem
	case reflect.Map:
		return a.fillMap(d, t)
	case reflect.Struct:
		return a.fillProduct(d, t)
	case reflect.Interface:
		return a.fillSum(d, t)
	default:
		return &UnsupportedTypeError{Type: t, Reason: "no descriptor shape for kind " + t.Kind().String()}
	}
	return nil
}

// fillMap distinguishes sets (struct{}-valued maps over comparable scalars)
// from fixed-key-type mappings (string-keyed maps over any value type).
func (a *arena) fillMap(d *Descriptor, t reflect.Type) error {
	if t.Elem() == emptyStructType {
		key, err := a.descriptorOf(t.Key())
		if err != nil {
			return err
		}
		if key.Kind != KindScalar {
			return &UnsupportedTypeError{Type: t, Reason: "set element must be a scalar type"}
		}
		d.Kind = KindSet
		d.Elem = key
		return nil
	}
	if t.Key().Kind() != reflect.String {
		return &UnsupportedTypeError{Type: t, Reason: "mapping key must be a string-kinded type"}
	}
	elem, err := a.descriptorOf(t.Elem())
	if err != nil {
		return err
	}
	d.Kind = KindMapping
	d.Elem = elem
	return nil
}

func (a *arena) fillSum(d *Descriptor, t reflect.Type) error {
	if t == anyType {
		d.Kind = KindAny
		return nil
	}
	alts, ok := a.cfg.variants[t]
	if !ok {
		return &UnsupportedTypeError{Type: t, Reason: "interface type with no registered variants"}
	}
	d.Kind = KindSum
	d.Alts = make([]*Descriptor, 0, len(alts))
	for _, at := range alts {
		ad, err := a.descriptorOf(at)
		if err != nil {
			return err
		}
		d.Alts = append(d.Alts, ad)
	}
	return nil
}

func (a *arena) fillProduct(d *Descriptor, t reflect.Type) error {
	d.Kind = KindProduct
	d.byKey = make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("typegen")
		if tag == "-" {
			continue
		}
		fd := FieldDescriptor{Name: sf.Name, Index: i}
		for _, opt := range strings.Split(tag, ",") {
			opt = strings.TrimSpace(opt)
			switch {
			case opt == "required":
				fd.Required = true
			case strings.HasPrefix(opt, "const="):
				fd.Const = strings.TrimPrefix(opt, "const=")
				fd.HasConst = true
				fd.Required = true
			}
		}
		desc, err := a.descriptorOf(sf.Type)
		if err != nil {
			return err
		}
		fd.Desc = desc
		if fd.HasConst && (desc.Kind != KindScalar || desc.Scalar != ScalarString) {
			return &UnsupportedTypeError{Type: t, Reason: "const field " + sf.Name + " must have a string-kinded type"}
		}
		if desc.Kind == KindOptional {
			// Optional fields are never required; absence is a value.
			fd.Required = false
		}
		if !fd.Required {
			fd.Default = reflect.Zero(sf.Type)
		}
		fd.Key = a.externalKey(t, sf)
		if _, dup := d.byKey[fd.Key]; dup {
			return &UnsupportedTypeError{Type: t, Reason: "duplicate external key " + strconv.Quote(fd.Key)}
		}
		d.byKey[fd.Key] = len(d.Fields)
		d.Fields = append(d.Fields, fd)
	}
	return nil
}

// externalKey resolves a field's document key: override registry entries win,
// then the json tag name, then the lower-camel form of the Go identifier.
func (a *arena) externalKey(owner reflect.Type, sf reflect.StructField) string {
	if key, ok := a.reg.Lookup(owner, sf.Name); ok {
		return key
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		name, _, _ := strings.Cut(jt, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return lowerCamel(sf.Name)
}

func lowerCamel(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// describe renders a descriptor's expected shape for diagnostics.
func describe(d *Descriptor) string {
	switch d.Kind {
	case KindScalar:
		switch d.Scalar {
		case ScalarBool:
			return "bool"
		case ScalarInt:
			return "integer"
		case ScalarFloat:
			return "float"
		default:
			return "string"
		}
	case KindOptional:
		return describe(d.Elem)
	case KindSequence, KindSet:
		return "sequence"
	case KindMapping, KindProduct:
		return "mapping"
	case KindSum:
		return d.Type.String()
	default:
		return "value"
	}
}
