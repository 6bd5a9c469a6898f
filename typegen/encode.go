package typegen

import (
	"math"
	"reflect"
	"sort"
)

// encode maps a typed value back onto an untyped node. It is total over every
// value constructible from the descriptor model; the only runtime failures
// are the depth guard (which also catches cyclic pointer graphs) and a sum
// value whose dynamic type was never registered.
func (g *generator) encode(v reflect.Value, d *Descriptor, path string, depth int) (any, error) {
	switch d.Kind {
	case KindScalar:
		return encodeScalar(v, d), nil
	case KindOptional:
		if v.IsNil() {
			return nil, nil
		}
		return g.encode(v.Elem(), d.Elem, path, depth)
	case KindAny:
		if !v.IsValid() || v.IsNil() {
			return nil, nil
		}
		return v.Interface(), nil
	case KindSequence:
		return g.encodeSequence(v, d, path, depth)
	case KindSet:
		return g.encodeSet(v, d, path, depth)
	case KindMapping:
		return g.encodeMapping(v, d, path, depth)
	case KindProduct:
		return g.encodeProduct(v, d, path, depth)
	case KindSum:
		return g.encodeSum(v, d, path, depth)
	default:
		return nil, &UnsupportedTypeError{Type: d.Type, Reason: "descriptor was never filled"}
	}
}

func encodeScalar(v reflect.Value, d *Descriptor) any {
	switch d.Scalar {
	case ScalarBool:
		return v.Bool()
	case ScalarString:
		return v.String()
	case ScalarInt:
		if isUnsigned(v.Kind()) {
			u := v.Uint()
			if u > math.MaxInt64 {
				return u
			}
			return int64(u)
		}
		return v.Int()
	default:
		return v.Float()
	}
}

func (g *generator) encodeSequence(v reflect.Value, d *Descriptor, path string, depth int) (any, error) {
	if err := g.enter(path, depth); err != nil {
		return nil, err
	}
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		node, err := g.encode(v.Index(i), d.Elem, joinIndex(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = node
	}
	return out, nil
}

// encodeSet emits set elements as a sequence in sorted element order, so the
// output is stable within (and across) encode calls.
func (g *generator) encodeSet(v reflect.Value, d *Descriptor, path string, depth int) (any, error) {
	if err := g.enter(path, depth); err != nil {
		return nil, err
	}
	out := make([]any, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		out = append(out, encodeScalar(iter.Key(), d.Elem))
	}
	sort.Slice(out, func(i, j int) bool { return scalarLess(out[i], out[j]) })
	return out, nil
}

func scalarLess(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return av < bv
	case int64:
		bv, _ := b.(int64)
		return av < bv
	case float64:
		bv, _ := b.(float64)
		return av < bv
	case bool:
		bv, _ := b.(bool)
		return !av && bv
	default:
		return false
	}
}

func (g *generator) encodeMapping(v reflect.Value, d *Descriptor, path string, depth int) (any, error) {
	if err := g.enter(path, depth); err != nil {
		return nil, err
	}
	keys := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)
	kt := d.Type.Key()
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		kv := reflect.ValueOf(k).Convert(kt)
		node, err := g.encode(v.MapIndex(kv), d.Elem, joinField(path, k), depth+1)
		if err != nil {
			return nil, err
		}
		out[k] = node
	}
	return out, nil
}

func (g *generator) encodeProduct(v reflect.Value, d *Descriptor, path string, depth int) (any, error) {
	if err := g.enter(path, depth); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		fv := v.Field(f.Index)
		if isAbsent(fv, f.Desc) && !f.Required {
			if g.cfg.absentAsNull {
				out[f.Key] = nil
			}
			continue
		}
		if !f.Required && f.Default.IsValid() && reflect.DeepEqual(fv.Interface(), f.Default.Interface()) {
			// Canonical compact output: a value equal to its default is
			// omitted; decode substitutes the default back.
			continue
		}
		node, err := g.encode(fv, f.Desc, joinField(path, f.Key), depth+1)
		if err != nil {
			return nil, err
		}
		out[f.Key] = node
	}
	return out, nil
}

// isAbsent reports whether a field value represents absence rather than an
// empty value: a nil pointer, a nil sum interface, or a nil free-form value.
func isAbsent(v reflect.Value, d *Descriptor) bool {
	switch d.Kind {
	case KindOptional, KindSum, KindAny:
		return v.IsNil()
	}
	return false
}

// encodeSum dispatches on the value's dynamic variant; it never re-attempts
// shapes structurally.
func (g *generator) encodeSum(v reflect.Value, d *Descriptor, path string, depth int) (any, error) {
	if v.IsNil() {
		return nil, &TypeMismatchError{Path: path, Expected: d.Type.String(), Got: "null"}
	}
	cv := v.Elem()
	ct := cv.Type()
	for _, alt := range d.Alts {
		if alt.Type == ct {
			return g.encode(cv, alt, path, depth)
		}
	}
	return nil, &TypeMismatchError{Path: path, Expected: d.Type.String(), Got: ct.String() + " (unregistered variant)"}
}
