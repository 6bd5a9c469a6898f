package typegen

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// decode maps an untyped node onto a value of the descriptor's type. It is
// fail-fast: the first structural problem is returned, carrying the dotted
// path trail to the offending node.
func (g *generator) decode(node any, d *Descriptor, path string, depth int) (reflect.Value, error) {
	switch d.Kind {
	case KindScalar:
		return decodeScalar(node, d, path)
	case KindOptional:
		if node == nil {
			return reflect.Zero(d.Type), nil
		}
		inner, err := g.decode(node, d.Elem, path, depth)
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(d.Type.Elem())
		p.Elem().Set(inner)
		return p, nil
	case KindAny:
		out := reflect.New(d.Type).Elem()
		if node != nil {
			out.Set(reflect.ValueOf(node))
		}
		return out, nil
	case KindSequence:
		return g.decodeSequence(node, d, path, depth)
	case KindSet:
		return g.decodeSet(node, d, path, depth)
	case KindMapping:
		return g.decodeMapping(node, d, path, depth)
	case KindProduct:
		return g.decodeProduct(node, d, path, depth)
	case KindSum:
		return g.decodeSum(node, d, path, depth)
	default:
		return reflect.Value{}, &UnsupportedTypeError{Type: d.Type, Reason: "descriptor was never filled"}
	}
}

// enter guards container descent. The counter, not native recursion, bounds
// how deep a document may nest: adversarially deep input fails with
// RecursionLimitError long before the goroutine stack is at risk.
func (g *generator) enter(path string, depth int) error {
	if depth >= g.cfg.maxDepth {
		return &RecursionLimitError{Path: path, Limit: g.cfg.maxDepth}
	}
	return nil
}

func decodeScalar(node any, d *Descriptor, path string) (reflect.Value, error) {
	mismatch := func() (reflect.Value, error) {
		return reflect.Value{}, &TypeMismatchError{Path: path, Expected: describe(d), Got: nodeKind(node)}
	}
	if node == nil {
		return mismatch()
	}
	out := reflect.New(d.Type).Elem()
	nv := reflect.ValueOf(node)
	switch d.Scalar {
	case ScalarBool:
		if nv.Kind() != reflect.Bool {
			return mismatch()
		}
		out.SetBool(nv.Bool())
	case ScalarString:
		if nv.Kind() != reflect.String {
			return mismatch()
		}
		out.SetString(nv.String())
	case ScalarInt:
		if isUnsigned(out.Kind()) {
			return decodeUnsignedScalar(node, d, path)
		}
		// Float-to-integer narrowing is not permitted.
		switch nv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i := nv.Int()
			if out.OverflowInt(i) {
				return mismatch()
			}
			out.SetInt(i)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := nv.Uint()
			if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
				return mismatch()
			}
			out.SetInt(int64(u))
		default:
			return mismatch()
		}
	case ScalarFloat:
		// Integer-to-float widening is permitted.
		switch nv.Kind() {
		case reflect.Float32, reflect.Float64:
			out.SetFloat(nv.Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out.SetFloat(float64(nv.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out.SetFloat(float64(nv.Uint()))
		default:
			return mismatch()
		}
	}
	return out, nil
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// decodeUnsignedScalar handles the rare unsigned declared types, which cannot
// go through SetInt above.
func decodeUnsignedScalar(node any, d *Descriptor, path string) (reflect.Value, error) {
	mismatch := func() (reflect.Value, error) {
		return reflect.Value{}, &TypeMismatchError{Path: path, Expected: describe(d), Got: nodeKind(node)}
	}
	out := reflect.New(d.Type).Elem()
	nv := reflect.ValueOf(node)
	switch nv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := nv.Int()
		if i < 0 || out.OverflowUint(uint64(i)) {
			return mismatch()
		}
		out.SetUint(uint64(i))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := nv.Uint()
		if out.OverflowUint(u) {
			return mismatch()
		}
		out.SetUint(u)
	default:
		return mismatch()
	}
	return out, nil
}

func (g *generator) decodeSequence(node any, d *Descriptor, path string, depth int) (reflect.Value, error) {
	if err := g.enter(path, depth); err != nil {
		return reflect.Value{}, err
	}
	arr, ok := node.([]any)
	if !ok {
		return reflect.Value{}, &TypeMismatchError{Path: path, Expected: "sequence", Got: nodeKind(node)}
	}
	out := reflect.MakeSlice(d.Type, len(arr), len(arr))
	for i, el := range arr {
		ev, err := g.decode(el, d.Elem, joinIndex(path, i), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(ev)
	}
	return out, nil
}

func (g *generator) decodeSet(node any, d *Descriptor, path string, depth int) (reflect.Value, error) {
	if err := g.enter(path, depth); err != nil {
		return reflect.Value{}, err
	}
	arr, ok := node.([]any)
	if !ok {
		return reflect.Value{}, &TypeMismatchError{Path: path, Expected: "sequence", Got: nodeKind(node)}
	}
	out := reflect.MakeMapWithSize(d.Type, len(arr))
	present := reflect.ValueOf(struct{}{})
	for i, el := range arr {
		ev, err := g.decode(el, d.Elem, joinIndex(path, i), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		// Duplicate elements collapse; order is not significant in the result.
		out.SetMapIndex(ev, present)
	}
	return out, nil
}

func (g *generator) decodeMapping(node any, d *Descriptor, path string, depth int) (reflect.Value, error) {
	if err := g.enter(path, depth); err != nil {
		return reflect.Value{}, err
	}
	m, ok := node.(map[string]any)
	if !ok {
		return reflect.Value{}, &TypeMismatchError{Path: path, Expected: "mapping", Got: nodeKind(node)}
	}
	out := reflect.MakeMapWithSize(d.Type, len(m))
	kt := d.Type.Key()
	for _, k := range sortedKeys(m) {
		vv, err := g.decode(m[k], d.Elem, joinField(path, k), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(kt), vv)
	}
	return out, nil
}

func (g *generator) decodeProduct(node any, d *Descriptor, path string, depth int) (reflect.Value, error) {
	if err := g.enter(path, depth); err != nil {
		return reflect.Value{}, err
	}
	m, ok := node.(map[string]any)
	if !ok {
		return reflect.Value{}, &TypeMismatchError{Path: path, Expected: "mapping", Got: nodeKind(node)}
	}
	if g.cfg.policy == UnknownStrict {
		for _, k := range sortedKeys(m) {
			if _, known := d.byKey[k]; !known {
				return reflect.Value{}, &UnknownFieldError{Path: path, Key: k}
			}
		}
	}
	out := reflect.New(d.Type).Elem()
	for i := range d.Fields {
		f := &d.Fields[i]
		raw, present := m[f.Key]
		if !present || (raw == nil && !f.Required) {
			// A missing key, or an explicit null on a non-required field,
			// decodes to the field's default.
			if f.Required {
				return reflect.Value{}, &MissingFieldError{Path: path, Field: f.Key}
			}
			continue // the zero default is already in place
		}
		fpath := joinField(path, f.Key)
		fv, err := g.decode(raw, f.Desc, fpath, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		if f.HasConst && fv.String() != f.Const {
			return reflect.Value{}, &TypeMismatchError{
				Path:     fpath,
				Expected: strconv.Quote(f.Const),
				Got:      strconv.Quote(fv.String()),
			}
		}
		out.Field(f.Index).Set(fv)
	}
	return out, nil
}

// decodeSum tries each registered alternative in declared order; the first
// one that decodes the node without error wins. Attempt order is a contract,
// not an implementation detail. Alternatives share the current depth: they
// are parallel readings of the same node, not deeper nesting.
func (g *generator) decodeSum(node any, d *Descriptor, path string, depth int) (reflect.Value, error) {
	attempts := make([]error, 0, len(d.Alts))
	for _, alt := range d.Alts {
		v, err := g.decode(node, alt, path, depth)
		if err == nil {
			out := reflect.New(d.Type).Elem()
			out.Set(v)
			return out, nil
		}
		attempts = append(attempts, err)
	}
	return reflect.Value{}, &NoMatchingVariantError{Path: path, Sum: d.Type.String(), Attempts: attempts}
}

// nodeKind names the shape of an untyped node for diagnostics.
func nodeKind(node any) string {
	switch n := node.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	default:
		switch reflect.ValueOf(n).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return "integer"
		case reflect.Float32, reflect.Float64:
			return "float"
		default:
			return fmt.Sprintf("%T", node)
		}
	}
}

func joinField(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
