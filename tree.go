package openapitype

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses JSON text into the untyped tree form the engine
// consumes: nil, bool, int64, float64, string, []any, map[string]any.
func DecodeJSON(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("openapitype: invalid JSON document: %w", err)
	}
	return normalizeTree(doc)
}

// DecodeYAML parses YAML text into the untyped tree form.
func DecodeYAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("openapitype: invalid YAML document: %w", err)
	}
	return normalizeTree(doc)
}

// EncodeJSON writes an untyped tree as JSON text.
func EncodeJSON(node any) ([]byte, error) {
	return json.Marshal(node)
}

// EncodeYAML writes an untyped tree as YAML text.
func EncodeYAML(node any) ([]byte, error) {
	return yaml.Marshal(node)
}

// ParseSpecJSON is DecodeJSON composed with ParseSpec.
func ParseSpecJSON(data []byte) (OpenAPI, error) {
	node, err := DecodeJSON(data)
	if err != nil {
		return OpenAPI{}, err
	}
	return ParseSpec(node)
}

// ParseSpecYAML is DecodeYAML composed with ParseSpec.
func ParseSpecYAML(data []byte) (OpenAPI, error) {
	node, err := DecodeYAML(data)
	if err != nil {
		return OpenAPI{}, err
	}
	return ParseSpec(node)
}

// SerializeSpecJSON is SerializeSpec composed with EncodeJSON.
func SerializeSpecJSON(spec OpenAPI) ([]byte, error) {
	node, err := SerializeSpec(spec)
	if err != nil {
		return nil, err
	}
	return EncodeJSON(node)
}

// SerializeSpecYAML is SerializeSpec composed with EncodeYAML.
func SerializeSpecYAML(spec OpenAPI) ([]byte, error) {
	node, err := SerializeSpec(spec)
	if err != nil {
		return nil, err
	}
	return EncodeYAML(node)
}

// maxExactInt is the largest float64 magnitude whose integral values are all
// exactly representable.
const maxExactInt = 1 << 53

// normalizeTree maps parsed containers and numbers onto the engine's node
// forms. JSON parsers hand every number over as float64; integral values are
// restored to int64 so integer-typed fields are not rejected as floats.
func normalizeTree(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			nv, err := normalizeTree(vv)
			if err != nil {
				return nil, err
			}
			t[k] = nv
		}
		return t, nil
	case map[any]any:
		// Some YAML inputs surface mappings with untyped keys.
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("openapitype: non-string mapping key %v", k)
			}
			nv, err := normalizeTree(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		for i, vv := range t {
			nv, err := normalizeTree(vv)
			if err != nil {
				return nil, err
			}
			t[i] = nv
		}
		return t, nil
	case float64:
		if t == math.Trunc(t) && math.Abs(t) <= maxExactInt {
			return int64(t), nil
		}
		return t, nil
	case int:
		return int64(t), nil
	default:
		return v, nil
	}
}
