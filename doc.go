// Package openapitype is a typed model of the OpenAPI 3.0.x specification
// format, driven by the generic mapping engine in typegen.
//
// The package declares the object graph (Info, PathItem, Operation, the
// SchemaType union and friends) and binds it to a generator:
//
//	spec, err := openapitype.ParseSpecYAML(raw)
//	tree, err := openapitype.SerializeSpec(spec)
//
// ParseSpec and SerializeSpec work on already-parsed generic trees; the
// JSON/YAML helpers in tree.go are thin text bridges over goccy/go-json and
// yaml.v3.
package openapitype
