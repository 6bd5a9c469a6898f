package openapitype

import (
	"sync"

	"github.com/sarayourfriend/openapi-type/typegen"
)

// GeneratorOptions is the full typegen configuration for the OpenAPI model:
// the override table plus every sum type's ordered variant list. It is
// exported so callers can rebuild the generator with extra options (for
// example typegen.WithUnknownPolicy(typegen.UnknownStrict)).
func GeneratorOptions() []typegen.Option {
	return []typegen.Option{
		typegen.WithOverride(Reference{}, "Ref", "$ref"),
		typegen.WithOverride(PathItem{}, "Ref", "$ref"),
		// SchemaType attempt order mirrors the declaration order of the
		// shapes; EmptyValue stays last as the catch-all.
		typegen.WithVariants((*SchemaType)(nil),
			StringValue{},
			IntegerValue{},
			FloatValue{},
			BooleanValue{},
			ObjectValue{},
			ArrayValue{},
			ResponseRef{},
			Reference{},
			ProductSchemaType{},
			UnionSchemaTypeAny{},
			UnionSchemaTypeOne{},
			ObjectWithAdditionalProperties{},
			InlinedObjectValue{},
			EmptyValue{},
		),
		// The free-form shape decodes a bare boolean literally, so the flag
		// must be attempted before any schema shape.
		typegen.WithVariants((*SchemaOrBool)(nil),
			SchemaFlag(false),
			StringValue{},
			IntegerValue{},
			FloatValue{},
			BooleanValue{},
			ObjectValue{},
			ArrayValue{},
			ResponseRef{},
			Reference{},
			ProductSchemaType{},
			UnionSchemaTypeAny{},
			UnionSchemaTypeOne{},
			ObjectWithAdditionalProperties{},
			InlinedObjectValue{},
			EmptyValue{},
		),
		// Reference before Response: a {"$ref": ...} mapping must never be
		// absorbed into the broader response shape.
		typegen.WithVariants((*ResponseOrRef)(nil), Reference{}, Response{}),
		typegen.WithVariants((*HeaderOrRef)(nil), Header{}, Reference{}),
		typegen.WithVariants((*ParamOrRef)(nil), OperationParameter{}, Reference{}),
		typegen.WithVariants((*BodyOrRef)(nil), RequestBody{}, Reference{}),
	}
}

var specGenerator = sync.OnceValues(func() (*typegen.Generator[OpenAPI], error) {
	return typegen.New[OpenAPI](GeneratorOptions()...)
})

// ParseSpec decodes an untyped document tree into a typed OpenAPI value.
func ParseSpec(node any) (OpenAPI, error) {
	g, err := specGenerator()
	if err != nil {
		return OpenAPI{}, err
	}
	return g.Decode(node)
}

// SerializeSpec encodes a typed OpenAPI value back into an untyped document
// tree, omitting fields equal to their defaults.
func SerializeSpec(spec OpenAPI) (any, error) {
	g, err := specGenerator()
	if err != nil {
		return nil, err
	}
	return g.Encode(spec)
}
