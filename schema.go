package openapitype

// Ref is a document-internal reference, e.g. #/components/schemas/Pet.
type Ref string

// SchemaType is the closed set of shapes a schema node can take. Decoding
// attempts the variants in the order they are registered in spec.go; that
// order is a contract, not an accident — narrower shapes come first so that,
// for example, {"$ref": ...} is recognized as a Reference and never absorbed
// into a broader object shape.
type SchemaType interface {
	isSchemaType()
}

// SchemaOrBool is the free-form additionalProperties shape: either a bare
// boolean flag or a full nested schema.
// https://swagger.io/docs/specification/data-models/dictionaries/#free-form
type SchemaOrBool interface {
	isSchemaType()
}

// SchemaFlag is the boolean form of additionalProperties.
type SchemaFlag bool

// StringValue is a string-typed schema node.
type StringValue struct {
	Type        string `typegen:"const=string"`
	Format      string
	Description string
	Enum        []string
	Default     *string
	Pattern     *string
	Example     string
	Nullable    *bool
}

// IntegerValue is an integer-typed schema node.
type IntegerValue struct {
	Type     string `typegen:"const=integer"`
	Format   string
	Example  *int
	Default  *int
	Minimum  *int
	Maximum  *int
	Nullable *bool
}

// FloatValue is a number-typed schema node.
type FloatValue struct {
	Type     string `typegen:"const=number"`
	Format   string
	Example  *float64
	Default  *float64
	Nullable *bool
}

// BooleanValue is a boolean-typed schema node.
type BooleanValue struct {
	Type     string `typegen:"const=boolean"`
	Default  *bool
	Nullable *bool
}

// Reference is a schema node referenced as #/components/schemas/<SomeType>.
// The Ref field is renamed to "$ref" by the generator's override table.
type Reference struct {
	Ref Ref `typegen:"required"`
}

// ObjectValue is an object schema with declared properties.
type ObjectValue struct {
	Type        string                `typegen:"const=object"`
	Properties  map[string]SchemaType `typegen:"required"`
	Required    StringSet
	Description string
	Xml         map[string]any
	Nullable    *bool
}

// InlinedObjectValue is an object schema written without a type tag.
type InlinedObjectValue struct {
	Properties  map[string]SchemaType `typegen:"required"`
	Required    StringSet             `typegen:"required"`
	Description string
	Nullable    *bool
}

// ObjectWithAdditionalProperties represents a free-form object.
type ObjectWithAdditionalProperties struct {
	Type                 string `typegen:"const=object"`
	AdditionalProperties SchemaOrBool
	Nullable             *bool
}

// ArrayValue is an array schema.
type ArrayValue struct {
	Type        string     `typegen:"const=array"`
	Items       SchemaType `typegen:"required"`
	Description string
	Nullable    *bool
}

// ResponseRef is a value referenced as $response.body#/some/path.
type ResponseRef struct {
	OperationID string            `json:"operationId" typegen:"required"`
	Parameters  map[string]string `typegen:"required"`
	Nullable    *bool
}

// ProductSchemaType composes schemas with allOf.
type ProductSchemaType struct {
	AllOf    []SchemaType `typegen:"required"`
	Nullable *bool
}

// UnionSchemaTypeAny composes schemas with anyOf.
type UnionSchemaTypeAny struct {
	AnyOf    []SchemaType `typegen:"required"`
	Nullable *bool
}

// UnionSchemaTypeOne composes schemas with oneOf.
type UnionSchemaTypeOne struct {
	OneOf    []SchemaType `typegen:"required"`
	Nullable *bool
}

// EmptyValue is the catch-all trailing variant: a schema node carrying no
// recognized structure.
type EmptyValue struct{}

func (SchemaFlag) isSchemaType()                     {}
func (StringValue) isSchemaType()                    {}
func (IntegerValue) isSchemaType()                   {}
func (FloatValue) isSchemaType()                     {}
func (BooleanValue) isSchemaType()                   {}
func (Reference) isSchemaType()                      {}
func (ObjectValue) isSchemaType()                    {}
func (InlinedObjectValue) isSchemaType()             {}
func (ObjectWithAdditionalProperties) isSchemaType() {}
func (ArrayValue) isSchemaType()                     {}
func (ResponseRef) isSchemaType()                    {}
func (ProductSchemaType) isSchemaType()              {}
func (UnionSchemaTypeAny) isSchemaType()             {}
func (UnionSchemaTypeOne) isSchemaType()             {}
func (EmptyValue) isSchemaType()                     {}
