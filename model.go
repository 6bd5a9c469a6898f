package openapitype

// Name types keep the intent of component map keys visible in signatures.
type (
	HTTPCode         string
	HeaderName       string
	ContentTypeTag   string
	SecurityName     string
	HeaderTypeName   string
	ParamTypeName    string
	ResponseTypeName string
)

// SpecFormat is the spec format version tag.
type SpecFormat string

const (
	V300 SpecFormat = "3.0.0"
	V301 SpecFormat = "3.0.1"
	V302 SpecFormat = "3.0.2"
	V303 SpecFormat = "3.0.3"
)

// ParamLocation says where a parameter lives.
type ParamLocation string

const (
	LocationQuery  ParamLocation = "query"
	LocationHeader ParamLocation = "header"
	LocationPath   ParamLocation = "path"
	LocationCookie ParamLocation = "cookie"
)

// ParamStyle controls parameter serialization.
//   - https://swagger.io/specification/#style-values
//   - https://swagger.io/specification/#style-examples
type ParamStyle string

const (
	StyleForm           ParamStyle = "form"
	StyleSimple         ParamStyle = "simple"
	StyleMatrix         ParamStyle = "matrix"
	StyleLabel          ParamStyle = "label"
	StyleSpaceDelimited ParamStyle = "spaceDelimited"
	StylePipeDelimited  ParamStyle = "pipeDelimited"
	StyleDeepObject     ParamStyle = "deepObject"
)

// StringSet is an unordered set of strings; the document form is a sequence
// with duplicates collapsed.
type StringSet map[string]struct{}

// NewStringSet builds a StringSet from its members.
func NewStringSet(members ...string) StringSet {
	s := make(StringSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// ResponseOrRef is either an inline Response or a Reference. Reference is
// attempted first; the order is load-bearing.
type ResponseOrRef interface {
	isResponseOrRef()
}

// HeaderOrRef is either an inline Header or a Reference.
type HeaderOrRef interface {
	isHeaderOrRef()
}

// ParamOrRef is either an inline OperationParameter or a Reference.
type ParamOrRef interface {
	isParamOrRef()
}

// BodyOrRef is either an inline RequestBody or a Reference.
type BodyOrRef interface {
	isBodyOrRef()
}

func (Reference) isResponseOrRef() {}
func (Response) isResponseOrRef()  {}

func (Reference) isHeaderOrRef() {}
func (Header) isHeaderOrRef()    {}

func (Reference) isParamOrRef()          {}
func (OperationParameter) isParamOrRef() {}

func (Reference) isBodyOrRef()   {}
func (RequestBody) isBodyOrRef() {}

// OperationParameter describes one operation parameter. The In field binds
// to the document key "in" (a reserved word in some languages; plain Go
// naming covers it here).
type OperationParameter struct {
	Name        string        `typegen:"required"`
	In          ParamLocation `typegen:"required"`
	Schema      SchemaType    `typegen:"required"`
	Required    bool
	Description string
	Style       *ParamStyle
	Explode     *bool
}

// Header is a response header.
type Header struct {
	Schema      SchemaType `typegen:"required"`
	Description string
}

// MediaType describes one content entry.
// https://swagger.io/specification/#media-type-object
type MediaType struct {
	Schema   SchemaType
	Example  any
	Examples map[string]any
	Encoding map[string]any
}

// Response is the response of an endpoint.
type Response struct {
	Content     map[ContentTypeTag]MediaType
	Headers     map[HeaderName]HeaderOrRef
	Description string
}

// Components holds the reusable objects of the spec.
type Components struct {
	Schemas         map[string]SchemaType `typegen:"required"`
	Links           map[string]SchemaType
	Parameters      map[ParamTypeName]OperationParameter
	Responses       map[ResponseTypeName]Response
	Headers         map[HeaderTypeName]Header
	RequestBodies   map[string]any
	SecuritySchemes map[string]any
}

// ServerVar is a server URL template variable.
type ServerVar struct {
	Default     string   `typegen:"required"`
	Enum        []string `typegen:"required"`
	Description string
}

// Server describes one server entry.
type Server struct {
	URL         string `json:"url" typegen:"required"`
	Description string
	Variables   map[string]ServerVar
}

// InfoLicense is the license entry of the info block.
type InfoLicense struct {
	Name string `typegen:"required"`
	URL  string `json:"url"`
}

// InfoContact is the contact entry of the info block.
type InfoContact struct {
	Name  *string
	Email *string
	URL   *string `json:"url"`
}

// Info carries the spec metadata.
type Info struct {
	// Version is the API version, not the spec format version.
	Version        string `typegen:"required"`
	Title          string `typegen:"required"`
	License        *InfoLicense
	Contact        *InfoContact
	TermsOfService string
	Description    string
}

// ExternalDoc points at external documentation.
type ExternalDoc struct {
	URL         string `json:"url" typegen:"required"`
	Description string
}

// RequestBodySchema is one content entry of a request body.
type RequestBodySchema struct {
	Schema SchemaType `typegen:"required"`
}

// RequestBody describes a request payload.
// https://swagger.io/specification/#request-body-object
type RequestBody struct {
	Content     map[ContentTypeTag]RequestBodySchema `typegen:"required"`
	Description string
	Required    bool
}

// Operation describes one endpoint method.
// https://swagger.io/specification/#operation-object
type Operation struct {
	Responses    map[HTTPCode]ResponseOrRef `typegen:"required"`
	ExternalDocs *ExternalDoc
	Summary      string
	OperationID  string `json:"operationId"`
	Parameters   []ParamOrRef
	RequestBody  BodyOrRef
	Description  string
	Tags         StringSet
	Callbacks    map[string]map[string]any
	Security     any
}

// PathItem describes the methods of one endpoint. The Ref field binds to
// "$ref" via the generator's override table.
type PathItem struct {
	Head        *Operation
	Get         *Operation
	Post        *Operation
	Put         *Operation
	Patch       *Operation
	Delete      *Operation
	Trace       *Operation
	Servers     []Server
	Ref         *Ref
	Summary     string
	Description string
}

// SpecTag is a spec-level tag entry.
type SpecTag struct {
	Name         string `typegen:"required"`
	ExternalDocs *ExternalDoc
	Description  string
}

// OpenAPI is the root of the typed object graph.
type OpenAPI struct {
	// OpenAPI is the spec format version.
	OpenAPI      SpecFormat          `json:"openapi" typegen:"required"`
	Info         Info                `typegen:"required"`
	Paths        map[string]PathItem `typegen:"required"`
	Components   Components
	Servers      []Server
	Security     []map[SecurityName][]string
	Tags         []SpecTag
	ExternalDocs *ExternalDoc
}
