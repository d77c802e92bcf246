package ir

// Segment is one element of an endpoint's URL path. Segments are either
// static text or a capture whose value is supplied at call time. Order is
// significant: it is the concatenation order of the final URL.
type Segment interface {
	segment()
}

// StaticSegment is a fixed path element, emitted as a quoted literal.
type StaticSegment struct {
	Text string
}

func (StaticSegment) segment() {}

// CaptureSegment is a path element bound to a function argument. Each
// capture contributes exactly one function parameter and one URL-encoding
// expression.
type CaptureSegment struct {
	ArgName string
	Type    TypeTag
}

func (CaptureSegment) segment() {}

// Static returns a fixed path segment.
func Static(text string) Segment { return StaticSegment{Text: text} }

// Capture returns a path segment bound to a call-time argument.
func Capture(argName string, t TypeTag) Segment {
	return CaptureSegment{ArgName: argName, Type: t}
}

// QueryKind selects the serialization shape of a query parameter.
type QueryKind int

const (
	// QueryNormal is an optional single value: absent collapses to no token.
	QueryNormal QueryKind = iota

	// QueryFlag is a boolean toggle: true emits "name=", false emits nothing.
	QueryFlag

	// QueryList is a repeated value: each element emits "name[]=value".
	QueryList
)

func (k QueryKind) String() string {
	switch k {
	case QueryNormal:
		return "normal"
	case QueryFlag:
		return "flag"
	case QueryList:
		return "list"
	default:
		return "unknown"
	}
}

// QueryParam describes one declared query parameter. Declaration order is
// significant: it matches both function argument order and params-array
// order in the generated code.
type QueryParam struct {
	ArgName string
	Type    TypeTag
	Kind    QueryKind
}

// EndpointDescriptor represents a single API endpoint. Descriptors are
// produced once by route reflection and read-only to the generator.
type EndpointDescriptor struct {
	// FunctionName is the identifier for the generated client function,
	// already normalized to the target naming convention (e.g. "getBooksById").
	FunctionName string

	// Method is the HTTP verb (e.g. "GET", "POST").
	Method string

	// Path is the ordered list of URL segments.
	Path []Segment

	// Query is the ordered list of declared query parameters.
	Query []QueryParam

	// Body is the request body type. Nil means no body argument and an
	// empty request body.
	Body TypeTag

	// Response is the response payload type. It must be present: a nil
	// response is a construction-time error that fails the whole
	// generation run.
	Response TypeTag
}
