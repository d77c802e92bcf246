// Package elm generates Elm client functions from endpoint descriptors.
// Each descriptor becomes one function that builds an HTTP request and
// decodes the response into a Task.
package elm

import "github.com/expipiplus1/servant-elm/ir"

// ResolvedType is the Elm rendering of one abstract type tag.
type ResolvedType struct {
	// TypeName is the Elm type reference (e.g. "Book", "List (Book)").
	TypeName string

	// Decoder is the JSON decoder reference (e.g. "decodeBook").
	Decoder string

	// Encoder is the JSON encoder reference (e.g. "encodeBook").
	Encoder string
}

// TypeResolver maps abstract type tags to Elm type names and codec
// references. Implementations must be total over every tag route reflection
// can produce.
type TypeResolver interface {
	Resolve(tag ir.TypeTag) ResolvedType
}

// NamingConfig controls how the default resolver derives Elm identifiers
// from type names.
type NamingConfig struct {
	// TypePrefix is prepended to all named type references.
	TypePrefix string

	// DecoderPrefix is prepended to decoder references. Default: "decode".
	DecoderPrefix string

	// EncoderPrefix is prepended to encoder references. Default: "encode".
	EncoderPrefix string
}

// Resolver is the default table-backed TypeResolver. Named types resolve to
// "<TypePrefix>Name" / "<DecoderPrefix>Name" / "<EncoderPrefix>Name",
// composite tags compose the element's codecs, and individual tags can be
// overridden with Register.
type Resolver struct {
	naming    NamingConfig
	overrides map[ir.TypeTag]ResolvedType
}

// NewResolver creates a Resolver with the given naming configuration.
func NewResolver(naming NamingConfig) *Resolver {
	if naming.DecoderPrefix == "" {
		naming.DecoderPrefix = "decode"
	}
	if naming.EncoderPrefix == "" {
		naming.EncoderPrefix = "encode"
	}
	return &Resolver{
		naming:    naming,
		overrides: make(map[ir.TypeTag]ResolvedType),
	}
}

// Register overrides the resolution for a single tag. Lookup is by tag
// value equality.
func (r *Resolver) Register(tag ir.TypeTag, resolved ResolvedType) {
	r.overrides[tag] = resolved
}

// Resolve returns the Elm type name and codec references for a tag.
// It is total: unrecognized tags fall back to their Tag spelling.
func (r *Resolver) Resolve(tag ir.TypeTag) ResolvedType {
	if res, ok := r.overrides[tag]; ok {
		return res
	}

	switch t := tag.(type) {
	case ir.NamedTag:
		return ResolvedType{
			TypeName: r.naming.TypePrefix + t.Name,
			Decoder:  r.naming.DecoderPrefix + t.Name,
			Encoder:  r.naming.EncoderPrefix + t.Name,
		}
	case ir.PrimitiveTag:
		return resolvePrimitive(t.Kind)
	case ir.UnitTag:
		return ResolvedType{
			TypeName: "NoContent",
			Decoder:  "(Json.Decode.succeed NoContent)",
			Encoder:  "(\\_ -> Json.Encode.null)",
		}
	case ir.ListTag:
		elem := r.Resolve(t.Elem)
		return ResolvedType{
			TypeName: "List (" + elem.TypeName + ")",
			Decoder:  "(Json.Decode.list " + elem.Decoder + ")",
			Encoder:  "(Json.Encode.list << List.map " + elem.Encoder + ")",
		}
	case ir.MaybeTag:
		elem := r.Resolve(t.Elem)
		return ResolvedType{
			TypeName: "Maybe (" + elem.TypeName + ")",
			Decoder:  "(Json.Decode.maybe " + elem.Decoder + ")",
			Encoder:  "(Maybe.map " + elem.Encoder + " >> Maybe.withDefault Json.Encode.null)",
		}
	default:
		name := tag.Tag()
		return ResolvedType{
			TypeName: name,
			Decoder:  r.naming.DecoderPrefix + name,
			Encoder:  r.naming.EncoderPrefix + name,
		}
	}
}

func resolvePrimitive(kind ir.PrimitiveKind) ResolvedType {
	switch kind {
	case ir.PrimitiveString:
		return ResolvedType{"String", "Json.Decode.string", "Json.Encode.string"}
	case ir.PrimitiveInt:
		return ResolvedType{"Int", "Json.Decode.int", "Json.Encode.int"}
	case ir.PrimitiveFloat:
		return ResolvedType{"Float", "Json.Decode.float", "Json.Encode.float"}
	case ir.PrimitiveBool:
		return ResolvedType{"Bool", "Json.Decode.bool", "Json.Encode.bool"}
	default:
		return ResolvedType{"Json.Decode.Value", "Json.Decode.value", "identity"}
	}
}
