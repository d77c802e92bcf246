// Package ir defines the intermediate representation for endpoint
// descriptors. These types are language-agnostic descriptions of an HTTP
// API's routes that generators transform into target language source code.
package ir

// TypeTag is the abstract identity of a data type as produced by route
// reflection. Implementations are small comparable structs, so two tags
// describing the same type compare equal with == and can be used as map
// keys. Membership tests (empty-response types, string types) rely on this
// value equality, never on rendered names.
type TypeTag interface {
	// Tag returns a stable human-readable spelling, used in error messages.
	Tag() string
}

// NamedTag identifies a user-declared type by name (e.g. "Book").
type NamedTag struct {
	Name string
}

func (t NamedTag) Tag() string { return t.Name }

// PrimitiveKind enumerates the built-in scalar types.
type PrimitiveKind int

const (
	PrimitiveString PrimitiveKind = iota
	PrimitiveInt
	PrimitiveFloat
	PrimitiveBool
)

// PrimitiveTag identifies a built-in scalar type.
type PrimitiveTag struct {
	Kind PrimitiveKind
}

func (t PrimitiveTag) Tag() string {
	switch t.Kind {
	case PrimitiveString:
		return "String"
	case PrimitiveInt:
		return "Int"
	case PrimitiveFloat:
		return "Float"
	case PrimitiveBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// UnitTag identifies the "no content" type: a response that carries no
// decodable payload. It is the default member of the empty-response set.
type UnitTag struct{}

func (UnitTag) Tag() string { return "NoContent" }

// ListTag identifies a homogeneous list of Elem.
type ListTag struct {
	Elem TypeTag
}

func (t ListTag) Tag() string { return "List (" + t.Elem.Tag() + ")" }

// MaybeTag identifies an optional value of Elem.
type MaybeTag struct {
	Elem TypeTag
}

func (t MaybeTag) Tag() string { return "Maybe (" + t.Elem.Tag() + ")" }

// Named returns a tag for a user-declared type.
func Named(name string) TypeTag { return NamedTag{Name: name} }

// String returns the tag for a raw textual value.
func String() TypeTag { return PrimitiveTag{Kind: PrimitiveString} }

// Int returns the tag for an integer value.
func Int() TypeTag { return PrimitiveTag{Kind: PrimitiveInt} }

// Float returns the tag for a floating-point value.
func Float() TypeTag { return PrimitiveTag{Kind: PrimitiveFloat} }

// Bool returns the tag for a boolean value.
func Bool() TypeTag { return PrimitiveTag{Kind: PrimitiveBool} }

// NoContent returns the tag for the empty-response placeholder type.
func NoContent() TypeTag { return UnitTag{} }

// List returns a tag for a list of elem.
func List(elem TypeTag) TypeTag { return ListTag{Elem: elem} }

// Maybe returns a tag for an optional elem.
func Maybe(elem TypeTag) TypeTag { return MaybeTag{Elem: elem} }
