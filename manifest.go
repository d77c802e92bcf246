package servantelm

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/expipiplus1/servant-elm/ir"
)

// Manifest is the wire form of a route-reflection run: the ordered list of
// endpoint descriptors a reflection tool emits for this generator to
// consume. Malformed manifests are rejected here, at the collaborator
// boundary, before generation starts.
type Manifest struct {
	Endpoints []ManifestEndpoint `json:"endpoints" validate:"required,min=1,dive"`
}

// ManifestEndpoint describes one endpoint in the manifest.
type ManifestEndpoint struct {
	FunctionName string               `json:"functionName" validate:"required"`
	Method       string               `json:"method" validate:"required,uppercase"`
	Path         []ManifestSegment    `json:"path" validate:"dive"`
	Query        []ManifestQueryParam `json:"query" validate:"dive"`
	Body         *ManifestType        `json:"body,omitempty"`
	Response     *ManifestType        `json:"response" validate:"required"`
}

// ManifestSegment is either a static path element (Static set) or a capture
// (Arg and Type set). Exactly one of the two forms must be used.
type ManifestSegment struct {
	Static string        `json:"static,omitempty"`
	Arg    string        `json:"arg,omitempty"`
	Type   *ManifestType `json:"type,omitempty"`
}

// ManifestQueryParam describes one declared query parameter.
type ManifestQueryParam struct {
	Arg  string        `json:"arg" validate:"required"`
	Kind string        `json:"kind" validate:"required,oneof=normal flag list"`
	Type *ManifestType `json:"type" validate:"required"`
}

// ManifestType is the wire form of a type tag. Exactly one field must be
// set: Name for user-declared types, Prim for built-ins, List or Maybe for
// composites.
type ManifestType struct {
	Name  string        `json:"name,omitempty"`
	Prim  string        `json:"prim,omitempty"` // string, int, float, bool, nocontent
	List  *ManifestType `json:"list,omitempty"`
	Maybe *ManifestType `json:"maybe,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseManifest decodes and validates a JSON manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	for i := range m.Endpoints {
		if err := m.Endpoints[i].check(); err != nil {
			return nil, fmt.Errorf("invalid manifest: endpoint %s: %w", m.Endpoints[i].FunctionName, err)
		}
	}
	return &m, nil
}

// check enforces the constraints the struct tags cannot express.
func (ep *ManifestEndpoint) check() error {
	for i, seg := range ep.Path {
		isStatic := seg.Static != ""
		isCapture := seg.Arg != ""
		if isStatic == isCapture {
			return fmt.Errorf("path segment %d: exactly one of static or arg must be set", i)
		}
		if isCapture && seg.Type == nil {
			return fmt.Errorf("path segment %d: capture %q has no type", i, seg.Arg)
		}
	}
	return nil
}

// Descriptors converts the manifest to IR endpoint descriptors in manifest
// order.
func (m *Manifest) Descriptors() ([]ir.EndpointDescriptor, error) {
	endpoints := make([]ir.EndpointDescriptor, 0, len(m.Endpoints))
	for i := range m.Endpoints {
		ep, err := m.Endpoints[i].descriptor()
		if err != nil {
			return nil, fmt.Errorf("endpoint %s: %w", m.Endpoints[i].FunctionName, err)
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, nil
}

func (ep *ManifestEndpoint) descriptor() (ir.EndpointDescriptor, error) {
	result := ir.EndpointDescriptor{
		FunctionName: ep.FunctionName,
		Method:       ep.Method,
	}

	for i := range ep.Path {
		seg := &ep.Path[i]
		if seg.Static != "" {
			result.Path = append(result.Path, ir.Static(seg.Static))
			continue
		}
		tag, err := seg.Type.tag()
		if err != nil {
			return ir.EndpointDescriptor{}, fmt.Errorf("capture %q: %w", seg.Arg, err)
		}
		result.Path = append(result.Path, ir.Capture(seg.Arg, tag))
	}

	for i := range ep.Query {
		q := &ep.Query[i]
		tag, err := q.Type.tag()
		if err != nil {
			return ir.EndpointDescriptor{}, fmt.Errorf("query %q: %w", q.Arg, err)
		}
		kind, err := queryKind(q.Kind)
		if err != nil {
			return ir.EndpointDescriptor{}, fmt.Errorf("query %q: %w", q.Arg, err)
		}
		result.Query = append(result.Query, ir.QueryParam{ArgName: q.Arg, Type: tag, Kind: kind})
	}

	if ep.Body != nil {
		tag, err := ep.Body.tag()
		if err != nil {
			return ir.EndpointDescriptor{}, fmt.Errorf("body: %w", err)
		}
		result.Body = tag
	}

	tag, err := ep.Response.tag()
	if err != nil {
		return ir.EndpointDescriptor{}, fmt.Errorf("response: %w", err)
	}
	result.Response = tag

	return result, nil
}

func (t *ManifestType) tag() (ir.TypeTag, error) {
	if t == nil {
		return nil, fmt.Errorf("type is missing")
	}
	switch {
	case t.Name != "":
		return ir.Named(t.Name), nil
	case t.List != nil:
		elem, err := t.List.tag()
		if err != nil {
			return nil, err
		}
		return ir.List(elem), nil
	case t.Maybe != nil:
		elem, err := t.Maybe.tag()
		if err != nil {
			return nil, err
		}
		return ir.Maybe(elem), nil
	case t.Prim != "":
		switch t.Prim {
		case "string":
			return ir.String(), nil
		case "int":
			return ir.Int(), nil
		case "float":
			return ir.Float(), nil
		case "bool":
			return ir.Bool(), nil
		case "nocontent":
			return ir.NoContent(), nil
		default:
			return nil, fmt.Errorf("unknown primitive %q", t.Prim)
		}
	default:
		return nil, fmt.Errorf("type has no name, prim, list, or maybe")
	}
}

func queryKind(kind string) (ir.QueryKind, error) {
	switch kind {
	case "normal":
		return ir.QueryNormal, nil
	case "flag":
		return ir.QueryFlag, nil
	case "list":
		return ir.QueryList, nil
	default:
		return 0, fmt.Errorf("unknown query kind %q", kind)
	}
}
