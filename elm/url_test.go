package elm

import (
	"strings"
	"testing"

	"github.com/expipiplus1/servant-elm/ir"
)

func TestBuildURLStaticOnly(t *testing.T) {
	e := NewEmitter(nil, nil)
	ep := &ir.EndpointDescriptor{
		FunctionName: "getOne",
		Method:       "GET",
		Path:         []ir.Segment{ir.Static("one")},
		Response:     ir.Int(),
	}

	got := e.buildURL(ep)
	want := `"/" ++ "one"`
	if got != want {
		t.Errorf("buildURL = %q, want %q", got, want)
	}
}

func TestBuildURLPrefix(t *testing.T) {
	e := NewEmitter(&Config{URLPrefix: "https://api.example.com"}, nil)
	ep := &ir.EndpointDescriptor{
		Path:     []ir.Segment{ir.Static("books")},
		Response: ir.Named("Book"),
	}

	got := e.buildURL(ep)
	if !strings.HasPrefix(got, `"https://api.example.com"`) {
		t.Errorf("buildURL = %q, want prefix literal first", got)
	}
	if !strings.Contains(got, `++ "/" ++ "books"`) {
		t.Errorf("buildURL = %q, missing segment term", got)
	}
}

func TestBuildURLCaptureEncoding(t *testing.T) {
	e := NewEmitter(nil, nil)

	// Non-string captures are stringified before percent-encoding.
	intCapture := &ir.EndpointDescriptor{
		Path: []ir.Segment{ir.Static("books"), ir.Capture("bookId", ir.Int())},
	}
	got := e.buildURL(intCapture)
	if !strings.Contains(got, "(bookId |> toString |> Http.uriEncode)") {
		t.Errorf("buildURL = %q, want toString pipeline for Int capture", got)
	}

	// String captures skip the stringify step.
	strCapture := &ir.EndpointDescriptor{
		Path: []ir.Segment{ir.Static("books"), ir.Capture("title", ir.String())},
	}
	got = e.buildURL(strCapture)
	if !strings.Contains(got, "(title |> Http.uriEncode)") {
		t.Errorf("buildURL = %q, want direct encode for String capture", got)
	}
	if strings.Contains(got, "title |> toString") {
		t.Errorf("buildURL = %q, String capture must not be stringified", got)
	}
}

func TestBuildURLEmpty(t *testing.T) {
	// No prefix and no segments is accepted, producing an empty literal.
	e := NewEmitter(nil, nil)
	got := e.buildURL(&ir.EndpointDescriptor{})
	if got != `""` {
		t.Errorf("buildURL = %q, want %q", got, `""`)
	}
}

func TestBuildURLSegmentOrder(t *testing.T) {
	// Reordering segments changes only term order, never which segments
	// are capture-encoded versus literal.
	e := NewEmitter(nil, nil)

	forward := &ir.EndpointDescriptor{
		Path: []ir.Segment{ir.Static("books"), ir.Capture("bookId", ir.Int())},
	}
	reversed := &ir.EndpointDescriptor{
		Path: []ir.Segment{ir.Capture("bookId", ir.Int()), ir.Static("books")},
	}

	gotForward := e.buildURL(forward)
	gotReversed := e.buildURL(reversed)

	staticTerm := `"/" ++ "books"`
	captureTerm := `"/" ++ (bookId |> toString |> Http.uriEncode)`
	for _, got := range []string{gotForward, gotReversed} {
		if !strings.Contains(got, staticTerm) {
			t.Errorf("buildURL = %q, missing static term", got)
		}
		if !strings.Contains(got, captureTerm) {
			t.Errorf("buildURL = %q, missing capture term", got)
		}
	}
	if strings.Index(gotForward, staticTerm) > strings.Index(gotForward, captureTerm) {
		t.Errorf("forward order: static term should come first in %q", gotForward)
	}
	if strings.Index(gotReversed, captureTerm) > strings.Index(gotReversed, staticTerm) {
		t.Errorf("reversed order: capture term should come first in %q", gotReversed)
	}
}

func TestBuildURLWithQuerySuffix(t *testing.T) {
	e := NewEmitter(nil, nil)

	withQuery := &ir.EndpointDescriptor{
		Path:  []ir.Segment{ir.Static("books")},
		Query: []ir.QueryParam{{ArgName: "year", Type: ir.Int(), Kind: ir.QueryNormal}},
	}
	got := e.buildURLWithQuery(withQuery)
	if !strings.Contains(got, `"?" ++ String.join "&" params`) {
		t.Errorf("buildURLWithQuery = %q, missing query suffix", got)
	}
	if !strings.Contains(got, "if List.isEmpty params then") {
		t.Errorf("buildURLWithQuery = %q, suffix must be guarded at run time", got)
	}

	withoutQuery := &ir.EndpointDescriptor{Path: []ir.Segment{ir.Static("books")}}
	got = e.buildURLWithQuery(withoutQuery)
	if strings.Contains(got, "params") {
		t.Errorf("buildURLWithQuery = %q, unexpected suffix without query params", got)
	}
}

func TestBuildURLCustomStringTypes(t *testing.T) {
	// A named type registered as a string type skips the toString step.
	cfg := &Config{StringTypes: []ir.TypeTag{ir.String(), ir.Named("ISBN")}}
	e := NewEmitter(cfg, nil)

	ep := &ir.EndpointDescriptor{
		Path: []ir.Segment{ir.Static("books"), ir.Capture("isbn", ir.Named("ISBN"))},
	}
	got := e.buildURL(ep)
	if !strings.Contains(got, "(isbn |> Http.uriEncode)") {
		t.Errorf("buildURL = %q, want direct encode for registered string type", got)
	}
}
