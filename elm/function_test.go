package elm

import (
	"strings"
	"testing"

	"github.com/expipiplus1/servant-elm/ir"
)

func TestEmitFunctionGetOne(t *testing.T) {
	// GET /one returning Int with no prefix: the URL expression reduces to
	// "/one" at call time and the response is decoded as an integer.
	e := NewEmitter(nil, nil)
	ep := &ir.EndpointDescriptor{
		FunctionName: "getOne",
		Method:       "GET",
		Path:         []ir.Segment{ir.Static("one")},
		Response:     ir.Int(),
	}

	fn, err := e.EmitFunction(ep)
	if err != nil {
		t.Fatalf("EmitFunction returned error: %v", err)
	}

	if !strings.HasPrefix(fn.Source, "getOne : Task.Task Http.Error (Int)\n") {
		t.Errorf("signature line wrong:\n%s", fn.Source)
	}
	if !strings.Contains(fn.Source, "getOne =\n") {
		t.Errorf("header line wrong:\n%s", fn.Source)
	}
	if !strings.Contains(fn.Source, `"/" ++ "one"`) {
		t.Errorf("URL expression wrong:\n%s", fn.Source)
	}
	if strings.Contains(fn.Source, "params =") {
		t.Errorf("unexpected params binding:\n%s", fn.Source)
	}
	if strings.Count(fn.Source, "Http.fromJson") != 1 {
		t.Errorf("Http.fromJson should appear exactly once:\n%s", fn.Source)
	}
	if !strings.Contains(fn.Source, "Http.fromJson Json.Decode.int") {
		t.Errorf("decode call should reference the integer decoder:\n%s", fn.Source)
	}
	if len(fn.Helpers) != 0 {
		t.Errorf("helpers length = %d, want 0", len(fn.Helpers))
	}
}

func TestEmitFunctionPostBooksNoContent(t *testing.T) {
	// POST /books with a Book body and a NoContent response: empty-response
	// call form, three helpers, JSON-encoded body.
	e := NewEmitter(nil, nil)
	ep := &ir.EndpointDescriptor{
		FunctionName: "postBooks",
		Method:       "POST",
		Path:         []ir.Segment{ir.Static("books")},
		Body:         ir.Named("Book"),
		Response:     ir.NoContent(),
	}

	fn, err := e.EmitFunction(ep)
	if err != nil {
		t.Fatalf("EmitFunction returned error: %v", err)
	}

	if !strings.HasPrefix(fn.Source, "postBooks : Book -> Task.Task Http.Error (NoContent)\n") {
		t.Errorf("signature line wrong:\n%s", fn.Source)
	}
	if !strings.Contains(fn.Source, "postBooks body =\n") {
		t.Errorf("header line wrong:\n%s", fn.Source)
	}
	if !strings.Contains(fn.Source, "Http.string (Json.Encode.encode 0 (encodeBook body))") {
		t.Errorf("body field wrong:\n%s", fn.Source)
	}
	if !strings.Contains(fn.Source, "handleResponse (emptyResponseHandler NoContent)") {
		t.Errorf("empty-response call form missing:\n%s", fn.Source)
	}
	if strings.Contains(fn.Source, "Http.fromJson") {
		t.Errorf("decodable call form should not appear:\n%s", fn.Source)
	}
	if len(fn.Helpers) != 3 {
		t.Errorf("helpers length = %d, want 3", len(fn.Helpers))
	}
}

func TestEmitFunctionArgumentOrder(t *testing.T) {
	// Parameter order is captures (path order), query params (declared
	// order), then body.
	e := NewEmitter(nil, nil)
	ep := &ir.EndpointDescriptor{
		FunctionName: "putBooksByBookId",
		Method:       "PUT",
		Path: []ir.Segment{
			ir.Static("books"),
			ir.Capture("bookId", ir.Int()),
		},
		Query: []ir.QueryParam{
			{ArgName: "notify", Type: ir.Bool(), Kind: ir.QueryFlag},
		},
		Body:     ir.Named("Book"),
		Response: ir.Named("Book"),
	}

	fn, err := e.EmitFunction(ep)
	if err != nil {
		t.Fatalf("EmitFunction returned error: %v", err)
	}

	if !strings.Contains(fn.Source, "putBooksByBookId bookId notify body =\n") {
		t.Errorf("argument order wrong:\n%s", fn.Source)
	}
	if !strings.HasPrefix(fn.Source, "putBooksByBookId : Int -> Bool -> Book -> Task.Task Http.Error (Book)\n") {
		t.Errorf("signature order wrong:\n%s", fn.Source)
	}
}

func TestEmitFunctionNormalQuerySignature(t *testing.T) {
	e := NewEmitter(nil, nil)
	ep := &ir.EndpointDescriptor{
		FunctionName: "getBooks",
		Method:       "GET",
		Path:         []ir.Segment{ir.Static("books")},
		Query: []ir.QueryParam{
			{ArgName: "year", Type: ir.Int(), Kind: ir.QueryNormal},
		},
		Response: ir.List(ir.Named("Book")),
	}

	fn, err := e.EmitFunction(ep)
	if err != nil {
		t.Fatalf("EmitFunction returned error: %v", err)
	}

	if !strings.HasPrefix(fn.Source, "getBooks : Maybe (Int) -> Task.Task Http.Error (List (Book))\n") {
		t.Errorf("Normal query param must be Maybe-wrapped in the signature:\n%s", fn.Source)
	}
	if !strings.Contains(fn.Source, "params =") {
		t.Errorf("params binding missing:\n%s", fn.Source)
	}
}

func TestEmitFunctionMissingResponse(t *testing.T) {
	e := NewEmitter(nil, nil)
	ep := &ir.EndpointDescriptor{FunctionName: "broken", Method: "GET"}

	_, err := e.EmitFunction(ep)
	if err == nil {
		t.Fatal("EmitFunction should fail for a descriptor without a response type")
	}
}
