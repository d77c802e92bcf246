package elm

import (
	"fmt"
	"strings"

	"github.com/expipiplus1/servant-elm/ir"
)

// buildRequestBinding renders the let-binding for the request record:
// verb, the fixed JSON content-type header, the URL expression (with the
// query suffix when applicable), and the body expression.
func (e *Emitter) buildRequestBinding(ep *ir.EndpointDescriptor) string {
	var b strings.Builder
	b.WriteString("    request =\n")
	b.WriteString("      { verb =\n")
	b.WriteString(fmt.Sprintf("          %q\n", ep.Method))
	b.WriteString("      , headers =\n")
	b.WriteString("          [(\"Content-Type\", \"application/json\")]\n")
	b.WriteString("      , url =\n")
	b.WriteString(urlTermIndent)
	b.WriteString(e.buildURLWithQuery(ep))
	b.WriteString("\n")
	b.WriteString("      , body =\n")
	b.WriteString("          ")
	b.WriteString(e.bodyExpr(ep))
	b.WriteString("\n")
	b.WriteString("      }")
	return b.String()
}

// bodyExpr renders the request body: the empty-body marker when no body is
// declared, otherwise the body argument serialized with its JSON encoder at
// zero indentation and wrapped in the string-body constructor.
func (e *Emitter) bodyExpr(ep *ir.EndpointDescriptor) string {
	if ep.Body == nil {
		return "Http.empty"
	}
	encoder := e.resolver.Resolve(ep.Body).Encoder
	return "Http.string (Json.Encode.encode 0 (" + encoder + " body))"
}
