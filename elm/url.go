package elm

import (
	"fmt"
	"strings"

	"github.com/expipiplus1/servant-elm/ir"
)

// urlTermIndent aligns continuation terms under the first term of the url
// field inside the request record.
const urlTermIndent = "          "

// buildURL returns the URL-construction expression: the configured prefix
// first (as a literal), then one term per path segment joined by "/", each
// on its own line. Term order defines the final URL, so it follows declared
// segment order exactly. An empty prefix with no segments yields "".
func (e *Emitter) buildURL(ep *ir.EndpointDescriptor) string {
	var terms []string
	if e.config.URLPrefix != "" {
		terms = append(terms, fmt.Sprintf("%q", e.config.URLPrefix))
	}
	for _, seg := range ep.Path {
		switch s := seg.(type) {
		case ir.StaticSegment:
			terms = append(terms, `"/" ++ `+fmt.Sprintf("%q", s.Text))
		case ir.CaptureSegment:
			terms = append(terms, `"/" ++ (`+e.uriEncodePipeline(s.ArgName, s.Type)+`)`)
		}
	}
	if len(terms) == 0 {
		return `""`
	}
	return strings.Join(terms, "\n"+urlTermIndent+"++ ")
}

// uriEncodePipeline converts an argument to text and percent-encodes it.
// Arguments whose type is registered as a string type skip the explicit
// toString step.
func (e *Emitter) uriEncodePipeline(argName string, tag ir.TypeTag) string {
	if e.stringly[tag] {
		return argName + " |> Http.uriEncode"
	}
	return argName + " |> toString |> Http.uriEncode"
}

// querySuffix is the run-time conditional appended to the URL expression
// when the endpoint declares query parameters. Whether any parameter is
// actually present is only known when the generated function executes.
const querySuffix = `(if List.isEmpty params then
                ""
              else
                "?" ++ String.join "&" params)`

// buildURLWithQuery appends the query suffix to the URL expression when the
// endpoint declares query parameters.
func (e *Emitter) buildURLWithQuery(ep *ir.EndpointDescriptor) string {
	url := e.buildURL(ep)
	if len(ep.Query) == 0 {
		return url
	}
	return url + "\n" + urlTermIndent + "++ " + querySuffix
}
