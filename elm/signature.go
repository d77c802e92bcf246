package elm

import (
	"fmt"
	"strings"

	"github.com/expipiplus1/servant-elm/ir"
)

// buildSignature derives the function's type signature: one parameter per
// URL capture (path order), one per query parameter (declared order, Normal
// kind wrapped in Maybe), the body type last, then the Task return type.
func (e *Emitter) buildSignature(ep *ir.EndpointDescriptor) (string, error) {
	if ep.Response == nil {
		return "", fmt.Errorf("endpoint %s: missing response type", ep.FunctionName)
	}

	var parts []string
	for _, seg := range ep.Path {
		if capture, ok := seg.(ir.CaptureSegment); ok {
			parts = append(parts, e.resolver.Resolve(capture.Type).TypeName)
		}
	}
	for _, q := range ep.Query {
		name := e.resolver.Resolve(q.Type).TypeName
		if q.Kind == ir.QueryNormal {
			name = "Maybe (" + name + ")"
		}
		parts = append(parts, name)
	}
	if ep.Body != nil {
		parts = append(parts, e.resolver.Resolve(ep.Body).TypeName)
	}

	ret := "Task.Task Http.Error (" + e.resolver.Resolve(ep.Response).TypeName + ")"
	parts = append(parts, ret)

	return ep.FunctionName + " : " + strings.Join(parts, " -> "), nil
}

// argumentNames returns the function's argument names in parameter order:
// captures, query parameters, then "body" when a request body is declared.
func argumentNames(ep *ir.EndpointDescriptor) []string {
	var names []string
	for _, seg := range ep.Path {
		if capture, ok := seg.(ir.CaptureSegment); ok {
			names = append(names, capture.ArgName)
		}
	}
	for _, q := range ep.Query {
		names = append(names, q.ArgName)
	}
	if ep.Body != nil {
		names = append(names, "body")
	}
	return names
}
