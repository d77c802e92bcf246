package elm

import (
	"fmt"
	"strings"

	"github.com/expipiplus1/servant-elm/ir"
)

// paramExprIndent aligns the pipeline continuation lines of a multi-line
// parameter expression inside the params list.
const paramExprIndent = "            "

// buildParamsBinding returns the let-binding that collects the endpoint's
// query parameter strings, or "" when no query parameters are declared.
// The binding evaluates each parameter in declared order and filters out
// the empty strings produced by absent values.
func (e *Emitter) buildParamsBinding(ep *ir.EndpointDescriptor) (string, error) {
	if len(ep.Query) == 0 {
		return "", nil
	}

	exprs := make([]string, 0, len(ep.Query))
	for _, q := range ep.Query {
		expr, err := e.paramExpr(q)
		if err != nil {
			return "", fmt.Errorf("endpoint %s: %w", ep.FunctionName, err)
		}
		exprs = append(exprs, expr)
	}

	var b strings.Builder
	b.WriteString("    params =\n")
	b.WriteString("      List.filter (not << String.isEmpty)\n")
	b.WriteString("        [ ")
	b.WriteString(strings.Join(exprs, "\n        , "))
	b.WriteString("\n        ]")
	return b.String(), nil
}

// paramExpr renders the run-time string expression for one query parameter.
// Every kind produces a non-empty, kind-specific expression; values that
// turn out absent at call time collapse to "" and are filtered out.
func (e *Emitter) paramExpr(q ir.QueryParam) (string, error) {
	switch q.Kind {
	case ir.QueryNormal:
		return q.ArgName + "\n" +
			paramExprIndent + "|> Maybe.map (" + e.queryEncodePipeline(q.Type) + ` >> (++) "` + q.ArgName + `=")` + "\n" +
			paramExprIndent + `|> Maybe.withDefault ""`, nil
	case ir.QueryFlag:
		return `if ` + q.ArgName + ` then "` + q.ArgName + `=" else ""`, nil
	case ir.QueryList:
		return q.ArgName + "\n" +
			paramExprIndent + `|> List.map (\val -> "` + q.ArgName + `[]=" ++ (val |> toString |> Http.uriEncode))` + "\n" +
			paramExprIndent + `|> String.join "&"`, nil
	default:
		return "", fmt.Errorf("unsupported query parameter kind: %s", q.Kind)
	}
}

// queryEncodePipeline is the composition form of the stringify-then-encode
// step, used inside Maybe.map.
func (e *Emitter) queryEncodePipeline(tag ir.TypeTag) string {
	if e.stringly[tag] {
		return "Http.uriEncode"
	}
	return "toString >> Http.uriEncode"
}
