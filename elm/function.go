package elm

import (
	"bytes"
	"strings"

	"github.com/expipiplus1/servant-elm/ir"
)

// EmittedFunction is the output of rendering one endpoint: the function
// definition itself plus any shared helper definitions it depends on.
// Helpers must be emitted once per module; the module generator
// deduplicates them by exact text equality.
type EmittedFunction struct {
	Source  string
	Helpers []string
}

// EmitFunction renders one endpoint descriptor as a complete Elm function:
// signature, argument header, a let block with the optional params binding
// and the request binding, then the response-strategy expression.
func (e *Emitter) EmitFunction(ep *ir.EndpointDescriptor) (EmittedFunction, error) {
	signature, err := e.buildSignature(ep)
	if err != nil {
		return EmittedFunction{}, err
	}
	paramsBinding, err := e.buildParamsBinding(ep)
	if err != nil {
		return EmittedFunction{}, err
	}
	responseLines, helpers, err := e.buildResponseLines(ep)
	if err != nil {
		return EmittedFunction{}, err
	}

	var buf bytes.Buffer
	buf.WriteString(signature)
	buf.WriteString("\n")

	buf.WriteString(ep.FunctionName)
	for _, arg := range argumentNames(ep) {
		buf.WriteString(" ")
		buf.WriteString(arg)
	}
	buf.WriteString(" =\n")

	buf.WriteString("  let\n")
	if paramsBinding != "" {
		buf.WriteString(paramsBinding)
		buf.WriteString("\n")
	}
	buf.WriteString(e.buildRequestBinding(ep))
	buf.WriteString("\n")
	buf.WriteString("  in\n")
	buf.WriteString(responseLines)

	return EmittedFunction{
		Source:  strings.TrimRight(buf.String(), "\n"),
		Helpers: helpers,
	}, nil
}
