package elm

import (
	"fmt"

	"github.com/expipiplus1/servant-elm/ir"
)

// GenerateModule renders every endpoint in order and returns the resulting
// source blocks: each function text followed by the helper definitions it
// first required, with exact-duplicate blocks removed while preserving
// first-occurrence order. Running it twice over the same input yields
// byte-identical output.
//
// A descriptor without a response type fails the whole run: the generator
// has no policy for "no return type".
func GenerateModule(endpoints []ir.EndpointDescriptor, cfg *Config, resolver TypeResolver) ([]string, error) {
	for i := range endpoints {
		if endpoints[i].Response == nil {
			return nil, fmt.Errorf("endpoint %s: missing response type", endpoints[i].FunctionName)
		}
	}

	emitter := NewEmitter(cfg, resolver)

	var blocks []string
	for i := range endpoints {
		fn, err := emitter.EmitFunction(&endpoints[i])
		if err != nil {
			return nil, fmt.Errorf("failed to emit %s: %w", endpoints[i].FunctionName, err)
		}
		blocks = append(blocks, fn.Source)
		blocks = append(blocks, fn.Helpers...)
	}

	return dedupeBlocks(blocks), nil
}

// dedupeBlocks removes exact-duplicate strings, keeping the first
// occurrence of each.
func dedupeBlocks(blocks []string) []string {
	seen := make(map[string]bool, len(blocks))
	result := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if seen[block] {
			continue
		}
		seen[block] = true
		result = append(result, block)
	}
	return result
}
