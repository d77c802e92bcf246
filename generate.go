// Package servantelm generates Elm client modules from endpoint
// descriptors. The elm subpackage renders one function per endpoint; this
// package wraps the result in a module header and import preamble and
// writes it through an output sink.
package servantelm

import (
	"context"
	"fmt"
	"strings"

	"github.com/expipiplus1/servant-elm/elm"
	"github.com/expipiplus1/servant-elm/ir"
	"github.com/expipiplus1/servant-elm/sink"
)

// Config holds the configuration for module generation.
type Config struct {
	// OutDir is the directory where the generated module will be written.
	OutDir string

	// ModuleName is the Elm module name. Dots become directory separators
	// in the output path. Default: "Generated.Api".
	ModuleName string

	// URLPrefix is prepended as a literal to every generated URL.
	URLPrefix string

	// EmptyResponseTypes are the tags treated as carrying no decodable
	// payload. Default: ir.NoContent().
	EmptyResponseTypes []ir.TypeTag

	// StringTypes are the tags treated as raw Elm strings when building
	// URLs. Default: ir.String().
	StringTypes []ir.TypeTag

	// Naming is passed through to the type resolver.
	Naming elm.NamingConfig

	// Resolver overrides the default table-backed type resolver.
	Resolver elm.TypeResolver
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists the relative paths of all files written.
	Files []string

	// FunctionsGenerated is the number of endpoint functions emitted.
	FunctionsGenerated int
}

// preamble is the fixed import block every generated module needs: JSON
// codecs, the HTTP transport, string utilities, and tasks.
const preamble = `import Json.Decode
import Json.Encode
import Http
import String
import Task`

// Generate renders the endpoints as one Elm module and writes it under
// cfg.OutDir.
func Generate(endpoints []ir.EndpointDescriptor, cfg *Config) (*GenerateResult, error) {
	if cfg == nil || cfg.OutDir == "" {
		return nil, fmt.Errorf("OutDir is required")
	}
	return GenerateTo(context.Background(), endpoints, cfg, sink.NewFilesystemSink(cfg.OutDir))
}

// GenerateTo renders the endpoints as one Elm module and writes it through
// the given sink.
func GenerateTo(ctx context.Context, endpoints []ir.EndpointDescriptor, cfg *Config, out sink.OutputSink) (*GenerateResult, error) {
	cfg = applyConfigDefaults(cfg)

	elmCfg := &elm.Config{
		URLPrefix:          cfg.URLPrefix,
		EmptyResponseTypes: cfg.EmptyResponseTypes,
		StringTypes:        cfg.StringTypes,
		Naming:             cfg.Naming,
	}

	blocks, err := elm.GenerateModule(endpoints, elmCfg, cfg.Resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to generate module: %w", err)
	}

	var b strings.Builder
	b.WriteString("module ")
	b.WriteString(cfg.ModuleName)
	b.WriteString(" exposing (..)\n\n")
	b.WriteString(preamble)
	b.WriteString("\n")
	for _, block := range blocks {
		b.WriteString("\n\n")
		b.WriteString(block)
		b.WriteString("\n")
	}

	path := modulePath(cfg.ModuleName)
	if err := out.WriteFile(ctx, path, []byte(b.String())); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &GenerateResult{
		Files:              []string{path},
		FunctionsGenerated: len(endpoints),
	}, nil
}

// modulePath maps an Elm module name to its source file path
// ("Generated.Api" -> "Generated/Api.elm").
func modulePath(moduleName string) string {
	return strings.ReplaceAll(moduleName, ".", "/") + ".elm"
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg *Config) *Config {
	result := Config{}
	if cfg != nil {
		result = *cfg
	}
	if result.ModuleName == "" {
		result.ModuleName = "Generated.Api"
	}
	return &result
}
