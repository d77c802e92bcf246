package servantelm

import (
	"github.com/expipiplus1/servant-elm/elm"
	"github.com/expipiplus1/servant-elm/ir"
)

// Generator provides a fluent API for module generation.
// Create with FromEndpoints() and configure with method chaining.
//
// Example:
//
//	servantelm.FromEndpoints(endpoints...).
//	    ModuleName("Api").
//	    URLPrefix("https://api.example.com").
//	    ToDir("./client/src")
type Generator struct {
	endpoints []ir.EndpointDescriptor
	cfg       Config
}

// FromEndpoints creates a Generator for the given endpoint descriptors.
// This is the entry point for the fluent API.
func FromEndpoints(endpoints ...ir.EndpointDescriptor) *Generator {
	return &Generator{endpoints: endpoints}
}

// ModuleName sets the Elm module name.
func (g *Generator) ModuleName(name string) *Generator {
	g.cfg.ModuleName = name
	return g
}

// URLPrefix sets the literal prepended to every generated URL.
func (g *Generator) URLPrefix(prefix string) *Generator {
	g.cfg.URLPrefix = prefix
	return g
}

// EmptyResponseType registers an additional tag as carrying no decodable
// payload. Can be called multiple times.
func (g *Generator) EmptyResponseType(tag ir.TypeTag) *Generator {
	if g.cfg.EmptyResponseTypes == nil {
		g.cfg.EmptyResponseTypes = []ir.TypeTag{ir.NoContent()}
	}
	g.cfg.EmptyResponseTypes = append(g.cfg.EmptyResponseTypes, tag)
	return g
}

// StringType registers an additional tag as a raw string for URL encoding.
// Can be called multiple times.
func (g *Generator) StringType(tag ir.TypeTag) *Generator {
	if g.cfg.StringTypes == nil {
		g.cfg.StringTypes = []ir.TypeTag{ir.String()}
	}
	g.cfg.StringTypes = append(g.cfg.StringTypes, tag)
	return g
}

// Naming sets the resolver naming options.
func (g *Generator) Naming(naming elm.NamingConfig) *Generator {
	g.cfg.Naming = naming
	return g
}

// Resolver overrides the default type resolver.
func (g *Generator) Resolver(r elm.TypeResolver) *Generator {
	g.cfg.Resolver = r
	return g
}

// ToDir generates the module to the specified directory.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(dir string) (*GenerateResult, error) {
	g.cfg.OutDir = dir
	return Generate(g.endpoints, &g.cfg)
}
