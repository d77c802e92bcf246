package elm

import "github.com/expipiplus1/servant-elm/ir"

// Config holds the generation options shared by every endpoint.
type Config struct {
	// URLPrefix is prepended as a literal to every generated URL.
	// Empty means no prefix.
	URLPrefix string

	// EmptyResponseTypes are the tags whose responses carry no decodable
	// payload. Membership is tested by tag value equality.
	// Default: ir.NoContent().
	EmptyResponseTypes []ir.TypeTag

	// StringTypes are the tags that already represent Elm strings, so URL
	// encoding skips the toString conversion step.
	// Default: ir.String().
	StringTypes []ir.TypeTag

	// Naming is passed through to the default type resolver.
	Naming NamingConfig
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg *Config) *Config {
	result := Config{}
	if cfg != nil {
		result = *cfg
	}
	if result.EmptyResponseTypes == nil {
		result.EmptyResponseTypes = []ir.TypeTag{ir.NoContent()}
	}
	if result.StringTypes == nil {
		result.StringTypes = []ir.TypeTag{ir.String()}
	}
	return &result
}

// Emitter renders endpoint descriptors as Elm function source.
type Emitter struct {
	config   *Config
	resolver TypeResolver
	empty    map[ir.TypeTag]bool
	stringly map[ir.TypeTag]bool
}

// NewEmitter creates an Emitter. A nil resolver selects the default
// table-backed resolver under cfg.Naming.
func NewEmitter(cfg *Config, resolver TypeResolver) *Emitter {
	cfg = applyConfigDefaults(cfg)
	if resolver == nil {
		resolver = NewResolver(cfg.Naming)
	}

	empty := make(map[ir.TypeTag]bool, len(cfg.EmptyResponseTypes))
	for _, tag := range cfg.EmptyResponseTypes {
		empty[tag] = true
	}
	stringly := make(map[ir.TypeTag]bool, len(cfg.StringTypes))
	for _, tag := range cfg.StringTypes {
		stringly[tag] = true
	}

	return &Emitter{
		config:   cfg,
		resolver: resolver,
		empty:    empty,
		stringly: stringly,
	}
}
