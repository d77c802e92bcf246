package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	servantelm "github.com/expipiplus1/servant-elm"
	"github.com/expipiplus1/servant-elm/elm"
	"github.com/expipiplus1/servant-elm/ir"
)

// fileOptions is the YAML options file schema. All fields are optional.
type fileOptions struct {
	ModuleName    string `yaml:"moduleName"`
	URLPrefix     string `yaml:"urlPrefix"`
	TypePrefix    string `yaml:"typePrefix"`
	DecoderPrefix string `yaml:"decoderPrefix"`
	EncoderPrefix string `yaml:"encoderPrefix"`

	// EmptyResponseTypes lists named types treated as carrying no payload,
	// in addition to the built-in NoContent tag.
	EmptyResponseTypes []string `yaml:"emptyResponseTypes"`

	// StringTypes lists named types treated as raw strings for URL
	// encoding, in addition to the built-in String tag.
	StringTypes []string `yaml:"stringTypes"`
}

// loadOptions reads the YAML options file and converts it to a generation
// config. An empty path yields the default config.
func loadOptions(path string) (*servantelm.Config, error) {
	cfg := &servantelm.Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}
	var opts fileOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}

	cfg.ModuleName = opts.ModuleName
	cfg.URLPrefix = opts.URLPrefix
	cfg.Naming = elm.NamingConfig{
		TypePrefix:    opts.TypePrefix,
		DecoderPrefix: opts.DecoderPrefix,
		EncoderPrefix: opts.EncoderPrefix,
	}

	if len(opts.EmptyResponseTypes) > 0 {
		cfg.EmptyResponseTypes = []ir.TypeTag{ir.NoContent()}
		for _, name := range opts.EmptyResponseTypes {
			cfg.EmptyResponseTypes = append(cfg.EmptyResponseTypes, ir.Named(name))
		}
	}
	if len(opts.StringTypes) > 0 {
		cfg.StringTypes = []ir.TypeTag{ir.String()}
		for _, name := range opts.StringTypes {
			cfg.StringTypes = append(cfg.StringTypes, ir.Named(name))
		}
	}

	return cfg, nil
}
