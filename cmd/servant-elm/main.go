package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	servantelm "github.com/expipiplus1/servant-elm"
	"github.com/expipiplus1/servant-elm/ir"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate the Elm client module from a route manifest."`
	Check   CheckCmd   `cmd:"" help:"Validate a route manifest without generating files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Manifest string `arg:"" help:"Path to the route manifest JSON."`
	Out      string `help:"Output directory for the generated module." short:"o" default:"."`
	Config   string `help:"Path to a YAML options file." short:"c"`
}

func (c *GenCmd) Run(log zerolog.Logger) error {
	endpoints, err := loadManifest(c.Manifest)
	if err != nil {
		return err
	}

	cfg, err := loadOptions(c.Config)
	if err != nil {
		return err
	}
	cfg.OutDir = c.Out

	result, err := servantelm.Generate(endpoints, cfg)
	if err != nil {
		return err
	}

	log.Info().
		Int("functions", result.FunctionsGenerated).
		Strs("files", result.Files).
		Msg("generated Elm client module")
	return nil
}

type CheckCmd struct {
	Manifest string `arg:"" help:"Path to the route manifest JSON."`
}

func (c *CheckCmd) Run(log zerolog.Logger) error {
	endpoints, err := loadManifest(c.Manifest)
	if err != nil {
		return err
	}
	log.Info().Int("endpoints", len(endpoints)).Msg("manifest is valid")
	return nil
}

func loadManifest(path string) ([]ir.EndpointDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	manifest, err := servantelm.ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return manifest.Descriptors()
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("servant-elm"),
		kong.Description("Generate Elm client functions from a route manifest."),
		kong.UsageOnError(),
		kong.Bind(log),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
