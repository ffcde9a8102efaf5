// Command vanilla-gen generates typed validators and builders for draft
// structs paired with a validated target struct.
//
// A draft is paired with its target by a doc-comment directive
//
//	//vanilla:validatedas warehouse.Order
//
// or by an entry in a vanilla.yaml declaration file next to the draft
// package. Run it from go:generate:
//
//	//go:generate go run vanilla/cmd/vanilla-gen
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"vanilla/internal/diagnostic"
	"vanilla/internal/gen"
	"vanilla/internal/mapping"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

// Config holds the command line options.
type Config struct {
	Dir       string `cli:"name=dir desc='directory patterns are resolved against (default: current directory)'"`
	Recursive bool   `cli:"name=recursive desc='load ./... when no pattern is given'"`
	Config    string `cli:"name=config desc='declaration file (default: vanilla.yaml in each loaded package, if present)'"`
	DryRun    bool   `cli:"name=dry-run aliases=n desc='print generated files instead of writing them'"`
	NoColor   bool   `cli:"name=no-color desc='never colorize diagnostics'"`
	Verbose   bool   `cli:"name=v desc='log debug output and print info diagnostics'"`
	Debug     bool   `cli:"name=debug desc='keep unformatted output next to files that fail to format'"`
	Export    string `cli:"name=export desc='write the collected declarations of the loaded package to this file instead of generating'"`

	Command *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Command, "vanilla-gen").
		WithSynopsis("vanilla-gen [opts] [packages]").
		WithDescription("Generate validator and builder types for draft structs declared with //vanilla:validatedas or vanilla.yaml.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		cfg.Command.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	logger := newLogger(os.Stderr, cfg.Verbose)

	pipeline := generate
	if cfg.Export != "" {
		pipeline = exportDeclarations
	}

	res, err := pipeline(cfg, args, logger)
	if err != nil {
		return err
	}

	printer := diagnostic.NewPrinter(os.Stderr, cfg.NoColor)
	printer.SetVerbose(cfg.Verbose)

	if err := printer.PrintAll(&res.Diagnostics); err != nil {
		return fmt.Errorf("printing diagnostics: %w", err)
	}

	if res.Diagnostics.HasErrors() {
		return cli.ExitCodeErr(1)
	}

	if res.Exported != nil {
		return writeExport(cfg, cc, res, logger)
	}

	if cfg.DryRun {
		for _, file := range res.Files {
			fmt.Fprintf(cc.Out, "// %s\n%s\n", file.Path(), file.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(res.Files, ""); err != nil {
		return err
	}

	for _, file := range res.Files {
		logger.Info("wrote", "file", file.Path(), "pair", file.Pair)
	}

	return nil
}

func writeExport(cfg *Config, cc *cli.Context, res *result, logger *slog.Logger) error {
	if cfg.DryRun {
		data, err := mapping.Marshal(res.Exported)
		if err != nil {
			return fmt.Errorf("marshaling declarations: %w", err)
		}

		_, err = cc.Out.Write(data)

		return err
	}

	if err := mapping.WriteFile(res.Exported, res.ExportPath); err != nil {
		return err
	}

	logger.Info("exported", "file", res.ExportPath, "validators", len(res.Exported.Validators))

	return nil
}
