package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"vanilla/internal/analyze"
	"vanilla/internal/common"
	"vanilla/internal/diagnostic"
	"vanilla/internal/gen"
	"vanilla/internal/mapping"
	"vanilla/internal/match"
	"vanilla/internal/plan"
)

// DeclarationFilename is the declaration file looked up in every loaded
// package directory when -config is not given.
const DeclarationFilename = "vanilla.yaml"

type result struct {
	Files       []gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics

	// Exported and ExportPath are set by exportDeclarations.
	Exported   *mapping.DeclarationFile
	ExportPath string
}

// collection holds the loaded packages and the declarations found in them.
type collection struct {
	provider  *analyze.PackageProvider
	roots     []*analyze.PackageInfo
	collector *mapping.Collector
}

// collect loads the packages matching patterns and gathers their
// declarations from directives and declaration files.
func collect(cfg *Config, patterns []string, logger *slog.Logger) (*collection, error) {
	if common.IsEmpty(patterns) {
		patterns = []string{"."}
		if cfg.Recursive {
			patterns = []string{"./..."}
		}
	}

	provider := analyze.NewPackageProvider(analyze.Config{Dir: cfg.Dir})
	if err := provider.LoadPackages(patterns...); err != nil {
		return nil, err
	}

	roots := provider.Packages()
	if common.IsEmpty(roots) {
		return nil, fmt.Errorf("no Go packages match %q", patterns)
	}

	logger.Debug("loaded packages", "count", len(roots))

	collector := mapping.NewCollector(provider.KnownPaths())
	collector.AddDirectives(provider.Directives())

	if err := addDeclarationFiles(cfg, roots, collector, logger); err != nil {
		return nil, err
	}

	return &collection{provider: provider, roots: roots, collector: collector}, nil
}

// generate runs the whole pipeline over the packages matching patterns.
// Files are only produced when no error diagnostic was reported.
func generate(cfg *Config, patterns []string, logger *slog.Logger) (*result, error) {
	col, err := collect(cfg, patterns, logger)
	if err != nil {
		return nil, err
	}

	decls := col.collector.Declarations()
	loadTargets(col.provider, decls, logger)

	res := &result{}
	res.Diagnostics.Merge(col.collector.Diagnostics())

	resolved := plan.NewResolver(col.provider).Resolve(decls)
	res.Diagnostics.Merge(resolved.Diagnostics())

	mappings, diags := match.MatchPlan(resolved)
	res.Diagnostics.Merge(diags)

	if res.Diagnostics.HasErrors() {
		return res, nil
	}

	config := gen.DefaultGeneratorConfig()
	config.DebugUnformatted = cfg.Debug

	files, diags := gen.NewGenerator(config).Generate(mappings)
	res.Diagnostics.Merge(diags)

	if !res.Diagnostics.HasErrors() {
		res.Files = files
	}

	return res, nil
}

// exportDeclarations builds the declaration file for the package owning
// cfg.Export from every declaration collected for it.
func exportDeclarations(cfg *Config, patterns []string, logger *slog.Logger) (*result, error) {
	col, err := collect(cfg, patterns, logger)
	if err != nil {
		return nil, err
	}

	path, err := absPath(cfg, cfg.Export)
	if err != nil {
		return nil, err
	}

	owner, err := ownerOf(col.roots, path)
	if err != nil {
		return nil, fmt.Errorf("%w: -export %s", err, cfg.Export)
	}

	res := &result{
		Exported:   mapping.Export(col.collector.Declarations(), owner),
		ExportPath: path,
	}
	res.Diagnostics.Merge(col.collector.Diagnostics())

	return res, nil
}

// addDeclarationFiles feeds declaration files to collector. An explicit
// -config file belongs to the loaded package in the same directory, or to
// the only loaded package.
func addDeclarationFiles(cfg *Config, roots []*analyze.PackageInfo, collector *mapping.Collector, logger *slog.Logger) error {
	if cfg.Config == "" {
		for _, pkg := range roots {
			if pkg.Dir == "" {
				continue
			}

			path := filepath.Join(pkg.Dir, DeclarationFilename)
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				continue
			}

			if err := addDeclarationFile(collector, path, pkg.Path, logger); err != nil {
				return err
			}
		}

		return nil
	}

	path, err := absPath(cfg, cfg.Config)
	if err != nil {
		return err
	}

	owner, err := ownerOf(roots, path)
	if err != nil {
		return fmt.Errorf("%w: -config %s", err, cfg.Config)
	}

	return addDeclarationFile(collector, path, owner, logger)
}

// absPath resolves a file option against -dir.
func absPath(cfg *Config, path string) (string, error) {
	if !filepath.IsAbs(path) && cfg.Dir != "" {
		path = filepath.Join(cfg.Dir, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	return abs, nil
}

// ownerOf returns the loaded package a declaration file at path belongs to:
// the one in the same directory, or the only loaded package.
func ownerOf(roots []*analyze.PackageInfo, path string) (string, error) {
	for _, pkg := range roots {
		if pkg.Dir == filepath.Dir(path) {
			return pkg.Path, nil
		}
	}

	only, ok := common.First(roots)
	if !ok || !common.IsSingle(roots) {
		return "", fmt.Errorf("%w: file is not in the directory of a loaded package", cli.ErrUsage)
	}

	return only.Path, nil
}

func addDeclarationFile(collector *mapping.Collector, path, pkgPath string, logger *slog.Logger) error {
	df, err := mapping.LoadFile(path)
	if err != nil {
		return err
	}

	logger.Debug("loaded declaration file", "file", path, "package", pkgPath, "validators", len(df.Validators))
	collector.AddFile(df, pkgPath, path)

	return nil
}

// loadTargets loads target packages the drafts do not import. Load failures
// are left to the resolver, which reports the target as unavailable.
func loadTargets(provider *analyze.PackageProvider, decls []mapping.Declaration, logger *slog.Logger) {
	known := make(map[string]bool)
	for _, path := range provider.KnownPaths() {
		known[path] = true
	}

	for _, decl := range decls {
		path := decl.Target.PkgPath
		if path == "" || known[path] {
			continue
		}

		known[path] = true

		if err := provider.LoadPackages(path); err != nil {
			logger.Debug("target package not loaded", "package", path, "error", err)
		}
	}
}
