package analyze

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"maps"
	"path/filepath"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// DirectivePrefix starts every generator directive comment.
const DirectivePrefix = "vanilla:"

// GeneratedHeader starts every file written by vanilla-gen.
const GeneratedHeader = "// Code generated by vanilla-gen. DO NOT EDIT."

// ErrNotFound is returned by Describe for unknown types.
var ErrNotFound = errors.New("type not found")

// ErrNotStruct is returned by Describe for types that are not structs.
var ErrNotStruct = errors.New("type is not a struct")

// Config configures a PackageProvider.
type Config struct {
	// Dir is the working directory used to resolve patterns. Empty means the
	// current directory.
	Dir string
	// Tests also loads test packages.
	Tests bool
}

// PackageProvider loads Go packages and describes the structs they declare or
// import.
type PackageProvider struct {
	config     Config
	fset       *token.FileSet
	roots      []*packages.Package
	byPath     map[string]*types.Package
	infos      map[string]*PackageInfo
	directives []Directive
	cache      map[TypeID]*TypeDescriptor // Descriptors are snapshots, built once
}

// NewPackageProvider creates a new PackageProvider.
func NewPackageProvider(config Config) *PackageProvider {
	return &PackageProvider{
		config: config,
		fset:   token.NewFileSet(),
		byPath: make(map[string]*types.Package),
		infos:  make(map[string]*PackageInfo),
		cache:  make(map[TypeID]*TypeDescriptor),
	}
}

// LoadPackages loads the packages matching patterns (e.g., "./...",
// "vanilla/examples/basic") and indexes their types and directives.
func (p *PackageProvider) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode:  LoadMode,
		Dir:   p.config.Dir,
		Fset:  p.fset,
		Tests: p.config.Tests,
	}

	generated := &generatedFiles{names: make(map[string]bool)}
	cfg.ParseFile = generated.parseFile

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	// Errors inside previously generated files are expected once a draft
	// changes; the files are about to be rewritten.
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if generated.contains(errorFile(e.Pos)) {
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		p.processPackage(pkg)
	}

	p.roots = append(p.roots, pkgs...)

	return nil
}

// generatedFiles records the files carrying GeneratedHeader. ParseFile is
// called concurrently.
type generatedFiles struct {
	mu    sync.Mutex
	names map[string]bool
}

func (g *generatedFiles) parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if bytes.HasPrefix(src, []byte(GeneratedHeader)) {
		g.mu.Lock()
		g.names[filepath.Clean(filename)] = true
		g.mu.Unlock()
	}

	return parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
}

func (g *generatedFiles) contains(filename string) bool {
	if filename == "" {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.names[filepath.Clean(filename)]
}

// errorFile extracts the file name of a "file:line:col" error position.
func errorFile(pos string) string {
	for range 2 {
		i := strings.LastIndexByte(pos, ':')
		if i < 0 {
			break
		}

		if _, err := strconv.Atoi(pos[i+1:]); err != nil {
			break
		}

		pos = pos[:i]
	}

	if pos == "-" {
		return ""
	}

	return pos
}

// Packages returns the loaded root packages in load order.
func (p *PackageProvider) Packages() []*PackageInfo {
	result := make([]*PackageInfo, 0, len(p.roots))
	for _, pkg := range p.roots {
		if info, ok := p.infos[pkg.PkgPath]; ok {
			result = append(result, info)
		}
	}

	return result
}

// Package returns information about a loaded root package.
func (p *PackageProvider) Package(path string) (*PackageInfo, bool) {
	info, ok := p.infos[path]
	return info, ok
}

// KnownPaths returns the sorted paths of every indexed package: the loaded
// packages and everything they import.
func (p *PackageProvider) KnownPaths() []string {
	paths := slices.Collect(maps.Keys(p.byPath))
	sort.Strings(paths)

	return paths
}

// Directives returns every "//vanilla:" directive found on type declarations
// of the root packages, in source order.
func (p *PackageProvider) Directives() []Directive {
	return append([]Directive(nil), p.directives...)
}

// processPackage indexes a loaded root package.
func (p *PackageProvider) processPackage(pkg *packages.Package) {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	p.indexTypes(pkg.Types)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		if _, ok := typeName.Type().Underlying().(*types.Struct); ok {
			info.Types = append(info.Types, TypeID{PkgPath: pkg.PkgPath, Name: name})
		}
	}

	p.infos[pkg.PkgPath] = info

	for _, file := range pkg.Syntax {
		p.directives = append(p.directives, p.fileDirectives(pkg.PkgPath, file)...)
	}
}

// indexTypes records pkg and everything it imports, transitively.
func (p *PackageProvider) indexTypes(pkg *types.Package) {
	if pkg == nil {
		return
	}

	if _, seen := p.byPath[pkg.Path()]; seen {
		return
	}

	p.byPath[pkg.Path()] = pkg
	for _, imp := range pkg.Imports() {
		p.indexTypes(imp)
	}
}

// fileDirectives extracts directives from the doc comments of type specs.
func (p *PackageProvider) fileDirectives(pkgPath string, file *ast.File) []Directive {
	var result []Directive

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}

			if doc == nil {
				continue
			}

			id := TypeID{PkgPath: pkgPath, Name: ts.Name.Name}
			for _, c := range doc.List {
				text, ok := strings.CutPrefix(c.Text, "//")
				if !ok || !strings.HasPrefix(text, DirectivePrefix) {
					continue
				}

				result = append(result, Directive{
					Type: id,
					Text: text,
					Pos:  p.fset.Position(c.Slash),
				})
			}
		}
	}

	return result
}

// Describe returns the descriptor of a named struct type from a loaded
// package or one of its imports.
func (p *PackageProvider) Describe(id TypeID) (*TypeDescriptor, error) {
	if cached, ok := p.cache[id]; ok {
		return cached, nil
	}

	pkg, ok := p.byPath[id.PkgPath]
	if !ok {
		return nil, fmt.Errorf("%s: package not loaded: %w", id, ErrNotFound)
	}

	typeName, ok := pkg.Scope().Lookup(id.Name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	desc, err := p.describe(id, typeName)
	if err != nil {
		return nil, err
	}

	p.cache[id] = desc

	return desc, nil
}

func (p *PackageProvider) describe(id TypeID, typeName *types.TypeName) (*TypeDescriptor, error) {
	named, ok := types.Unalias(typeName.Type()).(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotStruct)
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s (%s): %w", id, named.Underlying(), ErrNotStruct)
	}

	// Aliases describe the type they point to
	obj := named.Obj()
	owner := TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}

	desc := &TypeDescriptor{
		ID:       owner,
		PkgName:  obj.Pkg().Name(),
		PkgScope: obj.Pkg().Scope().Names(),
		Pos:      p.fset.Position(obj.Pos()),
	}

	if info, ok := p.infos[owner.PkgPath]; ok {
		desc.Dir = info.Dir
	}

	params := named.TypeParams()
	for i := range params.Len() {
		desc.TypeParams = append(desc.TypeParams, params.At(i).Obj().Name())
	}

	for i := range st.NumFields() {
		field := st.Field(i)

		// Promoted fields are not flattened
		if field.Embedded() {
			continue
		}

		tag := reflect.StructTag(st.Tag(i))

		name, ok := LogicalName(field.Name(), tag)
		if !ok {
			continue
		}

		desc.Properties = append(desc.Properties, PropertyDescriptor{
			Name:      name,
			FieldName: field.Name(),
			Type:      field.Type(),
			Tag:       tag,
			Exported:  field.Exported(),
			Owner:     owner,
			Pos:       p.fset.Position(field.Pos()),
		})
	}

	return desc, nil
}
