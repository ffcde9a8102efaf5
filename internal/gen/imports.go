package gen

import (
	"fmt"
	"go/types"
	"slices"
	"sort"
	"strconv"

	"vanilla/internal/common"
)

// ImportSpec represents an import statement.
type ImportSpec struct {
	Alias string // Empty when the package name is used as is
	Path  string
}

// importSet assigns package qualifiers for one generated file. Packages keep
// their declared name unless it collides with another import or a reserved
// identifier.
type importSet struct {
	localPath string
	reserved  map[string]bool
	byPath    map[string]string // path -> qualifier
	names     map[string]string // qualifier -> path
	declared  map[string]string // path -> declared package name
}

func newImportSet(localPath string, reserved ...string) *importSet {
	s := &importSet{
		localPath: localPath,
		reserved:  make(map[string]bool, len(reserved)),
		byPath:    make(map[string]string),
		names:     make(map[string]string),
		declared:  make(map[string]string),
	}

	for _, r := range reserved {
		s.reserved[r] = true
	}

	return s
}

// add registers a package and returns its qualifier, "" for the local package.
func (s *importSet) add(path, name string) string {
	if path == s.localPath || path == "" {
		return ""
	}

	if q, ok := s.byPath[path]; ok {
		return q
	}

	if name == "" {
		name = common.PkgAlias(path)
	}

	q := name
	for i := 2; s.reserved[q] || s.names[q] != ""; i++ {
		q = name + strconv.Itoa(i)
	}

	s.byPath[path] = q
	s.names[q] = path
	s.declared[path] = name

	return q
}

// qualifier is a types.Qualifier registering every package it is asked about.
func (s *importSet) qualifier(pkg *types.Package) string {
	return s.add(pkg.Path(), pkg.Name())
}

// typeString renders t as seen from the local package.
func (s *importSet) typeString(t types.Type) string {
	return types.TypeString(t, s.qualifier)
}

// specs returns the imports sorted by path.
func (s *importSet) specs() []ImportSpec {
	specs := make([]ImportSpec, 0, len(s.byPath))

	for path, q := range s.byPath {
		spec := ImportSpec{Path: path}
		if q != s.declared[path] {
			spec.Alias = q
		}

		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}

// checkAccessible reports an error when t names an unexported type declared
// outside the local package, which generated code could not spell, or a local
// type whose name generated code shadows.
func checkAccessible(t types.Type, localPath string) error {
	return walkType(t, localPath, map[types.Type]bool{})
}

func walkType(t types.Type, localPath string, seen map[types.Type]bool) error {
	if t == nil || seen[t] {
		return nil
	}

	seen[t] = true

	switch tt := t.(type) {
	case *types.Alias:
		return walkType(types.Unalias(tt), localPath, seen)
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() != localPath && !obj.Exported() {
			return fmt.Errorf("type %s is not exported by %s", obj.Name(), obj.Pkg().Path())
		}

		if obj.Pkg() != nil && obj.Pkg().Path() == localPath && slices.Contains(reservedIdents, obj.Name()) {
			return fmt.Errorf("type %s is shadowed by generated code; rename the type", obj.Name())
		}

		args := tt.TypeArgs()
		for i := range args.Len() {
			if err := walkType(args.At(i), localPath, seen); err != nil {
				return err
			}
		}
	case *types.Pointer:
		return walkType(tt.Elem(), localPath, seen)
	case *types.Slice:
		return walkType(tt.Elem(), localPath, seen)
	case *types.Array:
		return walkType(tt.Elem(), localPath, seen)
	case *types.Chan:
		return walkType(tt.Elem(), localPath, seen)
	case *types.Map:
		if err := walkType(tt.Key(), localPath, seen); err != nil {
			return err
		}

		return walkType(tt.Elem(), localPath, seen)
	case *types.Signature:
		for _, tuple := range []*types.Tuple{tt.Params(), tt.Results()} {
			for i := range tuple.Len() {
				if err := walkType(tuple.At(i).Type(), localPath, seen); err != nil {
					return err
				}
			}
		}
	case *types.Struct:
		for i := range tt.NumFields() {
			if err := walkType(tt.Field(i).Type(), localPath, seen); err != nil {
				return err
			}
		}
	}

	return nil
}
