package analyze

import (
	"go/token"
	"go/types"
	"reflect"
	"strings"
)

// TagKey is the struct tag key holding a field's logical name override.
//
//	type Draft struct {
//		Addr *string `vanilla:"Address"`
//		Note string  `vanilla:"-"` // never matched
//	}
const TagKey = "vanilla"

// IgnoreTag excludes a field from matching when used as the tag value.
const IgnoreTag = "-"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "vanilla/examples/basic"
	Name    string // e.g., "Draft"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Provider supplies type descriptors.
type Provider interface {
	// Describe returns the descriptor of the named struct type. It fails when
	// the type is unknown or is not a struct.
	Describe(id TypeID) (*TypeDescriptor, error)
}

// TypeDescriptor describes a named struct type.
type TypeDescriptor struct {
	ID         TypeID
	PkgName    string               // Declared package name
	PkgScope   []string             // Names declared at package level, sorted
	Dir        string               // Package directory, empty when unknown
	TypeParams []string             // Type parameter names in declaration order
	Properties []PropertyDescriptor // Fields in declaration order
	Pos        token.Position
}

// Name returns the type name.
func (t *TypeDescriptor) Name() string {
	return t.ID.Name
}

// HasGenericParameters reports whether the type declares type parameters.
func (t *TypeDescriptor) HasGenericParameters() bool {
	return len(t.TypeParams) > 0
}

// Property returns the first property with the given logical name.
func (t *TypeDescriptor) Property(name string) (PropertyDescriptor, bool) {
	for _, p := range t.Properties {
		if p.Name == name {
			return p, true
		}
	}

	return PropertyDescriptor{}, false
}

// PropertyDescriptor describes one struct field.
type PropertyDescriptor struct {
	Name      string            // Logical name used for matching
	FieldName string            // Go field name
	Type      types.Type        // Declared type
	Tag       reflect.StructTag // Raw struct tag
	Exported  bool
	Owner     TypeID
	Pos       token.Position
}

// Renamed reports whether the logical name differs from the field name.
func (p PropertyDescriptor) Renamed() bool {
	return p.Name != p.FieldName
}

// Nilable reports whether the declared type admits nil.
func (p PropertyDescriptor) Nilable() bool {
	if p.Type == nil {
		return false
	}

	switch p.Type.Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map, *types.Interface, *types.Signature, *types.Chan:
		return true
	default:
		return false
	}
}

// LogicalName returns the logical name for a field with the given Go name and
// tag, and false when the tag excludes the field.
func LogicalName(fieldName string, tag reflect.StructTag) (string, bool) {
	value, ok := tag.Lookup(TagKey)
	if !ok {
		return fieldName, true
	}

	name, _, _ := strings.Cut(value, ",")
	name = strings.TrimSpace(name)

	switch name {
	case IgnoreTag:
		return "", false
	case "":
		return fieldName, true
	default:
		return name, true
	}
}

// Directive is a "//vanilla:" comment line attached to a type declaration.
type Directive struct {
	Type TypeID
	Text string // Comment text without the leading "//"
	Pos  token.Position
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory containing the package files
	Types []TypeID // Named struct types defined in this package
}
