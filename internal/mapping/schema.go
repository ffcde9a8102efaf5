package mapping

import (
	"go/token"

	"vanilla/internal/analyze"
)

// DeclarationFile represents the root of a YAML declaration file.
type DeclarationFile struct {
	// Version of the declaration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Validators lists draft/target pairs.
	Validators []ValidatorDecl `yaml:"validators"`
}

// ValidatorDecl declares that a draft validates as a target.
type ValidatorDecl struct {
	// Draft type identifier, relative to the package the file belongs to
	// (e.g., "OrderDraft") or fully qualified.
	Draft string `yaml:"draft"`

	// Target type identifier (e.g., "warehouse.Order" or full path).
	Target string `yaml:"target"`

	// Rename maps draft Go field names to logical names.
	Rename map[string]string `yaml:"rename,omitempty"`
}

// Origin tells where a declaration was read from.
type Origin int

const (
	OriginDirective Origin = iota
	OriginFile
)

// String returns a human-readable origin name.
func (o Origin) String() string {
	if o == OriginFile {
		return "file"
	}

	return "directive"
}

// Declaration pairs a draft with its target. It is the resolver's input.
type Declaration struct {
	Draft  analyze.TypeID
	Target analyze.TypeID
	// Rename overrides logical names of draft fields, keyed by Go field name.
	Rename map[string]string
	Origin Origin
	Pos    token.Position
}

// Pair returns a "draft -> target" label for diagnostics.
func (d Declaration) Pair() string {
	return d.Draft.Name + " -> " + d.Target.String()
}
