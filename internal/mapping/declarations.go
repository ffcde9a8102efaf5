package mapping

import (
	"fmt"
	"go/token"
	"maps"

	"vanilla/internal/analyze"
	"vanilla/internal/diagnostic"
)

// Diagnostic codes reported while collecting declarations.
const (
	CodeInvalidDirective  = "invalid-directive"
	CodeDuplicateDraft    = "duplicate-draft"
	CodeConflictingTarget = "conflicting-target"
	CodeInvalidDecl       = "invalid-declaration"
	CodeAmbiguousRef      = "ambiguous-reference"
)

// Collector gathers declarations from directives and declaration files.
// Declarations keep the order in which their drafts were first seen.
type Collector struct {
	known []string // Loaded package paths, for short type references
	decls []Declaration
	index map[analyze.TypeID]int
	diags diagnostic.Diagnostics
}

// NewCollector creates a Collector resolving short references against the
// given package paths.
func NewCollector(knownPackages []string) *Collector {
	return &Collector{
		known: knownPackages,
		index: make(map[analyze.TypeID]int),
	}
}

// AddDirectives records a declaration for every validatedas directive.
func (c *Collector) AddDirectives(directives []analyze.Directive) {
	for _, d := range directives {
		ref, err := ParseDirective(d.Text)
		if err != nil {
			c.diags.Add(diagnostic.NewError(CodeInvalidDirective, err.Error(), d.Pos).
				WithPair(d.Type.Name))

			continue
		}

		target, err := ResolveTypeRef(ref, d.Type.PkgPath, c.known)
		if err != nil {
			c.diags.Add(diagnostic.NewError(CodeAmbiguousRef, err.Error(), d.Pos).WithPair(d.Type.Name))
			continue
		}

		if _, seen := c.index[d.Type]; seen {
			c.diags.Add(diagnostic.NewError(CodeDuplicateDraft,
				fmt.Sprintf("%q already has a %s directive", d.Type.Name, ValidatedAsDirective), d.Pos).
				WithPair(d.Type.Name))

			continue
		}

		c.add(Declaration{
			Draft:  d.Type,
			Target: target,
			Origin: OriginDirective,
			Pos:    d.Pos,
		})
	}
}

// AddFile records the declarations of a declaration file belonging to the
// package pkgPath. Entries for drafts that already have a directive must
// agree on the target and contribute their renames.
func (c *Collector) AddFile(df *DeclarationFile, pkgPath, filename string) {
	pos := token.Position{Filename: filename}

	res := Validate(df)
	c.diags.Merge(*res)

	if res.HasErrors() {
		return
	}

	for _, v := range df.Validators {
		draft, err := ResolveTypeRef(v.Draft, pkgPath, c.known)
		if err != nil {
			c.diags.Add(diagnostic.NewError(CodeAmbiguousRef, err.Error(), pos).WithPair(v.Draft))
			continue
		}

		target, err := ResolveTypeRef(v.Target, pkgPath, c.known)
		if err != nil {
			c.diags.Add(diagnostic.NewError(CodeAmbiguousRef, err.Error(), pos).WithPair(v.Draft))
			continue
		}

		decl := Declaration{
			Draft:  draft,
			Target: target,
			Rename: maps.Clone(v.Rename),
			Origin: OriginFile,
			Pos:    pos,
		}

		i, seen := c.index[decl.Draft]
		if !seen {
			c.add(decl)
			continue
		}

		existing := &c.decls[i]
		if existing.Origin == OriginFile {
			c.diags.Add(diagnostic.NewError(CodeDuplicateDraft,
				fmt.Sprintf("%q is declared more than once", v.Draft), pos).WithPair(decl.Pair()))

			continue
		}

		if existing.Target != decl.Target {
			c.diags.Add(diagnostic.NewError(CodeConflictingTarget,
				fmt.Sprintf("declaration targets %s but the directive targets %s", decl.Target, existing.Target), pos).
				WithPair(existing.Pair()))

			continue
		}

		if existing.Rename == nil {
			existing.Rename = make(map[string]string, len(decl.Rename))
		}

		maps.Copy(existing.Rename, decl.Rename)
	}
}

func (c *Collector) add(decl Declaration) {
	c.index[decl.Draft] = len(c.decls)
	c.decls = append(c.decls, decl)
}

// Declarations returns the collected declarations.
func (c *Collector) Declarations() []Declaration {
	return append([]Declaration(nil), c.decls...)
}

// Diagnostics returns problems found while collecting.
func (c *Collector) Diagnostics() diagnostic.Diagnostics {
	return c.diags
}
