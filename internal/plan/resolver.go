package plan

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"vanilla/internal/analyze"
	"vanilla/internal/diagnostic"
	"vanilla/internal/mapping"
)

// Diagnostic codes reported by the resolver.
const (
	CodeSourceUnavailable = "source-unavailable"
	CodeTargetUnavailable = "target-unavailable"
	CodeUnknownRename     = "unknown-rename"
	CodeExcludedField     = "excluded-target-field"
)

// Messages of the resolver's error diagnostics.
const (
	MsgSourceUnavailable = "internal error: failed to read source model information"
	MsgTargetUnavailable = "internal error: failed to read target model information"
)

// Resolver turns declarations into model pairs.
type Resolver struct {
	provider analyze.Provider
}

// NewResolver creates a new Resolver describing types through provider.
func NewResolver(provider analyze.Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve resolves every declaration. A failing declaration never prevents
// the others from resolving.
func (r *Resolver) Resolve(decls []mapping.Declaration) *ResolvedPlan {
	plan := &ResolvedPlan{Outcomes: make([]PairOutcome, 0, len(decls))}

	for _, decl := range decls {
		plan.Outcomes = append(plan.Outcomes, r.ResolvePair(decl))
	}

	return plan
}

// ResolvePair resolves a single declaration.
func (r *Resolver) ResolvePair(decl mapping.Declaration) PairOutcome {
	out := PairOutcome{Declaration: decl}
	pair := decl.Pair()

	source, err := r.provider.Describe(decl.Draft)
	if err != nil {
		out.Diagnostics.Add(diagnostic.NewError(CodeSourceUnavailable, MsgSourceUnavailable, decl.Pos).
			WithPair(pair).
			WithSuggestions(err.Error()))

		return out
	}

	target, err := r.provider.Describe(decl.Target)
	if err != nil {
		out.Diagnostics.Add(diagnostic.NewError(CodeTargetUnavailable, MsgTargetUnavailable, decl.Pos).
			WithPair(pair).
			WithSuggestions(err.Error()))

		return out
	}

	source = r.applyRenames(source, decl, &out.Diagnostics)
	if out.Diagnostics.HasErrors() {
		return out
	}

	target = r.settableFields(source, target, pair, &out.Diagnostics)

	out.Pair = &ModelPair{
		Source: source,
		Target: target,
		Namespace: Namespace{
			PkgPath: source.ID.PkgPath,
			PkgName: source.PkgName,
			Dir:     source.Dir,
			Scope:   source.PkgScope,
		},
		Declaration: decl,
	}

	return out
}

// applyRenames returns a copy of source whose logical names follow the
// declaration's rename table.
func (r *Resolver) applyRenames(
	source *analyze.TypeDescriptor,
	decl mapping.Declaration,
	diags *diagnostic.Diagnostics,
) *analyze.TypeDescriptor {
	if len(decl.Rename) == 0 {
		return source
	}

	renamed := *source
	renamed.Properties = slices.Clone(source.Properties)

	byField := make(map[string]int, len(renamed.Properties))
	for i, p := range renamed.Properties {
		byField[p.FieldName] = i
	}

	fields := slices.Collect(maps.Keys(decl.Rename))
	sort.Strings(fields)

	for _, field := range fields {
		i, ok := byField[field]
		if !ok {
			diags.Add(diagnostic.NewError(CodeUnknownRename,
				fmt.Sprintf("struct %q has no matchable field %q to rename", source.Name(), field), decl.Pos).
				WithPair(decl.Pair()).
				WithField(field))

			continue
		}

		renamed.Properties[i].Name = decl.Rename[field]
	}

	return &renamed
}

// settableFields drops target fields the draft's package cannot assign.
func (r *Resolver) settableFields(
	source, target *analyze.TypeDescriptor,
	pair string,
	diags *diagnostic.Diagnostics,
) *analyze.TypeDescriptor {
	if source.ID.PkgPath == target.ID.PkgPath {
		return target
	}

	var kept []analyze.PropertyDescriptor

	for _, p := range target.Properties {
		if p.Exported {
			kept = append(kept, p)
			continue
		}

		diags.Add(diagnostic.NewInfo(CodeExcludedField,
			fmt.Sprintf("unexported field %q of %q cannot be set from package %s",
				p.FieldName, target.Name(), source.ID.PkgPath), p.Pos).
			WithPair(pair).
			WithField(p.FieldName))
	}

	if len(kept) == len(target.Properties) {
		return target
	}

	filtered := *target
	filtered.Properties = kept

	return &filtered
}
