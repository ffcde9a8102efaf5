package match

import (
	"fmt"
	"strings"

	"vanilla/internal/analyze"
	"vanilla/internal/common"
	"vanilla/internal/diagnostic"
	"vanilla/internal/plan"
)

// Diagnostic codes reported by the matcher.
const (
	CodeGenericSource   = "generic-source"
	CodeGenericTarget   = "generic-target"
	CodeAmbiguousSource = "ambiguous-source"
	CodeAmbiguousTarget = "ambiguous-target"
	CodeNoMatch         = "no-matching-properties"
	CodeUnmatchedTarget = "unmatched-target"
	CodeUnmatchedSource = "unmatched-source"
)

// PropertyMatch pairs a draft property with the target property sharing its
// logical name.
type PropertyMatch struct {
	Source analyze.PropertyDescriptor
	Target analyze.PropertyDescriptor
	Shape  Shape
}

// Name returns the shared logical name.
func (m PropertyMatch) Name() string {
	return m.Source.Name
}

// PropertyMapping is the matching result for one model pair. Matches follow
// the draft's declaration order and are never empty.
type PropertyMapping struct {
	Pair    *plan.ModelPair
	Matches []PropertyMatch

	// UnmatchedTargets stay at their zero value in constructed targets.
	UnmatchedTargets []analyze.PropertyDescriptor
	// UnmatchedSources are ignored by generated validators.
	UnmatchedSources []analyze.PropertyDescriptor
}

// FindMatchingProperties matches the draft's properties to the target's by
// logical name. It returns a nil mapping when diags has errors.
func FindMatchingProperties(pair *plan.ModelPair) (*PropertyMapping, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	label := pair.String()

	if pair.Source.HasGenericParameters() {
		diags.Add(diagnostic.NewError(CodeGenericSource,
			fmt.Sprintf("Source struct %q has a generic parameter. This is not supported yet.", pair.Source.Name()),
			pair.Source.Pos).WithPair(label))
	}

	if pair.Target.HasGenericParameters() {
		diags.Add(diagnostic.NewError(CodeGenericTarget,
			fmt.Sprintf("Target struct %q has a generic parameter. This is not supported yet.", pair.Target.Name()),
			pair.Target.Pos).WithPair(label))
	}

	if diags.HasErrors() {
		return nil, diags
	}

	sources := indexByName(pair.Source, "Source", CodeAmbiguousSource, label, &diags)
	targets := indexByName(pair.Target, "Target", CodeAmbiguousTarget, label, &diags)

	if diags.HasErrors() {
		return nil, diags
	}

	mapping := &PropertyMapping{Pair: pair}

	for _, source := range pair.Source.Properties {
		target, ok := targets[source.Name]
		if !ok {
			mapping.UnmatchedSources = append(mapping.UnmatchedSources, source)
			continue
		}

		mapping.Matches = append(mapping.Matches, PropertyMatch{
			Source: source,
			Target: target,
			Shape:  ClassifyShape(source.Type, target.Type),
		})
	}

	for _, target := range pair.Target.Properties {
		if _, ok := sources[target.Name]; !ok {
			mapping.UnmatchedTargets = append(mapping.UnmatchedTargets, target)
		}
	}

	suggestions := RankSuggestions(mapping.UnmatchedSources, mapping.UnmatchedTargets)

	if len(mapping.Matches) == 0 {
		d := diagnostic.NewError(CodeNoMatch,
			fmt.Sprintf("failed to find matching properties. Consider adding %s struct tag to properties of %q struct",
				analyze.TagKey, pair.Source.Name()),
			pair.Source.Pos).WithPair(label)

		for _, s := range suggestions {
			d = d.WithSuggestions(s.String())
		}

		diags.Add(d)

		return nil, diags
	}

	reportUnmatched(mapping, suggestions, label, &diags)

	return mapping, diags
}

// indexByName maps logical names to properties and reports names declared by
// more than one field.
func indexByName(
	desc *analyze.TypeDescriptor,
	side, code, label string,
	diags *diagnostic.Diagnostics,
) map[string]analyze.PropertyDescriptor {
	index := make(map[string]analyze.PropertyDescriptor, len(desc.Properties))
	fields := map[string][]analyze.PropertyDescriptor{}

	var order []string

	for _, p := range desc.Properties {
		if _, seen := fields[p.Name]; !seen {
			order = append(order, p.Name)
			index[p.Name] = p
		}

		fields[p.Name] = append(fields[p.Name], p)
	}

	for _, name := range order {
		declared := fields[name]
		if !common.IsMultiple(declared) {
			continue
		}

		names := make([]string, 0, len(declared))
		for _, p := range declared {
			names = append(names, p.FieldName)
		}

		diags.Add(diagnostic.NewError(code,
			fmt.Sprintf("%s struct %q has ambiguous property %q: declared by fields %s",
				side, desc.Name(), name, strings.Join(names, ", ")),
			declared[1].Pos).WithPair(label).WithField(name))
	}

	return index
}

func reportUnmatched(mapping *PropertyMapping, suggestions []Suggestion, label string, diags *diagnostic.Diagnostics) {
	byTarget := make(map[string]Suggestion, len(suggestions))
	for _, s := range suggestions {
		byTarget[s.Target.FieldName] = s
	}

	target := mapping.Pair.Target.Name()
	source := mapping.Pair.Source.Name()

	for _, p := range mapping.UnmatchedTargets {
		d := diagnostic.NewWarning(CodeUnmatchedTarget,
			fmt.Sprintf("property %q of %q has no matching property in %q and stays at its zero value",
				p.Name, target, source),
			p.Pos).WithPair(label).WithField(p.FieldName)

		if s, ok := byTarget[p.FieldName]; ok {
			d = d.WithSuggestions(s.String())
		}

		diags.Add(d)
	}

	for _, p := range mapping.UnmatchedSources {
		diags.Add(diagnostic.NewInfo(CodeUnmatchedSource,
			fmt.Sprintf("property %q of %q has no matching property in %q and is not validated",
				p.Name, source, target),
			p.Pos).WithPair(label).WithField(p.FieldName))
	}
}

// MatchPlan matches every resolved pair of plan. Failures are independent:
// the returned mappings hold every pair that matched.
func MatchPlan(resolved *plan.ResolvedPlan) ([]*PropertyMapping, diagnostic.Diagnostics) {
	var (
		mappings []*PropertyMapping
		all      diagnostic.Diagnostics
	)

	for _, pair := range resolved.Pairs() {
		mapping, diags := FindMatchingProperties(pair)
		all.Merge(diags)

		if mapping != nil {
			mappings = append(mappings, mapping)
		}
	}

	return mappings, all
}
