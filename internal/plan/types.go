package plan

import (
	"vanilla/internal/analyze"
	"vanilla/internal/diagnostic"
	"vanilla/internal/mapping"
)

// Namespace is the package generated code for a pair is placed in.
type Namespace struct {
	PkgPath string
	PkgName string
	Dir     string
	// Scope lists the package-level names generated code must not shadow.
	Scope []string
}

// ModelPair is a resolved draft/target pair.
type ModelPair struct {
	// Source is the draft being validated.
	Source *analyze.TypeDescriptor
	// Target is the type a successful validation produces.
	Target *analyze.TypeDescriptor
	// Namespace is the draft's package.
	Namespace Namespace
	// Declaration the pair was resolved from.
	Declaration mapping.Declaration
}

// String returns a "draft -> target" label.
func (p *ModelPair) String() string {
	return p.Source.Name() + " -> " + p.Target.ID.String()
}

// SamePackage reports whether draft and target live in the same package.
func (p *ModelPair) SamePackage() bool {
	return p.Source.ID.PkgPath == p.Target.ID.PkgPath
}

// PairOutcome is the result of resolving one declaration. Pair is nil when
// resolution failed; Diagnostics then holds the reason.
type PairOutcome struct {
	Declaration mapping.Declaration
	Pair        *ModelPair
	Diagnostics diagnostic.Diagnostics
}

// OK reports whether the outcome carries a usable pair.
func (o PairOutcome) OK() bool {
	return o.Pair != nil && !o.Diagnostics.HasErrors()
}

// ResolvedPlan is the output of the resolution pipeline.
type ResolvedPlan struct {
	// Outcomes holds one entry per declaration, in declaration order.
	Outcomes []PairOutcome
}

// Pairs returns the successfully resolved pairs.
func (p *ResolvedPlan) Pairs() []*ModelPair {
	var pairs []*ModelPair

	for _, o := range p.Outcomes {
		if o.OK() {
			pairs = append(pairs, o.Pair)
		}
	}

	return pairs
}

// Diagnostics merges the diagnostics of every outcome.
func (p *ResolvedPlan) Diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	for _, o := range p.Outcomes {
		all.Merge(o.Diagnostics)
	}

	return all
}
