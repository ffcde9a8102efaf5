package match

import (
	"fmt"
	"sort"

	"vanilla/internal/analyze"
)

// MinSuggestionScore is the minimum name similarity for a near miss to be
// suggested.
const MinSuggestionScore = 0.5

// Scoring weights of a suggestion.
const (
	nameWeight  = 0.8
	shapeWeight = 0.2
)

// Suggestion proposes renaming a draft property so it matches a target
// property.
type Suggestion struct {
	Source analyze.PropertyDescriptor
	Target analyze.PropertyDescriptor

	NameScore float64 // Normalized name similarity (0-1)
	Shape     Shape
	Score     float64 // Combined score used for ranking
}

// String renders the suggestion as shown to the user.
func (s Suggestion) String() string {
	return fmt.Sprintf("%s -> %s (add %s:%q)", s.Source.FieldName, s.Target.Name, analyze.TagKey, s.Target.Name)
}

// RankSuggestions pairs unmatched targets with their most similar unmatched
// sources. Every source and target appears in at most one suggestion; the
// result is sorted by descending score.
func RankSuggestions(sources, targets []analyze.PropertyDescriptor) []Suggestion {
	var candidates []Suggestion

	for _, target := range targets {
		for _, source := range sources {
			nameScore := NameSimilarity(source.Name, target.Name)
			if nameScore < MinSuggestionScore {
				continue
			}

			shape := ClassifyShape(source.Type, target.Type)

			candidates = append(candidates, Suggestion{
				Source:    source,
				Target:    target,
				NameScore: nameScore,
				Shape:     shape,
				Score:     nameScore*nameWeight + shape.score()*shapeWeight,
			})
		}
	}

	// Highest score first, then by names for determinism
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}

		if a.Target.Name != b.Target.Name {
			return a.Target.Name < b.Target.Name
		}

		return a.Source.FieldName < b.Source.FieldName
	})

	usedSources := map[string]bool{}
	usedTargets := map[string]bool{}

	var result []Suggestion

	for _, c := range candidates {
		if usedSources[c.Source.FieldName] || usedTargets[c.Target.FieldName] {
			continue
		}

		usedSources[c.Source.FieldName] = true
		usedTargets[c.Target.FieldName] = true

		result = append(result, c)
	}

	return result
}
