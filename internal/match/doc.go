// Package match pairs draft properties with target properties.
//
// Matching is exact on logical names: a property's Go field name, or the
// value of its vanilla struct tag. Name normalization and Levenshtein
// distance only rank near misses offered as suggestions when nothing matches.
//
// Key functions:
//   - FindMatchingProperties: matches one model pair
//   - MatchPlan: matches every resolved pair of a plan
//   - ClassifyShape: relates a draft field type to its target field type
//   - RankSuggestions: ranks rename suggestions for unmatched properties
package match
