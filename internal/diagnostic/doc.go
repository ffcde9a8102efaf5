// Package diagnostic provides structured generation-time errors, warnings
// and notes for the validator generator.
//
// Key capabilities:
//   - Diagnostics anchored at a source position and a draft/target pair
//   - Near-miss suggestions for properties that failed to match
//   - Unmatched target field warnings
//   - A terminal printer with optional color
package diagnostic
