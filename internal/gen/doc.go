// Package gen synthesizes and emits Go code for draft validators.
//
// Generation is split in two steps:
//   - Synthesize decides what to emit for a property mapping: type names,
//     per-property setters, qualified type expressions and imports.
//   - An Emitter turns those decisions into Go declarations; the default one
//     uses text/template. Generator assembles the declarations into a file
//     and formats it with go/format.
//
// For a draft Draft validated as Validated the generated file declares
// DraftValidator[E], DraftValidatorBuilder[E] and NewDraftValidatorBuilder.
package gen
