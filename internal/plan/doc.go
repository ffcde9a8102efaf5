// Package plan resolves declarations into model pairs consumed by matching and
// code generation.
//
// Resolution pipeline:
//  1. Collect declarations (directives + declaration files)
//  2. For each declaration:
//     - Describe the draft, then the target, through an analyze.Provider
//     - Apply renames from the declaration to the draft's logical names
//     - Drop target fields generated code cannot set
//  3. Emit one independent outcome per declaration
package plan
