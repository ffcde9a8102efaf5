// Package mapping turns the generator's input surface into declarations.
//
// A declaration pairs a draft struct with the target struct it validates as.
// Declarations come from two places.
//
// # Directives
//
// A doc comment directive on the draft:
//
//	// Draft is a person as typed into a form.
//	//
//	//vanilla:validatedas Validated
//	type Draft struct {
//		Addr *int `vanilla:"Address"` // matched against Validated.Address
//	}
//
// The target may be written as "Name" (same package), "pkg.Name" (a loaded
// package whose path ends in pkg) or "import/path.Name".
//
// # Declaration file
//
// An optional YAML file declares pairs without touching the draft source and
// may override logical names:
//
//	version: "1"
//	validators:
//	  - draft: OrderItemDraft
//	    target: vanilla/warehouse.OrderItem
//	    rename:
//	      Qty: Quantity
//
// Rename keys are Go field names of the draft, values are logical names.
// A file entry for a draft that also carries a directive must name the same
// target; its renames are applied on top of struct tags.
package mapping
