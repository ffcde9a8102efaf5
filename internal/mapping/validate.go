package mapping

import (
	"fmt"
	"go/token"
	"sort"

	"vanilla/internal/diagnostic"
)

// Validate checks the structure of a declaration file. It does not look at
// types; unknown drafts and targets are reported by the resolver.
func Validate(df *DeclarationFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if df == nil {
		res.AddError(CodeInvalidDecl, "declaration file is nil", "", "")
		return res
	}

	seenDrafts := map[string]struct{}{}

	for i, v := range df.Validators {
		pair := fmt.Sprintf("%s -> %s", v.Draft, v.Target)

		if v.Draft == "" {
			res.AddError(CodeInvalidDecl, fmt.Sprintf("validators[%d]: draft is required", i), pair, "")
			continue
		}

		if v.Target == "" {
			res.AddError(CodeInvalidDecl, fmt.Sprintf("validators[%d]: target is required", i), pair, "")
			continue
		}

		if _, ok := seenDrafts[v.Draft]; ok {
			res.AddError(CodeDuplicateDraft, fmt.Sprintf("%q is declared more than once", v.Draft), pair, "")
			continue
		}

		seenDrafts[v.Draft] = struct{}{}

		validateRename(res, pair, v.Rename)
	}

	return res
}

// validateRename reports empty names and logical names claimed twice.
func validateRename(res *diagnostic.Diagnostics, pair string, rename map[string]string) {
	fields := make([]string, 0, len(rename))
	for field := range rename {
		fields = append(fields, field)
	}

	// Sorted iteration to ensure deterministic output
	sort.Strings(fields)

	claimed := map[string]string{}

	for _, field := range fields {
		name := rename[field]
		if field == "" || name == "" {
			res.Add(diagnostic.NewError(CodeInvalidDecl,
				fmt.Sprintf("rename entry %q: %q must name a field and a logical name", field, name),
				token.Position{}).WithPair(pair))

			continue
		}

		if other, ok := claimed[name]; ok {
			res.Add(diagnostic.NewError(CodeInvalidDecl,
				fmt.Sprintf("fields %s and %s are both renamed to %q", other, field, name),
				token.Position{}).WithPair(pair).WithField(field))

			continue
		}

		claimed[name] = field
	}
}
