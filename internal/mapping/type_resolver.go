package mapping

import (
	"errors"
	"fmt"
	"strings"

	"vanilla/internal/analyze"
)

// ErrAmbiguousRef is returned for a short reference matching several packages.
var ErrAmbiguousRef = errors.New("ambiguous type reference")

// ResolveTypeRef resolves a type reference written in a directive or a
// declaration file:
//   - "Order" (name only, resolved in fromPkg)
//   - "vanilla/warehouse.Order" (full import path)
//   - "warehouse.Order" (short, matched by path suffix against known packages)
//
// A short reference matching no known package is returned as if it were a
// full path; describing it then fails. A short reference matching several
// known packages fails with ErrAmbiguousRef.
func ResolveTypeRef(ref, fromPkg string, known []string) (analyze.TypeID, error) {
	ref = strings.TrimSpace(ref)

	lastDot := strings.LastIndex(ref, ".")
	if lastDot < 0 {
		return analyze.TypeID{PkgPath: fromPkg, Name: ref}, nil
	}

	pkgStr, name := ref[:lastDot], ref[lastDot+1:]
	if strings.Contains(pkgStr, "/") {
		return analyze.TypeID{PkgPath: pkgStr, Name: name}, nil
	}

	var matches []string

	for _, path := range known {
		if path == pkgStr || strings.HasSuffix(path, "/"+pkgStr) {
			matches = append(matches, path)
		}
	}

	switch len(matches) {
	case 0:
		return analyze.TypeID{PkgPath: pkgStr, Name: name}, nil
	case 1:
		return analyze.TypeID{PkgPath: matches[0], Name: name}, nil
	default:
		return analyze.TypeID{}, fmt.Errorf("%w: %q matches packages %s; use the full import path",
			ErrAmbiguousRef, ref, strings.Join(matches, ", "))
	}
}
