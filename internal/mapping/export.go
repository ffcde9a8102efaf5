package mapping

import "maps"

// Export builds a declaration file holding the declarations whose draft lives
// in pkgPath, so directive pairings can be reviewed or moved to a file.
// Targets in pkgPath are written by name, others by full path.
func Export(decls []Declaration, pkgPath string) *DeclarationFile {
	df := &DeclarationFile{
		Version:    CurrentVersion,
		Validators: []ValidatorDecl{},
	}

	for _, decl := range decls {
		if decl.Draft.PkgPath != pkgPath {
			continue
		}

		v := ValidatorDecl{
			Draft:  decl.Draft.Name,
			Target: decl.Target.String(),
		}

		if decl.Target.PkgPath == pkgPath {
			v.Target = decl.Target.Name
		}

		if len(decl.Rename) > 0 {
			v.Rename = maps.Clone(decl.Rename)
		}

		df.Validators = append(df.Validators, v)
	}

	return df
}
