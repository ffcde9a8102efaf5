// Package analyze provides package loading and type descriptors.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to take an
// immutable snapshot of struct shapes: their ordered fields, the logical
// name of each field and whether the struct declares type parameters.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeDescriptor: a struct shape with its PropertyDescriptors
//   - PropertyDescriptor: logical name, Go field name, declared type
//   - Provider: the descriptor source consumed by the resolver
//   - PackageProvider: Provider backed by go/packages
//   - StaticProvider: in-memory Provider for tests
package analyze
