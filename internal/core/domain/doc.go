// Package domain defines the core business entities for Rentfolio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceDocument: An uploaded application document (pay stub, bank statement, ID)
//   - ApplicationMetadata: The lease terms entered for one assembly run
//   - ApartmentRecord: A persisted "known apartment" used to pre-fill future runs
//   - PageFragment: Decoded pages ready to be appended to an output document
//   - AssemblyResult: The merged application handed back to the caller
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
