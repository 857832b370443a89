// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - BlobStore: Document content by opaque path
//   - DocumentStore: Uploaded document record persistence
//   - ApartmentStore: Known apartment record persistence
//   - ProfileStore: Applicant identity persistence
//   - CoverRenderer: Cover page synthesis
//   - PageMerger: Fragment parsing and page-document concatenation
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
