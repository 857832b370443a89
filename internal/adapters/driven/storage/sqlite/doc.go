// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - DocumentStore: Uploaded document record persistence
//   - ApartmentStore: Known apartment record persistence
//   - ProfileStore: Applicant identity persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. A unique index on the lowercased apartment identity
// (profile_id, building_address, apartment_no) enforces the single-slot
// reconciliation policy at the database level, so concurrent assemblies for
// the same identity serialize instead of producing duplicate records.
//
// # Data Location
//
// By default, the database is stored at ~/.rentfolio/data/rentfolio.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
