package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/rentfolio/rentfolio-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all metadata store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.rentfolio/data/rentfolio.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".rentfolio", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "rentfolio.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// ApartmentStore returns an ApartmentStore interface backed by this store.
func (s *Store) ApartmentStore() driven.ApartmentStore {
	return &apartmentStore{store: s}
}

// ProfileStore returns a ProfileStore interface backed by this store.
func (s *Store) ProfileStore() driven.ProfileStore {
	return &profileStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// Save stores or updates a document record.
func (s *documentStore) Save(ctx context.Context, doc *domain.SourceDocument) error {
	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO profile_documents (id, profile_id, filename, path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			filename = excluded.filename,
			path = excluded.path,
			updated_at = excluded.updated_at
	`, doc.ID, doc.ProfileID, doc.Filename, doc.Path, doc.CreatedAt, doc.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Get retrieves a document record by ID.
func (s *documentStore) Get(ctx context.Context, id string) (*domain.SourceDocument, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, profile_id, filename, path, created_at, updated_at
		FROM profile_documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	return doc, nil
}

// ListByProfile returns all document records owned by a profile.
func (s *documentStore) ListByProfile(ctx context.Context, profileID string) ([]domain.SourceDocument, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, profile_id, filename, path, created_at, updated_at
		FROM profile_documents WHERE profile_id = ?
		ORDER BY updated_at DESC
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.SourceDocument //nolint:prealloc // size unknown from query
	for rows.Next() {
		var doc domain.SourceDocument
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&doc.ID, &doc.ProfileID, &doc.Filename, &doc.Path, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		if createdAt.Valid {
			doc.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			doc.UpdatedAt = updatedAt.Time
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// Delete removes a document record.
func (s *documentStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM profile_documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// scanDocument scans a single document row.
func scanDocument(row *sql.Row) (*domain.SourceDocument, error) {
	var doc domain.SourceDocument
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&doc.ID, &doc.ProfileID, &doc.Filename, &doc.Path, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		doc.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		doc.UpdatedAt = updatedAt.Time
	}
	return &doc, nil
}

// ==================== Apartment Store ====================

// apartmentStore implements driven.ApartmentStore.
type apartmentStore struct {
	store *Store
}

var _ driven.ApartmentStore = (*apartmentStore)(nil)

// FindByIdentity returns the record matching (profileID, address, unit)
// case-insensitively.
func (s *apartmentStore) FindByIdentity(ctx context.Context, profileID, address, unit string) (*domain.ApartmentRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, profile_id, building_address, apartment_no, lease_start_date, offered_rent, created_at, updated_at
		FROM profile_apartments
		WHERE profile_id = ? AND lower(building_address) = lower(?) AND lower(apartment_no) = lower(?)
	`, profileID, address, unit)

	rec, err := scanApartment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning apartment: %w", err)
	}
	return rec, nil
}

// Insert stores a new record. The unique identity index turns a duplicate
// insert into domain.ErrAlreadyExists, which serializes concurrent
// reconciliations for the same identity.
func (s *apartmentStore) Insert(ctx context.Context, rec *domain.ApartmentRecord) error {
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO profile_apartments (id, profile_id, building_address, apartment_no, lease_start_date, offered_rent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.ProfileID, rec.BuildingAddress, rec.ApartmentNo, rec.LeaseStartDate, rec.OfferedRent, rec.CreatedAt, rec.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: apartment %s", domain.ErrAlreadyExists, rec.DisplayName())
		}
		return fmt.Errorf("inserting apartment: %w", err)
	}
	return nil
}

// UpdateLeaseTerms overwrites the lease-term fields of an existing record.
func (s *apartmentStore) UpdateLeaseTerms(ctx context.Context, id, leaseStartDate, offeredRent string) error {
	res, err := s.store.db.ExecContext(ctx, `
		UPDATE profile_apartments
		SET lease_start_date = ?, offered_rent = ?, updated_at = ?
		WHERE id = ?
	`, leaseStartDate, offeredRent, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating apartment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating apartment: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProfile returns all records for a profile, most recently reconciled first.
func (s *apartmentStore) ListByProfile(ctx context.Context, profileID string) ([]domain.ApartmentRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, profile_id, building_address, apartment_no, lease_start_date, offered_rent, created_at, updated_at
		FROM profile_apartments WHERE profile_id = ?
		ORDER BY updated_at DESC
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("querying apartments: %w", err)
	}
	defer rows.Close()

	var recs []domain.ApartmentRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec domain.ApartmentRecord
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.ProfileID, &rec.BuildingAddress, &rec.ApartmentNo,
			&rec.LeaseStartDate, &rec.OfferedRent, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning apartment: %w", err)
		}
		if createdAt.Valid {
			rec.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			rec.UpdatedAt = updatedAt.Time
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating apartments: %w", err)
	}

	return recs, nil
}

// Delete removes a record, scoped to its owning profile.
func (s *apartmentStore) Delete(ctx context.Context, profileID, id string) error {
	res, err := s.store.db.ExecContext(ctx,
		"DELETE FROM profile_apartments WHERE id = ? AND profile_id = ?", id, profileID)
	if err != nil {
		return fmt.Errorf("deleting apartment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting apartment: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanApartment scans a single apartment row.
func scanApartment(row *sql.Row) (*domain.ApartmentRecord, error) {
	var rec domain.ApartmentRecord
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&rec.ID, &rec.ProfileID, &rec.BuildingAddress, &rec.ApartmentNo,
		&rec.LeaseStartDate, &rec.OfferedRent, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		rec.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		rec.UpdatedAt = updatedAt.Time
	}
	return &rec, nil
}

// ==================== Profile Store ====================

// profileStore implements driven.ProfileStore.
type profileStore struct {
	store *Store
}

var _ driven.ProfileStore = (*profileStore)(nil)

// Save stores or updates the profile.
func (s *profileStore) Save(ctx context.Context, profile *domain.Profile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO profiles (id, first_name, last_name, email, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			phone = excluded.phone,
			updated_at = excluded.updated_at
	`, profile.ID, profile.FirstName, profile.LastName, profile.Email,
		nullString(profile.Phone), profile.CreatedAt, profile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Get retrieves the profile. Rentfolio is single-user; the most recently
// updated row wins if more than one ever exists.
func (s *profileStore) Get(ctx context.Context) (*domain.Profile, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, created_at, updated_at
		FROM profiles ORDER BY updated_at DESC LIMIT 1
	`)

	var profile domain.Profile
	var phone sql.NullString
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&profile.ID, &profile.FirstName, &profile.LastName, &profile.Email,
		&phone, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	profile.Phone = phone.String
	if createdAt.Valid {
		profile.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		profile.UpdatedAt = updatedAt.Time
	}

	return &profile, nil
}

// nullString converts an empty string to a SQL NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
