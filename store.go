package inventory

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SchemaVersion is the current generation of the persisted schema, and the
// version stamped into backup snapshots. Generation 1 held products and
// transactions; generation 2 added categories and the category reference on
// products.
const SchemaVersion = 2

// Store is the local persistence substrate: a single embedded database file.
// It is constructed explicitly and handed to the ledger engine, never held
// as process-wide state.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the inventory database at path and brings its
// schema up to the current generation.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open inventory database %q: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("cannot migrate inventory database %q: %w", path, err)
	}
	return s, nil
}

// migrate applies the schema generations in order. AutoMigrate is
// idempotent: a generation-1 database gains the categories table and the
// products.category_id column, an up-to-date database is left untouched.
func (s *Store) migrate() error {
	// generation 1
	if err := s.db.AutoMigrate(&Transaction{}); err != nil {
		return err
	}
	// generation 2
	return s.db.AutoMigrate(&Product{}, &Category{})
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Atomic runs fn inside a scoped all-or-nothing write boundary. Partial
// states are invisible to readers until the boundary commits; on error
// nothing is written.
func (s *Store) Atomic(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(fn)
}
