package inventory

// this file handles the backup format: a full, versioned JSON snapshot of
// all three entity tables, and the atomic destructive restore from one.

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Backup is a full snapshot of the inventory: every product, transaction and
// category, ids included, so that a restore reproduces the tables verbatim.
type Backup struct {
	Version      int           `json:"version"`
	ExportedAt   string        `json:"exportedAt"`
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
	Categories   []Category    `json:"categories"`
}

// backupPayload is the wire form accepted on import. Pointer slices
// distinguish an absent sequence (rejected) from a present empty one.
type backupPayload struct {
	Version      int            `json:"version"`
	ExportedAt   string         `json:"exportedAt"`
	Products     *[]Product     `json:"products" validate:"required"`
	Transactions *[]Transaction `json:"transactions" validate:"required"`
	Categories   []Category     `json:"categories"`
}

var backupValidator = validator.New()

// ExportBackup dumps all three entity tables into a snapshot. No filtering.
func (l *Ledger) ExportBackup() (*Backup, error) {
	b := &Backup{
		Version:      SchemaVersion,
		ExportedAt:   l.now().UTC().Format(time.RFC3339),
		Products:     []Product{},
		Transactions: []Transaction{},
		Categories:   []Category{},
	}
	if err := l.store.db.Order("id").Find(&b.Products).Error; err != nil {
		return nil, fmt.Errorf("cannot export products: %w", err)
	}
	if err := l.store.db.Order("id").Find(&b.Transactions).Error; err != nil {
		return nil, fmt.Errorf("cannot export transactions: %w", err)
	}
	if err := l.store.db.Order("id").Find(&b.Categories).Error; err != nil {
		return nil, fmt.Errorf("cannot export categories: %w", err)
	}
	return b, nil
}

// Export writes the backup snapshot to w as indented UTF-8 JSON. The format
// should remain human readable and easy to keep under version control.
func (l *Ledger) Export(w io.Writer) error {
	b, err := l.ExportBackup()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode backup: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// Import reads a backup snapshot from r and restores it. The products and
// transactions sequences must be present; categories default to empty.
func (l *Ledger) Import(r io.Reader) error {
	var payload backupPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return &ValidationError{Msg: fmt.Sprintf("invalid backup file: %v", err)}
	}
	if err := backupValidator.Struct(&payload); err != nil {
		return &ValidationError{Msg: "invalid backup file: products and transactions are required"}
	}
	return l.ImportBackup(&Backup{
		Version:      payload.Version,
		ExportedAt:   payload.ExportedAt,
		Products:     *payload.Products,
		Transactions: *payload.Transactions,
		Categories:   payload.Categories,
	})
}

// ImportBackup replaces the whole inventory with the snapshot's rows,
// original ids included. This is a destructive full replace, not a merge:
// inside one atomic boundary all three tables are cleared and re-filled, so
// a failed restore leaves the previous state untouched.
func (l *Ledger) ImportBackup(b *Backup) error {
	if b.Products == nil || b.Transactions == nil {
		return &ValidationError{Msg: "invalid backup: products and transactions are required"}
	}
	err := l.store.Atomic(func(tx *gorm.DB) error {
		for _, table := range []string{"transactions", "products", "categories"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		if len(b.Products) > 0 {
			if err := tx.Create(&b.Products).Error; err != nil {
				return err
			}
		}
		if len(b.Transactions) > 0 {
			if err := tx.Create(&b.Transactions).Error; err != nil {
				return err
			}
		}
		if len(b.Categories) > 0 {
			if err := tx.Create(&b.Categories).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cannot restore backup: %w", err)
	}
	l.log.Info("backup restored",
		zap.Int("products", len(b.Products)),
		zap.Int("transactions", len(b.Transactions)),
		zap.Int("categories", len(b.Categories)))
	return nil
}
